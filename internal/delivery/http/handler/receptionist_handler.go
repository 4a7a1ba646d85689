package handler

import (
	"encoding/json"
	"net/http"

	"safeclinic/internal/delivery/dto"
	"safeclinic/internal/delivery/http/middleware"
	"safeclinic/internal/usecase"
	"safeclinic/pkg/response"
	"safeclinic/pkg/validator"
)

type ReceptionistHandler struct {
	receptionistUsecase usecase.ReceptionistUsecase
	validator           *validator.CustomValidator
}

func NewReceptionistHandler(receptionistUsecase usecase.ReceptionistUsecase, validator *validator.CustomValidator) *ReceptionistHandler {
	return &ReceptionistHandler{
		receptionistUsecase: receptionistUsecase,
		validator:           validator,
	}
}

// RegisterFirst bootstraps the very first receptionist account
// @Summary Register the first receptionist
// @Description One-time unauthenticated bootstrap, only works while no receptionist exists
// @Tags Receptionists
// @Accept json
// @Produce json
// @Param request body dto.CreateReceptionistRequest true "Create Receptionist Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /receptionists/register [post]
func (h *ReceptionistHandler) RegisterFirst(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateReceptionistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Corpo da requisição inválido", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	receptionist, err := h.receptionistUsecase.RegisterFirst(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrReceptionistExists:
			response.Conflict(w, "Já existe um recepcionista cadastrado no sistema")
		case usecase.ErrEmailOrCPFExists:
			response.Conflict(w, "Email ou CPF já cadastrados")
		case usecase.ErrInvalidWorkShift:
			response.Error(w, http.StatusBadRequest, "Turno de trabalho inválido", nil)
		default:
			response.InternalServerError(w, "Erro ao cadastrar recepcionista")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Recepcionista cadastrado com sucesso", receptionist)
}

// Create registers an additional receptionist
// @Summary Register a new receptionist
// @Tags Receptionists
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateReceptionistRequest true "Create Receptionist Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /receptionists [post]
func (h *ReceptionistHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateReceptionistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Corpo da requisição inválido", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	actorID, _ := middleware.GetUserIDFromContext(r.Context())

	receptionist, err := h.receptionistUsecase.Create(r.Context(), actorID, &req)
	if err != nil {
		switch err {
		case usecase.ErrEmailOrCPFExists:
			response.Conflict(w, "Email ou CPF já cadastrados")
		case usecase.ErrInvalidWorkShift:
			response.Error(w, http.StatusBadRequest, "Turno de trabalho inválido", nil)
		default:
			response.InternalServerError(w, "Erro ao cadastrar recepcionista")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Recepcionista cadastrado com sucesso", receptionist)
}

// Get returns a receptionist profile
// @Summary Get receptionist by ID
// @Tags Receptionists
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /receptionists/{id} [get]
func (h *ReceptionistHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "ID inválido", nil)
		return
	}

	receptionist, err := h.receptionistUsecase.Get(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrReceptionistNotFound:
			response.NotFound(w, "Recepcionista não encontrado")
		default:
			response.InternalServerError(w, "Erro ao buscar recepcionista")
		}
		return
	}

	response.Success(w, http.StatusOK, "Recepcionista encontrado", receptionist)
}

// List returns a paginated receptionist listing
// @Summary List receptionists
// @Tags Receptionists
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /receptionists [get]
func (h *ReceptionistHandler) List(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)

	receptionists, total, err := h.receptionistUsecase.List(r.Context(), page, limit)
	if err != nil {
		response.InternalServerError(w, "Erro ao listar recepcionistas")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Recepcionistas listados com sucesso", receptionists, buildMeta(page, limit, total))
}

// Deactivate soft deletes a receptionist account
// @Summary Deactivate receptionist
// @Tags Receptionists
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /receptionists/{id} [delete]
func (h *ReceptionistHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "ID inválido", nil)
		return
	}

	actorID, _ := middleware.GetUserIDFromContext(r.Context())

	if err := h.receptionistUsecase.Deactivate(r.Context(), actorID, id); err != nil {
		switch err {
		case usecase.ErrReceptionistNotFound:
			response.NotFound(w, "Recepcionista não encontrado")
		default:
			response.InternalServerError(w, "Erro ao desativar recepcionista")
		}
		return
	}

	response.Success(w, http.StatusOK, "Recepcionista desativado com sucesso", nil)
}
