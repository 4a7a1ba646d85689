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

type SpecialityHandler struct {
	specialityUsecase usecase.SpecialityUsecase
	validator         *validator.CustomValidator
}

func NewSpecialityHandler(specialityUsecase usecase.SpecialityUsecase, validator *validator.CustomValidator) *SpecialityHandler {
	return &SpecialityHandler{
		specialityUsecase: specialityUsecase,
		validator:         validator,
	}
}

// Create registers a new speciality
// @Summary Create speciality
// @Tags Specialities
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateSpecialityRequest true "Create Speciality Request"
// @Success 201 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /specialities [post]
func (h *SpecialityHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateSpecialityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Corpo da requisição inválido", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	actorID, _ := middleware.GetUserIDFromContext(r.Context())

	speciality, err := h.specialityUsecase.Create(r.Context(), actorID, &req)
	if err != nil {
		switch err {
		case usecase.ErrSpecialityExists:
			response.Conflict(w, "Especialidade já cadastrada")
		default:
			response.InternalServerError(w, "Erro ao cadastrar especialidade")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Especialidade cadastrada com sucesso", speciality)
}

// List returns every speciality
// @Summary List specialities
// @Tags Specialities
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /specialities [get]
func (h *SpecialityHandler) List(w http.ResponseWriter, r *http.Request) {
	specialities, err := h.specialityUsecase.List(r.Context())
	if err != nil {
		response.InternalServerError(w, "Erro ao listar especialidades")
		return
	}

	response.Success(w, http.StatusOK, "Especialidades listadas com sucesso", specialities)
}

// Update renames a speciality
// @Summary Update speciality
// @Tags Specialities
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.UpdateSpecialityRequest true "Update Speciality Request"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /specialities/{id} [put]
func (h *SpecialityHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "ID inválido", nil)
		return
	}

	var req dto.UpdateSpecialityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Corpo da requisição inválido", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	actorID, _ := middleware.GetUserIDFromContext(r.Context())

	speciality, err := h.specialityUsecase.Update(r.Context(), actorID, id, &req)
	if err != nil {
		switch err {
		case usecase.ErrSpecialityNotFound:
			response.NotFound(w, "Especialidade não encontrada")
		case usecase.ErrSpecialityExists:
			response.Conflict(w, "Especialidade já cadastrada")
		default:
			response.InternalServerError(w, "Erro ao atualizar especialidade")
		}
		return
	}

	response.Success(w, http.StatusOK, "Especialidade atualizada com sucesso", speciality)
}

// Delete removes a speciality
// @Summary Delete speciality
// @Tags Specialities
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /specialities/{id} [delete]
func (h *SpecialityHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "ID inválido", nil)
		return
	}

	actorID, _ := middleware.GetUserIDFromContext(r.Context())

	if err := h.specialityUsecase.Delete(r.Context(), actorID, id); err != nil {
		switch err {
		case usecase.ErrSpecialityNotFound:
			response.NotFound(w, "Especialidade não encontrada")
		case usecase.ErrSpecialityInUse:
			response.Conflict(w, "Especialidade em uso por médicos cadastrados")
		default:
			response.InternalServerError(w, "Erro ao remover especialidade")
		}
		return
	}

	response.Success(w, http.StatusOK, "Especialidade removida com sucesso", nil)
}
