package handler

import (
	"encoding/json"
	"net/http"

	"safeclinic/internal/delivery/dto"
	"safeclinic/internal/delivery/http/middleware"
	"safeclinic/internal/domain/entity"
	"safeclinic/internal/usecase"
	"safeclinic/pkg/response"
	"safeclinic/pkg/validator"

	"github.com/gorilla/mux"
)

type DoctorHandler struct {
	doctorUsecase usecase.DoctorUsecase
	validator     *validator.CustomValidator
}

func NewDoctorHandler(doctorUsecase usecase.DoctorUsecase, validator *validator.CustomValidator) *DoctorHandler {
	return &DoctorHandler{
		doctorUsecase: doctorUsecase,
		validator:     validator,
	}
}

// Create registers a new doctor account
// @Summary Register a new doctor
// @Tags Doctors
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateDoctorRequest true "Create Doctor Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /doctors [post]
func (h *DoctorHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDoctorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Corpo da requisição inválido", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	actorID, _ := middleware.GetUserIDFromContext(r.Context())

	doctor, err := h.doctorUsecase.Create(r.Context(), actorID, &req)
	if err != nil {
		switch err {
		case usecase.ErrEmailOrCPFExists:
			response.Conflict(w, "Email ou CPF já cadastrados")
		case usecase.ErrCRMExists:
			response.Conflict(w, "CRM já cadastrado")
		case usecase.ErrSpecialityNotFound:
			response.Error(w, http.StatusBadRequest, "Especialidade não encontrada", nil)
		default:
			response.InternalServerError(w, "Erro ao cadastrar médico")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Médico cadastrado com sucesso", doctor)
}

// Get returns a doctor profile
// @Summary Get doctor by ID
// @Tags Doctors
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /doctors/{id} [get]
func (h *DoctorHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "ID inválido", nil)
		return
	}

	// Doctors only see their own profile; other roles may browse.
	role, _ := middleware.GetRoleFromContext(r.Context())
	if role == entity.RoleDoctor {
		userID, _ := middleware.GetUserIDFromContext(r.Context())
		if userID != id {
			response.Forbidden(w, "Você não tem permissão para acessar este recurso")
			return
		}
	}

	doctor, err := h.doctorUsecase.Get(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Médico não encontrado")
		default:
			response.InternalServerError(w, "Erro ao buscar médico")
		}
		return
	}

	response.Success(w, http.StatusOK, "Médico encontrado", doctor)
}

// List returns a paginated doctor listing
// @Summary List doctors
// @Tags Doctors
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /doctors [get]
func (h *DoctorHandler) List(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)

	doctors, total, err := h.doctorUsecase.List(r.Context(), page, limit)
	if err != nil {
		response.InternalServerError(w, "Erro ao listar médicos")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Médicos listados com sucesso", doctors, buildMeta(page, limit, total))
}

// ListBySpeciality returns doctors filtered by speciality name
// @Summary List doctors by speciality
// @Tags Doctors
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /doctors/speciality/{speciality} [get]
func (h *DoctorHandler) ListBySpeciality(w http.ResponseWriter, r *http.Request) {
	speciality := mux.Vars(r)["speciality"]
	page, limit := parsePagination(r)

	doctors, total, err := h.doctorUsecase.ListBySpeciality(r.Context(), speciality, page, limit)
	if err != nil {
		response.InternalServerError(w, "Erro ao listar médicos")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Médicos listados com sucesso", doctors, buildMeta(page, limit, total))
}

// Update applies a partial update to a doctor profile
// @Summary Update doctor
// @Tags Doctors
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.UpdateDoctorRequest true "Update Doctor Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /doctors/{id} [put]
func (h *DoctorHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "ID inválido", nil)
		return
	}

	role, _ := middleware.GetRoleFromContext(r.Context())
	actorID, _ := middleware.GetUserIDFromContext(r.Context())
	if role == entity.RoleDoctor && actorID != id {
		response.Forbidden(w, "Você não tem permissão para acessar este recurso")
		return
	}

	var req dto.UpdateDoctorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Corpo da requisição inválido", nil)
		return
	}

	if req.IsEmpty() {
		response.Error(w, http.StatusBadRequest, "Nenhum dado para atualizar", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	doctor, err := h.doctorUsecase.Update(r.Context(), actorID, id, &req)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Médico não encontrado")
		case usecase.ErrSpecialityNotFound:
			response.Error(w, http.StatusBadRequest, "Especialidade não encontrada", nil)
		default:
			response.InternalServerError(w, "Erro ao atualizar médico")
		}
		return
	}

	response.Success(w, http.StatusOK, "Médico atualizado com sucesso", doctor)
}

// Deactivate soft deletes a doctor account
// @Summary Deactivate doctor
// @Tags Doctors
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /doctors/{id} [delete]
func (h *DoctorHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "ID inválido", nil)
		return
	}

	actorID, _ := middleware.GetUserIDFromContext(r.Context())

	if err := h.doctorUsecase.Deactivate(r.Context(), actorID, id); err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Médico não encontrado")
		default:
			response.InternalServerError(w, "Erro ao desativar médico")
		}
		return
	}

	response.Success(w, http.StatusOK, "Médico desativado com sucesso", nil)
}
