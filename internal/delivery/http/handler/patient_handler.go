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
)

type PatientHandler struct {
	patientUsecase usecase.PatientUsecase
	validator      *validator.CustomValidator
}

func NewPatientHandler(patientUsecase usecase.PatientUsecase, validator *validator.CustomValidator) *PatientHandler {
	return &PatientHandler{
		patientUsecase: patientUsecase,
		validator:      validator,
	}
}

// Create handles patient self-registration
// @Summary Register a new patient
// @Tags Patients
// @Accept json
// @Produce json
// @Param request body dto.CreatePatientRequest true "Create Patient Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /patients [post]
func (h *PatientHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Corpo da requisição inválido", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	patient, err := h.patientUsecase.Create(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrEmailOrCPFExists:
			response.Conflict(w, "Email ou CPF já cadastrados")
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, "Data de nascimento inválida. Use o formato YYYY-MM-DD", nil)
		default:
			response.InternalServerError(w, "Erro ao cadastrar paciente")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Paciente cadastrado com sucesso", patient)
}

// Get returns a patient profile
// @Summary Get patient by ID
// @Tags Patients
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /patients/{id} [get]
func (h *PatientHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "ID inválido", nil)
		return
	}

	// Patients only see their own profile.
	role, _ := middleware.GetRoleFromContext(r.Context())
	if role == entity.RolePatient {
		userID, _ := middleware.GetUserIDFromContext(r.Context())
		if userID != id {
			response.Forbidden(w, "Você não tem permissão para acessar este recurso")
			return
		}
	}

	patient, err := h.patientUsecase.Get(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Paciente não encontrado")
		default:
			response.InternalServerError(w, "Erro ao buscar paciente")
		}
		return
	}

	response.Success(w, http.StatusOK, "Paciente encontrado", patient)
}

// List returns a paginated patient listing
// @Summary List patients
// @Tags Patients
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /patients [get]
func (h *PatientHandler) List(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)

	patients, total, err := h.patientUsecase.List(r.Context(), page, limit)
	if err != nil {
		response.InternalServerError(w, "Erro ao listar pacientes")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Pacientes listados com sucesso", patients, buildMeta(page, limit, total))
}

// Update applies a partial update to a patient profile
// @Summary Update patient
// @Tags Patients
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.UpdatePatientRequest true "Update Patient Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /patients/{id} [put]
func (h *PatientHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "ID inválido", nil)
		return
	}

	role, _ := middleware.GetRoleFromContext(r.Context())
	actorID, _ := middleware.GetUserIDFromContext(r.Context())
	if role == entity.RolePatient && actorID != id {
		response.Forbidden(w, "Você não tem permissão para acessar este recurso")
		return
	}

	var req dto.UpdatePatientRequest
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

	patient, err := h.patientUsecase.Update(r.Context(), actorID, id, &req)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Paciente não encontrado")
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, "Data de nascimento inválida. Use o formato YYYY-MM-DD", nil)
		default:
			response.InternalServerError(w, "Erro ao atualizar paciente")
		}
		return
	}

	response.Success(w, http.StatusOK, "Paciente atualizado com sucesso", patient)
}

// Deactivate soft deletes a patient account
// @Summary Deactivate patient
// @Tags Patients
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /patients/{id} [delete]
func (h *PatientHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUIDParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "ID inválido", nil)
		return
	}

	actorID, _ := middleware.GetUserIDFromContext(r.Context())

	if err := h.patientUsecase.Deactivate(r.Context(), actorID, id); err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Paciente não encontrado")
		default:
			response.InternalServerError(w, "Erro ao desativar paciente")
		}
		return
	}

	response.Success(w, http.StatusOK, "Paciente desativado com sucesso", nil)
}
