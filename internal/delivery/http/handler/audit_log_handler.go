package handler

import (
	"net/http"
	"strconv"

	"safeclinic/internal/usecase"
	"safeclinic/pkg/response"

	"github.com/gorilla/mux"
)

type AuditLogHandler struct {
	auditLogUsecase usecase.AuditLogUsecase
}

func NewAuditLogHandler(auditLogUsecase usecase.AuditLogUsecase) *AuditLogHandler {
	return &AuditLogHandler{
		auditLogUsecase: auditLogUsecase,
	}
}

// List returns a paginated view of the audit trail
// @Summary List audit logs
// @Tags AuditLogs
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /audit-logs [get]
func (h *AuditLogHandler) List(w http.ResponseWriter, r *http.Request) {
	page, limit := parsePagination(r)

	logs, total, err := h.auditLogUsecase.List(r.Context(), page, limit)
	if err != nil {
		response.InternalServerError(w, "Erro ao listar registros de auditoria")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Registros listados com sucesso", logs, buildMeta(page, limit, total))
}

// Get returns one audit entry
// @Summary Get audit log by ID
// @Tags AuditLogs
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /audit-logs/{id} [get]
func (h *AuditLogHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "ID inválido", nil)
		return
	}

	auditLog, err := h.auditLogUsecase.Get(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrAuditLogNotFound:
			response.NotFound(w, "Registro não encontrado")
		default:
			response.InternalServerError(w, "Erro ao buscar registro de auditoria")
		}
		return
	}

	response.Success(w, http.StatusOK, "Registro encontrado", auditLog)
}
