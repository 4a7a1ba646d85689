package handler

import (
	"net/http"

	"safeclinic/internal/delivery/http/middleware"
	"safeclinic/internal/usecase"
	"safeclinic/pkg/response"
)

type NotificationHandler struct {
	notificationUsecase usecase.NotificationUsecase
}

func NewNotificationHandler(notificationUsecase usecase.NotificationUsecase) *NotificationHandler {
	return &NotificationHandler{
		notificationUsecase: notificationUsecase,
	}
}

// List returns the authenticated user's notifications
// @Summary List notifications
// @Tags Notifications
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /notifications [get]
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	page, limit := parsePagination(r)

	notifications, total, err := h.notificationUsecase.List(r.Context(), userID, page, limit)
	if err != nil {
		response.InternalServerError(w, "Erro ao listar notificações")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Notificações listadas com sucesso", notifications, buildMeta(page, limit, total))
}

// MarkAsRead marks one notification as read
// @Summary Mark notification as read
// @Tags Notifications
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /notifications/{id}/read [put]
func (h *NotificationHandler) MarkAsRead(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	id, err := parseUUIDParam(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "ID inválido", nil)
		return
	}

	notification, err := h.notificationUsecase.MarkAsRead(r.Context(), userID, id)
	if err != nil {
		switch err {
		case usecase.ErrNotificationNotFound:
			response.NotFound(w, "Notificação não encontrada")
		default:
			response.InternalServerError(w, "Erro ao atualizar notificação")
		}
		return
	}

	response.Success(w, http.StatusOK, "Notificação marcada como lida", notification)
}

// MarkAllAsRead marks every unread notification as read
// @Summary Mark all notifications as read
// @Tags Notifications
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /notifications/read-all [put]
func (h *NotificationHandler) MarkAllAsRead(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	if err := h.notificationUsecase.MarkAllAsRead(r.Context(), userID); err != nil {
		response.InternalServerError(w, "Erro ao atualizar notificações")
		return
	}

	response.Success(w, http.StatusOK, "Notificações marcadas como lidas", nil)
}
