package handler

import (
	"net/http"

	"safeclinic/pkg/response"
)

// NotImplemented answers endpoints that are routed but not yet built, such as
// appointments and schedules.
func NotImplemented(w http.ResponseWriter, r *http.Request) {
	response.Error(w, http.StatusNotImplemented, "Funcionalidade ainda não implementada", nil)
}
