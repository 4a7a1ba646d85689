package handler

import (
	"net/http"
	"strconv"

	"safeclinic/pkg/response"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// parseUUIDParam extracts and parses a uuid path variable.
func parseUUIDParam(r *http.Request, name string) (uuid.UUID, error) {
	return uuid.Parse(mux.Vars(r)[name])
}

// parsePagination reads page/limit query parameters with sane bounds.
func parsePagination(r *http.Request) (page, limit int) {
	page = 1
	limit = 10

	if v, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && v > 0 {
		page = v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 {
		if v > 100 {
			v = 100
		}
		limit = v
	}

	return page, limit
}

func buildMeta(page, limit int, total int64) *response.Meta {
	totalPages := int(total) / limit
	if int(total)%limit > 0 {
		totalPages++
	}

	return &response.Meta{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}
