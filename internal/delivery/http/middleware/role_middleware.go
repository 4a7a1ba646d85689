package middleware

import (
	"net/http"

	"safeclinic/internal/domain/entity"
	"safeclinic/internal/service"
	"safeclinic/pkg/response"

	"github.com/sirupsen/logrus"
)

// RoleMiddleware enforces role-based access on top of Authenticate. Every
// denial is written to the audit trail.
type RoleMiddleware struct {
	log          *logrus.Logger
	auditService service.AuditService
}

func NewRoleMiddleware(log *logrus.Logger, auditService service.AuditService) *RoleMiddleware {
	return &RoleMiddleware{
		log:          log,
		auditService: auditService,
	}
}

// RequireRole checks if the authenticated user has any of the allowed roles.
// Role is read from context (set by AuthMiddleware from JWT claims).
func (m *RoleMiddleware) RequireRole(allowedRoles ...entity.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := GetRoleFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Não autorizado")
				return
			}

			for _, allowed := range allowedRoles {
				if role == allowed {
					next.ServeHTTP(w, r)
					return
				}
			}

			m.audit(r, role, allowedRoles)
			response.Forbidden(w, "Você não tem permissão para acessar este recurso")
		})
	}
}

func (m *RoleMiddleware) audit(r *http.Request, role entity.Role, allowedRoles []entity.Role) {
	required := make([]string, len(allowedRoles))
	for i, a := range allowedRoles {
		required[i] = string(a)
	}

	metadata := entity.JSON{
		"method":         r.Method,
		"path":           r.URL.Path,
		"required_roles": required,
		"user_role":      string(role),
	}

	if id, ok := GetUserIDFromContext(r.Context()); ok {
		if err := m.auditService.Log(nil, &id, entity.AuditActionUnauthorizedAttempt, metadata); err != nil {
			m.log.Warnf("Failed to audit unauthorized attempt: %+v", err)
		}
		return
	}

	if err := m.auditService.Log(nil, nil, entity.AuditActionUnauthorizedAttempt, metadata); err != nil {
		m.log.Warnf("Failed to audit unauthorized attempt: %+v", err)
	}
}
