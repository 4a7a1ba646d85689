package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"safeclinic/internal/domain/entity"
	"safeclinic/pkg/jwt"
	"safeclinic/pkg/response"

	"github.com/google/uuid"
)

type contextKey string

const (
	UserIDKey    contextKey = "user_id"
	UserEmailKey contextKey = "user_email"
	RoleKey      contextKey = "role"
)

type AuthMiddleware struct {
	jwtService *jwt.JWTService
}

func NewAuthMiddleware(jwtService *jwt.JWTService) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
	}
}

// Authenticate gates every protected route. Only access tokens pass; a
// refresh token presented here is rejected even though it is signed with the
// same key.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			response.Unauthorized(w, "Token de autenticação não fornecido")
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(w, "Formato do cabeçalho de autorização inválido")
			return
		}

		claims, err := m.jwtService.ValidateToken(parts[1])
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				response.Unauthorized(w, "Token expirado")
				return
			}
			response.Unauthorized(w, "Token inválido")
			return
		}

		if claims.TokenType != jwt.AccessToken {
			response.Unauthorized(w, "Tipo de token inválido")
			return
		}

		role, ok := entity.ParseRole(string(claims.Role))
		if !ok {
			response.Unauthorized(w, "Token inválido")
			return
		}

		// The request logger sits outside this middleware and never sees the
		// derived request, so the identity is reported back through the
		// holder it planted in the context.
		if identity, ok := identityFromContext(r.Context()); ok {
			identity.userID = claims.UserID.String()
			identity.role = string(role)
			identity.set = true
		}

		// Add user info to context
		ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
		ctx = context.WithValue(ctx, UserEmailKey, claims.Email)
		ctx = context.WithValue(ctx, RoleKey, role)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserIDFromContext extracts user ID from context
func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(UserIDKey).(uuid.UUID)
	return userID, ok
}

// GetUserEmailFromContext extracts user email from context
func GetUserEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(UserEmailKey).(string)
	return email, ok
}

// GetRoleFromContext extracts the user's role from context
func GetRoleFromContext(ctx context.Context) (entity.Role, bool) {
	role, ok := ctx.Value(RoleKey).(entity.Role)
	return role, ok
}
