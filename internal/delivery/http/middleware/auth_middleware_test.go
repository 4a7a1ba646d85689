package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"safeclinic/config"
	"safeclinic/internal/domain/entity"
	"safeclinic/pkg/jwt"

	"github.com/google/uuid"
)

func newTestJWTService(accessExpiry time.Duration) *jwt.JWTService {
	return jwt.NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  accessExpiry,
		RefreshExpiry: 24 * time.Hour,
	})
}

func authTestUser() *entity.User {
	return &entity.User{
		ID:    uuid.New(),
		Email: "joao@example.com",
		Role:  entity.RolePatient,
		Name:  "João Souza",
	}
}

func decodeMessage(t *testing.T, body []byte) string {
	t.Helper()
	var envelope struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		t.Fatalf("resposta não é JSON válido: %v", err)
	}
	return envelope.Message
}

func TestAuthenticatePopulatesContext(t *testing.T) {
	svc := newTestJWTService(time.Hour)
	user := authTestUser()

	token, err := svc.GenerateAccessToken(user)
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	var gotUserID uuid.UUID
	var gotRole entity.Role
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, _ = GetUserIDFromContext(r.Context())
		gotRole, _ = GetRoleFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	m := NewAuthMiddleware(svc)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/doctors", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	recorder := httptest.NewRecorder()

	m.Authenticate(next).ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("status: esperado 200 obteve %d", recorder.Code)
	}
	if gotUserID != user.ID {
		t.Errorf("user id no contexto: esperado %s obteve %s", user.ID, gotUserID)
	}
	if gotRole != entity.RolePatient {
		t.Errorf("role no contexto: esperado %s obteve %s", entity.RolePatient, gotRole)
	}
}

func TestAuthenticateMissingHeader(t *testing.T) {
	m := NewAuthMiddleware(newTestJWTService(time.Hour))
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler não deveria ser chamado")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/doctors", nil)
	recorder := httptest.NewRecorder()

	m.Authenticate(next).ServeHTTP(recorder, req)

	if recorder.Code != http.StatusUnauthorized {
		t.Errorf("status: esperado 401 obteve %d", recorder.Code)
	}
}

func TestAuthenticateMalformedHeader(t *testing.T) {
	m := NewAuthMiddleware(newTestJWTService(time.Hour))
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler não deveria ser chamado")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/doctors", nil)
	req.Header.Set("Authorization", "Basic abc123")
	recorder := httptest.NewRecorder()

	m.Authenticate(next).ServeHTTP(recorder, req)

	if recorder.Code != http.StatusUnauthorized {
		t.Errorf("status: esperado 401 obteve %d", recorder.Code)
	}
}

func TestAuthenticateExpiredTokenHasDistinctMessage(t *testing.T) {
	svc := newTestJWTService(-time.Minute)
	token, err := svc.GenerateAccessToken(authTestUser())
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	m := NewAuthMiddleware(svc)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler não deveria ser chamado")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/doctors", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	recorder := httptest.NewRecorder()

	m.Authenticate(next).ServeHTTP(recorder, req)

	if recorder.Code != http.StatusUnauthorized {
		t.Fatalf("status: esperado 401 obteve %d", recorder.Code)
	}
	if msg := decodeMessage(t, recorder.Body.Bytes()); msg != "Token expirado" {
		t.Errorf("mensagem: esperado 'Token expirado' obteve %q", msg)
	}
}

// A refresh token must never open a protected endpoint even though it is
// signed with the same key.
func TestAuthenticateRejectsRefreshToken(t *testing.T) {
	svc := newTestJWTService(time.Hour)
	token, err := svc.GenerateRefreshToken(authTestUser())
	if err != nil {
		t.Fatalf("GenerateRefreshToken: %v", err)
	}

	m := NewAuthMiddleware(svc)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler não deveria ser chamado")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/doctors", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	recorder := httptest.NewRecorder()

	m.Authenticate(next).ServeHTTP(recorder, req)

	if recorder.Code != http.StatusUnauthorized {
		t.Fatalf("status: esperado 401 obteve %d", recorder.Code)
	}
	if msg := decodeMessage(t, recorder.Body.Bytes()); msg != "Tipo de token inválido" {
		t.Errorf("mensagem: esperado 'Tipo de token inválido' obteve %q", msg)
	}
}
