package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"safeclinic/internal/delivery/dto"
	"safeclinic/internal/domain/entity"
	"safeclinic/internal/usecase"
	"safeclinic/pkg/validator"

	"github.com/google/uuid"
)

type fakeAuthUsecase struct {
	loginResult   *dto.LoginResponse
	loginErr      error
	refreshResult *dto.RefreshTokenResponse
	refreshErr    error
}

func (f *fakeAuthUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	return f.loginResult, f.loginErr
}

func (f *fakeAuthUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.RefreshTokenResponse, error) {
	return f.refreshResult, f.refreshErr
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   json.RawMessage `json:"error"`
}

func decodeEnvelope(t *testing.T, body *bytes.Buffer) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(body.Bytes(), &env); err != nil {
		t.Fatalf("resposta não é JSON válido: %v", err)
	}
	return env
}

func postJSON(t *testing.T, h http.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	h(recorder, req)
	return recorder
}

func TestLoginEmptyBodyFailsValidation(t *testing.T) {
	h := NewAuthHandler(&fakeAuthUsecase{}, validator.NewValidator())

	recorder := postJSON(t, h.Login, "/api/v1/auth/login", `{}`)

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("status: esperado 400 obteve %d", recorder.Code)
	}
	env := decodeEnvelope(t, recorder.Body)
	if env.Message != "Dados inválidos" {
		t.Errorf("mensagem: esperado 'Dados inválidos' obteve %q", env.Message)
	}
	var fields map[string]string
	if err := json.Unmarshal(env.Error, &fields); err != nil {
		t.Fatalf("error deveria ser um mapa de campos: %v", err)
	}
	if _, ok := fields["Email"]; !ok {
		t.Error("esperado erro de validação para Email")
	}
	if _, ok := fields["Password"]; !ok {
		t.Error("esperado erro de validação para Password")
	}
}

func TestLoginWrongPassword(t *testing.T) {
	h := NewAuthHandler(&fakeAuthUsecase{loginErr: usecase.ErrInvalidCredentials}, validator.NewValidator())

	recorder := postJSON(t, h.Login, "/api/v1/auth/login", `{"email":"ana@example.com","password":"wrong123"}`)

	if recorder.Code != http.StatusUnauthorized {
		t.Fatalf("status: esperado 401 obteve %d", recorder.Code)
	}
	if env := decodeEnvelope(t, recorder.Body); env.Message != "Credenciais inválidas" {
		t.Errorf("mensagem: esperado 'Credenciais inválidas' obteve %q", env.Message)
	}
}

func TestLoginDeactivatedAccount(t *testing.T) {
	h := NewAuthHandler(&fakeAuthUsecase{loginErr: usecase.ErrUserDeactivated}, validator.NewValidator())

	recorder := postJSON(t, h.Login, "/api/v1/auth/login", `{"email":"ana@example.com","password":"secret1"}`)

	if recorder.Code != http.StatusForbidden {
		t.Fatalf("status: esperado 403 obteve %d", recorder.Code)
	}
	want := "Usuário está desativado. Entre em contato com o administrador."
	if env := decodeEnvelope(t, recorder.Body); env.Message != want {
		t.Errorf("mensagem: esperado %q obteve %q", want, env.Message)
	}
}

func TestLoginSuccessReturnsTokens(t *testing.T) {
	result := &dto.LoginResponse{
		User: dto.UserSummary{
			ID:    uuid.New(),
			Email: "ana@example.com",
			Name:  "Ana Lima",
			Role:  entity.RolePatient,
		},
		Token:        "access-token",
		RefreshToken: "refresh-token",
	}
	h := NewAuthHandler(&fakeAuthUsecase{loginResult: result}, validator.NewValidator())

	recorder := postJSON(t, h.Login, "/api/v1/auth/login", `{"email":"ana@example.com","password":"secret1"}`)

	if recorder.Code != http.StatusOK {
		t.Fatalf("status: esperado 200 obteve %d", recorder.Code)
	}

	env := decodeEnvelope(t, recorder.Body)
	var data dto.LoginResponse
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("data inválido: %v", err)
	}
	if data.Token != "access-token" || data.RefreshToken != "refresh-token" {
		t.Errorf("tokens inesperados: %+v", data)
	}
	if data.User.Email != "ana@example.com" {
		t.Errorf("user.email: esperado ana@example.com obteve %s", data.User.Email)
	}
	// Password hash must never appear in the payload.
	if bytes.Contains(recorder.Body.Bytes(), []byte("password_hash")) {
		t.Error("resposta não deve conter password_hash")
	}
}

func TestRefreshTokenInvalid(t *testing.T) {
	h := NewAuthHandler(&fakeAuthUsecase{refreshErr: usecase.ErrInvalidToken}, validator.NewValidator())

	recorder := postJSON(t, h.RefreshToken, "/api/v1/auth/refresh-token", `{"refreshToken":"garbage"}`)

	if recorder.Code != http.StatusUnauthorized {
		t.Fatalf("status: esperado 401 obteve %d", recorder.Code)
	}
	if env := decodeEnvelope(t, recorder.Body); env.Message != "Token inválido" {
		t.Errorf("mensagem: esperado 'Token inválido' obteve %q", env.Message)
	}
}

func TestRefreshTokenDeactivatedUser(t *testing.T) {
	h := NewAuthHandler(&fakeAuthUsecase{refreshErr: usecase.ErrUserNotFoundOrInactive}, validator.NewValidator())

	recorder := postJSON(t, h.RefreshToken, "/api/v1/auth/refresh-token", `{"refreshToken":"some-token"}`)

	if recorder.Code != http.StatusUnauthorized {
		t.Fatalf("status: esperado 401 obteve %d", recorder.Code)
	}
	if env := decodeEnvelope(t, recorder.Body); env.Message != "Usuário não encontrado ou desativado" {
		t.Errorf("mensagem inesperada: %q", env.Message)
	}
}
