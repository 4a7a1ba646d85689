package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	logrustest "github.com/sirupsen/logrus/hooks/test"
)

func newLoggerWithHook() (*logrus.Logger, *logrustest.Hook) {
	log, hook := logrustest.NewNullLogger()
	return log, hook
}

// The logger sits outside Authenticate, so the identity has to travel back
// through the holder the logger plants in the context.
func TestRequestLoggerCarriesAuthenticatedIdentity(t *testing.T) {
	log, hook := newLoggerWithHook()
	svc := newTestJWTService(time.Hour)
	user := authTestUser()

	token, err := svc.GenerateAccessToken(user)
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	chain := NewRequestLoggerMiddleware(log).Handle(NewAuthMiddleware(svc).Authenticate(next))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/doctors", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	recorder := httptest.NewRecorder()

	chain.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("status: esperado 200 obteve %d", recorder.Code)
	}
	entry := hook.LastEntry()
	if entry == nil {
		t.Fatal("nenhuma linha de log emitida")
	}
	if got, ok := entry.Data["user_id"]; !ok || got != user.ID.String() {
		t.Errorf("user_id no log: esperado %q obteve %v", user.ID.String(), got)
	}
	if got, ok := entry.Data["role"]; !ok || got != "patient" {
		t.Errorf("role no log: esperado 'patient' obteve %v", got)
	}
	if entry.Data["status"] != http.StatusOK {
		t.Errorf("status no log: esperado 200 obteve %v", entry.Data["status"])
	}
}

func TestRequestLoggerOmitsIdentityWhenUnauthenticated(t *testing.T) {
	log, hook := newLoggerWithHook()
	svc := newTestJWTService(time.Hour)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler não deveria ser chamado")
	})
	chain := NewRequestLoggerMiddleware(log).Handle(NewAuthMiddleware(svc).Authenticate(next))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/doctors", nil)
	recorder := httptest.NewRecorder()

	chain.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusUnauthorized {
		t.Fatalf("status: esperado 401 obteve %d", recorder.Code)
	}
	entry := hook.LastEntry()
	if entry == nil {
		t.Fatal("nenhuma linha de log emitida")
	}
	if _, ok := entry.Data["user_id"]; ok {
		t.Errorf("user_id não deveria aparecer em requisição não autenticada: %v", entry.Data["user_id"])
	}
	if entry.Data["status"] != http.StatusUnauthorized {
		t.Errorf("status no log: esperado 401 obteve %v", entry.Data["status"])
	}
}

func TestRequestLoggerRecordsPublicRoute(t *testing.T) {
	log, hook := newLoggerWithHook()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})
	chain := NewRequestLoggerMiddleware(log).Handle(next)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/patients", nil)
	recorder := httptest.NewRecorder()

	chain.ServeHTTP(recorder, req)

	entry := hook.LastEntry()
	if entry == nil {
		t.Fatal("nenhuma linha de log emitida")
	}
	if entry.Data["method"] != http.MethodPost || entry.Data["path"] != "/api/v1/patients" {
		t.Errorf("campos inesperados: %v", entry.Data)
	}
	if entry.Data["status"] != http.StatusCreated {
		t.Errorf("status no log: esperado 201 obteve %v", entry.Data["status"])
	}
}
