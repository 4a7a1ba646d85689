package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"safeclinic/internal/delivery/dto"
	"safeclinic/internal/delivery/http/middleware"
	"safeclinic/internal/domain/entity"
	"safeclinic/internal/usecase"
	"safeclinic/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type fakePatientUsecase struct {
	createResult  *dto.PatientResponse
	createErr     error
	getResult     *dto.PatientResponse
	getErr        error
	listResult    []dto.PatientResponse
	listTotal     int64
	listErr       error
	updateResult  *dto.PatientResponse
	updateErr     error
	deactivateErr error
}

func (f *fakePatientUsecase) Create(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	return f.createResult, f.createErr
}

func (f *fakePatientUsecase) Get(ctx context.Context, id uuid.UUID) (*dto.PatientResponse, error) {
	return f.getResult, f.getErr
}

func (f *fakePatientUsecase) List(ctx context.Context, page, limit int) ([]dto.PatientResponse, int64, error) {
	return f.listResult, f.listTotal, f.listErr
}

func (f *fakePatientUsecase) Update(ctx context.Context, actorID, id uuid.UUID, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	return f.updateResult, f.updateErr
}

func (f *fakePatientUsecase) Deactivate(ctx context.Context, actorID, id uuid.UUID) error {
	return f.deactivateErr
}

// authedRequest builds a request carrying the context an authenticated call
// would have after the middleware chain.
func authedRequest(method, path string, body string, userID uuid.UUID, role entity.Role, vars map[string]string) *http.Request {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	ctx := context.WithValue(req.Context(), middleware.UserIDKey, userID)
	ctx = context.WithValue(ctx, middleware.RoleKey, role)
	req = req.WithContext(ctx)

	if vars != nil {
		req = mux.SetURLVars(req, vars)
	}
	return req
}

func TestCreatePatientSuccess(t *testing.T) {
	result := &dto.PatientResponse{ID: uuid.New(), Name: "Pedro Alves", Email: "pedro@example.com"}
	h := NewPatientHandler(&fakePatientUsecase{createResult: result}, validator.NewValidator())

	body := `{"name":"Pedro Alves","email":"pedro@example.com","password":"secret1","cpf":"12345678901","birth_date":"1990-05-20"}`
	recorder := postJSON(t, h.Create, "/api/v1/patients", body)

	if recorder.Code != http.StatusCreated {
		t.Fatalf("status: esperado 201 obteve %d, corpo %s", recorder.Code, recorder.Body.String())
	}
}

func TestCreatePatientDuplicate(t *testing.T) {
	h := NewPatientHandler(&fakePatientUsecase{createErr: usecase.ErrEmailOrCPFExists}, validator.NewValidator())

	body := `{"name":"Pedro Alves","email":"pedro@example.com","password":"secret1","cpf":"12345678901","birth_date":"1990-05-20"}`
	recorder := postJSON(t, h.Create, "/api/v1/patients", body)

	if recorder.Code != http.StatusConflict {
		t.Fatalf("status: esperado 409 obteve %d", recorder.Code)
	}
	if env := decodeEnvelope(t, recorder.Body); env.Message != "Email ou CPF já cadastrados" {
		t.Errorf("mensagem: esperado 'Email ou CPF já cadastrados' obteve %q", env.Message)
	}
}

func TestCreatePatientInvalidCPF(t *testing.T) {
	h := NewPatientHandler(&fakePatientUsecase{}, validator.NewValidator())

	body := `{"name":"Pedro Alves","email":"pedro@example.com","password":"secret1","cpf":"123","birth_date":"1990-05-20"}`
	recorder := postJSON(t, h.Create, "/api/v1/patients", body)

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("status: esperado 400 obteve %d", recorder.Code)
	}
}

func TestGetPatientOwnershipDenied(t *testing.T) {
	h := NewPatientHandler(&fakePatientUsecase{}, validator.NewValidator())

	otherID := uuid.New()
	req := authedRequest(http.MethodGet, "/api/v1/patients/"+otherID.String(), "", uuid.New(), entity.RolePatient, map[string]string{"id": otherID.String()})
	recorder := httptest.NewRecorder()

	h.Get(recorder, req)

	if recorder.Code != http.StatusForbidden {
		t.Errorf("status: esperado 403 obteve %d", recorder.Code)
	}
}

// A deactivated profile reads back as missing.
func TestGetPatientDeactivatedIsNotFound(t *testing.T) {
	h := NewPatientHandler(&fakePatientUsecase{getErr: usecase.ErrPatientNotFound}, validator.NewValidator())

	id := uuid.New()
	req := authedRequest(http.MethodGet, "/api/v1/patients/"+id.String(), "", uuid.New(), entity.RoleReceptionist, map[string]string{"id": id.String()})
	recorder := httptest.NewRecorder()

	h.Get(recorder, req)

	if recorder.Code != http.StatusNotFound {
		t.Fatalf("status: esperado 404 obteve %d", recorder.Code)
	}
	if env := decodeEnvelope(t, recorder.Body); env.Message != "Paciente não encontrado" {
		t.Errorf("mensagem: esperado 'Paciente não encontrado' obteve %q", env.Message)
	}
}

func TestUpdatePatientEmptyPayload(t *testing.T) {
	h := NewPatientHandler(&fakePatientUsecase{}, validator.NewValidator())

	id := uuid.New()
	req := authedRequest(http.MethodPut, "/api/v1/patients/"+id.String(), `{}`, id, entity.RolePatient, map[string]string{"id": id.String()})
	recorder := httptest.NewRecorder()

	h.Update(recorder, req)

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("status: esperado 400 obteve %d", recorder.Code)
	}
	if env := decodeEnvelope(t, recorder.Body); env.Message != "Nenhum dado para atualizar" {
		t.Errorf("mensagem: esperado 'Nenhum dado para atualizar' obteve %q", env.Message)
	}
}

func TestUpdatePatientOwnershipDenied(t *testing.T) {
	h := NewPatientHandler(&fakePatientUsecase{}, validator.NewValidator())

	otherID := uuid.New()
	req := authedRequest(http.MethodPut, "/api/v1/patients/"+otherID.String(), `{"name":"Novo Nome"}`, uuid.New(), entity.RolePatient, map[string]string{"id": otherID.String()})
	recorder := httptest.NewRecorder()

	h.Update(recorder, req)

	if recorder.Code != http.StatusForbidden {
		t.Errorf("status: esperado 403 obteve %d", recorder.Code)
	}
}

func TestListPatientsPaginationMeta(t *testing.T) {
	h := NewPatientHandler(&fakePatientUsecase{
		listResult: []dto.PatientResponse{{ID: uuid.New()}},
		listTotal:  21,
	}, validator.NewValidator())

	req := authedRequest(http.MethodGet, "/api/v1/patients?page=2&limit=10", "", uuid.New(), entity.RoleReceptionist, nil)
	recorder := httptest.NewRecorder()

	h.List(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("status: esperado 200 obteve %d", recorder.Code)
	}
	if !bytes.Contains(recorder.Body.Bytes(), []byte(`"total":21`)) {
		t.Errorf("meta.total ausente: %s", recorder.Body.String())
	}
	if !bytes.Contains(recorder.Body.Bytes(), []byte(`"total_pages":3`)) {
		t.Errorf("meta.total_pages ausente: %s", recorder.Body.String())
	}
}

func TestDeactivatePatientNotFound(t *testing.T) {
	h := NewPatientHandler(&fakePatientUsecase{deactivateErr: usecase.ErrPatientNotFound}, validator.NewValidator())

	id := uuid.New()
	req := authedRequest(http.MethodDelete, "/api/v1/patients/"+id.String(), "", uuid.New(), entity.RoleReceptionist, map[string]string{"id": id.String()})
	recorder := httptest.NewRecorder()

	h.Deactivate(recorder, req)

	if recorder.Code != http.StatusNotFound {
		t.Errorf("status: esperado 404 obteve %d", recorder.Code)
	}
}
