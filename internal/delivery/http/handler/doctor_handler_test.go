package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"safeclinic/internal/delivery/dto"
	"safeclinic/internal/domain/entity"
	"safeclinic/internal/usecase"
	"safeclinic/pkg/validator"

	"github.com/google/uuid"
)

type fakeDoctorUsecase struct {
	createResult  *dto.DoctorResponse
	createErr     error
	getResult     *dto.DoctorResponse
	getErr        error
	listResult    []dto.DoctorResponse
	listTotal     int64
	listErr       error
	updateResult  *dto.DoctorResponse
	updateErr     error
	deactivateErr error
}

func (f *fakeDoctorUsecase) Create(ctx context.Context, actorID uuid.UUID, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error) {
	return f.createResult, f.createErr
}

func (f *fakeDoctorUsecase) Get(ctx context.Context, id uuid.UUID) (*dto.DoctorResponse, error) {
	return f.getResult, f.getErr
}

func (f *fakeDoctorUsecase) List(ctx context.Context, page, limit int) ([]dto.DoctorResponse, int64, error) {
	return f.listResult, f.listTotal, f.listErr
}

func (f *fakeDoctorUsecase) ListBySpeciality(ctx context.Context, speciality string, page, limit int) ([]dto.DoctorResponse, int64, error) {
	return f.listResult, f.listTotal, f.listErr
}

func (f *fakeDoctorUsecase) Update(ctx context.Context, actorID, id uuid.UUID, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error) {
	return f.updateResult, f.updateErr
}

func (f *fakeDoctorUsecase) Deactivate(ctx context.Context, actorID, id uuid.UUID) error {
	return f.deactivateErr
}

const doctorBody = `{"name":"Carlos Mota","email":"carlos@example.com","password":"secret1","cpf":"11122233344","crm":"CRM1234","speciality_id":"7b8a1f90-53a1-4f0e-9c2d-0a1b2c3d4e5f"}`

func TestCreateDoctorSuccess(t *testing.T) {
	result := &dto.DoctorResponse{ID: uuid.New(), Name: "Carlos Mota", CRM: "CRM1234"}
	h := NewDoctorHandler(&fakeDoctorUsecase{createResult: result}, validator.NewValidator())

	req := authedRequest(http.MethodPost, "/api/v1/doctors", doctorBody, uuid.New(), entity.RoleReceptionist, nil)
	recorder := httptest.NewRecorder()
	h.Create(recorder, req)

	if recorder.Code != http.StatusCreated {
		t.Fatalf("status: esperado 201 obteve %d, corpo %s", recorder.Code, recorder.Body.String())
	}
}

func TestCreateDoctorDuplicateCRM(t *testing.T) {
	h := NewDoctorHandler(&fakeDoctorUsecase{createErr: usecase.ErrCRMExists}, validator.NewValidator())

	req := authedRequest(http.MethodPost, "/api/v1/doctors", doctorBody, uuid.New(), entity.RoleReceptionist, nil)
	recorder := httptest.NewRecorder()
	h.Create(recorder, req)

	if recorder.Code != http.StatusConflict {
		t.Fatalf("status: esperado 409 obteve %d", recorder.Code)
	}
	if env := decodeEnvelope(t, recorder.Body); env.Message != "CRM já cadastrado" {
		t.Errorf("mensagem: esperado 'CRM já cadastrado' obteve %q", env.Message)
	}
}

func TestCreateDoctorUnknownSpeciality(t *testing.T) {
	h := NewDoctorHandler(&fakeDoctorUsecase{createErr: usecase.ErrSpecialityNotFound}, validator.NewValidator())

	req := authedRequest(http.MethodPost, "/api/v1/doctors", doctorBody, uuid.New(), entity.RoleReceptionist, nil)
	recorder := httptest.NewRecorder()
	h.Create(recorder, req)

	if recorder.Code != http.StatusBadRequest {
		t.Errorf("status: esperado 400 obteve %d", recorder.Code)
	}
}

func TestGetDoctorOwnershipDenied(t *testing.T) {
	h := NewDoctorHandler(&fakeDoctorUsecase{}, validator.NewValidator())

	otherID := uuid.New()
	req := authedRequest(http.MethodGet, "/api/v1/doctors/"+otherID.String(), "", uuid.New(), entity.RoleDoctor, map[string]string{"id": otherID.String()})
	recorder := httptest.NewRecorder()
	h.Get(recorder, req)

	if recorder.Code != http.StatusForbidden {
		t.Errorf("status: esperado 403 obteve %d", recorder.Code)
	}
}

// Após a desativação o perfil não é mais visível.
func TestGetDoctorDeactivatedIsNotFound(t *testing.T) {
	h := NewDoctorHandler(&fakeDoctorUsecase{getErr: usecase.ErrDoctorNotFound}, validator.NewValidator())

	id := uuid.New()
	req := authedRequest(http.MethodGet, "/api/v1/doctors/"+id.String(), "", uuid.New(), entity.RoleReceptionist, map[string]string{"id": id.String()})
	recorder := httptest.NewRecorder()
	h.Get(recorder, req)

	if recorder.Code != http.StatusNotFound {
		t.Fatalf("status: esperado 404 obteve %d", recorder.Code)
	}
	if env := decodeEnvelope(t, recorder.Body); env.Message != "Médico não encontrado" {
		t.Errorf("mensagem: esperado 'Médico não encontrado' obteve %q", env.Message)
	}
}

func TestUpdateDoctorEmptyPayload(t *testing.T) {
	h := NewDoctorHandler(&fakeDoctorUsecase{}, validator.NewValidator())

	id := uuid.New()
	req := authedRequest(http.MethodPut, "/api/v1/doctors/"+id.String(), `{}`, id, entity.RoleDoctor, map[string]string{"id": id.String()})
	recorder := httptest.NewRecorder()
	h.Update(recorder, req)

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("status: esperado 400 obteve %d", recorder.Code)
	}
	if env := decodeEnvelope(t, recorder.Body); env.Message != "Nenhum dado para atualizar" {
		t.Errorf("mensagem inesperada: %q", env.Message)
	}
}
