package handler

import (
	"context"
	"net/http"
	"testing"

	"safeclinic/internal/delivery/dto"
	"safeclinic/internal/usecase"
	"safeclinic/pkg/validator"

	"github.com/google/uuid"
)

type fakeReceptionistUsecase struct {
	registerFirstResult *dto.ReceptionistResponse
	registerFirstErr    error
	createResult        *dto.ReceptionistResponse
	createErr           error
	getResult           *dto.ReceptionistResponse
	getErr              error
	listResult          []dto.ReceptionistResponse
	listTotal           int64
	listErr             error
	deactivateErr       error
}

func (f *fakeReceptionistUsecase) RegisterFirst(ctx context.Context, req *dto.CreateReceptionistRequest) (*dto.ReceptionistResponse, error) {
	return f.registerFirstResult, f.registerFirstErr
}

func (f *fakeReceptionistUsecase) Create(ctx context.Context, actorID uuid.UUID, req *dto.CreateReceptionistRequest) (*dto.ReceptionistResponse, error) {
	return f.createResult, f.createErr
}

func (f *fakeReceptionistUsecase) Get(ctx context.Context, id uuid.UUID) (*dto.ReceptionistResponse, error) {
	return f.getResult, f.getErr
}

func (f *fakeReceptionistUsecase) List(ctx context.Context, page, limit int) ([]dto.ReceptionistResponse, int64, error) {
	return f.listResult, f.listTotal, f.listErr
}

func (f *fakeReceptionistUsecase) Deactivate(ctx context.Context, actorID, id uuid.UUID) error {
	return f.deactivateErr
}

const receptionistBody = `{"name":"Clara Nunes","email":"clara@example.com","password":"secret1","cpf":"98765432100","work_shift":"morning"}`

func TestRegisterFirstReceptionistSuccess(t *testing.T) {
	result := &dto.ReceptionistResponse{ID: uuid.New(), Name: "Clara Nunes"}
	h := NewReceptionistHandler(&fakeReceptionistUsecase{registerFirstResult: result}, validator.NewValidator())

	recorder := postJSON(t, h.RegisterFirst, "/api/v1/receptionists/register", receptionistBody)

	if recorder.Code != http.StatusCreated {
		t.Fatalf("status: esperado 201 obteve %d, corpo %s", recorder.Code, recorder.Body.String())
	}
}

// The bootstrap endpoint only works once: any existing receptionist closes it
// for good.
func TestRegisterFirstReceptionistAlreadyExists(t *testing.T) {
	h := NewReceptionistHandler(&fakeReceptionistUsecase{registerFirstErr: usecase.ErrReceptionistExists}, validator.NewValidator())

	recorder := postJSON(t, h.RegisterFirst, "/api/v1/receptionists/register", receptionistBody)

	if recorder.Code != http.StatusConflict {
		t.Fatalf("status: esperado 409 obteve %d", recorder.Code)
	}
	if env := decodeEnvelope(t, recorder.Body); env.Message != "Já existe um recepcionista cadastrado no sistema" {
		t.Errorf("mensagem: esperado 'Já existe um recepcionista cadastrado no sistema' obteve %q", env.Message)
	}
}

func TestRegisterFirstReceptionistInvalidShift(t *testing.T) {
	h := NewReceptionistHandler(&fakeReceptionistUsecase{}, validator.NewValidator())

	body := `{"name":"Clara Nunes","email":"clara@example.com","password":"secret1","cpf":"98765432100","work_shift":"dawn"}`
	recorder := postJSON(t, h.RegisterFirst, "/api/v1/receptionists/register", body)

	if recorder.Code != http.StatusBadRequest {
		t.Errorf("status: esperado 400 obteve %d", recorder.Code)
	}
}

func TestCreateReceptionistDuplicate(t *testing.T) {
	h := NewReceptionistHandler(&fakeReceptionistUsecase{createErr: usecase.ErrEmailOrCPFExists}, validator.NewValidator())

	recorder := postJSON(t, h.Create, "/api/v1/receptionists", receptionistBody)

	if recorder.Code != http.StatusConflict {
		t.Fatalf("status: esperado 409 obteve %d", recorder.Code)
	}
	if env := decodeEnvelope(t, recorder.Body); env.Message != "Email ou CPF já cadastrados" {
		t.Errorf("mensagem inesperada: %q", env.Message)
	}
}
