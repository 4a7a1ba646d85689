package usecase

import (
	"context"
	"errors"
	"time"

	"safeclinic/internal/converter"
	"safeclinic/internal/delivery/dto"
	"safeclinic/internal/domain/entity"
	"safeclinic/internal/domain/repository"
	"safeclinic/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrPatientNotFound = errors.New("patient not found")

type PatientUsecase interface {
	Create(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.PatientResponse, error)
	List(ctx context.Context, page, limit int) ([]dto.PatientResponse, int64, error)
	Update(ctx context.Context, actorID, id uuid.UUID, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error)
	Deactivate(ctx context.Context, actorID, id uuid.UUID) error
}

type patientUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	userRepo         repository.UserRepository
	patientRepo      repository.PatientRepository
	notificationRepo repository.NotificationRepository
	auditService     service.AuditService
}

func NewPatientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	patientRepo repository.PatientRepository,
	notificationRepo repository.NotificationRepository,
	auditService service.AuditService,
) PatientUsecase {
	return &patientUsecase{
		db:               db,
		log:              log,
		userRepo:         userRepo,
		patientRepo:      patientRepo,
		notificationRepo: notificationRepo,
		auditService:     auditService,
	}
}

// Create registers a new patient account. The User row and the Patient
// profile are written in one transaction; neither exists without the other.
func (u *patientUsecase) Create(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	birthDate, err := time.Parse("2006-01-02", req.BirthDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	existing, err := u.userRepo.FindByEmailOrCPF(u.db.WithContext(ctx), req.Email, req.CPF)
	if err != nil {
		u.log.Warnf("Failed to check existing user: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailOrCPFExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user := &entity.User{
		Email:        req.Email,
		PasswordHash: string(hashed),
		Role:         entity.RolePatient,
		Name:         req.Name,
		CPF:          req.CPF,
		Phone:        req.Phone,
	}

	if err := u.userRepo.Create(tx, user); err != nil {
		if isDuplicateKeyError(err, "email") || isDuplicateKeyError(err, "cpf") {
			return nil, ErrEmailOrCPFExists
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	patient := &entity.Patient{
		UserID:           user.ID,
		BirthDate:        birthDate,
		HealthInsurance:  req.HealthInsurance,
		EmergencyContact: req.EmergencyContact,
		BloodType:        req.BloodType,
		Allergies:        req.Allergies,
	}

	if err := u.patientRepo.Create(tx, patient); err != nil {
		u.log.Warnf("Failed to create patient profile: %+v", err)
		return nil, err
	}

	notification := &entity.Notification{
		UserID:  user.ID,
		Title:   "Bem-vindo(a)!",
		Message: "Seu cadastro foi realizado com sucesso.",
	}
	if err := u.notificationRepo.Create(tx, notification); err != nil {
		u.log.Warnf("Failed to create welcome notification: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(tx, &user.ID, entity.AuditActionPatientCreated, "patient", user.ID.String(), entity.JSON{
		"email": user.Email,
		"name":  user.Name,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		if isDuplicateKeyError(err, "email") || isDuplicateKeyError(err, "cpf") {
			return nil, ErrEmailOrCPFExists
		}
		u.log.Warnf("Failed to commit transaction: %+v", err)
		return nil, err
	}

	patient.User = *user
	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) Get(ctx context.Context, id uuid.UUID) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByUserID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	// Deactivated profiles are indistinguishable from missing ones.
	if patient == nil || !patient.User.IsActive() {
		return nil, ErrPatientNotFound
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) List(ctx context.Context, page, limit int) ([]dto.PatientResponse, int64, error) {
	patients, total, err := u.patientRepo.FindAll(u.db.WithContext(ctx), page, limit)
	if err != nil {
		u.log.Warnf("Failed to list patients: %+v", err)
		return nil, 0, err
	}

	return converter.PatientsToResponses(patients), total, nil
}

func (u *patientUsecase) Update(ctx context.Context, actorID, id uuid.UUID, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	var birthDate time.Time
	if req.BirthDate != "" {
		parsed, err := time.Parse("2006-01-02", req.BirthDate)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		birthDate = parsed
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByUserID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil || !patient.User.IsActive() {
		return nil, ErrPatientNotFound
	}

	var updatedFields []string

	if req.Name != "" {
		patient.User.Name = req.Name
		updatedFields = append(updatedFields, "name")
	}
	if req.Phone != "" {
		patient.User.Phone = req.Phone
		updatedFields = append(updatedFields, "phone")
	}
	if req.BirthDate != "" {
		patient.BirthDate = birthDate
		updatedFields = append(updatedFields, "birth_date")
	}
	if req.HealthInsurance != "" {
		patient.HealthInsurance = req.HealthInsurance
		updatedFields = append(updatedFields, "health_insurance")
	}
	if req.EmergencyContact != "" {
		patient.EmergencyContact = req.EmergencyContact
		updatedFields = append(updatedFields, "emergency_contact")
	}
	if req.BloodType != "" {
		patient.BloodType = req.BloodType
		updatedFields = append(updatedFields, "blood_type")
	}
	if req.Allergies != "" {
		patient.Allergies = req.Allergies
		updatedFields = append(updatedFields, "allergies")
	}

	if err := u.userRepo.Update(tx, &patient.User); err != nil {
		u.log.Warnf("Failed to update user: %+v", err)
		return nil, err
	}

	if err := u.patientRepo.Update(tx, patient); err != nil {
		u.log.Warnf("Failed to update patient profile: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(tx, &actorID, entity.AuditActionPatientUpdated, "patient", id.String(), updatedFields); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit transaction: %+v", err)
		return nil, err
	}

	return converter.PatientToResponse(patient), nil
}

// Deactivate soft deletes the patient's account. The row stays in place so
// the audit trail and historical references keep resolving.
func (u *patientUsecase) Deactivate(ctx context.Context, actorID, id uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByUserID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return err
	}
	if patient == nil || !patient.User.IsActive() {
		return ErrPatientNotFound
	}

	rows, err := u.userRepo.Deactivate(tx, id)
	if err != nil {
		u.log.Warnf("Failed to deactivate user: %+v", err)
		return err
	}
	if rows == 0 {
		return ErrPatientNotFound
	}

	if err := u.auditService.LogDeactivate(tx, &actorID, entity.AuditActionPatientDeactivated, "patient", id.String()); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit transaction: %+v", err)
		return err
	}

	return nil
}
