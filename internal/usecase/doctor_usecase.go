package usecase

import (
	"context"
	"errors"

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

var (
	ErrDoctorNotFound = errors.New("doctor not found")
	ErrCRMExists      = errors.New("CRM already registered")
)

type DoctorUsecase interface {
	Create(ctx context.Context, actorID uuid.UUID, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.DoctorResponse, error)
	List(ctx context.Context, page, limit int) ([]dto.DoctorResponse, int64, error)
	ListBySpeciality(ctx context.Context, speciality string, page, limit int) ([]dto.DoctorResponse, int64, error)
	Update(ctx context.Context, actorID, id uuid.UUID, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error)
	Deactivate(ctx context.Context, actorID, id uuid.UUID) error
}

type doctorUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	userRepo         repository.UserRepository
	doctorRepo       repository.DoctorRepository
	specialityRepo   repository.SpecialityRepository
	notificationRepo repository.NotificationRepository
	auditService     service.AuditService
}

func NewDoctorUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	doctorRepo repository.DoctorRepository,
	specialityRepo repository.SpecialityRepository,
	notificationRepo repository.NotificationRepository,
	auditService service.AuditService,
) DoctorUsecase {
	return &doctorUsecase{
		db:               db,
		log:              log,
		userRepo:         userRepo,
		doctorRepo:       doctorRepo,
		specialityRepo:   specialityRepo,
		notificationRepo: notificationRepo,
		auditService:     auditService,
	}
}

// Create registers a new doctor account on behalf of the acting receptionist.
// User and Doctor rows are written in one transaction.
func (u *doctorUsecase) Create(ctx context.Context, actorID uuid.UUID, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error) {
	db := u.db.WithContext(ctx)

	existing, err := u.userRepo.FindByEmailOrCPF(db, req.Email, req.CPF)
	if err != nil {
		u.log.Warnf("Failed to check existing user: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailOrCPFExists
	}

	existingDoctor, err := u.doctorRepo.FindByCRM(db, req.CRM)
	if err != nil {
		u.log.Warnf("Failed to check existing CRM: %+v", err)
		return nil, err
	}
	if existingDoctor != nil {
		return nil, ErrCRMExists
	}

	specialityID, err := uuid.Parse(req.SpecialityID)
	if err != nil {
		return nil, ErrSpecialityNotFound
	}

	speciality, err := u.specialityRepo.FindByID(db, specialityID)
	if err != nil {
		u.log.Warnf("Failed to find speciality: %+v", err)
		return nil, err
	}
	if speciality == nil {
		return nil, ErrSpecialityNotFound
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
		Role:         entity.RoleDoctor,
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

	doctor := &entity.Doctor{
		UserID:                user.ID,
		CRM:                   req.CRM,
		SpecialityID:          specialityID,
		ProfessionalStatement: req.ProfessionalStatement,
	}
	if req.ConsultationDuration > 0 {
		doctor.ConsultationDuration = req.ConsultationDuration
	} else {
		doctor.ConsultationDuration = 30
	}

	if err := u.doctorRepo.Create(tx, doctor); err != nil {
		if isDuplicateKeyError(err, "crm") {
			return nil, ErrCRMExists
		}
		if isForeignKeyError(err, "speciality") {
			return nil, ErrSpecialityNotFound
		}
		u.log.Warnf("Failed to create doctor profile: %+v", err)
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

	if err := u.auditService.LogCreate(tx, &actorID, entity.AuditActionDoctorCreated, "doctor", user.ID.String(), entity.JSON{
		"email": user.Email,
		"name":  user.Name,
		"crm":   doctor.CRM,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		if isDuplicateKeyError(err, "email") || isDuplicateKeyError(err, "cpf") {
			return nil, ErrEmailOrCPFExists
		}
		if isDuplicateKeyError(err, "crm") {
			return nil, ErrCRMExists
		}
		u.log.Warnf("Failed to commit transaction: %+v", err)
		return nil, err
	}

	doctor.User = *user
	doctor.Speciality = *speciality
	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) Get(ctx context.Context, id uuid.UUID) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByUserID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil || !doctor.User.IsActive() {
		return nil, ErrDoctorNotFound
	}

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) List(ctx context.Context, page, limit int) ([]dto.DoctorResponse, int64, error) {
	doctors, total, err := u.doctorRepo.FindAll(u.db.WithContext(ctx), page, limit)
	if err != nil {
		u.log.Warnf("Failed to list doctors: %+v", err)
		return nil, 0, err
	}

	return converter.DoctorsToResponses(doctors), total, nil
}

func (u *doctorUsecase) ListBySpeciality(ctx context.Context, speciality string, page, limit int) ([]dto.DoctorResponse, int64, error) {
	doctors, total, err := u.doctorRepo.FindBySpeciality(u.db.WithContext(ctx), speciality, page, limit)
	if err != nil {
		u.log.Warnf("Failed to list doctors by speciality: %+v", err)
		return nil, 0, err
	}

	return converter.DoctorsToResponses(doctors), total, nil
}

func (u *doctorUsecase) Update(ctx context.Context, actorID, id uuid.UUID, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor, err := u.doctorRepo.FindByUserID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil || !doctor.User.IsActive() {
		return nil, ErrDoctorNotFound
	}

	var updatedFields []string

	if req.Name != "" {
		doctor.User.Name = req.Name
		updatedFields = append(updatedFields, "name")
	}
	if req.Phone != "" {
		doctor.User.Phone = req.Phone
		updatedFields = append(updatedFields, "phone")
	}
	if req.SpecialityID != "" {
		specialityID, err := uuid.Parse(req.SpecialityID)
		if err != nil {
			return nil, ErrSpecialityNotFound
		}
		speciality, err := u.specialityRepo.FindByID(tx, specialityID)
		if err != nil {
			u.log.Warnf("Failed to find speciality: %+v", err)
			return nil, err
		}
		if speciality == nil {
			return nil, ErrSpecialityNotFound
		}
		doctor.SpecialityID = specialityID
		doctor.Speciality = *speciality
		updatedFields = append(updatedFields, "speciality_id")
	}
	if req.ProfessionalStatement != "" {
		doctor.ProfessionalStatement = req.ProfessionalStatement
		updatedFields = append(updatedFields, "professional_statement")
	}
	if req.ConsultationDuration != nil {
		doctor.ConsultationDuration = *req.ConsultationDuration
		updatedFields = append(updatedFields, "consultation_duration")
	}

	if err := u.userRepo.Update(tx, &doctor.User); err != nil {
		u.log.Warnf("Failed to update user: %+v", err)
		return nil, err
	}

	if err := u.doctorRepo.Update(tx, doctor); err != nil {
		if isForeignKeyError(err, "speciality") {
			return nil, ErrSpecialityNotFound
		}
		u.log.Warnf("Failed to update doctor profile: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(tx, &actorID, entity.AuditActionDoctorUpdated, "doctor", id.String(), updatedFields); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit transaction: %+v", err)
		return nil, err
	}

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) Deactivate(ctx context.Context, actorID, id uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor, err := u.doctorRepo.FindByUserID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return err
	}
	if doctor == nil || !doctor.User.IsActive() {
		return ErrDoctorNotFound
	}

	rows, err := u.userRepo.Deactivate(tx, id)
	if err != nil {
		u.log.Warnf("Failed to deactivate user: %+v", err)
		return err
	}
	if rows == 0 {
		return ErrDoctorNotFound
	}

	if err := u.auditService.LogDeactivate(tx, &actorID, entity.AuditActionDoctorDeactivated, "doctor", id.String()); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit transaction: %+v", err)
		return err
	}

	return nil
}
