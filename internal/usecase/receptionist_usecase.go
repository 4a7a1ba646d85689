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
	ErrReceptionistNotFound = errors.New("receptionist not found")
	ErrReceptionistExists   = errors.New("a receptionist is already registered")
	ErrInvalidWorkShift     = errors.New("invalid work shift")
)

type ReceptionistUsecase interface {
	RegisterFirst(ctx context.Context, req *dto.CreateReceptionistRequest) (*dto.ReceptionistResponse, error)
	Create(ctx context.Context, actorID uuid.UUID, req *dto.CreateReceptionistRequest) (*dto.ReceptionistResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.ReceptionistResponse, error)
	List(ctx context.Context, page, limit int) ([]dto.ReceptionistResponse, int64, error)
	Deactivate(ctx context.Context, actorID, id uuid.UUID) error
}

type receptionistUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	userRepo         repository.UserRepository
	receptionistRepo repository.ReceptionistRepository
	notificationRepo repository.NotificationRepository
	auditService     service.AuditService
}

func NewReceptionistUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	receptionistRepo repository.ReceptionistRepository,
	notificationRepo repository.NotificationRepository,
	auditService service.AuditService,
) ReceptionistUsecase {
	return &receptionistUsecase{
		db:               db,
		log:              log,
		userRepo:         userRepo,
		receptionistRepo: receptionistRepo,
		notificationRepo: notificationRepo,
		auditService:     auditService,
	}
}

// RegisterFirst bootstraps the very first receptionist without
// authentication. It refuses once any receptionist row exists. The count
// check and the insert run in one transaction, but concurrent bootstrap
// calls are not serialized against each other.
func (u *receptionistUsecase) RegisterFirst(ctx context.Context, req *dto.CreateReceptionistRequest) (*dto.ReceptionistResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	count, err := u.receptionistRepo.Count(tx)
	if err != nil {
		u.log.Warnf("Failed to count receptionists: %+v", err)
		return nil, err
	}
	if count > 0 {
		return nil, ErrReceptionistExists
	}

	resp, err := u.create(tx, nil, req)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		if isDuplicateKeyError(err, "email") || isDuplicateKeyError(err, "cpf") {
			return nil, ErrEmailOrCPFExists
		}
		u.log.Warnf("Failed to commit transaction: %+v", err)
		return nil, err
	}

	return resp, nil
}

// Create registers an additional receptionist on behalf of an existing one.
func (u *receptionistUsecase) Create(ctx context.Context, actorID uuid.UUID, req *dto.CreateReceptionistRequest) (*dto.ReceptionistResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	resp, err := u.create(tx, &actorID, req)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		if isDuplicateKeyError(err, "email") || isDuplicateKeyError(err, "cpf") {
			return nil, ErrEmailOrCPFExists
		}
		u.log.Warnf("Failed to commit transaction: %+v", err)
		return nil, err
	}

	return resp, nil
}

func (u *receptionistUsecase) create(tx *gorm.DB, actorID *uuid.UUID, req *dto.CreateReceptionistRequest) (*dto.ReceptionistResponse, error) {
	existing, err := u.userRepo.FindByEmailOrCPF(tx, req.Email, req.CPF)
	if err != nil {
		u.log.Warnf("Failed to check existing user: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailOrCPFExists
	}

	workShift, ok := entity.ParseWorkShift(req.WorkShift)
	if !ok {
		return nil, ErrInvalidWorkShift
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	user := &entity.User{
		Email:        req.Email,
		PasswordHash: string(hashed),
		Role:         entity.RoleReceptionist,
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

	receptionist := &entity.Receptionist{
		UserID:    user.ID,
		WorkShift: workShift,
	}

	if err := u.receptionistRepo.Create(tx, receptionist); err != nil {
		u.log.Warnf("Failed to create receptionist profile: %+v", err)
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

	// Bootstrap registration is self-attributed.
	auditActor := actorID
	if auditActor == nil {
		auditActor = &user.ID
	}
	if err := u.auditService.LogCreate(tx, auditActor, entity.AuditActionReceptionistCreated, "receptionist", user.ID.String(), entity.JSON{
		"email":      user.Email,
		"name":       user.Name,
		"work_shift": receptionist.WorkShift,
	}); err != nil {
		return nil, err
	}

	receptionist.User = *user
	return converter.ReceptionistToResponse(receptionist), nil
}

func (u *receptionistUsecase) Get(ctx context.Context, id uuid.UUID) (*dto.ReceptionistResponse, error) {
	receptionist, err := u.receptionistRepo.FindByUserID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find receptionist: %+v", err)
		return nil, err
	}
	if receptionist == nil || !receptionist.User.IsActive() {
		return nil, ErrReceptionistNotFound
	}

	return converter.ReceptionistToResponse(receptionist), nil
}

func (u *receptionistUsecase) List(ctx context.Context, page, limit int) ([]dto.ReceptionistResponse, int64, error) {
	receptionists, total, err := u.receptionistRepo.FindAll(u.db.WithContext(ctx), page, limit)
	if err != nil {
		u.log.Warnf("Failed to list receptionists: %+v", err)
		return nil, 0, err
	}

	return converter.ReceptionistsToResponses(receptionists), total, nil
}

func (u *receptionistUsecase) Deactivate(ctx context.Context, actorID, id uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	receptionist, err := u.receptionistRepo.FindByUserID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find receptionist: %+v", err)
		return err
	}
	if receptionist == nil || !receptionist.User.IsActive() {
		return ErrReceptionistNotFound
	}

	rows, err := u.userRepo.Deactivate(tx, id)
	if err != nil {
		u.log.Warnf("Failed to deactivate user: %+v", err)
		return err
	}
	if rows == 0 {
		return ErrReceptionistNotFound
	}

	if err := u.auditService.LogDeactivate(tx, &actorID, entity.AuditActionReceptionistDeactivated, "receptionist", id.String()); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed to commit transaction: %+v", err)
		return err
	}

	return nil
}
