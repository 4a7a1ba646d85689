package usecase

import (
	"context"
	"errors"

	"safeclinic/internal/delivery/dto"
	"safeclinic/internal/domain/entity"
	"safeclinic/internal/domain/repository"
	"safeclinic/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrSpecialityNotFound = errors.New("speciality not found")
	ErrSpecialityExists   = errors.New("speciality already registered")
	ErrSpecialityInUse    = errors.New("speciality is referenced by doctors")
)

type SpecialityUsecase interface {
	Create(ctx context.Context, actorID uuid.UUID, req *dto.CreateSpecialityRequest) (*dto.SpecialityResponse, error)
	List(ctx context.Context) ([]dto.SpecialityResponse, error)
	Update(ctx context.Context, actorID, id uuid.UUID, req *dto.UpdateSpecialityRequest) (*dto.SpecialityResponse, error)
	Delete(ctx context.Context, actorID, id uuid.UUID) error
}

type specialityUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	specialityRepo repository.SpecialityRepository
	auditService   service.AuditService
}

func NewSpecialityUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	specialityRepo repository.SpecialityRepository,
	auditService service.AuditService,
) SpecialityUsecase {
	return &specialityUsecase{
		db:             db,
		log:            log,
		specialityRepo: specialityRepo,
		auditService:   auditService,
	}
}

func (u *specialityUsecase) Create(ctx context.Context, actorID uuid.UUID, req *dto.CreateSpecialityRequest) (*dto.SpecialityResponse, error) {
	db := u.db.WithContext(ctx)

	existing, err := u.specialityRepo.FindByName(db, req.Name)
	if err != nil {
		u.log.Warnf("Failed to check existing speciality: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrSpecialityExists
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	speciality := &entity.Speciality{Name: req.Name}

	if err := u.specialityRepo.Create(tx, speciality); err != nil {
		if isDuplicateKeyError(err, "name") {
			return nil, ErrSpecialityExists
		}
		u.log.Warnf("Failed to create speciality: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(tx, &actorID, entity.AuditActionSpecialityCreated, "speciality", speciality.ID.String(), entity.JSON{
		"name": speciality.Name,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		if isDuplicateKeyError(err, "name") {
			return nil, ErrSpecialityExists
		}
		u.log.Warnf("Failed to commit transaction: %+v", err)
		return nil, err
	}

	return &dto.SpecialityResponse{ID: speciality.ID, Name: speciality.Name}, nil
}

func (u *specialityUsecase) List(ctx context.Context) ([]dto.SpecialityResponse, error) {
	specialities, err := u.specialityRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list specialities: %+v", err)
		return nil, err
	}

	responses := make([]dto.SpecialityResponse, len(specialities))
	for i, s := range specialities {
		responses[i] = dto.SpecialityResponse{ID: s.ID, Name: s.Name}
	}
	return responses, nil
}

func (u *specialityUsecase) Update(ctx context.Context, actorID, id uuid.UUID, req *dto.UpdateSpecialityRequest) (*dto.SpecialityResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	speciality, err := u.specialityRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find speciality: %+v", err)
		return nil, err
	}
	if speciality == nil {
		return nil, ErrSpecialityNotFound
	}

	speciality.Name = req.Name

	if err := u.specialityRepo.Update(tx, speciality); err != nil {
		if isDuplicateKeyError(err, "name") {
			return nil, ErrSpecialityExists
		}
		u.log.Warnf("Failed to update speciality: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(tx, &actorID, entity.AuditActionSpecialityUpdated, "speciality", id.String(), []string{"name"}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		if isDuplicateKeyError(err, "name") {
			return nil, ErrSpecialityExists
		}
		u.log.Warnf("Failed to commit transaction: %+v", err)
		return nil, err
	}

	return &dto.SpecialityResponse{ID: speciality.ID, Name: speciality.Name}, nil
}

// Delete removes a speciality. Specialities still referenced by doctor
// profiles are protected by the foreign key and reported as in use.
func (u *specialityUsecase) Delete(ctx context.Context, actorID, id uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	rows, err := u.specialityRepo.Delete(tx, id)
	if err != nil {
		if isForeignKeyError(err, "speciality") {
			return ErrSpecialityInUse
		}
		u.log.Warnf("Failed to delete speciality: %+v", err)
		return err
	}
	if rows == 0 {
		return ErrSpecialityNotFound
	}

	if err := u.auditService.Log(tx, &actorID, entity.AuditActionSpecialityDeleted, entity.JSON{
		"entity":    "speciality",
		"entity_id": id.String(),
	}); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		if isForeignKeyError(err, "speciality") {
			return ErrSpecialityInUse
		}
		u.log.Warnf("Failed to commit transaction: %+v", err)
		return err
	}

	return nil
}
