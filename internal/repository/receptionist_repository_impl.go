package repository

import (
	"errors"

	"safeclinic/internal/domain/entity"
	domainRepo "safeclinic/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type receptionistRepository struct{}

func NewReceptionistRepository() domainRepo.ReceptionistRepository {
	return &receptionistRepository{}
}

func (r *receptionistRepository) Create(db *gorm.DB, receptionist *entity.Receptionist) error {
	return db.Create(receptionist).Error
}

func (r *receptionistRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.Receptionist, error) {
	var receptionist entity.Receptionist
	err := db.Preload("User").Where("user_id = ?", userID).First(&receptionist).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &receptionist, nil
}

func (r *receptionistRepository) FindAll(db *gorm.DB, page, limit int) ([]entity.Receptionist, int64, error) {
	var receptionists []entity.Receptionist
	var total int64

	if err := db.Model(&entity.Receptionist{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Preload("User").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&receptionists).Error
	if err != nil {
		return nil, 0, err
	}
	return receptionists, total, nil
}

func (r *receptionistRepository) Count(db *gorm.DB) (int64, error) {
	var total int64
	err := db.Model(&entity.Receptionist{}).Count(&total).Error
	return total, err
}

func (r *receptionistRepository) Update(db *gorm.DB, receptionist *entity.Receptionist) error {
	return db.Save(receptionist).Error
}
