package repository

import (
	"safeclinic/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReceptionistRepository interface {
	Create(db *gorm.DB, receptionist *entity.Receptionist) error
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.Receptionist, error)
	FindAll(db *gorm.DB, page, limit int) ([]entity.Receptionist, int64, error)
	Count(db *gorm.DB) (int64, error)
	Update(db *gorm.DB, receptionist *entity.Receptionist) error
}
