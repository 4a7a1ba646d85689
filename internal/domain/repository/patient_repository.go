package repository

import (
	"safeclinic/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PatientRepository interface {
	Create(db *gorm.DB, patient *entity.Patient) error
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.Patient, error)
	FindAll(db *gorm.DB, page, limit int) ([]entity.Patient, int64, error)
	Update(db *gorm.DB, patient *entity.Patient) error
}
