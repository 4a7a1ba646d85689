package repository

import (
	"safeclinic/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SpecialityRepository interface {
	Create(db *gorm.DB, speciality *entity.Speciality) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Speciality, error)
	FindByName(db *gorm.DB, name string) (*entity.Speciality, error)
	FindAll(db *gorm.DB) ([]entity.Speciality, error)
	Update(db *gorm.DB, speciality *entity.Speciality) error
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
}
