package repository

import (
	"safeclinic/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DoctorRepository interface {
	Create(db *gorm.DB, doctor *entity.Doctor) error
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.Doctor, error)
	FindByCRM(db *gorm.DB, crm string) (*entity.Doctor, error)
	FindAll(db *gorm.DB, page, limit int) ([]entity.Doctor, int64, error)
	FindBySpeciality(db *gorm.DB, speciality string, page, limit int) ([]entity.Doctor, int64, error)
	Update(db *gorm.DB, doctor *entity.Doctor) error
}
