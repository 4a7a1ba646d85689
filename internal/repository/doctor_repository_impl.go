package repository

import (
	"errors"

	"safeclinic/internal/domain/entity"
	domainRepo "safeclinic/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type doctorRepository struct{}

func NewDoctorRepository() domainRepo.DoctorRepository {
	return &doctorRepository{}
}

func (r *doctorRepository) Create(db *gorm.DB, doctor *entity.Doctor) error {
	return db.Create(doctor).Error
}

func (r *doctorRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := db.Preload("User").Preload("Speciality").Where("user_id = ?", userID).First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorRepository) FindByCRM(db *gorm.DB, crm string) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := db.Where("crm = ?", crm).First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorRepository) FindAll(db *gorm.DB, page, limit int) ([]entity.Doctor, int64, error) {
	var doctors []entity.Doctor
	var total int64

	if err := db.Model(&entity.Doctor{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Preload("User").Preload("Speciality").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&doctors).Error
	if err != nil {
		return nil, 0, err
	}
	return doctors, total, nil
}

func (r *doctorRepository) FindBySpeciality(db *gorm.DB, speciality string, page, limit int) ([]entity.Doctor, int64, error) {
	var doctors []entity.Doctor
	var total int64

	base := db.Model(&entity.Doctor{}).
		Joins("JOIN specialities ON specialities.id = doctors.speciality_id").
		Where("specialities.name = ?", speciality)

	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := base.Preload("User").Preload("Speciality").
		Order("doctors.created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&doctors).Error
	if err != nil {
		return nil, 0, err
	}
	return doctors, total, nil
}

func (r *doctorRepository) Update(db *gorm.DB, doctor *entity.Doctor) error {
	return db.Save(doctor).Error
}
