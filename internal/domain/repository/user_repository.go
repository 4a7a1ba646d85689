package repository

import (
	"safeclinic/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(db *gorm.DB, user *entity.User) error
	FindByEmail(db *gorm.DB, email string) (*entity.User, error)
	FindByEmailOrCPF(db *gorm.DB, email, cpf string) (*entity.User, error)
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.User, error)
	Update(db *gorm.DB, user *entity.User) error
	UpdateLastLogin(db *gorm.DB, id uuid.UUID) error
	Deactivate(db *gorm.DB, id uuid.UUID) (int64, error)
}
