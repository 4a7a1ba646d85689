package repository

import (
	"safeclinic/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NotificationRepository interface {
	Create(db *gorm.DB, notification *entity.Notification) error
	FindByUser(db *gorm.DB, userID uuid.UUID, page, limit int) ([]entity.Notification, int64, error)
	FindByIDAndUser(db *gorm.DB, id, userID uuid.UUID) (*entity.Notification, error)
	Update(db *gorm.DB, notification *entity.Notification) error
	MarkAllRead(db *gorm.DB, userID uuid.UUID) error
}
