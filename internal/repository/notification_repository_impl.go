package repository

import (
	"errors"

	"safeclinic/internal/domain/entity"
	domainRepo "safeclinic/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type notificationRepository struct{}

func NewNotificationRepository() domainRepo.NotificationRepository {
	return &notificationRepository{}
}

func (r *notificationRepository) Create(db *gorm.DB, notification *entity.Notification) error {
	return db.Create(notification).Error
}

func (r *notificationRepository) FindByUser(db *gorm.DB, userID uuid.UUID, page, limit int) ([]entity.Notification, int64, error) {
	var notifications []entity.Notification
	var total int64

	base := db.Model(&entity.Notification{}).Where("user_id = ?", userID)

	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := base.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&notifications).Error
	if err != nil {
		return nil, 0, err
	}
	return notifications, total, nil
}

func (r *notificationRepository) FindByIDAndUser(db *gorm.DB, id, userID uuid.UUID) (*entity.Notification, error) {
	var notification entity.Notification
	err := db.Where("id = ? AND user_id = ?", id, userID).First(&notification).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &notification, nil
}

func (r *notificationRepository) Update(db *gorm.DB, notification *entity.Notification) error {
	return db.Save(notification).Error
}

func (r *notificationRepository) MarkAllRead(db *gorm.DB, userID uuid.UUID) error {
	return db.Model(&entity.Notification{}).
		Where("user_id = ? AND read = ?", userID, false).
		Update("read", true).Error
}
