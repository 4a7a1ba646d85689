package usecase

import (
	"context"
	"errors"

	"safeclinic/internal/converter"
	"safeclinic/internal/delivery/dto"
	"safeclinic/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrNotificationNotFound = errors.New("notification not found")

// NotificationUsecase serves a user's own in-app notifications. Every
// operation is scoped to the requesting user; there is no cross-user access.
type NotificationUsecase interface {
	List(ctx context.Context, userID uuid.UUID, page, limit int) ([]dto.NotificationResponse, int64, error)
	MarkAsRead(ctx context.Context, userID, id uuid.UUID) (*dto.NotificationResponse, error)
	MarkAllAsRead(ctx context.Context, userID uuid.UUID) error
}

type notificationUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	notificationRepo repository.NotificationRepository
}

func NewNotificationUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	notificationRepo repository.NotificationRepository,
) NotificationUsecase {
	return &notificationUsecase{
		db:               db,
		log:              log,
		notificationRepo: notificationRepo,
	}
}

func (u *notificationUsecase) List(ctx context.Context, userID uuid.UUID, page, limit int) ([]dto.NotificationResponse, int64, error) {
	notifications, total, err := u.notificationRepo.FindByUser(u.db.WithContext(ctx), userID, page, limit)
	if err != nil {
		u.log.Warnf("Failed to list notifications: %+v", err)
		return nil, 0, err
	}

	return converter.NotificationsToResponses(notifications), total, nil
}

func (u *notificationUsecase) MarkAsRead(ctx context.Context, userID, id uuid.UUID) (*dto.NotificationResponse, error) {
	db := u.db.WithContext(ctx)

	notification, err := u.notificationRepo.FindByIDAndUser(db, id, userID)
	if err != nil {
		u.log.Warnf("Failed to find notification: %+v", err)
		return nil, err
	}
	if notification == nil {
		return nil, ErrNotificationNotFound
	}

	if !notification.Read {
		notification.Read = true
		if err := u.notificationRepo.Update(db, notification); err != nil {
			u.log.Warnf("Failed to update notification: %+v", err)
			return nil, err
		}
	}

	return converter.NotificationToResponse(notification), nil
}

func (u *notificationUsecase) MarkAllAsRead(ctx context.Context, userID uuid.UUID) error {
	if err := u.notificationRepo.MarkAllRead(u.db.WithContext(ctx), userID); err != nil {
		u.log.Warnf("Failed to mark notifications as read: %+v", err)
		return err
	}
	return nil
}
