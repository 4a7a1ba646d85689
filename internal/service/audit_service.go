package service

import (
	"safeclinic/internal/domain/entity"
	"safeclinic/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AuditService appends security-relevant actions to the audit trail. Entries
// are written through the caller's transaction when one is in flight so the
// trail commits atomically with the action it records.
type AuditService interface {
	Log(db *gorm.DB, userID *uuid.UUID, action string, metadata entity.JSON) error
	LogCreate(db *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, newValue interface{}) error
	LogUpdate(db *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, updatedFields []string) error
	LogDeactivate(db *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string) error
}

type auditService struct {
	db        *gorm.DB
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditService(db *gorm.DB, log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{
		db:        db,
		log:       log,
		auditRepo: auditRepo,
	}
}

// Log writes a raw audit entry. A nil db falls back to the service's own
// handle, for callers outside any transaction (login, middleware).
func (s *auditService) Log(db *gorm.DB, userID *uuid.UUID, action string, metadata entity.JSON) error {
	if db == nil {
		db = s.db
	}

	auditLog := &entity.AuditLog{
		UserID:   userID,
		Action:   action,
		Metadata: metadata,
	}

	if err := s.auditRepo.Create(db, auditLog); err != nil {
		s.log.Warnf("Failed to create audit log: %+v", err)
		return err
	}

	return nil
}

// LogCreate logs a create action
func (s *auditService) LogCreate(db *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, newValue interface{}) error {
	return s.Log(db, userID, action, entity.JSON{
		"entity":    entityName,
		"entity_id": entityID,
		"new_value": newValue,
	})
}

// LogUpdate logs an update action with the names of the changed fields
func (s *auditService) LogUpdate(db *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, updatedFields []string) error {
	return s.Log(db, userID, action, entity.JSON{
		"entity":         entityName,
		"entity_id":      entityID,
		"updated_fields": updatedFields,
	})
}

// LogDeactivate logs a soft delete
func (s *auditService) LogDeactivate(db *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string) error {
	return s.Log(db, userID, action, entity.JSON{
		"entity":    entityName,
		"entity_id": entityID,
	})
}
