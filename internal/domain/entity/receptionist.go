package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// WorkShift is the receptionist duty period.
type WorkShift string

const (
	ShiftMorning   WorkShift = "morning"
	ShiftAfternoon WorkShift = "afternoon"
	ShiftNight     WorkShift = "night"
)

// ParseWorkShift normalizes a raw string into a WorkShift.
func ParseWorkShift(s string) (WorkShift, bool) {
	switch WorkShift(strings.ToLower(strings.TrimSpace(s))) {
	case ShiftMorning:
		return ShiftMorning, true
	case ShiftAfternoon:
		return ShiftAfternoon, true
	case ShiftNight:
		return ShiftNight, true
	}
	return "", false
}

// Receptionist is the role profile attached one-to-one to a User with
// RoleReceptionist.
type Receptionist struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	WorkShift WorkShift `gorm:"type:varchar(20);not null" json:"work_shift"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
}

func (Receptionist) TableName() string {
	return "receptionists"
}
