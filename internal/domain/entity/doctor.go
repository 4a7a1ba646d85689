package entity

import (
	"time"

	"github.com/google/uuid"
)

// Doctor is the role profile attached one-to-one to a User with RoleDoctor.
// The User row is the authority: the profile is removed by cascade when the
// User is deleted.
type Doctor struct {
	UserID                uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	CRM                   string    `gorm:"column:crm;type:varchar(20);uniqueIndex;not null" json:"crm"`
	SpecialityID          uuid.UUID `gorm:"type:uuid;not null;index" json:"speciality_id"`
	ProfessionalStatement string    `gorm:"type:text" json:"professional_statement,omitempty"`
	ConsultationDuration  int       `gorm:"not null;default:30" json:"consultation_duration"`
	CreatedAt             time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt             time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User       User       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Speciality Speciality `gorm:"foreignKey:SpecialityID" json:"speciality,omitempty"`
}

func (Doctor) TableName() string {
	return "doctors"
}
