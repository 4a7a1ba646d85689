package entity

import (
	"time"

	"github.com/google/uuid"
)

// Patient is the role profile attached one-to-one to a User with RolePatient.
type Patient struct {
	UserID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	BirthDate        time.Time `gorm:"type:date;not null" json:"birth_date"`
	HealthInsurance  string    `gorm:"type:varchar(100)" json:"health_insurance,omitempty"`
	EmergencyContact string    `gorm:"type:varchar(100)" json:"emergency_contact,omitempty"`
	BloodType        string    `gorm:"type:varchar(10)" json:"blood_type,omitempty"`
	Allergies        string    `gorm:"type:text" json:"allergies,omitempty"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}
