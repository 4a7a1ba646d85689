package entity

import "github.com/google/uuid"

// Speciality is a medical speciality referenced by doctor profiles.
type Speciality struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`

	// Relationships
	Doctors []Doctor `gorm:"foreignKey:SpecialityID" json:"doctors,omitempty"`
}

func (Speciality) TableName() string {
	return "specialities"
}
