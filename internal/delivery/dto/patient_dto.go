package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreatePatientRequest struct {
	Name             string `json:"name" validate:"required,min=3,max=255"`
	Email            string `json:"email" validate:"required,email"`
	Password         string `json:"password" validate:"required,min=6"`
	CPF              string `json:"cpf" validate:"required,len=11,numeric"`
	Phone            string `json:"phone" validate:"omitempty,max=20"`
	BirthDate        string `json:"birth_date" validate:"required"` // Format: YYYY-MM-DD
	HealthInsurance  string `json:"health_insurance" validate:"omitempty,max=100"`
	EmergencyContact string `json:"emergency_contact" validate:"omitempty,max=100"`
	BloodType        string `json:"blood_type" validate:"omitempty,max=10"`
	Allergies        string `json:"allergies" validate:"omitempty"`
}

type UpdatePatientRequest struct {
	Name             string `json:"name" validate:"omitempty,min=3,max=255"`
	Phone            string `json:"phone" validate:"omitempty,max=20"`
	BirthDate        string `json:"birth_date" validate:"omitempty"`
	HealthInsurance  string `json:"health_insurance" validate:"omitempty,max=100"`
	EmergencyContact string `json:"emergency_contact" validate:"omitempty,max=100"`
	BloodType        string `json:"blood_type" validate:"omitempty,max=10"`
	Allergies        string `json:"allergies" validate:"omitempty"`
}

// IsEmpty reports whether the update carries no fields at all. Empty updates
// are rejected before they reach the workflow.
func (r *UpdatePatientRequest) IsEmpty() bool {
	return *r == UpdatePatientRequest{}
}

// Response DTOs

type PatientResponse struct {
	ID               uuid.UUID  `json:"id"`
	Name             string     `json:"name"`
	Email            string     `json:"email"`
	CPF              string     `json:"cpf"`
	Phone            string     `json:"phone,omitempty"`
	Status           *bool      `json:"status"`
	BirthDate        string     `json:"birth_date"`
	HealthInsurance  string     `json:"health_insurance,omitempty"`
	EmergencyContact string     `json:"emergency_contact,omitempty"`
	BloodType        string     `json:"blood_type,omitempty"`
	Allergies        string     `json:"allergies,omitempty"`
	LastLogin        *time.Time `json:"last_login,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}
