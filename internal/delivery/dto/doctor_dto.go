package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateDoctorRequest struct {
	Name                  string `json:"name" validate:"required,min=3,max=255"`
	Email                 string `json:"email" validate:"required,email"`
	Password              string `json:"password" validate:"required,min=6"`
	CPF                   string `json:"cpf" validate:"required,len=11,numeric"`
	Phone                 string `json:"phone" validate:"omitempty,max=20"`
	CRM                   string `json:"crm" validate:"required,min=4,max=10,alphanum"`
	SpecialityID          string `json:"speciality_id" validate:"required,uuid"`
	ProfessionalStatement string `json:"professional_statement" validate:"omitempty"`
	ConsultationDuration  int    `json:"consultation_duration" validate:"omitempty,gte=10,lte=120"`
}

type UpdateDoctorRequest struct {
	Name                  string `json:"name" validate:"omitempty,min=3,max=255"`
	Phone                 string `json:"phone" validate:"omitempty,max=20"`
	SpecialityID          string `json:"speciality_id" validate:"omitempty,uuid"`
	ProfessionalStatement string `json:"professional_statement" validate:"omitempty"`
	ConsultationDuration  *int   `json:"consultation_duration" validate:"omitempty,gte=10,lte=120"`
}

// IsEmpty reports whether the update carries no fields at all.
func (r *UpdateDoctorRequest) IsEmpty() bool {
	return *r == UpdateDoctorRequest{}
}

// Response DTOs

type SpecialityResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type DoctorResponse struct {
	ID                    uuid.UUID           `json:"id"`
	Name                  string              `json:"name"`
	Email                 string              `json:"email"`
	CPF                   string              `json:"cpf"`
	Phone                 string              `json:"phone,omitempty"`
	Status                *bool               `json:"status"`
	CRM                   string              `json:"crm"`
	Speciality            *SpecialityResponse `json:"speciality,omitempty"`
	ProfessionalStatement string              `json:"professional_statement,omitempty"`
	ConsultationDuration  int                 `json:"consultation_duration"`
	CreatedAt             time.Time           `json:"created_at"`
	UpdatedAt             time.Time           `json:"updated_at"`
}
