package dto

import (
	"time"

	"safeclinic/internal/domain/entity"

	"github.com/google/uuid"
)

// Request DTOs

type CreateReceptionistRequest struct {
	Name      string `json:"name" validate:"required,min=3,max=255"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	CPF       string `json:"cpf" validate:"required,len=11,numeric"`
	Phone     string `json:"phone" validate:"omitempty,max=20"`
	WorkShift string `json:"work_shift" validate:"required,oneof=morning afternoon night"`
}

// Response DTOs

type ReceptionistResponse struct {
	ID        uuid.UUID        `json:"id"`
	Name      string           `json:"name"`
	Email     string           `json:"email"`
	CPF       string           `json:"cpf"`
	Phone     string           `json:"phone,omitempty"`
	Status    *bool            `json:"status"`
	WorkShift entity.WorkShift `json:"work_shift"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}
