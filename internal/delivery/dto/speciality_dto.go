package dto

// Request DTOs

type CreateSpecialityRequest struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
}

type UpdateSpecialityRequest struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
}
