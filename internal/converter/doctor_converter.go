package converter

import (
	"safeclinic/internal/delivery/dto"
	"safeclinic/internal/domain/entity"

	"github.com/google/uuid"
)

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	response := &dto.DoctorResponse{
		ID:                    doctor.UserID,
		Name:                  doctor.User.Name,
		Email:                 doctor.User.Email,
		CPF:                   doctor.User.CPF,
		Phone:                 doctor.User.Phone,
		Status:                doctor.User.Status,
		CRM:                   doctor.CRM,
		ProfessionalStatement: doctor.ProfessionalStatement,
		ConsultationDuration:  doctor.ConsultationDuration,
		CreatedAt:             doctor.CreatedAt,
		UpdatedAt:             doctor.UpdatedAt,
	}

	if doctor.Speciality.ID != uuid.Nil {
		response.Speciality = &dto.SpecialityResponse{
			ID:   doctor.Speciality.ID,
			Name: doctor.Speciality.Name,
		}
	}

	return response
}

// DoctorsToResponses converts a slice of Doctor entities to DoctorResponse DTOs
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i := range doctors {
		responses[i] = *DoctorToResponse(&doctors[i])
	}
	return responses
}
