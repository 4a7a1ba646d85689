package converter

import (
	"safeclinic/internal/delivery/dto"
	"safeclinic/internal/domain/entity"
)

// ReceptionistToResponse converts a Receptionist entity to ReceptionistResponse DTO
func ReceptionistToResponse(receptionist *entity.Receptionist) *dto.ReceptionistResponse {
	if receptionist == nil {
		return nil
	}

	return &dto.ReceptionistResponse{
		ID:        receptionist.UserID,
		Name:      receptionist.User.Name,
		Email:     receptionist.User.Email,
		CPF:       receptionist.User.CPF,
		Phone:     receptionist.User.Phone,
		Status:    receptionist.User.Status,
		WorkShift: receptionist.WorkShift,
		CreatedAt: receptionist.CreatedAt,
		UpdatedAt: receptionist.UpdatedAt,
	}
}

// ReceptionistsToResponses converts a slice of Receptionist entities to ReceptionistResponse DTOs
func ReceptionistsToResponses(receptionists []entity.Receptionist) []dto.ReceptionistResponse {
	responses := make([]dto.ReceptionistResponse, len(receptionists))
	for i := range receptionists {
		responses[i] = *ReceptionistToResponse(&receptionists[i])
	}
	return responses
}
