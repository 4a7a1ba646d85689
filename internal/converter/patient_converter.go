package converter

import (
	"safeclinic/internal/delivery/dto"
	"safeclinic/internal/domain/entity"
)

// PatientToResponse converts a Patient entity to PatientResponse DTO
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:               patient.UserID,
		Name:             patient.User.Name,
		Email:            patient.User.Email,
		CPF:              patient.User.CPF,
		Phone:            patient.User.Phone,
		Status:           patient.User.Status,
		BirthDate:        patient.BirthDate.Format("2006-01-02"),
		HealthInsurance:  patient.HealthInsurance,
		EmergencyContact: patient.EmergencyContact,
		BloodType:        patient.BloodType,
		Allergies:        patient.Allergies,
		LastLogin:        patient.User.LastLogin,
		CreatedAt:        patient.CreatedAt,
		UpdatedAt:        patient.UpdatedAt,
	}
}

// PatientsToResponses converts a slice of Patient entities to PatientResponse DTOs
func PatientsToResponses(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, len(patients))
	for i := range patients {
		responses[i] = *PatientToResponse(&patients[i])
	}
	return responses
}
