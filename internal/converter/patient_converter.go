package converter

import (
	"clinic-booking-service/internal/delivery/dto"
	"clinic-booking-service/internal/domain/entity"
)

// PatientToResponse converts a Patient entity to PatientResponse DTO
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:        patient.ID,
		Name:      patient.Name,
		Email:     patient.Email,
		Phone:     patient.Phone,
		Reason:    patient.Reason,
		Status:    string(patient.Status),
		CreatedAt: patient.CreatedAt,
	}
}

// PatientToSubmissionResponse wraps a registered patient into the intake
// submission payload echoed back to the widget
func PatientToSubmissionResponse(patient *entity.Patient) *dto.PatientSubmissionResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientSubmissionResponse{
		PatientID: patient.ID,
		Patient:   *PatientToResponse(patient),
	}
}
