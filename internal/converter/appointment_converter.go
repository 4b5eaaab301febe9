package converter

import (
	"clinic-booking-service/internal/delivery/dto"
	"clinic-booking-service/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:                appointment.ID,
		TokenNumber:       appointment.TokenNumber,
		PatientID:         appointment.PatientID,
		DoctorID:          appointment.DoctorID,
		Date:              appointment.Date,
		Time:              appointment.Time,
		Reason:            appointment.Reason,
		Status:            string(appointment.Status),
		EstimatedWaitTime: appointment.EstimatedWaitTime,
		CreatedAt:         appointment.CreatedAt,
	}
}

// AppointmentToTokenResponse converts a confirmed Appointment to the token
// confirmation artifact
func AppointmentToTokenResponse(appointment *entity.Appointment) *dto.TokenResponse {
	if appointment == nil {
		return nil
	}

	return &dto.TokenResponse{
		TokenNumber:   appointment.TokenNumber,
		AppointmentID: appointment.ID,
		Appointment:   *AppointmentToResponse(appointment),
	}
}
