package dto

import "time"

// Request DTOs

type SubmitPatientRequest struct {
	Name   string `json:"name" validate:"required"`
	Email  string `json:"email" validate:"required,email"`
	Phone  string `json:"phone" validate:"required,phone"`
	Reason string `json:"reason" validate:"omitempty"`
}

// Response DTOs

type PatientResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Reason    string    `json:"reason,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// PatientSubmissionResponse echoes the registered record back to the widget.
type PatientSubmissionResponse struct {
	PatientID string          `json:"patient_id"`
	Patient   PatientResponse `json:"patient"`
}
