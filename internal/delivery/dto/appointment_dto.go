package dto

import "time"

// Request DTOs

type IssueTokenRequest struct {
	PatientID string `json:"patient_id" validate:"required"`
	DoctorID  string `json:"doctor_id" validate:"required"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	Time      string `json:"time" validate:"required,datetime=15:04"`
	Reason    string `json:"reason" validate:"omitempty"`
}

// Response DTOs

type AppointmentResponse struct {
	ID                string    `json:"id"`
	TokenNumber       string    `json:"token_number"`
	PatientID         string    `json:"patient_id"`
	DoctorID          string    `json:"doctor_id"`
	Date              string    `json:"date"`
	Time              string    `json:"time"`
	Reason            string    `json:"reason,omitempty"`
	Status            string    `json:"status"`
	EstimatedWaitTime int       `json:"estimated_wait_time"`
	CreatedAt         time.Time `json:"created_at"`
}

// TokenResponse is the confirmation artifact returned on successful booking.
type TokenResponse struct {
	TokenNumber   string              `json:"token_number"`
	AppointmentID string              `json:"appointment_id"`
	Appointment   AppointmentResponse `json:"appointment"`
}
