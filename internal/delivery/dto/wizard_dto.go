package dto

// Request DTOs

type OpenWizardRequest struct {
	DoctorID string `json:"doctor_id" validate:"omitempty"`
}

type SelectDateRequest struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
}

type SelectTimeRequest struct {
	Time string `json:"time" validate:"required,datetime=15:04"`
}

// Response DTOs

type SelectionResponse struct {
	Date    string `json:"date"`
	Time    string `json:"time"`
	IsValid bool   `json:"is_valid"`
}

// WizardStateResponse is the full snapshot of one booking-wizard session.
type WizardStateResponse struct {
	SessionID    string                     `json:"session_id"`
	DoctorID     string                     `json:"doctor_id"`
	Step         int                        `json:"step"`
	StepName     string                     `json:"step_name"`
	Generating   bool                       `json:"generating"`
	Patient      *PatientSubmissionResponse `json:"patient,omitempty"`
	Selection    SelectionResponse          `json:"selection"`
	Slots        []TimeSlotResponse         `json:"slots,omitempty"`
	Token        *TokenResponse             `json:"token,omitempty"`
	ErrorMessage string                     `json:"error_message,omitempty"`
}
