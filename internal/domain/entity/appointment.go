package entity

import "time"

// AppointmentStatus represents the status of a confirmed appointment
type AppointmentStatus string

const (
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// Appointment represents a confirmed booking and its issued token
type Appointment struct {
	ID                string            `gorm:"type:varchar(50);primaryKey" json:"id"`
	TokenNumber       string            `gorm:"type:varchar(20);uniqueIndex;not null" json:"token_number"`
	PatientID         string            `gorm:"type:varchar(50);not null;index" json:"patient_id"`
	DoctorID          string            `gorm:"type:varchar(100);not null;index" json:"doctor_id"`
	Date              string            `gorm:"type:date;not null;index" json:"date"`
	Time              string            `gorm:"type:varchar(5);not null" json:"time"`
	Reason            string            `gorm:"type:text" json:"reason,omitempty"`
	Status            AppointmentStatus `gorm:"type:varchar(20);not null;default:'confirmed'" json:"status"`
	EstimatedWaitTime int               `gorm:"not null" json:"estimated_wait_time"`
	CreatedAt         time.Time         `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Patient *Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsConfirmed checks if the appointment is confirmed
func (a *Appointment) IsConfirmed() bool {
	return a.Status == AppointmentStatusConfirmed
}
