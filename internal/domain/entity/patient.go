package entity

import "time"

// PatientStatus represents the registration status of a patient record
type PatientStatus string

const (
	PatientStatusRegistered PatientStatus = "registered"
)

// Patient represents a registered patient identity captured by the intake flow
type Patient struct {
	ID        string        `gorm:"type:varchar(50);primaryKey" json:"id"`
	Name      string        `gorm:"type:varchar(255);not null" json:"name"`
	Email     string        `gorm:"type:varchar(255);not null;index" json:"email"`
	Phone     string        `gorm:"type:varchar(30);not null" json:"phone"`
	Reason    string        `gorm:"type:text" json:"reason,omitempty"`
	Status    PatientStatus `gorm:"type:varchar(20);not null;default:'registered'" json:"status"`
	CreatedAt time.Time     `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Appointments []Appointment `gorm:"foreignKey:PatientID" json:"appointments,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}

// IsRegistered checks if the patient record completed registration
func (p *Patient) IsRegistered() bool {
	return p.Status == PatientStatusRegistered
}
