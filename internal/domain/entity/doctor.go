package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// StringList type for GORM JSONB-backed string arrays
type StringList []string

// Value returns json value, implement driver.Valuer interface
func (l StringList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return nil, nil
	}
	return json.Marshal(l)
}

// Scan scan value into StringList, implements sql.Scanner interface
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New(fmt.Sprint("Failed to unmarshal JSONB value:", value))
	}

	result := []string{}
	err := json.Unmarshal(bytes, &result)
	*l = StringList(result)
	return err
}

// DoctorRating holds the aggregate review rating shown on the profile
type DoctorRating struct {
	Stars decimal.Decimal `gorm:"type:decimal(2,1)" json:"stars"`
	Total int             `json:"total"`
}

// DoctorStats holds headline profile figures (display strings, e.g. "1.2k")
type DoctorStats struct {
	Patients   string `gorm:"type:varchar(20)" json:"patients"`
	Experience string `gorm:"type:varchar(20)" json:"experience"`
	Reviews    string `gorm:"type:varchar(20)" json:"reviews"`
}

// DoctorLocation holds the clinic location shown on the profile
type DoctorLocation struct {
	Clinic  string `gorm:"type:varchar(255)" json:"clinic"`
	Address string `gorm:"type:varchar(255)" json:"address"`
	City    string `gorm:"type:varchar(100)" json:"city"`
}

// DoctorWorkingHours holds the displayed consultation window
type DoctorWorkingHours struct {
	Time string `gorm:"type:varchar(50)" json:"time"`
	Days string `gorm:"type:varchar(50)" json:"days"`
}

// DoctorContact holds the doctor's public contact details
type DoctorContact struct {
	Phone string `gorm:"type:varchar(30)" json:"phone"`
	Email string `gorm:"type:varchar(255)" json:"email"`
}

// DoctorProfile represents the public profile of a clinic doctor
type DoctorProfile struct {
	ID             string             `gorm:"type:varchar(100);primaryKey" json:"id"`
	Name           string             `gorm:"type:varchar(255);not null" json:"name"`
	Qualifications StringList         `gorm:"type:jsonb" json:"qualifications,omitempty"`
	Specialization string             `gorm:"type:varchar(100);not null;index" json:"specialization"`
	IsVerified     bool               `gorm:"not null;default:false" json:"is_verified"`
	Rating         DoctorRating       `gorm:"embedded;embeddedPrefix:rating_" json:"rating"`
	Stats          DoctorStats        `gorm:"embedded;embeddedPrefix:stats_" json:"stats"`
	About          string             `gorm:"type:text" json:"about,omitempty"`
	Education      StringList         `gorm:"type:jsonb" json:"education,omitempty"`
	Location       DoctorLocation     `gorm:"embedded;embeddedPrefix:location_" json:"location"`
	WorkingHours   DoctorWorkingHours `gorm:"embedded;embeddedPrefix:hours_" json:"working_hours"`
	Contact        DoctorContact      `gorm:"embedded;embeddedPrefix:contact_" json:"contact"`

	// Relationships
	Slots []DoctorSlot `gorm:"foreignKey:DoctorID" json:"slots,omitempty"`
}

func (DoctorProfile) TableName() string {
	return "doctors"
}
