package entity

// DoctorSlot represents a seeded catalog entry of the doctor's daily slot grid.
// Availability is authoritative seed data, independent of booking counts.
type DoctorSlot struct {
	ID        int    `gorm:"primaryKey;autoIncrement" json:"id"`
	DoctorID  string `gorm:"type:varchar(100);not null;index" json:"doctor_id"`
	Time      string `gorm:"type:varchar(5);not null" json:"time"`
	Label     string `gorm:"type:varchar(20);not null" json:"label"`
	Available bool   `gorm:"not null;default:true" json:"available"`

	// Relationships
	Doctor *DoctorProfile `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (DoctorSlot) TableName() string {
	return "doctor_slots"
}

// TimeSlot is a bookable time unit for a given date as shown to the widget.
// BookingCount is informational; Available alone decides bookability.
type TimeSlot struct {
	Time         string `json:"time"`
	Label        string `json:"label"`
	Available    bool   `json:"available"`
	BookingCount int    `json:"booking_count"`
}

// DateOption is one entry of the bookable-date strip (next 7 days minus the
// clinic's closed weekday).
type DateOption struct {
	Date    string `json:"date"`
	Day     int    `json:"day"`
	DayName string `json:"day_name"`
	Month   string `json:"month"`
	IsToday bool   `json:"is_today"`
}
