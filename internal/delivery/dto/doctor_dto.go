package dto

// Response DTOs

type DoctorRatingResponse struct {
	Stars float64 `json:"stars"`
	Total int     `json:"total"`
}

type DoctorStatsResponse struct {
	Patients   string `json:"patients"`
	Experience string `json:"experience"`
	Reviews    string `json:"reviews"`
}

type DoctorLocationResponse struct {
	Clinic  string `json:"clinic"`
	Address string `json:"address"`
	City    string `json:"city"`
}

type DoctorWorkingHoursResponse struct {
	Time string `json:"time"`
	Days string `json:"days"`
}

type DoctorContactResponse struct {
	Phone string `json:"phone"`
	Email string `json:"email"`
}

type DoctorProfileResponse struct {
	ID             string                     `json:"id"`
	Name           string                     `json:"name"`
	Qualifications []string                   `json:"qualifications,omitempty"`
	Specialization string                     `json:"specialization"`
	IsVerified     bool                       `json:"is_verified"`
	Rating         DoctorRatingResponse       `json:"rating"`
	Stats          DoctorStatsResponse        `json:"stats"`
	About          string                     `json:"about,omitempty"`
	Education      []string                   `json:"education,omitempty"`
	Location       DoctorLocationResponse     `json:"location"`
	WorkingHours   DoctorWorkingHoursResponse `json:"working_hours"`
	Contact        DoctorContactResponse      `json:"contact"`
}
