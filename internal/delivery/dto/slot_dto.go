package dto

// Response DTOs

type TimeSlotResponse struct {
	Time         string `json:"time"`
	Label        string `json:"label"`
	Available    bool   `json:"available"`
	BookingCount int    `json:"booking_count"`
}

type SlotListResponse struct {
	Slots []TimeSlotResponse `json:"slots"`
	Total int                `json:"total"`
}

type DateOptionResponse struct {
	Date    string `json:"date"`
	Day     int    `json:"day"`
	DayName string `json:"day_name"`
	Month   string `json:"month"`
	IsToday bool   `json:"is_today"`
}

type DateListResponse struct {
	Dates []DateOptionResponse `json:"dates"`
	Total int                  `json:"total"`
}
