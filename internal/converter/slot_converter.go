package converter

import (
	"clinic-booking-service/internal/delivery/dto"
	"clinic-booking-service/internal/domain/entity"
)

// SlotsToResponses converts a slice of TimeSlot values to response DTOs
func SlotsToResponses(slots []entity.TimeSlot) []dto.TimeSlotResponse {
	responses := make([]dto.TimeSlotResponse, len(slots))
	for i, slot := range slots {
		responses[i] = dto.TimeSlotResponse{
			Time:         slot.Time,
			Label:        slot.Label,
			Available:    slot.Available,
			BookingCount: slot.BookingCount,
		}
	}
	return responses
}

// DatesToResponses converts a slice of DateOption values to response DTOs
func DatesToResponses(dates []entity.DateOption) []dto.DateOptionResponse {
	responses := make([]dto.DateOptionResponse, len(dates))
	for i, d := range dates {
		responses[i] = dto.DateOptionResponse{
			Date:    d.Date,
			Day:     d.Day,
			DayName: d.DayName,
			Month:   d.Month,
			IsToday: d.IsToday,
		}
	}
	return responses
}
