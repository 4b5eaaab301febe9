package repository

import (
	"context"

	"clinic-booking-service/internal/domain/entity"
)

// SlotProvider supplies the slot catalog for a doctor on a given date.
// Each slot independently carries an availability flag and a booking count.
type SlotProvider interface {
	ListTimeSlots(ctx context.Context, doctorID, date string) ([]entity.TimeSlot, error)
}
