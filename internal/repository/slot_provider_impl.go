package repository

import (
	"context"

	"clinic-booking-service/internal/domain/entity"
	domainRepo "clinic-booking-service/internal/domain/repository"

	"gorm.io/gorm"
)

type slotProvider struct {
	db *gorm.DB
}

func NewSlotProvider(db *gorm.DB) domainRepo.SlotProvider {
	return &slotProvider{db: db}
}

// ListTimeSlots reads the doctor's seeded slot grid and joins in the
// confirmed booking count per slot. Availability comes from the seed rows
// alone; counts are informational.
func (r *slotProvider) ListTimeSlots(ctx context.Context, doctorID, date string) ([]entity.TimeSlot, error) {
	var seeds []entity.DoctorSlot
	err := r.db.WithContext(ctx).
		Where("doctor_id = ?", doctorID).
		Order("time").
		Find(&seeds).Error
	if err != nil {
		return nil, err
	}

	type slotCount struct {
		Time  string
		Count int
	}
	var counts []slotCount
	err = r.db.WithContext(ctx).Model(&entity.Appointment{}).
		Select("time, COUNT(*) as count").
		Where("doctor_id = ? AND date = ? AND status = ?", doctorID, date, entity.AppointmentStatusConfirmed).
		Group("time").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}

	countByTime := make(map[string]int, len(counts))
	for _, c := range counts {
		countByTime[c.Time] = c.Count
	}

	slots := make([]entity.TimeSlot, 0, len(seeds))
	for _, seed := range seeds {
		slots = append(slots, entity.TimeSlot{
			Time:         seed.Time,
			Label:        seed.Label,
			Available:    seed.Available,
			BookingCount: countByTime[seed.Time],
		})
	}

	return slots, nil
}
