package service

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"clinic-booking-service/internal/domain/entity"
)

// fullSlotTime is the designated pre-seeded unavailable slot, modelling a
// fully booked period.
const fullSlotTime = "12:30"

// fullSlotBookingCount is the informational count shown for the full slot.
const fullSlotBookingCount = 8

// StandinSlotProvider serves the clinic's slot grid with simulated booking
// counts. Availability is seed data, not derived from the counts.
type StandinSlotProvider struct {
	calendar *ClinicCalendar
	latency  time.Duration

	mu  sync.Mutex
	rng *rand.Rand
}

func NewStandinSlotProvider(calendar *ClinicCalendar, latency time.Duration, seed int64) *StandinSlotProvider {
	return &StandinSlotProvider{
		calendar: calendar,
		latency:  latency,
		rng:      rand.New(rand.NewSource(seed)),
	}
}

// ListTimeSlots returns the slot grid for the given doctor and date.
func (p *StandinSlotProvider) ListTimeSlots(ctx context.Context, doctorID, date string) ([]entity.TimeSlot, error) {
	if err := simulateLatency(ctx, p.latency); err != nil {
		return nil, err
	}

	catalog := p.calendar.Catalog()
	slots := make([]entity.TimeSlot, 0, len(catalog))

	p.mu.Lock()
	defer p.mu.Unlock()

	for _, st := range catalog {
		slot := entity.TimeSlot{
			Time:      st.Time,
			Label:     st.Label,
			Available: st.Time != fullSlotTime,
		}
		if slot.Available {
			slot.BookingCount = p.rng.Intn(5)
		} else {
			slot.BookingCount = fullSlotBookingCount
		}
		slots = append(slots, slot)
	}

	return slots, nil
}
