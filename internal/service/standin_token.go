package service

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"clinic-booking-service/internal/domain/entity"
	domainRepo "clinic-booking-service/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

const (
	minWaitMinutes = 15
	maxWaitMinutes = 45
)

// StandinTokenIssuer is the in-memory token issuer. A rejected outcome
// simulates losing a slot-contention race.
type StandinTokenIssuer struct {
	latency time.Duration
	policy  OutcomePolicy
	log     *logrus.Logger

	mu      sync.Mutex
	rng     *rand.Rand
	byToken map[string]entity.Appointment
}

func NewStandinTokenIssuer(latency time.Duration, policy OutcomePolicy, seed int64, log *logrus.Logger) *StandinTokenIssuer {
	return &StandinTokenIssuer{
		latency: latency,
		policy:  policy,
		log:     log,
		rng:     rand.New(rand.NewSource(seed)),
		byToken: make(map[string]entity.Appointment),
	}
}

// Issue confirms the appointment and fills in its token fields.
func (i *StandinTokenIssuer) Issue(ctx context.Context, appointment *entity.Appointment) error {
	if err := simulateLatency(ctx, i.latency); err != nil {
		return err
	}

	if !i.policy.Allow() {
		i.log.Warnf("Stand-in token issuer rejected booking: doctor=%s, date=%s, time=%s",
			appointment.DoctorID, appointment.Date, appointment.Time)
		return domainRepo.ErrSlotFull
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	appointment.ID = newAppointmentID(appointment.Date)
	appointment.TokenNumber = newTokenNumber()
	appointment.Status = entity.AppointmentStatusConfirmed
	appointment.EstimatedWaitTime = minWaitMinutes + i.rng.Intn(maxWaitMinutes-minWaitMinutes+1)
	appointment.CreatedAt = time.Now().UTC()

	i.byToken[appointment.TokenNumber] = *appointment

	i.log.Infof("Token issued: token=%s, appointment=%s", appointment.TokenNumber, appointment.ID)
	return nil
}

// FindByToken returns the appointment behind a token number, or (nil, nil)
// when unknown.
func (i *StandinTokenIssuer) FindByToken(ctx context.Context, tokenNumber string) (*entity.Appointment, error) {
	if err := simulateLatency(ctx, i.latency); err != nil {
		return nil, err
	}

	i.mu.Lock()
	appointment, ok := i.byToken[tokenNumber]
	i.mu.Unlock()

	if !ok {
		return nil, nil
	}
	return &appointment, nil
}
