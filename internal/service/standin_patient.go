package service

import (
	"context"
	"sync"
	"time"

	"clinic-booking-service/internal/domain/entity"
	domainRepo "clinic-booking-service/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

// StandinPatientRegistry is the in-memory patient registry.
type StandinPatientRegistry struct {
	latency time.Duration
	policy  OutcomePolicy
	log     *logrus.Logger

	mu       sync.RWMutex
	patients map[string]entity.Patient
}

func NewStandinPatientRegistry(latency time.Duration, policy OutcomePolicy, log *logrus.Logger) *StandinPatientRegistry {
	return &StandinPatientRegistry{
		latency:  latency,
		policy:   policy,
		log:      log,
		patients: make(map[string]entity.Patient),
	}
}

// Register assigns an identity to the submitted record and stores it.
// A rejected outcome simulates backend unavailability.
func (r *StandinPatientRegistry) Register(ctx context.Context, patient *entity.Patient) error {
	if err := simulateLatency(ctx, r.latency); err != nil {
		return err
	}

	if !r.policy.Allow() {
		r.log.Warn("Stand-in patient registry rejected submission")
		return domainRepo.ErrBackendUnavailable
	}

	patient.ID = newPatientID()
	patient.Status = entity.PatientStatusRegistered
	patient.CreatedAt = time.Now().UTC()

	r.mu.Lock()
	r.patients[patient.ID] = *patient
	r.mu.Unlock()

	r.log.Infof("Patient registered: id=%s", patient.ID)
	return nil
}

// FindByID returns the stored patient record, or (nil, nil) when unknown.
func (r *StandinPatientRegistry) FindByID(ctx context.Context, id string) (*entity.Patient, error) {
	if err := simulateLatency(ctx, r.latency); err != nil {
		return nil, err
	}

	r.mu.RLock()
	patient, ok := r.patients[id]
	r.mu.RUnlock()

	if !ok {
		return nil, nil
	}
	return &patient, nil
}
