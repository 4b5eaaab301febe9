package repository

import (
	"context"

	"clinic-booking-service/internal/domain/entity"
)

// PatientRegistry assigns durable patient identities to validated intake
// submissions. Register fills in ID, Status and CreatedAt on success.
type PatientRegistry interface {
	Register(ctx context.Context, patient *entity.Patient) error
	FindByID(ctx context.Context, id string) (*entity.Patient, error)
}
