package repository

import (
	"context"

	"clinic-booking-service/internal/domain/entity"
)

// DoctorDirectory looks up public doctor profiles.
// Returns (nil, nil) when the doctor does not exist.
type DoctorDirectory interface {
	FindByID(ctx context.Context, id string) (*entity.DoctorProfile, error)
}
