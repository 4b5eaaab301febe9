package repository

import (
	"context"

	"clinic-booking-service/internal/domain/entity"
)

// TokenIssuer confirms an appointment and issues its token. Issue fills in
// ID, TokenNumber, Status, EstimatedWaitTime and CreatedAt on success, or
// fails with ErrSlotFull when the requested slot cannot take the booking.
type TokenIssuer interface {
	Issue(ctx context.Context, appointment *entity.Appointment) error
	FindByToken(ctx context.Context, tokenNumber string) (*entity.Appointment, error)
}
