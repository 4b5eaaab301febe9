package repository

import "errors"

var (
	// ErrSlotFull is returned by token issuance when the requested slot
	// cannot accept another booking.
	ErrSlotFull = errors.New("time slot may be full")

	// ErrBackendUnavailable is returned when a collaborator call fails
	// outright (simulated outage in the stand-in backend).
	ErrBackendUnavailable = errors.New("backend unavailable")
)
