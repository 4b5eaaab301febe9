package usecase

import (
	"context"
	"errors"
	"time"

	"clinic-booking-service/internal/converter"
	"clinic-booking-service/internal/delivery/dto"
	"clinic-booking-service/internal/domain/repository"
	"clinic-booking-service/internal/service"

	"github.com/sirupsen/logrus"
)

var (
	ErrInvalidDate       = errors.New("invalid date format, use YYYY-MM-DD")
	ErrInvalidTimeFormat = errors.New("invalid time format, use HH:MM")
	ErrMissingDoctorID   = errors.New("doctor id is required")
)

type SlotUsecase interface {
	ListAvailableDates(ref time.Time) *dto.DateListResponse
	ListTimeSlots(ctx context.Context, doctorID, date string) (*dto.SlotListResponse, error)
}

type slotUsecase struct {
	log      *logrus.Logger
	calendar *service.ClinicCalendar
	provider repository.SlotProvider
}

func NewSlotUsecase(
	log *logrus.Logger,
	calendar *service.ClinicCalendar,
	provider repository.SlotProvider,
) SlotUsecase {
	return &slotUsecase{
		log:      log,
		calendar: calendar,
		provider: provider,
	}
}

// ListAvailableDates returns the bookable-date strip starting at ref.
func (u *slotUsecase) ListAvailableDates(ref time.Time) *dto.DateListResponse {
	dates := u.calendar.AvailableDates(ref)
	return &dto.DateListResponse{
		Dates: converter.DatesToResponses(dates),
		Total: len(dates),
	}
}

// ListTimeSlots returns the slot grid for a doctor on a date.
func (u *slotUsecase) ListTimeSlots(ctx context.Context, doctorID, date string) (*dto.SlotListResponse, error) {
	if doctorID == "" {
		return nil, ErrMissingDoctorID
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, ErrInvalidDate
	}

	slots, err := u.provider.ListTimeSlots(ctx, doctorID, date)
	if err != nil {
		u.log.Warnf("Failed to list slots for doctor %s on %s: %+v", doctorID, date, err)
		return nil, err
	}

	return &dto.SlotListResponse{
		Slots: converter.SlotsToResponses(slots),
		Total: len(slots),
	}, nil
}
