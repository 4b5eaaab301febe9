package repository

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"clinic-booking-service/internal/domain/entity"
	domainRepo "clinic-booking-service/internal/domain/repository"
	"clinic-booking-service/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	minWaitMinutes = 15
	maxWaitMinutes = 45
)

type tokenIssuer struct {
	db      *gorm.DB
	counter *service.SlotCounter
	log     *logrus.Logger
}

func NewTokenIssuer(db *gorm.DB, counter *service.SlotCounter, log *logrus.Logger) domainRepo.TokenIssuer {
	return &tokenIssuer{
		db:      db,
		counter: counter,
		log:     log,
	}
}

// Issue confirms an appointment.
//
// Flow:
// 1. Reserve the slot in Redis (atomic capacity check)
// 2. Insert the appointment row
// 3. If the insert fails, compensate: release the Redis reservation
func (r *tokenIssuer) Issue(ctx context.Context, appointment *entity.Appointment) error {
	if _, err := r.counter.Reserve(ctx, appointment.DoctorID, appointment.Date, appointment.Time); err != nil {
		return err
	}

	appointment.ID = generateAppointmentID(appointment.Date)
	appointment.TokenNumber = generateTokenNumber()
	appointment.Status = entity.AppointmentStatusConfirmed
	appointment.EstimatedWaitTime = estimateWaitTime()
	appointment.CreatedAt = time.Now().UTC()

	if err := r.db.WithContext(ctx).Create(appointment).Error; err != nil {
		r.log.Errorf("Failed to insert appointment, compensating slot reservation: %+v", err)

		releaseCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if releaseErr := r.counter.Release(releaseCtx, appointment.DoctorID, appointment.Date, appointment.Time); releaseErr != nil {
			r.log.Errorf("CRITICAL: Failed to release slot reservation after DB failure: %+v", releaseErr)
		}

		return err
	}

	r.log.Infof("Appointment confirmed: id=%s, token=%s", appointment.ID, appointment.TokenNumber)
	return nil
}

func (r *tokenIssuer) FindByToken(ctx context.Context, tokenNumber string) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := r.db.WithContext(ctx).Where("token_number = ?", tokenNumber).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

// generateAppointmentID generates a unique appointment identifier: APT-YYYYMMDD-XXXXXX
func generateAppointmentID(date string) string {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		d = time.Now().UTC()
	}
	randomBytes := make([]byte, 3)
	rand.Read(randomBytes)
	return fmt.Sprintf("APT-%s-%X", d.Format("20060102"), randomBytes)
}

// generateTokenNumber generates a display token number: TXXXXXX
func generateTokenNumber() string {
	randomBytes := make([]byte, 3)
	rand.Read(randomBytes)
	return fmt.Sprintf("T%X", randomBytes)
}

// estimateWaitTime picks a wait estimate between 15 and 45 minutes.
func estimateWaitTime() int {
	span := big.NewInt(int64(maxWaitMinutes - minWaitMinutes + 1))
	n, err := rand.Int(rand.Reader, span)
	if err != nil {
		return minWaitMinutes
	}
	return minWaitMinutes + int(n.Int64())
}
