package usecase

import (
	"context"
	"testing"
	"time"

	"clinic-booking-service/internal/delivery/dto"
	"clinic-booking-service/internal/domain/entity"
	domainRepo "clinic-booking-service/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTokenIssuer struct {
	err     error
	issued  *entity.Appointment
	findErr error
	found   *entity.Appointment
}

func (f *fakeTokenIssuer) Issue(ctx context.Context, appointment *entity.Appointment) error {
	if f.err != nil {
		return f.err
	}
	appointment.ID = "APT-20260304-9B1E2F"
	appointment.TokenNumber = "T4F2A1C"
	appointment.Status = entity.AppointmentStatusConfirmed
	appointment.EstimatedWaitTime = 25
	appointment.CreatedAt = time.Now().UTC()
	f.issued = appointment
	return nil
}

func (f *fakeTokenIssuer) FindByToken(ctx context.Context, tokenNumber string) (*entity.Appointment, error) {
	return f.found, f.findErr
}

func issueRequest() *dto.IssueTokenRequest {
	return &dto.IssueTokenRequest{
		PatientID: "PAT-12345678",
		DoctorID:  "dr-somasree-rc",
		Date:      "2026-03-04",
		Time:      "10:00",
		Reason:    "Back pain",
	}
}

func TestTokenUsecase_Issue(t *testing.T) {
	issuer := &fakeTokenIssuer{}
	uc := NewTokenUsecase(testLogger(), issuer)

	token, err := uc.Issue(context.Background(), issueRequest())
	require.NoError(t, err)
	assert.Equal(t, "T4F2A1C", token.TokenNumber)
	assert.Equal(t, "APT-20260304-9B1E2F", token.AppointmentID)
	assert.Equal(t, "confirmed", token.Appointment.Status)
	assert.Equal(t, 25, token.Appointment.EstimatedWaitTime)

	require.NotNil(t, issuer.issued)
	assert.Equal(t, "PAT-12345678", issuer.issued.PatientID)
	assert.Equal(t, "2026-03-04", issuer.issued.Date)
}

func TestTokenUsecase_IssueMissingFields(t *testing.T) {
	uc := NewTokenUsecase(testLogger(), &fakeTokenIssuer{})

	mutations := []func(*dto.IssueTokenRequest){
		func(r *dto.IssueTokenRequest) { r.PatientID = "" },
		func(r *dto.IssueTokenRequest) { r.DoctorID = "" },
		func(r *dto.IssueTokenRequest) { r.Date = "" },
		func(r *dto.IssueTokenRequest) { r.Time = "" },
	}
	for _, mutate := range mutations {
		req := issueRequest()
		mutate(req)
		_, err := uc.Issue(context.Background(), req)
		assert.ErrorIs(t, err, ErrMissingBookingFields)
	}
}

func TestTokenUsecase_IssueBadFormats(t *testing.T) {
	uc := NewTokenUsecase(testLogger(), &fakeTokenIssuer{})

	req := issueRequest()
	req.Date = "04-03-2026"
	_, err := uc.Issue(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDate)

	req = issueRequest()
	req.Time = "10am"
	_, err = uc.Issue(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)
}

func TestTokenUsecase_IssueSlotFull(t *testing.T) {
	uc := NewTokenUsecase(testLogger(), &fakeTokenIssuer{err: domainRepo.ErrSlotFull})

	_, err := uc.Issue(context.Background(), issueRequest())
	assert.ErrorIs(t, err, domainRepo.ErrSlotFull)
}

func TestTokenUsecase_GetTokenDetails(t *testing.T) {
	issuer := &fakeTokenIssuer{found: &entity.Appointment{
		ID:          "APT-20260304-9B1E2F",
		TokenNumber: "T4F2A1C",
		Status:      entity.AppointmentStatusConfirmed,
	}}
	uc := NewTokenUsecase(testLogger(), issuer)

	token, err := uc.GetTokenDetails(context.Background(), "T4F2A1C")
	require.NoError(t, err)
	assert.Equal(t, "T4F2A1C", token.TokenNumber)
}

func TestTokenUsecase_GetTokenDetailsNotFound(t *testing.T) {
	uc := NewTokenUsecase(testLogger(), &fakeTokenIssuer{})

	_, err := uc.GetTokenDetails(context.Background(), "T000000")
	assert.ErrorIs(t, err, ErrTokenNotFound)
}
