package usecase

import (
	"context"
	"errors"
	"time"

	"clinic-booking-service/internal/converter"
	"clinic-booking-service/internal/delivery/dto"
	"clinic-booking-service/internal/domain/entity"
	"clinic-booking-service/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

var (
	ErrTokenNotFound        = errors.New("token not found")
	ErrMissingBookingFields = errors.New("patient, doctor, date and time are all required")
)

type TokenUsecase interface {
	Issue(ctx context.Context, req *dto.IssueTokenRequest) (*dto.TokenResponse, error)
	GetTokenDetails(ctx context.Context, tokenNumber string) (*dto.TokenResponse, error)
}

type tokenUsecase struct {
	log    *logrus.Logger
	issuer repository.TokenIssuer
}

func NewTokenUsecase(log *logrus.Logger, issuer repository.TokenIssuer) TokenUsecase {
	return &tokenUsecase{
		log:    log,
		issuer: issuer,
	}
}

// Issue confirms a booking and returns its token. All request fields except
// reason must be present and well-formed before the issuer is contacted.
func (u *tokenUsecase) Issue(ctx context.Context, req *dto.IssueTokenRequest) (*dto.TokenResponse, error) {
	if req.PatientID == "" || req.DoctorID == "" || req.Date == "" || req.Time == "" {
		return nil, ErrMissingBookingFields
	}
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return nil, ErrInvalidDate
	}
	if _, err := time.Parse("15:04", req.Time); err != nil {
		return nil, ErrInvalidTimeFormat
	}

	appointment := &entity.Appointment{
		PatientID: req.PatientID,
		DoctorID:  req.DoctorID,
		Date:      req.Date,
		Time:      req.Time,
		Reason:    req.Reason,
	}

	if err := u.issuer.Issue(ctx, appointment); err != nil {
		u.log.Warnf("Failed to issue token for patient %s: %+v", req.PatientID, err)
		return nil, err
	}

	return converter.AppointmentToTokenResponse(appointment), nil
}

func (u *tokenUsecase) GetTokenDetails(ctx context.Context, tokenNumber string) (*dto.TokenResponse, error) {
	appointment, err := u.issuer.FindByToken(ctx, tokenNumber)
	if err != nil {
		u.log.Warnf("Failed to find token %s: %+v", tokenNumber, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrTokenNotFound
	}

	return converter.AppointmentToTokenResponse(appointment), nil
}
