package usecase

import (
	"context"
	"errors"

	"clinic-booking-service/internal/converter"
	"clinic-booking-service/internal/delivery/dto"
	"clinic-booking-service/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

var (
	ErrDoctorNotFound = errors.New("doctor not found")
)

type DoctorProfileUsecase interface {
	GetProfile(ctx context.Context, doctorID string) (*dto.DoctorProfileResponse, error)
}

type doctorProfileUsecase struct {
	log       *logrus.Logger
	directory repository.DoctorDirectory
}

func NewDoctorProfileUsecase(log *logrus.Logger, directory repository.DoctorDirectory) DoctorProfileUsecase {
	return &doctorProfileUsecase{
		log:       log,
		directory: directory,
	}
}

func (u *doctorProfileUsecase) GetProfile(ctx context.Context, doctorID string) (*dto.DoctorProfileResponse, error) {
	doctor, err := u.directory.FindByID(ctx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", doctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	return converter.DoctorToResponse(doctor), nil
}
