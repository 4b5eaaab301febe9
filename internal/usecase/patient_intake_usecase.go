package usecase

import (
	"context"
	"errors"
	"strings"

	"clinic-booking-service/internal/converter"
	"clinic-booking-service/internal/delivery/dto"
	"clinic-booking-service/internal/domain/entity"
	"clinic-booking-service/internal/domain/repository"
	"clinic-booking-service/pkg/validator"

	"github.com/sirupsen/logrus"
)

var (
	ErrPatientNotFound = errors.New("patient not found")
)

// ValidationError carries field-level intake validation failures. The
// collaborator is never contacted when validation fails.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "patient form validation failed"
}

type PatientIntakeUsecase interface {
	Submit(ctx context.Context, req *dto.SubmitPatientRequest) (*dto.PatientSubmissionResponse, error)
	GetPatient(ctx context.Context, id string) (*dto.PatientResponse, error)
}

type patientIntakeUsecase struct {
	log       *logrus.Logger
	validator *validator.CustomValidator
	registry  repository.PatientRegistry
}

func NewPatientIntakeUsecase(
	log *logrus.Logger,
	customValidator *validator.CustomValidator,
	registry repository.PatientRegistry,
) PatientIntakeUsecase {
	return &patientIntakeUsecase{
		log:       log,
		validator: customValidator,
		registry:  registry,
	}
}

// Submit validates the intake form and registers the patient.
// Validation failures return immediately with field errors; only a valid
// form reaches the registry.
func (u *patientIntakeUsecase) Submit(ctx context.Context, req *dto.SubmitPatientRequest) (*dto.PatientSubmissionResponse, error) {
	form := &validator.PatientForm{
		Name:   req.Name,
		Email:  req.Email,
		Phone:  req.Phone,
		Reason: req.Reason,
	}

	if fields := u.validator.ValidatePatientForm(form); len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	patient := &entity.Patient{
		Name:   form.Name,
		Email:  form.Email,
		Phone:  form.Phone,
		Reason: strings.TrimSpace(form.Reason),
	}

	if err := u.registry.Register(ctx, patient); err != nil {
		u.log.Warnf("Failed to register patient: %+v", err)
		return nil, err
	}

	return converter.PatientToSubmissionResponse(patient), nil
}

func (u *patientIntakeUsecase) GetPatient(ctx context.Context, id string) (*dto.PatientResponse, error) {
	patient, err := u.registry.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", id, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	return converter.PatientToResponse(patient), nil
}
