package repository

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"clinic-booking-service/internal/domain/entity"
	domainRepo "clinic-booking-service/internal/domain/repository"

	"gorm.io/gorm"
)

type patientRegistry struct {
	db *gorm.DB
}

func NewPatientRegistry(db *gorm.DB) domainRepo.PatientRegistry {
	return &patientRegistry{db: db}
}

func (r *patientRegistry) Register(ctx context.Context, patient *entity.Patient) error {
	patient.ID = generatePatientID()
	patient.Status = entity.PatientStatusRegistered
	patient.CreatedAt = time.Now().UTC()

	return r.db.WithContext(ctx).Create(patient).Error
}

func (r *patientRegistry) FindByID(ctx context.Context, id string) (*entity.Patient, error) {
	var patient entity.Patient
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

// generatePatientID generates a unique patient identifier: PAT-XXXXXXXX
func generatePatientID() string {
	randomBytes := make([]byte, 4)
	rand.Read(randomBytes)
	return fmt.Sprintf("PAT-%X", randomBytes)
}
