package repository

import (
	"context"
	"errors"

	"clinic-booking-service/internal/domain/entity"
	domainRepo "clinic-booking-service/internal/domain/repository"

	"gorm.io/gorm"
)

type doctorDirectory struct {
	db *gorm.DB
}

func NewDoctorDirectory(db *gorm.DB) domainRepo.DoctorDirectory {
	return &doctorDirectory{db: db}
}

func (r *doctorDirectory) FindByID(ctx context.Context, id string) (*entity.DoctorProfile, error) {
	var doctor entity.DoctorProfile
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}
