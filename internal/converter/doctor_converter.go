package converter

import (
	"clinic-booking-service/internal/delivery/dto"
	"clinic-booking-service/internal/domain/entity"
)

// DoctorToResponse converts a DoctorProfile entity to its response DTO
func DoctorToResponse(doctor *entity.DoctorProfile) *dto.DoctorProfileResponse {
	if doctor == nil {
		return nil
	}

	return &dto.DoctorProfileResponse{
		ID:             doctor.ID,
		Name:           doctor.Name,
		Qualifications: doctor.Qualifications,
		Specialization: doctor.Specialization,
		IsVerified:     doctor.IsVerified,
		Rating: dto.DoctorRatingResponse{
			Stars: doctor.Rating.Stars.InexactFloat64(),
			Total: doctor.Rating.Total,
		},
		Stats: dto.DoctorStatsResponse{
			Patients:   doctor.Stats.Patients,
			Experience: doctor.Stats.Experience,
			Reviews:    doctor.Stats.Reviews,
		},
		About:     doctor.About,
		Education: doctor.Education,
		Location: dto.DoctorLocationResponse{
			Clinic:  doctor.Location.Clinic,
			Address: doctor.Location.Address,
			City:    doctor.Location.City,
		},
		WorkingHours: dto.DoctorWorkingHoursResponse{
			Time: doctor.WorkingHours.Time,
			Days: doctor.WorkingHours.Days,
		},
		Contact: dto.DoctorContactResponse{
			Phone: doctor.Contact.Phone,
			Email: doctor.Contact.Email,
		},
	}
}
