package service

import (
	"context"
	"sync"
	"time"

	"clinic-booking-service/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// StandinDoctorDirectory serves doctor profiles from a seeded in-memory map.
type StandinDoctorDirectory struct {
	latency time.Duration

	mu       sync.RWMutex
	profiles map[string]entity.DoctorProfile
}

func NewStandinDoctorDirectory(latency time.Duration) *StandinDoctorDirectory {
	d := &StandinDoctorDirectory{
		latency:  latency,
		profiles: make(map[string]entity.DoctorProfile),
	}
	d.Seed(referenceDoctor())
	return d
}

// Seed adds or replaces a profile in the directory.
func (d *StandinDoctorDirectory) Seed(profile entity.DoctorProfile) {
	d.mu.Lock()
	d.profiles[profile.ID] = profile
	d.mu.Unlock()
}

// FindByID returns the seeded profile, or (nil, nil) when unknown.
func (d *StandinDoctorDirectory) FindByID(ctx context.Context, id string) (*entity.DoctorProfile, error) {
	if err := simulateLatency(ctx, d.latency); err != nil {
		return nil, err
	}

	d.mu.RLock()
	profile, ok := d.profiles[id]
	d.mu.RUnlock()

	if !ok {
		return nil, nil
	}
	return &profile, nil
}

// referenceDoctor is the built-in profile served in stand-in mode.
func referenceDoctor() entity.DoctorProfile {
	return entity.DoctorProfile{
		ID:             "dr-somasree-rc",
		Name:           "Dr. Somasree R C",
		Qualifications: entity.StringList{"BAMS", "CRAV (Sports medicine)", "PGDYE"},
		Specialization: "Ayurveda Practitioner",
		IsVerified:     true,
		Rating: entity.DoctorRating{
			Stars: decimal.NewFromFloat(4.5),
			Total: 6800,
		},
		Stats: entity.DoctorStats{
			Patients:   "1.2k",
			Experience: "8 Years",
			Reviews:    "1.3k",
		},
		About: "Experienced Ayurveda practitioner specializing in traditional healing methods, " +
			"sports medicine applications, and yoga therapy. Dedicated to providing holistic " +
			"healthcare solutions with personalized treatment approaches for optimal wellness.",
		Education: entity.StringList{
			"BAMS - Bachelor of Ayurvedic Medicine and Surgery",
			"CRAV - Certificate in Sports Medicine",
			"PGDYE - Post Graduate Diploma in Yoga Education",
		},
		Location: entity.DoctorLocation{
			Clinic:  "Itoozhi Ayurveda",
			Address: "Mayyil P O",
			City:    "Kannur",
		},
		WorkingHours: entity.DoctorWorkingHours{
			Time: "8:00 AM to 6:00 PM",
			Days: "Monday - Saturday",
		},
		Contact: entity.DoctorContact{
			Phone: "+919539581258",
			Email: "dr.somasree@doctor-mail.com",
		},
	}
}
