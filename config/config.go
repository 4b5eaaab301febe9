package config

import (
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig
	Clinic  ClinicConfig
	DB      DBConfig
	Redis   RedisConfig
	Standin StandinConfig
}

type AppConfig struct {
	Port string
	Env  string
}

// ClinicConfig describes the clinic's booking calendar.
type ClinicConfig struct {
	DefaultDoctorID string
	// ClosedWeekday is the weekday the clinic does not take bookings
	// (0 = Sunday ... 6 = Saturday).
	ClosedWeekday int
	// SlotCapacity caps bookings per slot in database mode. 0 disables the cap.
	SlotCapacity int
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// StandinConfig tunes the in-memory stand-in backend used when no
// database is configured.
type StandinConfig struct {
	Latency            time.Duration
	PatientFailureRate float64
	TokenFailureRate   float64
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	setDefaults()

	// The .env file is optional; environment variables alone are enough.
	if _, err := os.Stat(".env"); err == nil {
		if err := viper.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	latency, err := time.ParseDuration(viper.GetString("STANDIN_LATENCY"))
	if err != nil {
		latency = 50 * time.Millisecond
	}

	config := &Config{
		App: AppConfig{
			Port: viper.GetString("APP_PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		Clinic: ClinicConfig{
			DefaultDoctorID: viper.GetString("CLINIC_DEFAULT_DOCTOR_ID"),
			ClosedWeekday:   viper.GetInt("CLINIC_CLOSED_WEEKDAY"),
			SlotCapacity:    viper.GetInt("CLINIC_SLOT_CAPACITY"),
		},
		DB: DBConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Standin: StandinConfig{
			Latency:            latency,
			PatientFailureRate: viper.GetFloat64("STANDIN_PATIENT_FAILURE_RATE"),
			TokenFailureRate:   viper.GetFloat64("STANDIN_TOKEN_FAILURE_RATE"),
		},
	}

	return config, nil
}

// UseDatabase reports whether a real backend is configured. Absent database
// settings mean the built-in stand-in collaborators serve all data.
func (c *Config) UseDatabase() bool {
	return c.DB.Host != ""
}

func setDefaults() {
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("CLINIC_DEFAULT_DOCTOR_ID", "dr-somasree-rc")
	viper.SetDefault("CLINIC_CLOSED_WEEKDAY", 0)
	viper.SetDefault("CLINIC_SLOT_CAPACITY", 8)
	viper.SetDefault("STANDIN_LATENCY", "50ms")
	viper.SetDefault("STANDIN_PATIENT_FAILURE_RATE", 0.05)
	viper.SetDefault("STANDIN_TOKEN_FAILURE_RATE", 0.1)
}
