package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinic-booking-service/config"
	deliveryHttp "clinic-booking-service/internal/delivery/http"
	"clinic-booking-service/internal/delivery/http/handler"
	"clinic-booking-service/internal/delivery/http/middleware"
	domainRepo "clinic-booking-service/internal/domain/repository"
	"clinic-booking-service/internal/infrastructure/cache"
	"clinic-booking-service/internal/infrastructure/database"
	"clinic-booking-service/internal/repository"
	"clinic-booking-service/internal/service"
	"clinic-booking-service/internal/usecase"
	"clinic-booking-service/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config        *config.Config
	DB            *gorm.DB
	RedisClient   *redis.Client
	WizardManager *usecase.WizardManager
	Server        *http.Server
}

// New creates a new App instance with all dependencies initialized.
// Without database settings the service runs entirely on the built-in
// in-memory collaborators.
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	log := logrus.StandardLogger()
	calendar := service.NewClinicCalendar(time.Weekday(cfg.Clinic.ClosedWeekday))

	var (
		registry  domainRepo.PatientRegistry
		provider  domainRepo.SlotProvider
		issuer    domainRepo.TokenIssuer
		directory domainRepo.DoctorDirectory
	)

	if cfg.UseDatabase() {
		// Initialize database
		db, err := database.NewPostgresConnection(cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		app.DB = db
		logrus.Info("Database connected successfully")

		// Run migrations
		if err := database.RunMigrations(db); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}

		// Initialize Redis
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		app.RedisClient = redisClient
		logrus.Info("Redis connected successfully")

		counter := service.NewSlotCounter(redisClient, cfg.Clinic.SlotCapacity, log)

		registry = repository.NewPatientRegistry(db)
		provider = repository.NewSlotProvider(db)
		issuer = repository.NewTokenIssuer(db, counter, log)
		directory = repository.NewDoctorDirectory(db)
	} else {
		logrus.Info("No database configured, using in-memory collaborators")

		seed := time.Now().UnixNano()
		registry = service.NewStandinPatientRegistry(
			cfg.Standin.Latency,
			service.NewRatePolicy(cfg.Standin.PatientFailureRate, seed),
			log,
		)
		provider = service.NewStandinSlotProvider(calendar, cfg.Standin.Latency, seed)
		issuer = service.NewStandinTokenIssuer(
			cfg.Standin.Latency,
			service.NewRatePolicy(cfg.Standin.TokenFailureRate, seed),
			seed,
			log,
		)
		directory = service.NewStandinDoctorDirectory(cfg.Standin.Latency)
	}

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize usecases
	intakeUsecase := usecase.NewPatientIntakeUsecase(log, customValidator, registry)
	slotUsecase := usecase.NewSlotUsecase(log, calendar, provider)
	tokenUsecase := usecase.NewTokenUsecase(log, issuer)
	doctorUsecase := usecase.NewDoctorProfileUsecase(log, directory)

	// Initialize wizard session manager
	wizardManager := usecase.NewWizardManager(intakeUsecase, slotUsecase, tokenUsecase, cfg.Clinic.DefaultDoctorID, log)
	app.WizardManager = wizardManager

	// Initialize handlers
	patientHandler := handler.NewPatientHandler(intakeUsecase)
	appointmentHandler := handler.NewAppointmentHandler(slotUsecase, tokenUsecase, customValidator, cfg.Clinic.DefaultDoctorID)
	doctorHandler := handler.NewDoctorHandler(doctorUsecase)
	wizardHandler := handler.NewWizardHandler(wizardManager, customValidator)

	// Initialize middleware
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(patientHandler, appointmentHandler, doctorHandler, wizardHandler, corsMiddleware)
	httpRouter := router.Setup()

	// Create server
	app.Server = &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.App.Port),
		Handler: httpRouter,
	}

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close stops background workers and closes all connections.
func (app *App) Close() {
	// Stop the session sweeper
	if app.WizardManager != nil {
		app.WizardManager.Stop()
	}

	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
