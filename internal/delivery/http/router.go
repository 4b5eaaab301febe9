package http

import (
	"net/http"

	"clinic-booking-service/internal/delivery/http/handler"
	"clinic-booking-service/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	patientHandler     *handler.PatientHandler
	appointmentHandler *handler.AppointmentHandler
	doctorHandler      *handler.DoctorHandler
	wizardHandler      *handler.WizardHandler
	corsMiddleware     *middleware.CORSMiddleware
}

func NewRouter(
	patientHandler *handler.PatientHandler,
	appointmentHandler *handler.AppointmentHandler,
	doctorHandler *handler.DoctorHandler,
	wizardHandler *handler.WizardHandler,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		patientHandler:     patientHandler,
		appointmentHandler: appointmentHandler,
		doctorHandler:      doctorHandler,
		wizardHandler:      wizardHandler,
		corsMiddleware:     corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Patient intake
	api.HandleFunc("/patients", r.patientHandler.SubmitPatient).Methods(http.MethodPost)
	api.HandleFunc("/patients/{id}", r.patientHandler.GetPatient).Methods(http.MethodGet)

	// Appointments
	api.HandleFunc("/appointments/dates", r.appointmentHandler.GetAvailableDates).Methods(http.MethodGet)
	api.HandleFunc("/appointments/slots", r.appointmentHandler.GetTimeSlots).Methods(http.MethodGet)
	api.HandleFunc("/appointments/token", r.appointmentHandler.IssueToken).Methods(http.MethodPost)
	api.HandleFunc("/appointments/token/{tokenNumber}", r.appointmentHandler.GetTokenDetails).Methods(http.MethodGet)

	// Doctor profile
	api.HandleFunc("/doctors/{id}", r.doctorHandler.GetDoctor).Methods(http.MethodGet)

	// Booking wizard sessions
	wizard := api.PathPrefix("/wizard/sessions").Subrouter()
	wizard.HandleFunc("", r.wizardHandler.OpenSession).Methods(http.MethodPost)
	wizard.HandleFunc("/{id}", r.wizardHandler.GetSession).Methods(http.MethodGet)
	wizard.HandleFunc("/{id}", r.wizardHandler.CloseSession).Methods(http.MethodDelete)
	wizard.HandleFunc("/{id}/patient", r.wizardHandler.SubmitPatient).Methods(http.MethodPost)
	wizard.HandleFunc("/{id}/date", r.wizardHandler.SelectDate).Methods(http.MethodPut)
	wizard.HandleFunc("/{id}/time", r.wizardHandler.SelectTime).Methods(http.MethodPut)
	wizard.HandleFunc("/{id}/confirm", r.wizardHandler.Confirm).Methods(http.MethodPost)
	wizard.HandleFunc("/{id}/back", r.wizardHandler.Back).Methods(http.MethodPost)
	wizard.HandleFunc("/{id}/reset", r.wizardHandler.BookAnother).Methods(http.MethodPost)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
