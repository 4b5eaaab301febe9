package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"clinic-booking-service/internal/delivery/dto"
	domainRepo "clinic-booking-service/internal/domain/repository"
	"clinic-booking-service/internal/usecase"
	"clinic-booking-service/pkg/response"
	"clinic-booking-service/pkg/validator"

	"github.com/gorilla/mux"
)

type AppointmentHandler struct {
	slotUsecase     usecase.SlotUsecase
	tokenUsecase    usecase.TokenUsecase
	validator       *validator.CustomValidator
	defaultDoctorID string
}

func NewAppointmentHandler(
	slotUsecase usecase.SlotUsecase,
	tokenUsecase usecase.TokenUsecase,
	customValidator *validator.CustomValidator,
	defaultDoctorID string,
) *AppointmentHandler {
	return &AppointmentHandler{
		slotUsecase:     slotUsecase,
		tokenUsecase:    tokenUsecase,
		validator:       customValidator,
		defaultDoctorID: defaultDoctorID,
	}
}

// GetAvailableDates returns the bookable-date strip from today.
func (h *AppointmentHandler) GetAvailableDates(w http.ResponseWriter, r *http.Request) {
	dates := h.slotUsecase.ListAvailableDates(time.Now())
	response.Success(w, http.StatusOK, "Available dates retrieved successfully", dates)
}

func (h *AppointmentHandler) GetTimeSlots(w http.ResponseWriter, r *http.Request) {
	doctorID := r.URL.Query().Get("doctorId")
	if doctorID == "" {
		doctorID = h.defaultDoctorID
	}
	date := r.URL.Query().Get("date")

	slots, err := h.slotUsecase.ListTimeSlots(r.Context(), doctorID, date)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidDate):
			response.Error(w, http.StatusBadRequest, "Invalid date, use YYYY-MM-DD", nil)
		case errors.Is(err, usecase.ErrMissingDoctorID):
			response.Error(w, http.StatusBadRequest, "Doctor ID is required", nil)
		default:
			response.InternalServerError(w, "Failed to get time slots")
		}
		return
	}

	response.Success(w, http.StatusOK, "Time slots retrieved successfully", slots)
}

func (h *AppointmentHandler) IssueToken(w http.ResponseWriter, r *http.Request) {
	var req dto.IssueTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	token, err := h.tokenUsecase.Issue(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, domainRepo.ErrSlotFull):
			response.Error(w, http.StatusConflict, "Unable to generate token. Time slot may be full.", nil)
		case errors.Is(err, usecase.ErrMissingBookingFields),
			errors.Is(err, usecase.ErrInvalidDate),
			errors.Is(err, usecase.ErrInvalidTimeFormat):
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		case errors.Is(err, domainRepo.ErrBackendUnavailable):
			response.Error(w, http.StatusBadGateway, "Unable to generate token. Please try again.", nil)
		default:
			response.InternalServerError(w, "Failed to generate token")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Appointment token generated successfully!", token)
}

func (h *AppointmentHandler) GetTokenDetails(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	tokenNumber := vars["tokenNumber"]

	token, err := h.tokenUsecase.GetTokenDetails(r.Context(), tokenNumber)
	if err != nil {
		if errors.Is(err, usecase.ErrTokenNotFound) {
			response.NotFound(w, "Token not found")
			return
		}
		response.InternalServerError(w, "Failed to get token details")
		return
	}

	response.Success(w, http.StatusOK, "Token details retrieved successfully", token)
}
