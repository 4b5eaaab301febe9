package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"clinic-booking-service/internal/delivery/dto"
	domainRepo "clinic-booking-service/internal/domain/repository"
	"clinic-booking-service/internal/usecase"
	"clinic-booking-service/pkg/response"
	"clinic-booking-service/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// WizardHandler exposes the booking wizard as session-scoped endpoints.
// Each modal open on the widget maps to one session.
type WizardHandler struct {
	manager   *usecase.WizardManager
	validator *validator.CustomValidator
}

func NewWizardHandler(manager *usecase.WizardManager, customValidator *validator.CustomValidator) *WizardHandler {
	return &WizardHandler{
		manager:   manager,
		validator: customValidator,
	}
}

func (h *WizardHandler) OpenSession(w http.ResponseWriter, r *http.Request) {
	var req dto.OpenWizardRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
			return
		}
	}

	wizard := h.manager.Open(req.DoctorID)
	response.Success(w, http.StatusCreated, "Booking session opened", wizard.State())
}

func (h *WizardHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	wizard, ok := h.lookup(w, r)
	if !ok {
		return
	}
	response.Success(w, http.StatusOK, "Booking session retrieved", wizard.State())
}

func (h *WizardHandler) SubmitPatient(w http.ResponseWriter, r *http.Request) {
	wizard, ok := h.lookup(w, r)
	if !ok {
		return
	}

	var req dto.SubmitPatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	state, err := wizard.SubmitPatient(r.Context(), &req)
	if err != nil {
		var ve *usecase.ValidationError
		if errors.As(err, &ve) {
			response.ValidationError(w, ve.Fields)
			return
		}
		h.writeTransitionError(w, err, state)
		return
	}

	response.Success(w, http.StatusOK, "Patient information saved successfully!", state)
}

func (h *WizardHandler) SelectDate(w http.ResponseWriter, r *http.Request) {
	wizard, ok := h.lookup(w, r)
	if !ok {
		return
	}

	var req dto.SelectDateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	state, err := wizard.SelectDate(r.Context(), req.Date)
	if err != nil {
		h.writeTransitionError(w, err, state)
		return
	}

	response.Success(w, http.StatusOK, "Date selected", state)
}

func (h *WizardHandler) SelectTime(w http.ResponseWriter, r *http.Request) {
	wizard, ok := h.lookup(w, r)
	if !ok {
		return
	}

	var req dto.SelectTimeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	state, err := wizard.SelectTime(req.Time)
	if err != nil {
		h.writeTransitionError(w, err, state)
		return
	}

	response.Success(w, http.StatusOK, "Time selected", state)
}

func (h *WizardHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	wizard, ok := h.lookup(w, r)
	if !ok {
		return
	}

	state, err := wizard.Confirm(r.Context())
	if err != nil {
		h.writeTransitionError(w, err, state)
		return
	}

	// Issuance failure is part of the wizard state: the widget shows the
	// error banner and stays at step 2.
	response.Success(w, http.StatusOK, "Booking session updated", state)
}

func (h *WizardHandler) Back(w http.ResponseWriter, r *http.Request) {
	wizard, ok := h.lookup(w, r)
	if !ok {
		return
	}

	state, err := wizard.Back()
	if err != nil {
		h.writeTransitionError(w, err, state)
		return
	}

	response.Success(w, http.StatusOK, "Returned to patient information", state)
}

func (h *WizardHandler) BookAnother(w http.ResponseWriter, r *http.Request) {
	wizard, ok := h.lookup(w, r)
	if !ok {
		return
	}

	state, err := wizard.BookAnother()
	if err != nil {
		h.writeTransitionError(w, err, state)
		return
	}

	response.Success(w, http.StatusOK, "Booking session reset", state)
}

func (h *WizardHandler) CloseSession(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sessionID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid session ID", nil)
		return
	}

	if err := h.manager.Close(sessionID); err != nil {
		response.NotFound(w, "Booking session not found")
		return
	}

	response.Success(w, http.StatusOK, "Booking session closed", nil)
}

func (h *WizardHandler) lookup(w http.ResponseWriter, r *http.Request) (*usecase.Wizard, bool) {
	vars := mux.Vars(r)
	sessionID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid session ID", nil)
		return nil, false
	}

	wizard, err := h.manager.Get(sessionID)
	if err != nil {
		response.NotFound(w, "Booking session not found")
		return nil, false
	}
	return wizard, true
}

func (h *WizardHandler) writeTransitionError(w http.ResponseWriter, err error, state interface{}) {
	switch {
	case errors.Is(err, usecase.ErrWizardBusy):
		response.Error(w, http.StatusConflict, "An operation is already in progress", state)
	case errors.Is(err, usecase.ErrInvalidTransition):
		response.Error(w, http.StatusConflict, "Action not allowed at the current step", state)
	case errors.Is(err, usecase.ErrSelectionIncomplete):
		response.Error(w, http.StatusBadRequest, "Date and time must both be selected", state)
	case errors.Is(err, usecase.ErrSlotUnavailable):
		response.Error(w, http.StatusConflict, "The selected time slot is not available", state)
	case errors.Is(err, domainRepo.ErrBackendUnavailable):
		response.Error(w, http.StatusBadGateway, "Unable to save patient information. Please try again.", state)
	default:
		response.InternalServerError(w, "Failed to update booking session")
	}
}
