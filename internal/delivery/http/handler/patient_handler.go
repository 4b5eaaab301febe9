package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"clinic-booking-service/internal/delivery/dto"
	domainRepo "clinic-booking-service/internal/domain/repository"
	"clinic-booking-service/internal/usecase"
	"clinic-booking-service/pkg/response"

	"github.com/gorilla/mux"
)

type PatientHandler struct {
	intakeUsecase usecase.PatientIntakeUsecase
}

func NewPatientHandler(intakeUsecase usecase.PatientIntakeUsecase) *PatientHandler {
	return &PatientHandler{
		intakeUsecase: intakeUsecase,
	}
}

func (h *PatientHandler) SubmitPatient(w http.ResponseWriter, r *http.Request) {
	var req dto.SubmitPatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	result, err := h.intakeUsecase.Submit(r.Context(), &req)
	if err != nil {
		var ve *usecase.ValidationError
		switch {
		case errors.As(err, &ve):
			response.ValidationError(w, ve.Fields)
		case errors.Is(err, domainRepo.ErrBackendUnavailable):
			response.Error(w, http.StatusBadGateway, "Unable to save patient information. Please try again.", nil)
		default:
			response.InternalServerError(w, "Failed to save patient information")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Patient information saved successfully!", result)
}

func (h *PatientHandler) GetPatient(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	patientID := vars["id"]

	patient, err := h.intakeUsecase.GetPatient(r.Context(), patientID)
	if err != nil {
		if errors.Is(err, usecase.ErrPatientNotFound) {
			response.NotFound(w, "Patient not found")
			return
		}
		response.InternalServerError(w, "Failed to get patient")
		return
	}

	response.Success(w, http.StatusOK, "Patient retrieved successfully", patient)
}
