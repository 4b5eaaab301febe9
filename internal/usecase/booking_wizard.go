package usecase

import (
	"context"
	"errors"
	"sync"

	"clinic-booking-service/internal/delivery/dto"
	"clinic-booking-service/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrWizardBusy          = errors.New("an operation is already in progress")
	ErrInvalidTransition   = errors.New("action not allowed at the current step")
	ErrSelectionIncomplete = errors.New("date and time must both be selected")
	ErrSlotUnavailable     = errors.New("the selected time slot is not available")
)

const (
	submissionFailedMessage = "Unable to save patient information. Please try again."
	issuanceFailedMessage   = "Unable to generate token. Time slot may be full."
)

// Wizard is one booking session's state machine: patient intake, then
// date/time selection, then token issuance. One instance exists per open
// modal session and is never shared between sessions.
//
// Transition rules:
//   - step 2 is reachable only after a registered patient identity exists
//   - step 3 is reachable only with a valid selection and an issued token
//   - a reset clears patient, selection and token together, never partially
type Wizard struct {
	id       uuid.UUID
	doctorID string
	intake   PatientIntakeUsecase
	slots    SlotUsecase
	tokens   TokenUsecase
	log      *logrus.Logger

	mu sync.Mutex
	// busy serializes collaborator calls: while a submission or token
	// issuance is in flight every other transition is rejected.
	busy bool
	// epoch invalidates in-flight collaborator results after a reset so a
	// stale response never resurrects cleared state.
	epoch uint64
	// slotSeq orders slot loads; a response for a superseded date is
	// discarded (last write wins).
	slotSeq   uint64
	step      entity.WizardStep
	patient   *dto.PatientSubmissionResponse
	selection entity.Selection
	slotList  []dto.TimeSlotResponse
	token     *dto.TokenResponse
	errMsg    string
}

func newWizard(
	doctorID string,
	intake PatientIntakeUsecase,
	slots SlotUsecase,
	tokens TokenUsecase,
	log *logrus.Logger,
) *Wizard {
	return &Wizard{
		id:       uuid.New(),
		doctorID: doctorID,
		intake:   intake,
		slots:    slots,
		tokens:   tokens,
		log:      log,
		step:     entity.StepPatientInfo,
	}
}

// ID returns the session identifier.
func (w *Wizard) ID() uuid.UUID {
	return w.id
}

// SubmitPatient runs intake and, on success, advances to date/time
// selection. Validation failures and registration failures both leave the
// wizard at step 1.
func (w *Wizard) SubmitPatient(ctx context.Context, req *dto.SubmitPatientRequest) (*dto.WizardStateResponse, error) {
	w.mu.Lock()
	if w.step != entity.StepPatientInfo {
		w.mu.Unlock()
		return nil, ErrInvalidTransition
	}
	if w.busy {
		w.mu.Unlock()
		return nil, ErrWizardBusy
	}
	w.busy = true
	epoch := w.epoch
	w.mu.Unlock()

	result, err := w.intake.Submit(ctx, req)

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.epoch != epoch {
		// Session was reset while the submission was in flight.
		return w.state(), nil
	}
	w.busy = false

	if err != nil {
		var ve *ValidationError
		if !errors.As(err, &ve) {
			w.errMsg = submissionFailedMessage
		}
		return w.state(), err
	}

	w.patient = result
	w.step = entity.StepDateTime
	w.errMsg = ""
	w.log.Infof("Wizard %s: patient %s captured, advancing to date/time", w.id, result.PatientID)
	return w.state(), nil
}

// SelectDate records a new date pick and loads its slots. Changing the date
// always clears the previously selected time, since availability is
// date-dependent. A slot load superseded by a newer date pick, or failing
// outright, leaves an empty slot list rather than stale data.
func (w *Wizard) SelectDate(ctx context.Context, date string) (*dto.WizardStateResponse, error) {
	w.mu.Lock()
	if w.step != entity.StepDateTime {
		w.mu.Unlock()
		return nil, ErrInvalidTransition
	}
	if w.busy {
		w.mu.Unlock()
		return nil, ErrWizardBusy
	}
	w.selection.Date = date
	w.selection.Time = ""
	w.slotList = nil
	w.slotSeq++
	seq := w.slotSeq
	epoch := w.epoch
	w.mu.Unlock()

	resp, err := w.slots.ListTimeSlots(ctx, w.doctorID, date)

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.epoch != epoch || w.slotSeq != seq {
		// A newer date selection or a reset superseded this load.
		return w.state(), nil
	}

	if err != nil {
		w.log.Warnf("Wizard %s: slot load failed for %s: %+v", w.id, date, err)
		w.slotList = nil
		return w.state(), nil
	}

	w.slotList = resp.Slots
	return w.state(), nil
}

// SelectTime records a time pick for the current date. The slot must exist
// in the loaded catalog and be available.
func (w *Wizard) SelectTime(slotTime string) (*dto.WizardStateResponse, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.step != entity.StepDateTime {
		return nil, ErrInvalidTransition
	}
	if w.busy {
		return nil, ErrWizardBusy
	}
	if w.selection.Date == "" {
		return nil, ErrSelectionIncomplete
	}

	for _, slot := range w.slotList {
		if slot.Time == slotTime {
			if !slot.Available {
				return nil, ErrSlotUnavailable
			}
			w.selection.Time = slotTime
			return w.state(), nil
		}
	}
	return nil, ErrSlotUnavailable
}

// Back returns to the patient-info step. The captured identity is retained,
// but re-entry shows a fresh form; stored fields are not echoed back.
func (w *Wizard) Back() (*dto.WizardStateResponse, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.step != entity.StepDateTime {
		return nil, ErrInvalidTransition
	}
	if w.busy {
		return nil, ErrWizardBusy
	}

	w.step = entity.StepPatientInfo
	w.errMsg = ""
	return w.state(), nil
}

// Confirm issues the appointment token. It requires a captured patient and
// a valid selection, and rejects re-entry while issuance is in flight.
// Issuance failure keeps the wizard at step 2 with an error banner; captured
// patient and selection are preserved for retry.
func (w *Wizard) Confirm(ctx context.Context) (*dto.WizardStateResponse, error) {
	w.mu.Lock()
	if w.step != entity.StepDateTime {
		w.mu.Unlock()
		return nil, ErrInvalidTransition
	}
	if w.busy {
		w.mu.Unlock()
		return nil, ErrWizardBusy
	}
	if w.patient == nil || !w.selection.IsValid() {
		w.mu.Unlock()
		return nil, ErrSelectionIncomplete
	}
	w.busy = true
	epoch := w.epoch
	req := &dto.IssueTokenRequest{
		PatientID: w.patient.PatientID,
		DoctorID:  w.doctorID,
		Date:      w.selection.Date,
		Time:      w.selection.Time,
		Reason:    w.patient.Patient.Reason,
	}
	w.mu.Unlock()

	token, err := w.tokens.Issue(ctx, req)

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.epoch != epoch {
		return w.state(), nil
	}
	w.busy = false

	if err != nil {
		w.errMsg = issuanceFailedMessage
		w.log.Warnf("Wizard %s: token issuance failed: %+v", w.id, err)
		return w.state(), nil
	}

	w.token = token
	w.step = entity.StepConfirmed
	w.errMsg = ""
	w.log.Infof("Wizard %s: confirmed, token=%s", w.id, token.TokenNumber)
	return w.state(), nil
}

// BookAnother fully resets a confirmed session so the patient can start a
// new booking in the same modal.
func (w *Wizard) BookAnother() (*dto.WizardStateResponse, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.step != entity.StepConfirmed {
		return nil, ErrInvalidTransition
	}

	w.reset()
	return w.state(), nil
}

// Close fully resets the session. Any in-flight collaborator result is
// discarded when it lands.
func (w *Wizard) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.reset()
}

// State returns a snapshot of the session.
func (w *Wizard) State() *dto.WizardStateResponse {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state()
}

// reset restores the initial state. Caller must hold w.mu.
func (w *Wizard) reset() {
	w.epoch++
	w.slotSeq++
	w.busy = false
	w.step = entity.StepPatientInfo
	w.patient = nil
	w.selection = entity.Selection{}
	w.slotList = nil
	w.token = nil
	w.errMsg = ""
}

// state builds the snapshot DTO. Caller must hold w.mu.
func (w *Wizard) state() *dto.WizardStateResponse {
	return &dto.WizardStateResponse{
		SessionID:  w.id.String(),
		DoctorID:   w.doctorID,
		Step:       int(w.step),
		StepName:   w.step.String(),
		Generating: w.busy,
		Patient:    w.patient,
		Selection: dto.SelectionResponse{
			Date:    w.selection.Date,
			Time:    w.selection.Time,
			IsValid: w.selection.IsValid(),
		},
		Slots:        w.slotList,
		Token:        w.token,
		ErrorMessage: w.errMsg,
	}
}
