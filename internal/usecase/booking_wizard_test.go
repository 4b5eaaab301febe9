package usecase

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"clinic-booking-service/internal/delivery/dto"
	domainRepo "clinic-booking-service/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Deterministic collaborator stubs. Each optionally blocks its first call
// on a gate channel so tests can hold an operation in flight.

type stubIntake struct {
	result *dto.PatientSubmissionResponse
	err    error

	gate    chan struct{}
	started chan struct{}
	calls   atomic.Int32
}

func (s *stubIntake) Submit(ctx context.Context, req *dto.SubmitPatientRequest) (*dto.PatientSubmissionResponse, error) {
	if s.calls.Add(1) == 1 && s.gate != nil {
		if s.started != nil {
			close(s.started)
		}
		<-s.gate
	}
	return s.result, s.err
}

func (s *stubIntake) GetPatient(ctx context.Context, id string) (*dto.PatientResponse, error) {
	return nil, ErrPatientNotFound
}

type stubSlots struct {
	byDate map[string][]dto.TimeSlotResponse
	err    error

	gate    chan struct{}
	started chan struct{}
	calls   atomic.Int32
}

func (s *stubSlots) ListAvailableDates(ref time.Time) *dto.DateListResponse {
	return &dto.DateListResponse{}
}

func (s *stubSlots) ListTimeSlots(ctx context.Context, doctorID, date string) (*dto.SlotListResponse, error) {
	if s.calls.Add(1) == 1 && s.gate != nil {
		if s.started != nil {
			close(s.started)
		}
		<-s.gate
	}
	if s.err != nil {
		return nil, s.err
	}
	slots := s.byDate[date]
	return &dto.SlotListResponse{Slots: slots, Total: len(slots)}, nil
}

type stubTokens struct {
	result *dto.TokenResponse
	err    error

	gate    chan struct{}
	started chan struct{}
	calls   atomic.Int32
}

func (s *stubTokens) Issue(ctx context.Context, req *dto.IssueTokenRequest) (*dto.TokenResponse, error) {
	if s.calls.Add(1) == 1 && s.gate != nil {
		if s.started != nil {
			close(s.started)
		}
		<-s.gate
	}
	return s.result, s.err
}

func (s *stubTokens) GetTokenDetails(ctx context.Context, tokenNumber string) (*dto.TokenResponse, error) {
	return nil, ErrTokenNotFound
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func registeredPatient() *dto.PatientSubmissionResponse {
	return &dto.PatientSubmissionResponse{
		PatientID: "PAT-12345678",
		Patient: dto.PatientResponse{
			ID:     "PAT-12345678",
			Name:   "Asha Nair",
			Email:  "asha@example.com",
			Phone:  "+919539581258",
			Reason: "Back pain",
		},
	}
}

func openSlots(date string) map[string][]dto.TimeSlotResponse {
	return map[string][]dto.TimeSlotResponse{
		date: {
			{Time: "10:00", Label: "10:00 AM", Available: true, BookingCount: 2},
			{Time: "12:30", Label: "12:30 PM", Available: false, BookingCount: 8},
		},
	}
}

func issuedToken() *dto.TokenResponse {
	return &dto.TokenResponse{
		TokenNumber:   "T4F2A1C",
		AppointmentID: "APT-20260304-9B1E2F",
	}
}

func submitRequest() *dto.SubmitPatientRequest {
	return &dto.SubmitPatientRequest{
		Name:   "Asha Nair",
		Email:  "asha@example.com",
		Phone:  "+919539581258",
		Reason: "Back pain",
	}
}

// testWizard builds a wizard wired to happy-path stubs.
func testWizard() (*Wizard, *stubIntake, *stubSlots, *stubTokens) {
	intake := &stubIntake{result: registeredPatient()}
	slots := &stubSlots{byDate: openSlots("2026-03-04")}
	tokens := &stubTokens{result: issuedToken()}
	w := newWizard("dr-somasree-rc", intake, slots, tokens, testLogger())
	return w, intake, slots, tokens
}

// advanceToDateTime submits the patient so the wizard sits at step 2.
func advanceToDateTime(t *testing.T, w *Wizard) {
	t.Helper()
	state, err := w.SubmitPatient(context.Background(), submitRequest())
	require.NoError(t, err)
	require.Equal(t, 2, state.Step)
}

func TestWizard_HappyPath(t *testing.T) {
	w, _, _, _ := testWizard()
	ctx := context.Background()

	state := w.State()
	assert.Equal(t, 1, state.Step)
	assert.False(t, state.Generating)
	assert.Nil(t, state.Patient)

	state, err := w.SubmitPatient(ctx, submitRequest())
	require.NoError(t, err)
	assert.Equal(t, 2, state.Step)
	require.NotNil(t, state.Patient)
	assert.Equal(t, "PAT-12345678", state.Patient.PatientID)

	state, err = w.SelectDate(ctx, "2026-03-04")
	require.NoError(t, err)
	assert.Equal(t, "2026-03-04", state.Selection.Date)
	assert.Empty(t, state.Selection.Time)
	assert.Len(t, state.Slots, 2)

	state, err = w.SelectTime("10:00")
	require.NoError(t, err)
	assert.Equal(t, "10:00", state.Selection.Time)
	assert.True(t, state.Selection.IsValid)

	state, err = w.Confirm(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, state.Step)
	require.NotNil(t, state.Token)
	assert.Equal(t, "T4F2A1C", state.Token.TokenNumber)
	assert.Empty(t, state.ErrorMessage)
}

func TestWizard_SubmitValidationFailure(t *testing.T) {
	w, intake, _, _ := testWizard()
	intake.result = nil
	intake.err = &ValidationError{Fields: map[string]string{"Email": "Email must be a valid email address"}}

	state, err := w.SubmitPatient(context.Background(), submitRequest())

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, 1, state.Step)
	assert.Nil(t, state.Patient)
	assert.Empty(t, state.ErrorMessage)
}

func TestWizard_SubmitBackendFailure(t *testing.T) {
	w, intake, _, _ := testWizard()
	intake.result = nil
	intake.err = domainRepo.ErrBackendUnavailable

	state, err := w.SubmitPatient(context.Background(), submitRequest())

	require.ErrorIs(t, err, domainRepo.ErrBackendUnavailable)
	assert.Equal(t, 1, state.Step)
	assert.Equal(t, "Unable to save patient information. Please try again.", state.ErrorMessage)

	// A retry can still succeed.
	intake.result = registeredPatient()
	intake.err = nil
	state, err = w.SubmitPatient(context.Background(), submitRequest())
	require.NoError(t, err)
	assert.Equal(t, 2, state.Step)
	assert.Empty(t, state.ErrorMessage)
}

func TestWizard_SelectDateClearsTime(t *testing.T) {
	w, _, slots, _ := testWizard()
	slots.byDate["2026-03-05"] = slots.byDate["2026-03-04"]
	ctx := context.Background()
	advanceToDateTime(t, w)

	_, err := w.SelectDate(ctx, "2026-03-04")
	require.NoError(t, err)
	_, err = w.SelectTime("10:00")
	require.NoError(t, err)

	state, err := w.SelectDate(ctx, "2026-03-05")
	require.NoError(t, err)
	assert.Equal(t, "2026-03-05", state.Selection.Date)
	assert.Empty(t, state.Selection.Time)
	assert.False(t, state.Selection.IsValid)
}

func TestWizard_SelectDateSupersededLoadDiscarded(t *testing.T) {
	w, _, slots, _ := testWizard()
	slots.byDate["2026-03-05"] = []dto.TimeSlotResponse{
		{Time: "14:00", Label: "2:00 PM", Available: true},
	}
	slots.gate = make(chan struct{})
	slots.started = make(chan struct{})
	ctx := context.Background()
	advanceToDateTime(t, w)

	// First pick hangs in the collaborator.
	firstDone := make(chan struct{})
	go func() {
		defer close(firstDone)
		w.SelectDate(ctx, "2026-03-04")
	}()
	<-slots.started

	// Second pick lands while the first is still loading.
	state, err := w.SelectDate(ctx, "2026-03-05")
	require.NoError(t, err)
	require.Len(t, state.Slots, 1)
	assert.Equal(t, "14:00", state.Slots[0].Time)

	// Releasing the stale load must not overwrite the newer result.
	close(slots.gate)
	<-firstDone

	state = w.State()
	assert.Equal(t, "2026-03-05", state.Selection.Date)
	require.Len(t, state.Slots, 1)
	assert.Equal(t, "14:00", state.Slots[0].Time)
}

func TestWizard_SelectDateLoadFailure(t *testing.T) {
	w, _, slots, _ := testWizard()
	slots.err = domainRepo.ErrBackendUnavailable
	advanceToDateTime(t, w)

	state, err := w.SelectDate(context.Background(), "2026-03-04")
	require.NoError(t, err)
	assert.Equal(t, "2026-03-04", state.Selection.Date)
	assert.Empty(t, state.Slots)
}

func TestWizard_SelectTimeRequiresDate(t *testing.T) {
	w, _, _, _ := testWizard()
	advanceToDateTime(t, w)

	_, err := w.SelectTime("10:00")
	assert.ErrorIs(t, err, ErrSelectionIncomplete)
}

func TestWizard_SelectTimeUnavailableSlot(t *testing.T) {
	w, _, _, _ := testWizard()
	ctx := context.Background()
	advanceToDateTime(t, w)

	_, err := w.SelectDate(ctx, "2026-03-04")
	require.NoError(t, err)

	_, err = w.SelectTime("12:30")
	assert.ErrorIs(t, err, ErrSlotUnavailable)

	_, err = w.SelectTime("23:00")
	assert.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestWizard_StepGuards(t *testing.T) {
	w, _, _, _ := testWizard()
	ctx := context.Background()

	// Step 1: only patient submission is allowed.
	_, err := w.SelectDate(ctx, "2026-03-04")
	assert.ErrorIs(t, err, ErrInvalidTransition)
	_, err = w.SelectTime("10:00")
	assert.ErrorIs(t, err, ErrInvalidTransition)
	_, err = w.Confirm(ctx)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	_, err = w.Back()
	assert.ErrorIs(t, err, ErrInvalidTransition)
	_, err = w.BookAnother()
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// Step 2: no re-submission, no reset.
	advanceToDateTime(t, w)
	_, err = w.SubmitPatient(ctx, submitRequest())
	assert.ErrorIs(t, err, ErrInvalidTransition)
	_, err = w.BookAnother()
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestWizard_Back(t *testing.T) {
	w, _, _, _ := testWizard()
	ctx := context.Background()
	advanceToDateTime(t, w)

	state, err := w.Back()
	require.NoError(t, err)
	assert.Equal(t, 1, state.Step)

	// The captured identity survives; a fresh submission is allowed.
	assert.NotNil(t, state.Patient)
	state, err = w.SubmitPatient(ctx, submitRequest())
	require.NoError(t, err)
	assert.Equal(t, 2, state.Step)
}

func TestWizard_ConfirmWithoutSelection(t *testing.T) {
	w, _, _, _ := testWizard()
	ctx := context.Background()
	advanceToDateTime(t, w)

	_, err := w.Confirm(ctx)
	assert.ErrorIs(t, err, ErrSelectionIncomplete)

	_, err = w.SelectDate(ctx, "2026-03-04")
	require.NoError(t, err)

	// Date alone is not enough.
	_, err = w.Confirm(ctx)
	assert.ErrorIs(t, err, ErrSelectionIncomplete)
}

func TestWizard_ConfirmIssuanceFailureKeepsState(t *testing.T) {
	w, _, _, tokens := testWizard()
	tokens.result = nil
	tokens.err = domainRepo.ErrSlotFull
	ctx := context.Background()
	advanceToDateTime(t, w)

	_, err := w.SelectDate(ctx, "2026-03-04")
	require.NoError(t, err)
	_, err = w.SelectTime("10:00")
	require.NoError(t, err)

	state, err := w.Confirm(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, state.Step)
	assert.Nil(t, state.Token)
	assert.Equal(t, "Unable to generate token. Time slot may be full.", state.ErrorMessage)

	// Patient and selection survive for a retry.
	assert.NotNil(t, state.Patient)
	assert.Equal(t, "2026-03-04", state.Selection.Date)
	assert.Equal(t, "10:00", state.Selection.Time)

	tokens.result = issuedToken()
	tokens.err = nil
	state, err = w.Confirm(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, state.Step)
	assert.Empty(t, state.ErrorMessage)
}

func TestWizard_ConfirmPassesBookingDetails(t *testing.T) {
	w, _, _, _ := testWizard()
	captured := &stubTokens{result: issuedToken()}
	var got *dto.IssueTokenRequest
	w.tokens = issueRecorder{inner: captured, got: &got}
	ctx := context.Background()
	advanceToDateTime(t, w)

	_, err := w.SelectDate(ctx, "2026-03-04")
	require.NoError(t, err)
	_, err = w.SelectTime("10:00")
	require.NoError(t, err)
	_, err = w.Confirm(ctx)
	require.NoError(t, err)

	require.NotNil(t, got)
	assert.Equal(t, "PAT-12345678", got.PatientID)
	assert.Equal(t, "dr-somasree-rc", got.DoctorID)
	assert.Equal(t, "2026-03-04", got.Date)
	assert.Equal(t, "10:00", got.Time)
	assert.Equal(t, "Back pain", got.Reason)
}

type issueRecorder struct {
	inner TokenUsecase
	got   **dto.IssueTokenRequest
}

func (r issueRecorder) Issue(ctx context.Context, req *dto.IssueTokenRequest) (*dto.TokenResponse, error) {
	*r.got = req
	return r.inner.Issue(ctx, req)
}

func (r issueRecorder) GetTokenDetails(ctx context.Context, tokenNumber string) (*dto.TokenResponse, error) {
	return r.inner.GetTokenDetails(ctx, tokenNumber)
}

func TestWizard_BusyRejectsTransitions(t *testing.T) {
	w, _, _, tokens := testWizard()
	tokens.gate = make(chan struct{})
	tokens.started = make(chan struct{})
	ctx := context.Background()
	advanceToDateTime(t, w)

	_, err := w.SelectDate(ctx, "2026-03-04")
	require.NoError(t, err)
	_, err = w.SelectTime("10:00")
	require.NoError(t, err)

	confirmDone := make(chan struct{})
	go func() {
		defer close(confirmDone)
		w.Confirm(ctx)
	}()
	<-tokens.started

	assert.True(t, w.State().Generating)

	// Everything is rejected while issuance is in flight.
	_, err = w.Confirm(ctx)
	assert.ErrorIs(t, err, ErrWizardBusy)
	_, err = w.SelectDate(ctx, "2026-03-05")
	assert.ErrorIs(t, err, ErrWizardBusy)
	_, err = w.SelectTime("10:00")
	assert.ErrorIs(t, err, ErrWizardBusy)
	_, err = w.Back()
	assert.ErrorIs(t, err, ErrWizardBusy)

	close(tokens.gate)
	<-confirmDone

	state := w.State()
	assert.False(t, state.Generating)
	assert.Equal(t, 3, state.Step)
}

func TestWizard_CloseDiscardsInFlightResult(t *testing.T) {
	w, _, _, tokens := testWizard()
	tokens.gate = make(chan struct{})
	tokens.started = make(chan struct{})
	ctx := context.Background()
	advanceToDateTime(t, w)

	_, err := w.SelectDate(ctx, "2026-03-04")
	require.NoError(t, err)
	_, err = w.SelectTime("10:00")
	require.NoError(t, err)

	confirmDone := make(chan struct{})
	go func() {
		defer close(confirmDone)
		w.Confirm(ctx)
	}()
	<-tokens.started

	// Reset while the issuance is still in flight.
	w.Close()

	close(tokens.gate)
	<-confirmDone

	// The stale result must not resurrect cleared state.
	state := w.State()
	assert.Equal(t, 1, state.Step)
	assert.Nil(t, state.Patient)
	assert.Nil(t, state.Token)
	assert.False(t, state.Generating)
	assert.Empty(t, state.Selection.Date)
}

func TestWizard_BookAnotherFullReset(t *testing.T) {
	w, _, _, _ := testWizard()
	ctx := context.Background()
	advanceToDateTime(t, w)

	_, err := w.SelectDate(ctx, "2026-03-04")
	require.NoError(t, err)
	_, err = w.SelectTime("10:00")
	require.NoError(t, err)
	state, err := w.Confirm(ctx)
	require.NoError(t, err)
	require.Equal(t, 3, state.Step)

	state, err = w.BookAnother()
	require.NoError(t, err)
	assert.Equal(t, 1, state.Step)
	assert.Nil(t, state.Patient)
	assert.Nil(t, state.Token)
	assert.Empty(t, state.Slots)
	assert.Empty(t, state.Selection.Date)
	assert.Empty(t, state.Selection.Time)
	assert.Empty(t, state.ErrorMessage)
}
