package usecase

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var ErrWizardNotFound = errors.New("wizard session not found")

const (
	// Interval for sweeping abandoned sessions
	sessionSweepInterval = 10 * time.Minute

	// How long a session must be untouched before it is dropped
	sessionStaleThreshold = 30 * time.Minute
)

// wizardSession tracks last use for the stale sweep
type wizardSession struct {
	wizard   *Wizard
	lastUsed atomic.Int64 // Unix timestamp
}

// WizardManager owns the live booking-wizard sessions. Each modal open
// creates an independent session; abandoned sessions are swept by a
// background goroutine. Call Stop() during graceful shutdown.
type WizardManager struct {
	intake          PatientIntakeUsecase
	slots           SlotUsecase
	tokens          TokenUsecase
	defaultDoctorID string
	log             *logrus.Logger

	mu       sync.RWMutex
	sessions map[uuid.UUID]*wizardSession

	stopChan chan struct{}
	wg       sync.WaitGroup
	stopped  atomic.Bool
}

func NewWizardManager(
	intake PatientIntakeUsecase,
	slots SlotUsecase,
	tokens TokenUsecase,
	defaultDoctorID string,
	log *logrus.Logger,
) *WizardManager {
	m := &WizardManager{
		intake:          intake,
		slots:           slots,
		tokens:          tokens,
		defaultDoctorID: defaultDoctorID,
		log:             log,
		sessions:        make(map[uuid.UUID]*wizardSession),
		stopChan:        make(chan struct{}),
	}

	m.wg.Add(1)
	go m.sweepLoop()

	return m
}

// Open creates a new wizard session for the given doctor. An empty doctor
// id falls back to the configured default.
func (m *WizardManager) Open(doctorID string) *Wizard {
	if doctorID == "" {
		doctorID = m.defaultDoctorID
	}

	w := newWizard(doctorID, m.intake, m.slots, m.tokens, m.log)
	session := &wizardSession{wizard: w}
	session.lastUsed.Store(time.Now().Unix())

	m.mu.Lock()
	m.sessions[w.ID()] = session
	m.mu.Unlock()

	m.log.Infof("Wizard session opened: id=%s, doctor=%s", w.ID(), doctorID)
	return w
}

// Get returns a live session and marks it as used.
func (m *WizardManager) Get(id uuid.UUID) (*Wizard, error) {
	m.mu.RLock()
	session, ok := m.sessions[id]
	m.mu.RUnlock()

	if !ok {
		return nil, ErrWizardNotFound
	}

	session.lastUsed.Store(time.Now().Unix())
	return session.wizard, nil
}

// Close resets and removes a session.
func (m *WizardManager) Close(id uuid.UUID) error {
	m.mu.Lock()
	session, ok := m.sessions[id]
	if ok {
		delete(m.sessions, id)
	}
	m.mu.Unlock()

	if !ok {
		return ErrWizardNotFound
	}

	session.wizard.Close()
	m.log.Infof("Wizard session closed: id=%s", id)
	return nil
}

// Len returns the number of live sessions.
func (m *WizardManager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Stop shuts down the sweep goroutine. Safe to call multiple times.
func (m *WizardManager) Stop() {
	if m.stopped.CompareAndSwap(false, true) {
		close(m.stopChan)
		m.wg.Wait()
		m.log.Info("WizardManager stopped")
	}
}

func (m *WizardManager) sweepLoop() {
	defer m.wg.Done()

	ticker := time.NewTicker(sessionSweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-m.stopChan:
			return
		case <-ticker.C:
			m.sweepStaleSessions()
		}
	}
}

// sweepStaleSessions drops sessions untouched past the stale threshold.
func (m *WizardManager) sweepStaleSessions() {
	cutoff := time.Now().Add(-sessionStaleThreshold).Unix()
	var stale []uuid.UUID

	m.mu.RLock()
	for id, session := range m.sessions {
		if session.lastUsed.Load() < cutoff {
			stale = append(stale, id)
		}
	}
	m.mu.RUnlock()

	for _, id := range stale {
		if err := m.Close(id); err == nil {
			m.log.Debugf("Swept stale wizard session: id=%s", id)
		}
	}
}
