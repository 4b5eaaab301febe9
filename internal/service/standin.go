package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"
)

// The stand-in backend replaces the real patient registry, slot provider,
// token issuer and doctor directory when no database is configured. It keeps
// everything in memory, simulates network latency, and routes
// success/failure decisions through an injectable OutcomePolicy.

// simulateLatency blocks for d or until ctx is cancelled.
func simulateLatency(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// randomSuffix returns an n-byte random hex string, e.g. "3F2A1C".
func randomSuffix(n int) string {
	b := make([]byte, n)
	rand.Read(b)
	return fmt.Sprintf("%X", b)
}

// newPatientID generates a unique patient identifier: PAT-XXXXXXXX
func newPatientID() string {
	return fmt.Sprintf("PAT-%s", randomSuffix(4))
}

// newAppointmentID generates a unique appointment identifier: APT-YYYYMMDD-XXXXXX
func newAppointmentID(date string) string {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		d = time.Now().UTC()
	}
	return fmt.Sprintf("APT-%s-%s", d.Format("20060102"), randomSuffix(3))
}

// newTokenNumber generates a display token number: TXXXXXX
func newTokenNumber() string {
	return fmt.Sprintf("T%s", randomSuffix(3))
}
