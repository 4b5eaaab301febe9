package service

import (
	"math/rand"
	"sync"
)

// OutcomePolicy decides whether a simulated collaborator call succeeds.
// The stand-in backend takes one per collaborator so tests can force
// deterministic outcomes instead of probabilistic ones.
type OutcomePolicy interface {
	Allow() bool
}

type fixedPolicy bool

func (p fixedPolicy) Allow() bool {
	return bool(p)
}

// AlwaysSucceed returns a policy that allows every call.
func AlwaysSucceed() OutcomePolicy {
	return fixedPolicy(true)
}

// AlwaysFail returns a policy that rejects every call.
func AlwaysFail() OutcomePolicy {
	return fixedPolicy(false)
}

// RatePolicy fails a configurable fraction of calls using an injected
// random source.
type RatePolicy struct {
	mu          sync.Mutex
	failureRate float64
	rng         *rand.Rand
}

// NewRatePolicy builds a policy failing failureRate of calls (0.0 to 1.0).
func NewRatePolicy(failureRate float64, seed int64) *RatePolicy {
	return &RatePolicy{
		failureRate: failureRate,
		rng:         rand.New(rand.NewSource(seed)),
	}
}

func (p *RatePolicy) Allow() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rng.Float64() >= p.failureRate
}
