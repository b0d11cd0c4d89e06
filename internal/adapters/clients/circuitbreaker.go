package clients

import (
	"sync"
	"time"

	"github.com/jsamuelsen/quotations-service/internal/platform/config"
)

// State represents the current state of the circuit breaker.
type State int

const (
	// StateClosed lets every request through.
	StateClosed State = iota

	// StateOpen blocks requests until the cool-down has elapsed.
	StateOpen

	// StateHalfOpen lets a limited number of probe requests through.
	StateHalfOpen
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

// CircuitBreaker stops calls to a downstream service that keeps failing.
//
// State transitions:
//   - Closed → Open: after MaxFailures consecutive failures
//   - Open → HalfOpen: once Timeout has passed since the last failure
//   - HalfOpen → Closed: after HalfOpenLimit consecutive successes
//   - HalfOpen → Open: on any failure
type CircuitBreaker struct {
	mu        sync.Mutex
	state     State
	failures  int
	successes int
	inFlight  int // probes admitted while half-open
	openedAt  time.Time
	cfg       config.CircuitBreakerConfig

	onStateChange func(from, to State)
	now           func() time.Time
}

// NewCircuitBreaker creates a closed breaker.
func NewCircuitBreaker(cfg config.CircuitBreakerConfig) *CircuitBreaker {
	if cfg.MaxFailures < 1 {
		cfg.MaxFailures = 1
	}
	if cfg.HalfOpenLimit < 1 {
		cfg.HalfOpenLimit = 1
	}

	return &CircuitBreaker{cfg: cfg, now: time.Now}
}

// OnStateChange registers fn to be called after every transition. fn runs on the goroutine
// that caused the transition, outside the breaker's lock.
func (cb *CircuitBreaker) OnStateChange(fn func(from, to State)) {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.onStateChange = fn
}

// Allow reports whether a request may proceed. Callers that get true must report the outcome
// with RecordSuccess or RecordFailure.
func (cb *CircuitBreaker) Allow() bool {
	cb.mu.Lock()
	var notify func()
	defer func() {
		cb.mu.Unlock()
		if notify != nil {
			notify()
		}
	}()

	switch cb.state {
	case StateClosed:
		return true

	case StateOpen:
		if cb.now().Sub(cb.openedAt) < cb.cfg.Timeout {
			return false
		}
		notify = cb.transitionTo(StateHalfOpen)
		cb.inFlight = 1
		return true

	case StateHalfOpen:
		if cb.inFlight >= cb.cfg.HalfOpenLimit {
			return false
		}
		cb.inFlight++
		return true

	default:
		return false
	}
}

func (cb *CircuitBreaker) RecordSuccess() {
	cb.mu.Lock()
	var notify func()

	switch cb.state {
	case StateClosed:
		cb.failures = 0

	case StateHalfOpen:
		cb.inFlight--
		cb.successes++
		if cb.successes >= cb.cfg.HalfOpenLimit {
			notify = cb.transitionTo(StateClosed)
		}
	}

	cb.mu.Unlock()
	if notify != nil {
		notify()
	}
}

func (cb *CircuitBreaker) RecordFailure() {
	cb.mu.Lock()
	var notify func()

	switch cb.state {
	case StateClosed:
		cb.failures++
		if cb.failures >= cb.cfg.MaxFailures {
			notify = cb.transitionTo(StateOpen)
		}

	case StateHalfOpen:
		cb.inFlight--
		notify = cb.transitionTo(StateOpen)
	}

	cb.mu.Unlock()
	if notify != nil {
		notify()
	}
}

func (cb *CircuitBreaker) State() State {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}

// transitionTo must be called with the lock held. It returns the pending notification, if any.
func (cb *CircuitBreaker) transitionTo(next State) func() {
	if cb.state == next {
		return nil
	}

	prev := cb.state
	cb.state = next
	cb.failures = 0
	cb.successes = 0
	if next == StateOpen {
		cb.openedAt = cb.now()
	}
	if next != StateHalfOpen {
		cb.inFlight = 0
	}

	fn := cb.onStateChange
	if fn == nil {
		return nil
	}

	return func() { fn(prev, next) }
}
