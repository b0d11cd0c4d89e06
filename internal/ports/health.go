package ports

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

// ErrDuplicateChecker is returned when a checker name is registered twice.
var ErrDuplicateChecker = errors.New("duplicate health checker")

// HealthChecker is implemented by adapters that can report on their backing dependency:
// the database pool, Redis, Meilisearch, the MQTT broker, the author directory.
type HealthChecker interface {
	// Name identifies the dependency in readiness responses.
	Name() string

	// Check returns nil when the dependency is usable.
	Check(ctx context.Context) error
}

// HealthRegistry aggregates the checkers registered at startup.
type HealthRegistry interface {
	// Register adds a critical checker. A failing critical checker makes the service unready.
	Register(checker HealthChecker) error

	// RegisterOptional adds a checker for a dependency the service can run without, such as
	// the search index (queries fall back to the database). Failures degrade the result only.
	RegisterOptional(checker HealthChecker) error

	// CheckAll runs every checker concurrently.
	CheckAll(ctx context.Context) *HealthResult
}

// HealthStatus is the overall or per-check state.
type HealthStatus string

const (
	HealthStatusHealthy   HealthStatus = "healthy"
	HealthStatusDegraded  HealthStatus = "degraded"
	HealthStatusUnhealthy HealthStatus = "unhealthy"
)

// HealthResult is the aggregated readiness report.
type HealthResult struct {
	Status    HealthStatus            `json:"status"`
	Checks    map[string]*CheckResult `json:"checks"`
	Timestamp time.Time               `json:"timestamp"`
}

// Ready reports whether every critical dependency passed.
func (r *HealthResult) Ready() bool { return r.Status != HealthStatusUnhealthy }

// CheckResult is the outcome of a single checker.
type CheckResult struct {
	Status   HealthStatus  `json:"status"`
	Optional bool          `json:"optional,omitempty"`
	Message  string        `json:"message,omitempty"`
	Duration time.Duration `json:"duration"`
}

type registeredChecker struct {
	checker  HealthChecker
	optional bool
}

// DefaultHealthRegistry is the concurrency-safe HealthRegistry used by the service.
type DefaultHealthRegistry struct {
	mu       sync.RWMutex
	checkers []registeredChecker
}

// NewHealthRegistry creates an empty registry.
func NewHealthRegistry() *DefaultHealthRegistry {
	return &DefaultHealthRegistry{}
}

// Register adds a critical checker.
func (r *DefaultHealthRegistry) Register(checker HealthChecker) error {
	return r.add(checker, false)
}

// RegisterOptional adds a non-critical checker.
func (r *DefaultHealthRegistry) RegisterOptional(checker HealthChecker) error {
	return r.add(checker, true)
}

func (r *DefaultHealthRegistry) add(checker HealthChecker, optional bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := checker.Name()
	for _, c := range r.checkers {
		if c.checker.Name() == name {
			return fmt.Errorf("%w: %s", ErrDuplicateChecker, name)
		}
	}

	r.checkers = append(r.checkers, registeredChecker{checker: checker, optional: optional})

	return nil
}

// CheckAll runs all registered checks concurrently and folds them into one status:
// unhealthy if any critical check failed, degraded if only optional ones did.
func (r *DefaultHealthRegistry) CheckAll(ctx context.Context) *HealthResult {
	r.mu.RLock()
	checkers := make([]registeredChecker, len(r.checkers))
	copy(checkers, r.checkers)
	r.mu.RUnlock()

	result := &HealthResult{
		Status:    HealthStatusHealthy,
		Checks:    make(map[string]*CheckResult, len(checkers)),
		Timestamp: time.Now(),
	}

	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)

	for _, rc := range checkers {
		wg.Go(func() {
			start := time.Now()
			err := rc.checker.Check(ctx)

			cr := &CheckResult{
				Status:   HealthStatusHealthy,
				Optional: rc.optional,
				Duration: time.Since(start),
			}
			if err != nil {
				cr.Status = HealthStatusUnhealthy
				cr.Message = err.Error()
			}

			mu.Lock()
			defer mu.Unlock()

			result.Checks[rc.checker.Name()] = cr
			switch {
			case err == nil:
			case !rc.optional:
				result.Status = HealthStatusUnhealthy
			case result.Status == HealthStatusHealthy:
				result.Status = HealthStatusDegraded
			}
		})
	}

	wg.Wait()

	return result
}
