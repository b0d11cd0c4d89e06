// Package metrics exposes review workflow counters to Prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "quotations"

// Review outcomes and side-effect kinds used as label values.
const (
	OutcomeApproved = "approved"
	OutcomeRejected = "rejected"
	OutcomeConflict = "conflict"

	SideEffectIndex   = "index"
	SideEffectCache   = "cache"
	SideEffectEvent   = "event"
	SideEffectCounter = "counter"
)

// Recorder holds the service's business counters.
type Recorder struct {
	submitted       prometheus.Counter
	reviewed        *prometheus.CounterVec
	duplicateChecks *prometheus.CounterVec
	sideEffects     *prometheus.CounterVec
	searchFallbacks prometheus.Counter
}

// New registers the counters with reg. Pass prometheus.DefaultRegisterer to expose them on
// /-/metrics.
func New(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)

	return &Recorder{
		submitted: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "submitted_total",
			Help:      "Quotations submitted for review.",
		}),
		reviewed: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reviewed_total",
			Help:      "Review decisions by outcome.",
		}, []string{"outcome"}),
		duplicateChecks: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "duplicate_checks_total",
			Help:      "Duplicate lookups, labelled by whether any duplicate was found.",
		}, []string{"result"}),
		sideEffects: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "side_effect_failures_total",
			Help:      "Post-commit side effects (index, cache, events) that failed.",
		}, []string{"kind"}),
		searchFallbacks: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "search_fallbacks_total",
			Help:      "Searches served by the database because the search index was unavailable.",
		}),
	}
}

// Noop returns a recorder bound to a private registry, for tests and tools.
func Noop() *Recorder {
	return New(prometheus.NewRegistry())
}

func (r *Recorder) Submitted() { r.submitted.Inc() }

func (r *Recorder) Reviewed(outcome string) { r.reviewed.WithLabelValues(outcome).Inc() }

func (r *Recorder) DuplicateCheck(found bool) {
	result := "none"
	if found {
		result = "found"
	}
	r.duplicateChecks.WithLabelValues(result).Inc()
}

func (r *Recorder) SideEffectFailed(kind string) { r.sideEffects.WithLabelValues(kind).Inc() }

func (r *Recorder) SearchFallback() { r.searchFallbacks.Inc() }
