package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecorder(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := New(reg)

	r.Submitted()
	r.Submitted()
	r.Reviewed(OutcomeApproved)
	r.Reviewed(OutcomeRejected)
	r.Reviewed(OutcomeApproved)
	r.DuplicateCheck(true)
	r.DuplicateCheck(false)
	r.SideEffectFailed(SideEffectIndex)
	r.SearchFallback()

	assert.InDelta(t, 2, testutil.ToFloat64(r.submitted), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(r.reviewed.WithLabelValues(OutcomeApproved)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(r.reviewed.WithLabelValues(OutcomeRejected)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(r.duplicateChecks.WithLabelValues("found")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(r.duplicateChecks.WithLabelValues("none")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(r.sideEffects.WithLabelValues(SideEffectIndex)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(r.searchFallbacks), 0)

	count, err := testutil.GatherAndCount(reg, "quotations_reviewed_total")
	assert.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestNoop_RegistersPrivately(t *testing.T) {
	assert.NotPanics(t, func() {
		Noop().Submitted()
		Noop().Submitted()
	})
}
