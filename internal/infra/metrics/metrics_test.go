package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRecorder() *Recorder {
	return NewRecorder(prometheus.NewRegistry())
}

func TestRecorder_ObserveDispatch(t *testing.T) {
	t.Parallel()

	r := newTestRecorder()
	r.ObserveDispatch("new_story", nil)
	r.ObserveDispatch("new_story", nil)
	r.ObserveDispatch("story_reaction", errors.New("gateway down"))

	assert.InDelta(t, 2, testutil.ToFloat64(r.pushDispatch.WithLabelValues("new_story", ResultSuccess)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(r.pushDispatch.WithLabelValues("story_reaction", ResultFailure)), 0)
	assert.InDelta(t, 0, testutil.ToFloat64(r.pushDispatch.WithLabelValues("story_reaction", ResultSuccess)), 0)
}

func TestRecorder_ObserveEvent(t *testing.T) {
	t.Parallel()

	r := newTestRecorder()
	r.ObserveEvent("stories", "handled")
	r.ObserveEvent("direct", "invalid")

	assert.InDelta(t, 1, testutil.ToFloat64(r.events.WithLabelValues("stories", "handled")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(r.events.WithLabelValues("direct", "invalid")), 0)
}

func TestRecorder_UnknownLabelValuesCollapse(t *testing.T) {
	t.Parallel()

	r := newTestRecorder()
	r.ObserveEvent("audit_log", "ignored")
	r.ObserveEvent("x' OR 1=1 --", "ignored")
	r.ObserveDispatch("promo_blast", nil)
	r.ObserveDispatch("", nil)

	assert.Equal(t, 1, testutil.CollectAndCount(r.events))
	assert.InDelta(t, 2, testutil.ToFloat64(r.events.WithLabelValues(LabelOther, "ignored")), 0)
	assert.Equal(t, 1, testutil.CollectAndCount(r.pushDispatch))
	assert.InDelta(t, 2, testutil.ToFloat64(r.pushDispatch.WithLabelValues(LabelOther, ResultSuccess)), 0)
}

func TestRecorder_ObserveLeaderboardRun(t *testing.T) {
	t.Parallel()

	r := newTestRecorder()
	r.ObserveLeaderboardRun(12, 3*time.Second, nil)
	r.ObserveLeaderboardRun(0, time.Second, errors.New("db down"))

	assert.InDelta(t, 1, testutil.ToFloat64(r.leaderboardRuns.WithLabelValues(ResultSuccess)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(r.leaderboardRuns.WithLabelValues(ResultFailure)), 0)
	// A failed run keeps the last successful participant count.
	assert.InDelta(t, 12, testutil.ToFloat64(r.leaderboardSize), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(r.leaderboardDuration), 0)
}

func TestRecorder_Handler(t *testing.T) {
	t.Parallel()

	r := newTestRecorder()
	r.ObserveHTTP("/events", http.MethodPost, http.StatusOK, 20*time.Millisecond)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `strik_http_requests_total{method="POST",path="/events",status="200"} 1`))
	assert.Contains(t, body, "strik_http_request_duration_seconds_bucket")
}
