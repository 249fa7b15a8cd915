// Package metrics exposes the service's Prometheus series on a dedicated registry.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"strik/internal/domain/constants"
	"strik/internal/domain/entity"
	"strik/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "strik"

// Result labels
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

// LabelOther replaces table and type label values that come from event
// payloads but are not ones the notifier knows
const LabelOther = "other"

var knownEventSources = map[string]struct{}{
	constants.TableStories:       {},
	constants.TablePosts:         {},
	constants.TableReactions:     {},
	constants.TableNotifications: {},
	constants.EventSourceDirect:  {},
}

// Recorder implements service.MetricsRecorder and the HTTP instrumentation
type Recorder struct {
	registry *prometheus.Registry

	pushDispatch        *prometheus.CounterVec
	events              *prometheus.CounterVec
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	leaderboardRuns     *prometheus.CounterVec
	leaderboardSize     prometheus.Gauge
	leaderboardDuration prometheus.Gauge
}

var _ service.MetricsRecorder = (*Recorder)(nil)

// NewRegistry creates the registry every series is registered on,
// including the process and Go runtime collectors.
func NewRegistry() *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return registry
}

// NewRecorder registers the service series on registry
func NewRecorder(registry *prometheus.Registry) *Recorder {
	r := &Recorder{
		registry: registry,
		pushDispatch: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "push_dispatch_total",
			Help:      "Push messages handed to the gateway, by semantic type and result.",
		}, []string{"type", "result"}),
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_total",
			Help:      "Change events routed, by source table and outcome.",
		}, []string{"table", "outcome"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests served.",
		}, []string{"path", "method", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"path", "method"}),
		leaderboardRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "leaderboard_runs_total",
			Help:      "Weekly leaderboard runs, by result.",
		}, []string{"result"}),
		leaderboardSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "leaderboard_participants",
			Help:      "Users ranked by the last weekly run.",
		}),
		leaderboardDuration: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "leaderboard_last_run_duration_seconds",
			Help:      "Wall time of the last weekly run.",
		}),
	}

	registry.MustRegister(
		r.pushDispatch,
		r.events,
		r.httpRequests,
		r.httpRequestDuration,
		r.leaderboardRuns,
		r.leaderboardSize,
		r.leaderboardDuration,
	)

	return r
}

// ObserveDispatch implements service.MetricsRecorder
func (r *Recorder) ObserveDispatch(notificationType string, err error) {
	r.pushDispatch.WithLabelValues(typeLabel(notificationType), resultOf(err)).Inc()
}

// ObserveEvent implements service.MetricsRecorder
func (r *Recorder) ObserveEvent(table, outcome string) {
	r.events.WithLabelValues(eventSourceLabel(table), outcome).Inc()
}

// ObserveLeaderboardRun implements service.MetricsRecorder
func (r *Recorder) ObserveLeaderboardRun(participants int, elapsed time.Duration, err error) {
	r.leaderboardRuns.WithLabelValues(resultOf(err)).Inc()
	r.leaderboardDuration.Set(elapsed.Seconds())
	if err == nil {
		r.leaderboardSize.Set(float64(participants))
	}
}

// ObserveHTTP records one served request. path should be the route template.
func (r *Recorder) ObserveHTTP(path, method string, status int, elapsed time.Duration) {
	r.httpRequests.WithLabelValues(path, method, strconv.Itoa(status)).Inc()
	r.httpRequestDuration.WithLabelValues(path, method).Observe(elapsed.Seconds())
}

// Handler serves the registry in the Prometheus exposition format
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

func eventSourceLabel(table string) string {
	if _, ok := knownEventSources[table]; ok {
		return table
	}

	return LabelOther
}

func typeLabel(notificationType string) string {
	if entity.NotificationType(notificationType).Known() {
		return notificationType
	}

	return LabelOther
}

func resultOf(err error) string {
	if err != nil {
		return ResultFailure
	}

	return ResultSuccess
}
