package observability

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "booker", Name: "http_requests_total", Help: "Requests served by the stand-in platform."},
		[]string{"route", "method", "status"},
	)
	HTTPLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "booker", Name: "http_request_duration_seconds",
			Help:    "Stand-in platform request duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
	ExternalRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "booker", Name: "external_requests_total", Help: "Outbound requests to the booking platform."},
		[]string{"resource", "method", "status"},
	)
	ExternalLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "booker", Name: "external_request_duration_seconds",
			Help:    "Outbound request duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"resource", "method"},
	)
	Scenarios = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "booker", Name: "scenarios_total", Help: "Check scenarios by outcome."},
		[]string{"scenario", "outcome"}, // outcome: pass|fail
	)
	TokenEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "booker", Name: "token_events_total", Help: "Session token store events."},
		[]string{"store", "event"}, // event: put|hit|miss|del
	)
)

// Serve exposes /metrics on addr in the background; empty addr disables it
// and returns nil.
func Serve(addr string) *http.Server {
	if addr == "" {
		return nil // disabled
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", MetricsHandler(InitRegistry()))

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		log.Info().Str("addr", addr).Msg("metrics server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("metrics server failed")
		}
	}()
	return srv
}

func InitRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(HTTPRequests, HTTPLatency, ExternalRequests, ExternalLatency, Scenarios, TokenEvents)
	return reg
}

func MetricsHandler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

func ObserveHTTP(route, method string, status int, dur time.Duration) {
	HTTPRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	HTTPLatency.WithLabelValues(route, method).Observe(dur.Seconds())
}

// ObserveExternal records one outbound call; status 0 means no response.
func ObserveExternal(resource, method string, status int, dur time.Duration) {
	ExternalRequests.WithLabelValues(resource, method, strconv.Itoa(status)).Inc()
	ExternalLatency.WithLabelValues(resource, method).Observe(dur.Seconds())
}

func ObserveScenario(name string, passed bool) {
	outcome := "fail"
	if passed {
		outcome = "pass"
	}
	Scenarios.WithLabelValues(name, outcome).Inc()
}

func ObserveToken(store, event string) { // event: put|hit|miss|del
	TokenEvents.WithLabelValues(store, event).Inc()
}

func LabelErr(err error) string {
	if err == nil {
		return "none"
	}
	return fmt.Sprintf("%T", err)
}
