package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds the service collectors on a private prometheus registry
type Registry struct {
	reg            *prometheus.Registry
	signupOutcomes *prometheus.CounterVec
	storedSignups  prometheus.Gauge
}

// New creates a registry with the signup collectors and the Go runtime collectors
func New() *Registry {
	reg := prometheus.NewRegistry()
	r := &Registry{
		reg: reg,
		signupOutcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "signup_outcomes_total",
			Help: "Signup attempts by outcome.",
		}, []string{"outcome"}),
		storedSignups: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "signups_stored",
			Help: "Number of signups currently stored.",
		}),
	}
	reg.MustRegister(
		r.signupOutcomes,
		r.storedSignups,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

// ObserveOutcome counts one signup attempt
func (r *Registry) ObserveOutcome(outcome string) {
	if r == nil {
		return
	}
	r.signupOutcomes.WithLabelValues(outcome).Inc()
}

// SetStoredSignups updates the stored signups gauge
func (r *Registry) SetStoredSignups(n int64) {
	if r == nil {
		return
	}
	r.storedSignups.Set(float64(n))
}

// Handler exposes the registry in the Prometheus text format
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}

// Gatherer returns the underlying gatherer
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.reg
}
