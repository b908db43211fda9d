package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/VicenteB97/randomLift/internal/lift"
)

// Recorder exports lift computations as Prometheus metrics on its own registry.
type Recorder struct {
	registry     *prometheus.Registry
	computations *prometheus.CounterVec
	liftForce    *prometheus.GaugeVec
	pressureLift *prometheus.GaugeVec
	airDensity   *prometheus.GaugeVec
	airspeed     *prometheus.GaugeVec
}

// NewRecorder creates a Recorder and registers its collectors.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		computations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lift_computations_total",
				Help: "Lift pipeline evaluations by scenario and outcome.",
			},
			[]string{"scenario", "status"},
		),
		liftForce: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "lift_force_newtons",
				Help: "Lift force of the most recent successful evaluation.",
			},
			[]string{"scenario"},
		),
		pressureLift: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "lift_pressure_diagnostic_newtons",
				Help: "Pressure-only lift approximation of the most recent successful evaluation.",
			},
			[]string{"scenario"},
		),
		airDensity: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "lift_air_density_kg_per_m3",
				Help: "Air density of the most recent successful evaluation.",
			},
			[]string{"scenario"},
		),
		airspeed: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "lift_airspeed_mps",
				Help: "Airspeed of the most recent successful evaluation.",
			},
			[]string{"scenario"},
		),
	}
	r.registry.MustRegister(r.computations, r.liftForce, r.pressureLift, r.airDensity, r.airspeed)
	return r
}

// Observe records a successful evaluation.
func (r *Recorder) Observe(scenario string, res lift.Result) {
	r.computations.WithLabelValues(scenario, "ok").Inc()
	r.liftForce.WithLabelValues(scenario).Set(res.Lift)
	r.pressureLift.WithLabelValues(scenario).Set(res.PressureLift)
	r.airDensity.WithLabelValues(scenario).Set(res.Density)
	r.airspeed.WithLabelValues(scenario).Set(res.Airspeed())
}

// ObserveFailure records a rejected evaluation.
func (r *Recorder) ObserveFailure(scenario string) {
	r.computations.WithLabelValues(scenario, "invalid").Inc()
}

// Handler serves the recorder's registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
