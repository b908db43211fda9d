// Package ensemble evaluates the lift pipeline repeatedly over sampled
// inputs and summarises the spread of the derived quantities.
package ensemble

import (
	"errors"
	"fmt"
	"slices"

	"gonum.org/v1/gonum/stat"

	"github.com/VicenteB97/randomLift/internal/lift"
	"github.com/VicenteB97/randomLift/internal/scenario"
)

// ErrNoSamples is returned when no draw produced a valid result.
var ErrNoSamples = errors.New("ensemble: no valid samples")

// Stats summarises one derived quantity across the ensemble.
type Stats struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	P05    float64 `json:"p05"`
	Median float64 `json:"median"`
	P95    float64 `json:"p95"`
}

// Summary is the outcome of an ensemble run.
type Summary struct {
	Scenario string `json:"scenario"`
	Samples  int    `json:"samples"`
	Failures int    `json:"failures"`
	Lift     Stats  `json:"lift_force_n"`
	Density  Stats  `json:"air_density_kg_m3"`
	Airspeed Stats  `json:"airspeed_m_s"`
}

// Run evaluates the pipeline n times with inputs drawn from src. Draws that
// fail validation are counted in Failures. Run is sequential because seeded
// sources are not safe for concurrent use.
func Run(p *lift.Pipeline, s scenario.Scenario, src scenario.Source, n int) (Summary, error) {
	if n <= 0 {
		return Summary{}, fmt.Errorf("ensemble: sample count must be positive, got %d", n)
	}

	lifts := make([]float64, 0, n)
	densities := make([]float64, 0, n)
	airspeeds := make([]float64, 0, n)
	failures := 0

	for i := 0; i < n; i++ {
		in, err := s.Inputs(src, p)
		if err != nil {
			return Summary{}, err
		}
		res, err := p.Compute(in, s.Limits())
		if err != nil {
			failures++
			continue
		}
		lifts = append(lifts, res.Lift)
		densities = append(densities, res.Density)
		airspeeds = append(airspeeds, res.Airspeed())
	}

	if len(lifts) == 0 {
		return Summary{}, fmt.Errorf("%w: %s: all %d draws rejected", ErrNoSamples, s.Name, n)
	}

	return Summary{
		Scenario: s.Name,
		Samples:  len(lifts),
		Failures: failures,
		Lift:     summarise(lifts),
		Density:  summarise(densities),
		Airspeed: summarise(airspeeds),
	}, nil
}

func summarise(x []float64) Stats {
	slices.Sort(x)
	mean, std := stat.MeanStdDev(x, nil)
	if len(x) < 2 {
		std = 0
	}
	return Stats{
		Mean:   mean,
		StdDev: std,
		P05:    stat.Quantile(0.05, stat.Empirical, x, nil),
		Median: stat.Quantile(0.5, stat.Empirical, x, nil),
		P95:    stat.Quantile(0.95, stat.Empirical, x, nil),
	}
}
