package report

import (
	"fmt"
	"io"

	"github.com/VicenteB97/randomLift/internal/ensemble"
	"github.com/VicenteB97/randomLift/internal/lift"
)

// WriteResult prints the intermediate quantities and the lift force of a
// single evaluation.
func WriteResult(w io.Writer, scenario string, r lift.Result) error {
	_, err := fmt.Fprintf(w,
		"Scenario: %s\n"+
			"Humid air gas constant: %f J/(kg K)\n"+
			"Static pressure: %f Pa\n"+
			"Dynamic pressure: %f Pa\n"+
			"Air density: %f kg/m3\n"+
			"Airspeed: %f m/s\n"+
			"Total lift force is: %f N\n"+
			"Pressure-only lift (diagnostic): %f N\n",
		scenario, r.GasConstant, r.StaticPressure, r.DynamicPressure,
		r.Density, r.Airspeed(), r.Lift, r.PressureLift)
	return err
}

// WriteSummary prints the spread of an ensemble run.
func WriteSummary(w io.Writer, s ensemble.Summary) error {
	if _, err := fmt.Fprintf(w, "Scenario: %s (%d samples, %d rejected)\n", s.Scenario, s.Samples, s.Failures); err != nil {
		return err
	}
	rows := []struct {
		label string
		unit  string
		stats ensemble.Stats
	}{
		{"Air density", "kg/m3", s.Density},
		{"Airspeed", "m/s", s.Airspeed},
		{"Total lift force", "N", s.Lift},
	}
	for _, row := range rows {
		if _, err := fmt.Fprintf(w, "%s: %f ± %f %s [p05 %f, median %f, p95 %f]\n",
			row.label, row.stats.Mean, row.stats.StdDev, row.unit,
			row.stats.P05, row.stats.Median, row.stats.P95); err != nil {
			return err
		}
	}
	return nil
}
