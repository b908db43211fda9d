package scenario

import (
	"fmt"
	"maps"
	"slices"

	"github.com/VicenteB97/randomLift/internal/lift"
	"github.com/VicenteB97/randomLift/pkg/types"
)

// Range is a nominal value with its documented uncertainty interval.
type Range struct {
	Nominal float64 `yaml:"nominal" json:"nominal"`
	Low     float64 `yaml:"low" json:"low"`
	High    float64 `yaml:"high" json:"high"`
}

// Fixed returns a Range with no uncertainty.
func Fixed(v float64) Range {
	return Range{Nominal: v, Low: v, High: v}
}

// Uncertain returns a Range spanning [low, high] with the given nominal value.
func Uncertain(nominal, low, high float64) Range {
	return Range{Nominal: nominal, Low: low, High: high}
}

// IsFixed reports whether the range has zero width.
func (r Range) IsFixed() bool {
	return r.Low == r.High
}

// StaticMode identifies how a scenario obtains its static pressure.
type StaticMode string

const (
	StaticMeasured StaticMode = "measured"
	StaticAltitude StaticMode = "altitude"
)

// Scenario is a named configuration of pipeline inputs.
type Scenario struct {
	Name               string                   `yaml:"name" json:"name"`
	Description        string                   `yaml:"description,omitempty" json:"description,omitempty"`
	MaxLiftCoefficient float64                  `yaml:"max_lift_coefficient,omitempty" json:"max_lift_coefficient,omitempty"`
	Quantities         map[types.Quantity]Range `yaml:"quantities" json:"quantities"`
}

// Limits returns the admission limits the scenario enforces.
func (s Scenario) Limits() lift.Limits {
	return lift.Limits{MaxLiftCoefficient: s.MaxLiftCoefficient}
}

// StaticMode reports which static pressure strategy the supplied quantities select.
func (s Scenario) StaticMode() (StaticMode, error) {
	_, measured := s.Quantities[types.StaticPressure]
	_, altitude := s.Quantities[types.Altitude]
	switch {
	case measured && altitude:
		return "", fmt.Errorf("%w: %s: both static_pressure and altitude supplied", ErrInvalidScenario, s.Name)
	case measured:
		return StaticMeasured, nil
	case altitude:
		return StaticAltitude, nil
	default:
		return "", fmt.Errorf("%w: %s: neither static_pressure nor altitude supplied", ErrInvalidScenario, s.Name)
	}
}

// Validate checks that the scenario names known quantities, has well-formed
// ranges and a single static pressure strategy.
func (s Scenario) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidScenario)
	}
	for q, r := range s.Quantities {
		if _, ok := types.Lookup(q); !ok {
			return fmt.Errorf("%w: %s: unknown quantity %q", ErrInvalidScenario, s.Name, q)
		}
		if !(r.Low <= r.Nominal && r.Nominal <= r.High) {
			return fmt.Errorf("%w: %s: %s range [%g, %g] does not contain nominal %g", ErrInvalidScenario, s.Name, q, r.Low, r.High, r.Nominal)
		}
	}
	for _, q := range []types.Quantity{types.TotalPressure, types.SurfaceArea, types.LiftCoefficient} {
		if _, ok := s.Quantities[q]; !ok {
			return fmt.Errorf("%w: %s: missing %s", ErrInvalidScenario, s.Name, q)
		}
	}
	mode, err := s.StaticMode()
	if err != nil {
		return err
	}
	if _, ok := s.Quantities[types.Temperature]; !ok && mode == StaticMeasured {
		return fmt.Errorf("%w: %s: missing %s", ErrInvalidScenario, s.Name, types.Temperature)
	}
	return nil
}

// WithOverride returns a copy of s with q pinned to v. Pinning altitude
// drops static pressure and the reverse, so the override selects the
// static pressure strategy.
func (s Scenario) WithOverride(q types.Quantity, v float64) Scenario {
	out := s
	out.Quantities = maps.Clone(s.Quantities)
	if out.Quantities == nil {
		out.Quantities = make(map[types.Quantity]Range)
	}
	switch q {
	case types.Altitude:
		delete(out.Quantities, types.StaticPressure)
	case types.StaticPressure:
		delete(out.Quantities, types.Altitude)
	}
	out.Quantities[q] = Fixed(v)
	return out
}

// Source provides a value for each scenario quantity.
type Source interface {
	Value(q types.Quantity, r Range) float64
}

// Inputs draws every quantity from src and assembles pipeline inputs.
// An altitude scenario without a temperature uses the standard atmosphere
// temperature at that altitude.
func (s Scenario) Inputs(src Source, pipeline *lift.Pipeline) (lift.Inputs, error) {
	mode, err := s.StaticMode()
	if err != nil {
		return lift.Inputs{}, err
	}

	// Draw in catalogue order so seeded sources are reproducible.
	values := make(map[types.Quantity]float64, len(s.Quantities))
	for _, d := range types.Quantities {
		if _, ok := s.Quantities[d.Quantity]; ok {
			values[d.Quantity] = src.Value(d.Quantity, s.Quantities[d.Quantity])
		}
	}

	in := lift.Inputs{
		TotalPressure:   values[types.TotalPressure],
		Humidity:        values[types.Humidity],
		Temperature:     values[types.Temperature],
		SurfaceArea:     values[types.SurfaceArea],
		LiftCoefficient: values[types.LiftCoefficient],
	}
	switch mode {
	case StaticMeasured:
		in.Static = lift.MeasuredStatic{Pressure: values[types.StaticPressure]}
	case StaticAltitude:
		in.Static = lift.AltitudeStatic{Altitude: values[types.Altitude]}
		if _, ok := s.Quantities[types.Temperature]; !ok {
			in.Temperature = pipeline.Constants().ISATemperature(values[types.Altitude])
		}
	}
	return in, nil
}

// QuantityNames returns the scenario's quantities in catalogue order.
func (s Scenario) QuantityNames() []types.Quantity {
	names := slices.Collect(maps.Keys(s.Quantities))
	order := func(q types.Quantity) int {
		return slices.IndexFunc(types.Quantities, func(d types.QuantityDef) bool { return d.Quantity == q })
	}
	slices.SortFunc(names, func(a, b types.Quantity) int { return order(a) - order(b) })
	return names
}
