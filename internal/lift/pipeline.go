package lift

import (
	"fmt"
	"math"

	"github.com/VicenteB97/randomLift/internal/physics"
	"github.com/VicenteB97/randomLift/pkg/types"
)

// Inputs is one set of sensor readings and airfoil geometry.
type Inputs struct {
	TotalPressure   float64 // Pa
	Static          StaticSource
	Humidity        float64 // 0..1
	Temperature     float64 // K
	SurfaceArea     float64 // m²
	LiftCoefficient float64
}

// Result carries every quantity derived by a successful Compute.
type Result struct {
	GasConstant     float64 `json:"gas_constant_j_kgk"`
	StaticPressure  float64 `json:"static_pressure_pa"`
	DynamicPressure float64 `json:"dynamic_pressure_pa"`
	Density         float64 `json:"air_density_kg_m3"`
	VelocitySquared float64 `json:"velocity_squared_m2_s2"`
	Lift            float64 `json:"lift_force_n"`
	// PressureLift is the q·S·Cl approximation, kept as a diagnostic.
	PressureLift float64 `json:"pressure_lift_diagnostic_n"`
}

// Airspeed returns the square root of VelocitySquared in m/s.
func (r Result) Airspeed() float64 {
	return math.Sqrt(r.VelocitySquared)
}

// Limits holds optional configuration-specific admission bounds.
type Limits struct {
	// MaxLiftCoefficient rejects coefficients above it. Zero disables the check.
	MaxLiftCoefficient float64
}

// Pipeline evaluates the lift computation against a constants table.
// It holds no mutable state and is safe for concurrent use.
type Pipeline struct {
	constants physics.Constants
}

// NewPipeline creates a Pipeline using the given constants.
func NewPipeline(c physics.Constants) *Pipeline {
	return &Pipeline{constants: c}
}

// Constants returns the constants table the pipeline was built with.
func (p *Pipeline) Constants() physics.Constants {
	return p.constants
}

// Validate checks in against the admission rules without computing anything.
func Validate(in Inputs, lim Limits) error {
	if in.Static == nil {
		return &types.InputError{Stage: "validation", Reason: "no static pressure source"}
	}
	required := []float64{in.TotalPressure, in.Temperature, in.SurfaceArea, in.LiftCoefficient}
	if !physics.AllPositive(required...) || !physics.AllFinite(required...) || !in.Static.admissible() {
		return &types.InputError{Stage: "validation", Reason: "required quantities must be positive and finite"}
	}
	if !(in.Humidity >= 0 && in.Humidity <= 1) {
		return &types.InputError{Stage: "validation", Reason: fmt.Sprintf("humidity %g outside [0, 1]", in.Humidity)}
	}
	if lim.MaxLiftCoefficient > 0 && in.LiftCoefficient > lim.MaxLiftCoefficient {
		return &types.InputError{
			Stage:  "validation",
			Reason: fmt.Sprintf("lift coefficient %g exceeds %g", in.LiftCoefficient, lim.MaxLiftCoefficient),
		}
	}
	return nil
}

// Compute validates in and runs gas constant, static pressure, density,
// velocity and lift in order. On error the returned Result is zero.
func (p *Pipeline) Compute(in Inputs, lim Limits) (Result, error) {
	if err := Validate(in, lim); err != nil {
		return Result{}, err
	}

	r := p.constants.HumidAirGasConstant(in.Humidity)
	static := in.Static.StaticPressure(p.constants, r, in.Temperature, in.Humidity)

	density, err := physics.AirDensity(static, r, in.Temperature)
	if err != nil {
		return Result{}, err
	}

	q := physics.DynamicPressure(in.TotalPressure, static)
	v2, err := physics.VelocitySquared(q, density)
	if err != nil {
		return Result{}, err
	}

	res := Result{
		GasConstant:     r,
		StaticPressure:  static,
		DynamicPressure: q,
		Density:         density,
		VelocitySquared: v2,
		Lift:            physics.Lift(density, v2, in.SurfaceArea, in.LiftCoefficient),
		PressureLift:    physics.PressureLift(q, in.SurfaceArea, in.LiftCoefficient),
	}
	if !physics.AllFinite(res.StaticPressure, res.DynamicPressure, res.Density, res.VelocitySquared, res.Lift, res.PressureLift) {
		return Result{}, &types.InputError{Stage: "lift", Reason: "derived quantities overflow the float64 range"}
	}
	return res, nil
}
