package lift

import "github.com/VicenteB97/randomLift/internal/physics"

// StaticSource supplies the ambient static pressure to the pipeline.
type StaticSource interface {
	// StaticPressure returns the static pressure in Pa for air with the given
	// gas constant, temperature and humidity.
	StaticPressure(c physics.Constants, gasConstant, temperature, humidity float64) float64
	admissible() bool
}

// MeasuredStatic is a static pressure read directly from a sensor.
type MeasuredStatic struct {
	Pressure float64 // Pa
}

func (m MeasuredStatic) StaticPressure(physics.Constants, float64, float64, float64) float64 {
	return m.Pressure
}

func (m MeasuredStatic) admissible() bool {
	return physics.AllPositive(m.Pressure) && physics.AllFinite(m.Pressure)
}

// AltitudeStatic derives the static pressure from altitude with the
// barometric formula.
type AltitudeStatic struct {
	Altitude float64 // m
}

func (a AltitudeStatic) StaticPressure(c physics.Constants, gasConstant, temperature, humidity float64) float64 {
	return c.AltitudePressure(a.Altitude, temperature, gasConstant, humidity)
}

func (a AltitudeStatic) admissible() bool {
	return a.Altitude >= 0 && physics.AllFinite(a.Altitude)
}
