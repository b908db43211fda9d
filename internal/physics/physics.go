package physics

import (
	"fmt"
	"math"

	"github.com/VicenteB97/randomLift/pkg/types"
)

// AllPositive reports whether every value is strictly greater than zero.
// An empty argument list is vacuously positive.
func AllPositive(values ...float64) bool {
	for _, v := range values {
		if !(v > 0) {
			return false
		}
	}
	return true
}

// AllFinite reports whether no value is NaN or infinite.
func AllFinite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// HumidAirGasConstant interpolates the specific gas constant between dry air
// (humidity 0) and pure water vapour (humidity 1).
func (c Constants) HumidAirGasConstant(humidity float64) float64 {
	return c.DryAirGasConstant + humidity*(c.WaterVaporGasConstant-c.DryAirGasConstant)
}

// HumidAirMolarMass blends the molar masses of dry air and water vapour.
func (c Constants) HumidAirMolarMass(humidity float64) float64 {
	return c.MolarMassDryAir*(1-humidity) + c.MolarMassWaterVapor*humidity
}

// AltitudePressure is the barometric static pressure at altitude (m) for air
// at the given temperature (K), gas constant (J/(kg·K)) and humidity.
func (c Constants) AltitudePressure(altitude, temperature, gasConstant, humidity float64) float64 {
	m := c.HumidAirMolarMass(humidity)
	return c.SeaLevelPressure * math.Exp(-c.Gravity*m*altitude/(gasConstant*temperature))
}

// ISATemperature is the standard-atmosphere temperature at altitude (m),
// using the tropospheric lapse rate.
func (c Constants) ISATemperature(altitude float64) float64 {
	return c.SeaLevelTemperature - c.TemperatureLapseRate*altitude
}

// AirDensity applies the ideal gas law: rho = P / (R*T).
func AirDensity(staticPressure, gasConstant, temperature float64) (float64, error) {
	if !AllPositive(staticPressure, gasConstant, temperature) {
		return 0, &types.InputError{
			Stage:  "air density",
			Reason: fmt.Sprintf("pressure %g, gas constant %g and temperature %g must be positive", staticPressure, gasConstant, temperature),
		}
	}
	return staticPressure / (gasConstant * temperature), nil
}

// DynamicPressure is the Pitot pressure contrast, total minus static.
func DynamicPressure(totalPressure, staticPressure float64) float64 {
	return totalPressure - staticPressure
}

// VelocitySquared returns the squared airspeed 2q/rho. The square root is
// left to callers that need to display it.
func VelocitySquared(dynamicPressure, density float64) (float64, error) {
	if dynamicPressure < 0 || !AllPositive(density) {
		return 0, &types.InputError{
			Stage:  "velocity",
			Reason: fmt.Sprintf("dynamic pressure %g must be non-negative and density %g positive", dynamicPressure, density),
		}
	}
	return 2 * dynamicPressure / density, nil
}

// PitotVelocitySquared derives the dynamic pressure from a total/static pair
// and delegates to VelocitySquared.
func PitotVelocitySquared(totalPressure, staticPressure, density float64) (float64, error) {
	return VelocitySquared(DynamicPressure(totalPressure, staticPressure), density)
}

// Lift is the lift equation L = ½·rho·v²·S·Cl.
func Lift(density, velocitySquared, surfaceArea, liftCoefficient float64) float64 {
	return 0.5 * density * velocitySquared * surfaceArea * liftCoefficient
}

// PressureLift is the pressure-only approximation q·S·Cl. It is a
// cross-check for Lift, not a replacement.
func PressureLift(dynamicPressure, surfaceArea, liftCoefficient float64) float64 {
	return dynamicPressure * surfaceArea * liftCoefficient
}
