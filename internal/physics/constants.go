package physics

// Constants is the table of physical constants used by the formulas.
// Values are SI.
type Constants struct {
	Gravity               float64 // m/s²
	MolarMassDryAir       float64 // kg/mol
	MolarMassWaterVapor   float64 // kg/mol
	UniversalGasConstant  float64 // J/(mol·K)
	DryAirGasConstant     float64 // J/(kg·K)
	WaterVaporGasConstant float64 // J/(kg·K)
	SeaLevelTemperature   float64 // K
	SeaLevelPressure      float64 // Pa
	TemperatureLapseRate  float64 // K/m
}

var standard = Constants{
	Gravity:               9.80665,
	MolarMassDryAir:       0.028964,
	MolarMassWaterVapor:   0.018016,
	UniversalGasConstant:  8.3144598,
	DryAirGasConstant:     287.05,
	WaterVaporGasConstant: 461.495,
	SeaLevelTemperature:   288.15,
	SeaLevelPressure:      101325,
	TemperatureLapseRate:  0.0065,
}

// Standard returns a copy of the standard-atmosphere constants table.
func Standard() Constants {
	return standard
}
