package types

// Quantity names a physical input of the lift pipeline.
type Quantity string

const (
	TotalPressure   Quantity = "total_pressure"
	StaticPressure  Quantity = "static_pressure"
	Altitude        Quantity = "altitude"
	Humidity        Quantity = "humidity"
	Temperature     Quantity = "temperature"
	SurfaceArea     Quantity = "surface_area"
	LiftCoefficient Quantity = "lift_coefficient"
)

// QuantityDef describes the unit and admissible domain of a Quantity.
type QuantityDef struct {
	Quantity  Quantity
	Unit      string
	AllowZero bool
}

// Predefined quantity definitions, in pipeline input order.
var Quantities = []QuantityDef{
	{Quantity: TotalPressure, Unit: "Pa"},
	{Quantity: StaticPressure, Unit: "Pa"},
	{Quantity: Altitude, Unit: "m", AllowZero: true},
	{Quantity: Humidity, Unit: "1", AllowZero: true},
	{Quantity: Temperature, Unit: "K"},
	{Quantity: SurfaceArea, Unit: "m2"},
	{Quantity: LiftCoefficient, Unit: "1"},
}

// Lookup returns the definition for q, if it is a known quantity.
func Lookup(q Quantity) (QuantityDef, bool) {
	for _, d := range Quantities {
		if d.Quantity == q {
			return d, true
		}
	}
	return QuantityDef{}, false
}
