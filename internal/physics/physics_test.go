package physics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VicenteB97/randomLift/pkg/types"
)

func TestAllPositive(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   bool
	}{
		{name: "empty is vacuously true", values: nil, want: true},
		{name: "all positive", values: []float64{1.0, 2.0, 3.0}, want: true},
		{name: "one negative", values: []float64{1.0, -0.001}, want: false},
		{name: "zero is not positive", values: []float64{0, 1}, want: false},
		{name: "NaN is not positive", values: []float64{math.NaN()}, want: false},
		{name: "last element checked", values: []float64{5, 5, 5, 5, -5}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AllPositive(tt.values...))
		})
	}
}

func TestAllFinite(t *testing.T) {
	assert.True(t, AllFinite())
	assert.True(t, AllFinite(0, -1, 1e308))
	assert.False(t, AllFinite(1, math.Inf(1)))
	assert.False(t, AllFinite(math.Inf(-1)))
	assert.False(t, AllFinite(math.NaN(), 1))
}

func TestHumidAirGasConstantBounds(t *testing.T) {
	c := Standard()
	assert.Equal(t, 287.05, c.HumidAirGasConstant(0))
	assert.InDelta(t, 461.495, c.HumidAirGasConstant(1), 1e-12)
}

func TestHumidAirGasConstantMonotonic(t *testing.T) {
	c := Standard()
	prev := c.HumidAirGasConstant(0)
	for i := 1; i <= 100; i++ {
		r := c.HumidAirGasConstant(float64(i) / 100)
		assert.GreaterOrEqual(t, r, prev)
		prev = r
	}
}

func TestHumidAirMolarMass(t *testing.T) {
	c := Standard()
	assert.Equal(t, c.MolarMassDryAir, c.HumidAirMolarMass(0))
	assert.InDelta(t, c.MolarMassWaterVapor, c.HumidAirMolarMass(1), 1e-15)
	assert.InDelta(t, 0.0240374, c.HumidAirMolarMass(0.45), 1e-7)
}

func TestAltitudePressureSeaLevel(t *testing.T) {
	c := Standard()
	for _, h := range []float64{0, 0.3, 1} {
		for _, temp := range []float64{220, 288.15, 310} {
			assert.Equal(t, 101325.0, c.AltitudePressure(0, temp, c.HumidAirGasConstant(h), h))
		}
	}
}

func TestAltitudePressureStrictlyDecreasing(t *testing.T) {
	c := Standard()
	r := c.HumidAirGasConstant(0.2)
	prev := c.AltitudePressure(0, 270, r, 0.2)
	for alt := 250.0; alt <= 12000; alt += 250 {
		p := c.AltitudePressure(alt, 270, r, 0.2)
		assert.Less(t, p, prev, "altitude %v", alt)
		assert.Greater(t, p, 0.0)
		prev = p
	}
}

func TestAltitudePressureBoundaryScenario(t *testing.T) {
	c := Standard()
	h := 0.45
	r := c.HumidAirGasConstant(h)
	assert.InDelta(t, 287.05+h*(461.495-287.05), r, 1e-9)

	p := c.AltitudePressure(2000, 263, r, h)
	assert.Less(t, p, 101325.0)
	assert.Greater(t, p, 0.0)
}

func TestISATemperature(t *testing.T) {
	c := Standard()
	assert.Equal(t, 288.15, c.ISATemperature(0))
	assert.InDelta(t, 275.15, c.ISATemperature(2000), 1e-9)
}

func TestAirDensityRoundTrip(t *testing.T) {
	cases := [][3]float64{
		{101325, 287.05, 273},
		{54000, 300.2, 250.5},
		{1, 461.495, 1000},
	}
	for _, tc := range cases {
		p, r, temp := tc[0], tc[1], tc[2]
		rho, err := AirDensity(p, r, temp)
		require.NoError(t, err)
		assert.InEpsilon(t, p, rho*r*temp, 1e-9)
	}
}

func TestAirDensityRejectsNonPositive(t *testing.T) {
	for _, tc := range [][3]float64{
		{0, 287.05, 273},
		{101325, -1, 273},
		{101325, 287.05, 0},
	} {
		_, err := AirDensity(tc[0], tc[1], tc[2])
		require.Error(t, err)
		assert.ErrorIs(t, err, types.ErrInvalidInput)

		var ie *types.InputError
		require.ErrorAs(t, err, &ie)
		assert.Equal(t, "air density", ie.Stage)
	}
}

func TestVelocitySquaredFormsAgree(t *testing.T) {
	total, static, rho := 150325.0, 101325.0, 1.2934
	q := DynamicPressure(total, static)
	require.Equal(t, 49000.0, q)

	direct, err := VelocitySquared(q, rho)
	require.NoError(t, err)
	pitot, err := PitotVelocitySquared(total, static, rho)
	require.NoError(t, err)

	assert.InEpsilon(t, direct, pitot, 1e-12)
	assert.InEpsilon(t, 2*49000/1.2934, direct, 1e-12)
}

func TestVelocitySquaredZeroDynamicPressure(t *testing.T) {
	v2, err := VelocitySquared(0, 1.2)
	require.NoError(t, err)
	assert.Zero(t, v2)
}

func TestVelocitySquaredRejectsInvalid(t *testing.T) {
	_, err := PitotVelocitySquared(100000, 101325, 1.2)
	assert.ErrorIs(t, err, types.ErrInvalidInput)

	_, err = VelocitySquared(1000, 0)
	assert.ErrorIs(t, err, types.ErrInvalidInput)
}

func TestLift(t *testing.T) {
	assert.InDelta(t, 2940.0, Lift(1.2934, 2*49000/1.2934, 0.3, 0.2), 1e-9)
	assert.Zero(t, Lift(1.2, 0, 0.3, 0.2))
}

func TestPressureLiftMatchesLiftWhenDensityCancels(t *testing.T) {
	rho := 1.1
	q := 3000.0
	v2, err := VelocitySquared(q, rho)
	require.NoError(t, err)

	// ½·rho·(2q/rho)·S·Cl reduces to q·S·Cl.
	assert.InDelta(t, PressureLift(q, 0.5, 0.4), Lift(rho, v2, 0.5, 0.4), 1e-9)
}

func TestStandardReturnsCopy(t *testing.T) {
	c := Standard()
	c.Gravity = 0
	assert.Equal(t, 9.80665, Standard().Gravity)
}
