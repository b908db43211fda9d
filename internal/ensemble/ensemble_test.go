package ensemble

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VicenteB97/randomLift/internal/lift"
	"github.com/VicenteB97/randomLift/internal/physics"
	"github.com/VicenteB97/randomLift/internal/scenario"
	"github.com/VicenteB97/randomLift/pkg/types"
)

func pitot(t *testing.T) scenario.Scenario {
	t.Helper()
	s, err := scenario.BuiltinCatalog().Get(scenario.Pitot)
	require.NoError(t, err)
	return s
}

func TestRunConstantSourceHasNoSpread(t *testing.T) {
	p := lift.NewPipeline(physics.Standard())
	sum, err := Run(p, pitot(t), scenario.ConstantSource{}, 20)
	require.NoError(t, err)

	assert.Equal(t, 20, sum.Samples)
	assert.Zero(t, sum.Failures)
	assert.InDelta(t, 2940.0, sum.Lift.Mean, 1e-6)
	assert.InDelta(t, 0, sum.Lift.StdDev, 1e-9)
	assert.InDelta(t, sum.Lift.Mean, sum.Lift.Median, 1e-9)
	assert.InDelta(t, sum.Lift.P05, sum.Lift.P95, 1e-9)
}

func TestRunUniformSourceSpread(t *testing.T) {
	p := lift.NewPipeline(physics.Standard())
	sum, err := Run(p, pitot(t), scenario.NewUniformSource(3), 2000)
	require.NoError(t, err)

	assert.Equal(t, 2000, sum.Samples)
	assert.Greater(t, sum.Lift.StdDev, 0.0)
	assert.LessOrEqual(t, sum.Lift.P05, sum.Lift.Median)
	assert.LessOrEqual(t, sum.Lift.Median, sum.Lift.P95)

	// Cl spans [0.18, 0.24] so lift spans roughly [2646, 3528] N.
	assert.InDelta(t, 49000*0.3*0.21, sum.Lift.Mean, 30)
	assert.InDelta(t, 1.293, sum.Density.Mean, 0.001)
}

func TestRunCountsFailures(t *testing.T) {
	p := lift.NewPipeline(physics.Standard())
	s := pitot(t)
	// Half the coefficient range lies above the scenario's cap of 1.
	s.Quantities[types.LiftCoefficient] = scenario.Uncertain(1, 0.5, 1.5)

	sum, err := Run(p, s, scenario.NewUniformSource(11), 1000)
	require.NoError(t, err)
	assert.Equal(t, 1000, sum.Samples+sum.Failures)
	assert.Greater(t, sum.Failures, 300)
	assert.Greater(t, sum.Samples, 300)
}

func TestRunAllRejected(t *testing.T) {
	p := lift.NewPipeline(physics.Standard())
	s := pitot(t).WithOverride(types.LiftCoefficient, 1.5)

	_, err := Run(p, s, scenario.ConstantSource{}, 5)
	assert.ErrorIs(t, err, ErrNoSamples)
}

func TestRunRejectsNonPositiveCount(t *testing.T) {
	p := lift.NewPipeline(physics.Standard())
	_, err := Run(p, pitot(t), scenario.ConstantSource{}, 0)
	assert.Error(t, err)
}
