package metrics

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VicenteB97/randomLift/internal/lift"
)

var sampleResult = lift.Result{
	GasConstant:     287.05,
	StaticPressure:  101325,
	DynamicPressure: 49000,
	Density:         1.293,
	VelocitySquared: 10000,
	Lift:            2940,
	PressureLift:    2940,
}

func TestObserve(t *testing.T) {
	r := NewRecorder()
	r.Observe("pitot", sampleResult)
	r.Observe("pitot", sampleResult)
	r.ObserveFailure("pitot")

	assert.Equal(t, 2.0, testutil.ToFloat64(r.computations.WithLabelValues("pitot", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.computations.WithLabelValues("pitot", "invalid")))
	assert.Equal(t, 2940.0, testutil.ToFloat64(r.liftForce.WithLabelValues("pitot")))
	assert.Equal(t, 1.293, testutil.ToFloat64(r.airDensity.WithLabelValues("pitot")))
	assert.Equal(t, 100.0, testutil.ToFloat64(r.airspeed.WithLabelValues("pitot")))
}

func TestHandlerExposesMetrics(t *testing.T) {
	r := NewRecorder()
	r.Observe("altitude", sampleResult)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `lift_force_newtons{scenario="altitude"} 2940`)
	assert.Contains(t, string(body), `lift_computations_total{scenario="altitude",status="ok"} 1`)
}
