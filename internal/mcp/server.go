package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/VicenteB97/randomLift/internal/ensemble"
	"github.com/VicenteB97/randomLift/internal/lift"
	"github.com/VicenteB97/randomLift/internal/log"
	"github.com/VicenteB97/randomLift/internal/scenario"
	"github.com/VicenteB97/randomLift/internal/state"
	"github.com/VicenteB97/randomLift/pkg/types"
)

// ResultStore is the subset of state.Manager used by the MCP server.
type ResultStore interface {
	Update(scenario string, res lift.Result)
	Latest() (state.Entry, error)
}

// Recorder is the subset of metrics.Recorder used by the MCP server.
type Recorder interface {
	Observe(scenario string, res lift.Result)
	ObserveFailure(scenario string)
}

// Deps are the collaborators a Server needs.
type Deps struct {
	Catalog         *scenario.Catalog
	Pipeline        *lift.Pipeline
	Results         ResultStore
	Recorder        Recorder
	DefaultScenario string
	DefaultSamples  int
	MaxSamples      int
}

// Server wraps the MCP SDK server and exposes the lift pipeline as tools.
type Server struct {
	sdk  *mcpsdk.Server
	deps Deps
}

// NewServer creates a Server and registers its tools.
func NewServer(deps Deps) *Server {
	s := &Server{
		sdk: mcpsdk.NewServer(&mcpsdk.Implementation{
			Name:    "liftcalc-mcp",
			Version: "1.0.0",
		}, nil),
		deps: deps,
	}

	mcpsdk.AddTool(s.sdk, &mcpsdk.Tool{
		Name:        "compute_lift",
		Description: "Computes air density, airspeed and airfoil lift force for a named scenario, optionally overriding individual inputs (SI units).",
	}, s.handleComputeLift)
	mcpsdk.AddTool(s.sdk, &mcpsdk.Tool{
		Name:        "sample_lift",
		Description: "Evaluates a scenario repeatedly with inputs drawn uniformly from their uncertainty ranges and summarises the resulting lift, density and airspeed.",
	}, s.handleSampleLift)
	mcpsdk.AddTool(s.sdk, &mcpsdk.Tool{
		Name:        "list_scenarios",
		Description: "Lists the available scenarios with their input ranges.",
	}, s.handleListScenarios)
	mcpsdk.AddTool(s.sdk, &mcpsdk.Tool{
		Name:        "get_last_lift",
		Description: "Returns the most recent successful compute_lift result.",
	}, s.handleGetLastLift)
	return s
}

// Run starts the MCP server over stdio and blocks until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	return s.sdk.Run(ctx, &mcpsdk.StdioTransport{})
}

// Connect connects the server to an existing transport (used in tests).
func (s *Server) Connect(ctx context.Context, t mcpsdk.Transport) (*mcpsdk.ServerSession, error) {
	return s.sdk.Connect(ctx, t, nil)
}

// computeLiftInput holds arguments for the compute_lift tool.
type computeLiftInput struct {
	Scenario        string   `json:"scenario,omitempty" jsonschema:"scenario name, defaults to the server's configured scenario"`
	TotalPressure   *float64 `json:"total_pressure_pa,omitempty" jsonschema:"total (stagnation) pressure at the Pitot probe in Pa"`
	StaticPressure  *float64 `json:"static_pressure_pa,omitempty" jsonschema:"measured static pressure in Pa; replaces altitude"`
	Altitude        *float64 `json:"altitude_m,omitempty" jsonschema:"altitude in m; static pressure is then derived barometrically"`
	Humidity        *float64 `json:"humidity,omitempty" jsonschema:"water vapour fraction between 0 and 1"`
	Temperature     *float64 `json:"temperature_k,omitempty" jsonschema:"ambient temperature in K"`
	SurfaceArea     *float64 `json:"surface_area_m2,omitempty" jsonschema:"airfoil reference area in m2"`
	LiftCoefficient *float64 `json:"lift_coefficient,omitempty" jsonschema:"dimensionless lift coefficient"`
}

// sampleLiftInput holds arguments for the sample_lift tool.
type sampleLiftInput struct {
	Scenario string  `json:"scenario,omitempty" jsonschema:"scenario name, defaults to the server's configured scenario"`
	Samples  int     `json:"samples,omitempty" jsonschema:"number of draws"`
	Seed     *uint64 `json:"seed,omitempty" jsonschema:"random seed for reproducible draws; omitted means time-seeded"`
}

type emptyInput struct{}

// LiftResponse is the JSON payload returned by compute_lift and get_last_lift.
type LiftResponse struct {
	Scenario   string      `json:"scenario"`
	StaticMode string      `json:"static_mode,omitempty"`
	Result     lift.Result `json:"result"`
	Airspeed   float64     `json:"airspeed_m_s"`
	Timestamp  string      `json:"timestamp"`
}

// ErrorResponse is returned when a tool cannot produce a result.
type ErrorResponse struct {
	Error       string `json:"error"`
	Code        string `json:"code"`
	Recoverable bool   `json:"recoverable"`
	Suggestion  string `json:"suggestion"`
	Timestamp   string `json:"timestamp"`
}

func (s *Server) lookup(name string) (scenario.Scenario, error) {
	if name == "" {
		name = s.deps.DefaultScenario
	}
	return s.deps.Catalog.Get(name)
}

func (in computeLiftInput) apply(sc scenario.Scenario) (scenario.Scenario, error) {
	if in.StaticPressure != nil && in.Altitude != nil {
		return scenario.Scenario{}, fmt.Errorf("%w: static_pressure_pa and altitude_m are mutually exclusive", scenario.ErrInvalidScenario)
	}
	overrides := []struct {
		q types.Quantity
		v *float64
	}{
		{types.TotalPressure, in.TotalPressure},
		{types.StaticPressure, in.StaticPressure},
		{types.Altitude, in.Altitude},
		{types.Humidity, in.Humidity},
		{types.Temperature, in.Temperature},
		{types.SurfaceArea, in.SurfaceArea},
		{types.LiftCoefficient, in.LiftCoefficient},
	}
	for _, o := range overrides {
		if o.v != nil {
			sc = sc.WithOverride(o.q, *o.v)
		}
	}
	return sc, nil
}

func (s *Server) handleComputeLift(
	ctx context.Context,
	req *mcpsdk.CallToolRequest,
	input computeLiftInput,
) (*mcpsdk.CallToolResult, any, error) {
	sc, err := s.lookup(input.Scenario)
	if err != nil {
		return s.errorResult(err), nil, nil
	}
	sc, err = input.apply(sc)
	if err != nil {
		return s.errorResult(err), nil, nil
	}
	mode, err := sc.StaticMode()
	if err != nil {
		return s.errorResult(err), nil, nil
	}

	in, err := sc.Inputs(scenario.ConstantSource{}, s.deps.Pipeline)
	if err != nil {
		return s.errorResult(err), nil, nil
	}
	res, err := s.deps.Pipeline.Compute(in, sc.Limits())
	if err != nil {
		s.deps.Recorder.ObserveFailure(sc.Name)
		log.L().Debugw("compute_lift rejected", "scenario", sc.Name, "error", err)
		return s.errorResult(err), nil, nil
	}

	s.deps.Recorder.Observe(sc.Name, res)
	s.deps.Results.Update(sc.Name, res)
	log.L().Debugw("compute_lift", "scenario", sc.Name, "lift_n", res.Lift)

	return jsonResult(LiftResponse{
		Scenario:   sc.Name,
		StaticMode: string(mode),
		Result:     res,
		Airspeed:   res.Airspeed(),
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleSampleLift(
	ctx context.Context,
	req *mcpsdk.CallToolRequest,
	input sampleLiftInput,
) (*mcpsdk.CallToolResult, any, error) {
	sc, err := s.lookup(input.Scenario)
	if err != nil {
		return s.errorResult(err), nil, nil
	}

	n := input.Samples
	if n <= 0 {
		n = s.deps.DefaultSamples
	}
	if s.deps.MaxSamples > 0 && n > s.deps.MaxSamples {
		n = s.deps.MaxSamples
	}
	seed := uint64(time.Now().UnixNano()) //nolint:gosec // seeds are not secrets
	if input.Seed != nil {
		seed = *input.Seed
	}

	sum, err := ensemble.Run(s.deps.Pipeline, sc, scenario.NewUniformSource(seed), n)
	if err != nil {
		return s.errorResult(err), nil, nil
	}
	log.L().Debugw("sample_lift", "scenario", sc.Name, "samples", sum.Samples, "failures", sum.Failures)
	return jsonResult(sum)
}

func (s *Server) handleListScenarios(
	ctx context.Context,
	req *mcpsdk.CallToolRequest,
	_ emptyInput,
) (*mcpsdk.CallToolResult, any, error) {
	names := s.deps.Catalog.Names()
	out := make([]scenario.Scenario, 0, len(names))
	for _, name := range names {
		sc, err := s.deps.Catalog.Get(name)
		if err != nil {
			return nil, nil, err
		}
		out = append(out, sc)
	}
	return jsonResult(map[string]any{"scenarios": out})
}

func (s *Server) handleGetLastLift(
	ctx context.Context,
	req *mcpsdk.CallToolRequest,
	_ emptyInput,
) (*mcpsdk.CallToolResult, any, error) {
	e, err := s.deps.Results.Latest()
	if err != nil {
		return s.errorResult(err), nil, nil
	}
	return jsonResult(LiftResponse{
		Scenario:  e.Scenario,
		Result:    e.Result,
		Airspeed:  e.Result.Airspeed(),
		Timestamp: e.ComputedAt.UTC().Format(time.RFC3339),
	})
}

func jsonResult(v any) (*mcpsdk.CallToolResult, any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, nil, err
	}
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: string(data)}},
	}, nil, nil
}

func (s *Server) errorResult(err error) *mcpsdk.CallToolResult {
	resp := ErrorResponse{
		Error:     err.Error(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	switch {
	case errors.Is(err, types.ErrInvalidInput):
		resp.Code = "INVALID_INPUT"
		resp.Recoverable = true
		resp.Suggestion = "Pressures, temperature, area and lift coefficient must be positive, humidity within [0, 1] and total pressure at least the static pressure."
	case errors.Is(err, scenario.ErrUnknownScenario):
		resp.Code = "UNKNOWN_SCENARIO"
		resp.Recoverable = true
		resp.Suggestion = "Call list_scenarios for the available names."
	case errors.Is(err, scenario.ErrInvalidScenario):
		resp.Code = "INVALID_SCENARIO"
		resp.Recoverable = true
		resp.Suggestion = "A scenario needs total_pressure, surface_area and lift_coefficient, exactly one of static_pressure or altitude, temperature unless altitude is given, and every nominal value inside its range."
	case errors.Is(err, ensemble.ErrNoSamples):
		resp.Code = "NO_VALID_SAMPLES"
		resp.Recoverable = true
		resp.Suggestion = "Narrow the scenario's input ranges so draws pass validation."
	case errors.Is(err, state.ErrNoResult):
		resp.Code = "NO_RESULT"
		resp.Recoverable = true
		resp.Suggestion = "Call compute_lift first."
	default:
		resp.Code = "UNKNOWN_ERROR"
		resp.Recoverable = false
		resp.Suggestion = "Check application logs for details."
	}

	data, _ := json.Marshal(resp)
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: string(data)}},
		IsError: true,
	}
}
