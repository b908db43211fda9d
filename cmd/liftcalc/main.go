package main

import (
	"fmt"
	"io"
	"os"

	"github.com/VicenteB97/randomLift/internal/config"
	"github.com/VicenteB97/randomLift/internal/ensemble"
	"github.com/VicenteB97/randomLift/internal/lift"
	"github.com/VicenteB97/randomLift/internal/log"
	"github.com/VicenteB97/randomLift/internal/physics"
	"github.com/VicenteB97/randomLift/internal/report"
	"github.com/VicenteB97/randomLift/internal/scenario"
)

func main() {
	if err := run(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "liftcalc: %v\n", err)
		os.Exit(1)
	}
}

// run evaluates the configured scenario once, or as an ensemble when the
// input source is uniform, and writes the report to w.
func run(w io.Writer) error {
	cfg := config.Load()
	if err := log.Init(cfg.Log.Debug); err != nil {
		return err
	}
	defer log.Sync()

	catalog, err := scenario.Open(cfg.Scenario.File)
	if err != nil {
		return err
	}
	sc, err := catalog.Get(cfg.Scenario.Name)
	if err != nil {
		return err
	}
	pipeline := lift.NewPipeline(physics.Standard())

	if cfg.Sampling.Source == config.SourceUniform {
		n := min(cfg.Sampling.Samples, cfg.Sampling.MaxSamples)
		sum, err := ensemble.Run(pipeline, sc, scenario.NewUniformSource(cfg.Sampling.Seed), n)
		if err != nil {
			return err
		}
		log.L().Infow("ensemble evaluated",
			"scenario", sc.Name, "samples", sum.Samples, "failures", sum.Failures,
			"lift_mean_n", sum.Lift.Mean, "lift_std_n", sum.Lift.StdDev)
		return report.WriteSummary(w, sum)
	}

	in, err := sc.Inputs(scenario.ConstantSource{}, pipeline)
	if err != nil {
		return err
	}
	res, err := pipeline.Compute(in, sc.Limits())
	if err != nil {
		log.L().Errorw("inputs rejected", "scenario", sc.Name, "error", err)
		return fmt.Errorf("scenario %s: %w", sc.Name, err)
	}
	log.L().Infow("lift evaluated", "scenario", sc.Name, "lift_n", res.Lift)
	return report.WriteResult(w, sc.Name, res)
}
