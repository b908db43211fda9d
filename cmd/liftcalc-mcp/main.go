package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/VicenteB97/randomLift/internal/config"
	"github.com/VicenteB97/randomLift/internal/lift"
	"github.com/VicenteB97/randomLift/internal/log"
	internalmcp "github.com/VicenteB97/randomLift/internal/mcp"
	"github.com/VicenteB97/randomLift/internal/metrics"
	"github.com/VicenteB97/randomLift/internal/physics"
	"github.com/VicenteB97/randomLift/internal/scenario"
	"github.com/VicenteB97/randomLift/internal/state"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "liftcalc-mcp: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()
	if err := log.Init(cfg.Log.Debug); err != nil {
		return err
	}
	defer log.Sync()

	catalog, err := scenario.Open(cfg.Scenario.File)
	if err != nil {
		return err
	}
	if _, err := catalog.Get(cfg.Scenario.Name); err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer cancel()

	rec := metrics.NewRecorder()
	mcpServer := internalmcp.NewServer(internalmcp.Deps{
		Catalog:         catalog,
		Pipeline:        lift.NewPipeline(physics.Standard()),
		Results:         state.NewManager(),
		Recorder:        rec,
		DefaultScenario: cfg.Scenario.Name,
		DefaultSamples:  cfg.Sampling.Samples,
		MaxSamples:      cfg.Sampling.MaxSamples,
	})

	if cfg.Server.MetricsAddr != "" {
		go serveMetrics(ctx, cfg.Server.MetricsAddr, rec.Handler())
	}

	log.L().Infow("mcp server starting", "scenarios", catalog.Names(), "default_scenario", cfg.Scenario.Name)
	if err := mcpServer.Run(ctx); !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// serveMetrics exposes the Prometheus endpoint until ctx is done.
func serveMetrics(ctx context.Context, addr string, h http.Handler) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", h)
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.L().Infow("metrics server listening", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.L().Errorw("metrics server stopped", "error", err)
	}
}
