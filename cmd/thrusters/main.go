package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/zeusync/thrusters/internal/config"
	"github.com/zeusync/thrusters/internal/core/observability/log"
	"github.com/zeusync/thrusters/internal/injector"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stderr)
	cancel()
	os.Exit(code)
}

// run returns the process exit code: 2 for bad flags, 1 for config or runtime errors.
func run(ctx context.Context, args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("thrusters", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "vehicles.yaml", "path to a YAML or JSON vehicle config")
	strategyName := fs.String("strategy", "", "allocation strategy, overrides the config file")
	steps := fs.Int("steps", 1, "number of allocation passes to run")
	deltaTime := fs.Float64("dt", 1.0/60, "simulated seconds per pass")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.LoadFile(*configPath)
	if err != nil {
		fmt.Fprintln(stderr, "Error loading config:", err)
		return 1
	}
	if *strategyName != "" {
		cfg.Strategy = *strategyName
		if err = cfg.Validate(); err != nil {
			fmt.Fprintln(stderr, "Error loading config:", err)
			return 1
		}
	}

	app, err := injector.InitializeApp(cfg)
	if err != nil {
		fmt.Fprintln(stderr, "Error initializing:", err)
		return 1
	}
	defer func() { _ = app.Logger.Sync() }()

	for i := 0; i < *steps; i++ {
		if err = app.Step(ctx, *deltaTime); err != nil {
			app.Logger.Error("step failed", log.Int("step", i), log.Error(err))
			return 1
		}
	}

	for _, r := range app.Report() {
		app.Logger.Info("thruster",
			log.String("vehicle", r.Vehicle),
			log.String("name", r.Name),
			log.Stringer("id", r.ID),
			log.Float64("status", r.Status),
			log.Float64("strength_factor", r.StrengthFactor),
			log.Stringer("force", r.Force))
	}
	return 0
}
