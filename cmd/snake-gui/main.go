// Package main is the windowed and browser entry point for Snake.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/samdwyer/gridsnake/internal/config"
	"github.com/samdwyer/gridsnake/internal/gui"
	"github.com/samdwyer/gridsnake/internal/logging"
	"github.com/samdwyer/gridsnake/internal/telemetry"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "snake-gui: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	opts := logging.Options{Level: cfg.LogLevel, Console: true}
	if !gui.Web {
		opts.File = cfg.LogFile
	}
	log, err := logging.New(opts)
	if err != nil {
		return err
	}

	platform := "native"
	if gui.Web {
		platform = "web"
	}
	log.WithFields(cfg.Fields()).WithField("platform", platform).Info("starting windowed snake")

	ctx := context.Background()
	if cfg.Telemetry {
		shutdown := setupTelemetry(ctx, log)
		defer shutdown()
	}

	if err := gui.Run(ctx, cfg, log); err != nil {
		log.WithError(err).Error("game error")
		return err
	}
	log.Info("bye")
	return nil
}

// setupTelemetry starts tracing. Failure is logged and the game runs without it.
func setupTelemetry(ctx context.Context, log logrus.FieldLogger) func() {
	telemetry.ConfigureHoneycomb()
	shutdown, err := telemetry.Setup(ctx, log)
	if err != nil {
		log.WithError(err).Warn("telemetry setup failed, running without observability")
		return func() {}
	}
	return func() {
		if err := shutdown(context.Background()); err != nil {
			log.WithError(err).Warn("error shutting down telemetry")
		}
	}
}
