// Package main is the terminal entry point for Snake.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"

	"github.com/samdwyer/gridsnake/internal/config"
	"github.com/samdwyer/gridsnake/internal/game"
	"github.com/samdwyer/gridsnake/internal/logging"
	"github.com/samdwyer/gridsnake/internal/telemetry"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// The terminal belongs to the game, so entries only go to the log file.
	log, err := logging.New(logging.Options{Level: cfg.LogLevel, File: cfg.LogFile})
	if err != nil {
		return err
	}
	log.WithFields(cfg.Fields()).WithField("platform", "native").Info("starting terminal snake")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if cfg.Telemetry {
		shutdown := setupTelemetry(ctx, log)
		defer shutdown()
	}

	g, err := game.New(cfg, log)
	if err != nil {
		log.WithError(err).Error("failed to initialize game")
		return err
	}
	if err := g.Run(ctx); err != nil {
		log.WithError(err).Error("game error")
		return err
	}

	log.WithField("final_score", g.Session().FinalScore()).Info("bye")
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
