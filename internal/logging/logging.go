// Package logging builds the structured logger shared by every frontend.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
)

// Options controls where log entries go.
type Options struct {
	Level      logrus.Level
	File       string // Rotated log file; empty disables the file hook
	Console    bool   // Also write to stderr
	MaxSize    int    // Megabytes before rotation
	Backups    int
	MaxAgeDays int
}

// New creates a logger. With Console false and no File every entry is
// discarded, which keeps a full-screen terminal UI intact.
func New(opts Options) (*logrus.Logger, error) {
	log := logrus.New()
	log.SetLevel(opts.Level)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if opts.Console {
		log.SetOutput(os.Stderr)
	} else {
		log.SetOutput(io.Discard)
	}

	if opts.File != "" {
		hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
			Filename:   opts.File,
			MaxSize:    orDefault(opts.MaxSize, 5),
			MaxBackups: orDefault(opts.Backups, 3),
			MaxAge:     orDefault(opts.MaxAgeDays, 7),
			Level:      opts.Level,
			Formatter:  &logrus.JSONFormatter{},
		})
		if err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %w", opts.File, err)
		}
		log.AddHook(hook)
	}

	return log, nil
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
