// Package config loads runtime settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/samdwyer/gridsnake/internal/entity"
	"github.com/samdwyer/gridsnake/internal/speed"
)

// Environment variable names.
const (
	EnvCellSize     = "SNAKE_CELL_SIZE"
	EnvBaseInterval = "SNAKE_BASE_INTERVAL"
	EnvFrameRate    = "SNAKE_FRAME_RATE"
	EnvSeed         = "SNAKE_SEED"
	EnvStrictFood   = "SNAKE_STRICT_FOOD"
	EnvLogLevel     = "SNAKE_LOG_LEVEL"
	EnvLogFile      = "SNAKE_LOG_FILE"
	EnvTelemetry    = "SNAKE_TELEMETRY"
	EnvWindowWidth  = "SNAKE_WINDOW_WIDTH"
	EnvWindowHeight = "SNAKE_WINDOW_HEIGHT"
)

// Config holds game configuration options.
type Config struct {
	// CellSize is the edge of a grid cell in viewport pixels. The terminal
	// frontend counts one pixel as a character row. Zero picks the frontend default.
	CellSize int

	// BaseInterval is the movement interval at score zero.
	BaseInterval time.Duration

	// FrameRate is the number of frames rendered per second.
	FrameRate int

	// Seed for random number generation. A seed of 0 means a random seed will be generated.
	Seed int64

	// StrictFood rejects food samples that land on the snake or other food.
	StrictFood bool

	LogLevel logrus.Level
	LogFile  string

	// Telemetry enables the OTLP trace exporter.
	Telemetry bool

	// Window size for the windowed frontend.
	WindowWidth  int
	WindowHeight int
}

// Default returns the configuration used when no variables are set.
func Default() Config {
	return Config{
		BaseInterval: speed.DefaultBase,
		FrameRate:    60,
		LogLevel:     logrus.InfoLevel,
		LogFile:      "gridsnake.log",
		WindowWidth:  800,
		WindowHeight: 600,
	}
}

// Load reads a .env file when present, then the SNAKE_* environment variables.
func Load() (Config, error) {
	// Not fatal - env vars might be set directly
	_ = godotenv.Load()
	return FromEnv(os.LookupEnv)
}

// FromEnv builds a configuration from a lookup function such as os.LookupEnv.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()
	p := parser{lookup: lookup}

	p.intVar(EnvCellSize, &cfg.CellSize, 0)
	p.durationVar(EnvBaseInterval, &cfg.BaseInterval)
	p.intVar(EnvFrameRate, &cfg.FrameRate, 1)
	p.int64Var(EnvSeed, &cfg.Seed)
	p.boolVar(EnvStrictFood, &cfg.StrictFood)
	p.levelVar(EnvLogLevel, &cfg.LogLevel)
	p.stringVar(EnvLogFile, &cfg.LogFile)
	p.boolVar(EnvTelemetry, &cfg.Telemetry)
	p.intVar(EnvWindowWidth, &cfg.WindowWidth, 1)
	p.intVar(EnvWindowHeight, &cfg.WindowHeight, 1)

	if p.err != nil {
		return Config{}, p.err
	}
	return cfg, nil
}

// Fields returns the configuration as log fields.
func (c Config) Fields() logrus.Fields {
	return logrus.Fields{
		"cell_size":     c.CellSize,
		"base_interval": c.BaseInterval.String(),
		"frame_rate":    c.FrameRate,
		"seed":          c.Seed,
		"strict_food":   c.StrictFood,
		"log_level":     c.LogLevel.String(),
		"log_file":      c.LogFile,
		"telemetry":     c.Telemetry,
	}
}

// FrameInterval returns the time between rendered frames.
func (c Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.FrameRate)
}

// parser records the first error and skips the remaining variables.
type parser struct {
	lookup func(string) (string, bool)
	err    error
}

func (p *parser) value(name string) (string, bool) {
	if p.err != nil {
		return "", false
	}
	v, ok := p.lookup(name)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

func (p *parser) fail(name, value string, err error) {
	p.err = fmt.Errorf("invalid %s=%q: %w", name, value, err)
}

func (p *parser) stringVar(name string, dst *string) {
	if v, ok := p.value(name); ok {
		*dst = v
	}
}

func (p *parser) intVar(name string, dst *int, min int) {
	v, ok := p.value(name)
	if !ok {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		p.fail(name, v, err)
		return
	}
	if n < min {
		p.fail(name, v, fmt.Errorf("must be at least %d", min))
		return
	}
	*dst = n
}

func (p *parser) int64Var(name string, dst *int64) {
	v, ok := p.value(name)
	if !ok {
		return
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		p.fail(name, v, err)
		return
	}
	*dst = n
}

func (p *parser) boolVar(name string, dst *bool) {
	v, ok := p.value(name)
	if !ok {
		return
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		p.fail(name, v, err)
		return
	}
	*dst = b
}

func (p *parser) durationVar(name string, dst *time.Duration) {
	v, ok := p.value(name)
	if !ok {
		return
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		p.fail(name, v, err)
		return
	}
	if d < 0 {
		p.fail(name, v, fmt.Errorf("must not be negative"))
		return
	}
	*dst = d
}

func (p *parser) levelVar(name string, dst *logrus.Level) {
	v, ok := p.value(name)
	if !ok {
		return
	}
	l, err := logrus.ParseLevel(v)
	if err != nil {
		p.fail(name, v, err)
		return
	}
	*dst = l
}

// RandSeed returns the configured seed, or a time-based one when unset.
func (c Config) RandSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}

// Placement returns the food placement selected by StrictFood.
func (c Config) Placement() entity.Placement {
	if c.StrictFood {
		return entity.PlacementStrict
	}
	return entity.PlacementFirstSample
}
