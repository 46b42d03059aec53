// Package game runs the snake session in a terminal.
package game

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/samdwyer/gridsnake/internal/config"
	"github.com/samdwyer/gridsnake/internal/session"
	"github.com/samdwyer/gridsnake/internal/theme"
	"github.com/samdwyer/gridsnake/internal/ui"
)

// DefaultCellSize is the terminal cell edge in pixels: one row, two columns.
const DefaultCellSize = 1

// eventBuffer bounds the events queued between two frames.
const eventBuffer = 64

// Game holds the terminal screen and the session it draws.
type Game struct {
	cfg      config.Config
	log      logrus.FieldLogger
	screen   *ui.Screen
	renderer *ui.Renderer
	session  *session.Session
	events   ui.EventFrame
}

// New opens the terminal and creates a session sized to it.
func New(cfg config.Config, log logrus.FieldLogger) (*Game, error) {
	palette, err := theme.LoadPalette()
	if err != nil {
		return nil, err
	}
	screen, err := ui.NewScreen(palette)
	if err != nil {
		return nil, fmt.Errorf("open terminal: %w", err)
	}

	g, err := NewWithScreen(cfg, log, screen, palette)
	if err != nil {
		screen.Close()
		return nil, err
	}
	return g, nil
}

// NewWithScreen creates a game on an already open screen.
func NewWithScreen(cfg config.Config, log logrus.FieldLogger, screen *ui.Screen, palette theme.Palette) (*Game, error) {
	cellSize := cfg.CellSize
	if cellSize == 0 {
		cellSize = DefaultCellSize
	}
	width, height := screen.Size()
	seed := cfg.RandSeed()

	sess, err := session.New(session.Options{
		Width:        width,
		Height:       height,
		CellSize:     cellSize,
		BaseInterval: cfg.BaseInterval,
		Placement:    cfg.Placement(),
		Rand:         rand.New(rand.NewSource(seed)),
		Measurer:     screen,
		Log:          log,
	})
	if err != nil {
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"width":  width,
		"height": height,
		"seed":   seed,
		"theme":  palette.Name,
	}).Info("terminal game ready")

	return &Game{
		cfg:      cfg,
		log:      log,
		screen:   screen,
		renderer: ui.NewRenderer(palette),
		session:  sess,
	}, nil
}

// Run executes the frame loop until the player exits, Ctrl-C is pressed or
// ctx is cancelled. The screen is closed on return.
func (g *Game) Run(ctx context.Context) error {
	defer g.screen.Close()
	defer g.session.Close()

	done := make(chan struct{})
	defer close(done)
	events := make(chan tcell.Event, eventBuffer)
	go g.pollEvents(events, done)

	ticker := time.NewTicker(g.cfg.FrameInterval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			g.log.Info("context cancelled, stopping")
			return nil
		case ev := <-events:
			g.events.Add(ev)
			if g.events.Interrupted() {
				g.log.Info("interrupted")
				return nil
			}
		case now := <-ticker.C:
			if !g.frame(ctx, now) {
				return nil
			}
		}
	}
}

// pollEvents forwards terminal events until the screen is finalized or the
// loop stops listening.
func (g *Game) pollEvents(events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := g.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// frame updates and draws once. It returns false when the player exited.
func (g *Game) frame(ctx context.Context, now time.Time) bool {
	if g.events.TakeResize() {
		g.screen.Sync()
	}

	g.session.Update(ctx, now, g.events.Poll())
	if g.session.Exited() {
		return false
	}

	g.renderer.Render(g.screen, g.session)
	g.screen.Show()
	return true
}

// Session returns the running session.
func (g *Game) Session() *session.Session {
	return g.session
}
