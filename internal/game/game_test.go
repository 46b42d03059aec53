package game

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/samdwyer/gridsnake/internal/config"
	"github.com/samdwyer/gridsnake/internal/session"
	"github.com/samdwyer/gridsnake/internal/theme"
	"github.com/samdwyer/gridsnake/internal/ui"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("sim.Init() error = %v", err)
	}
	sim.SetSize(80, 24)

	log := logrus.New()
	log.SetOutput(io.Discard)

	cfg := config.Default()
	cfg.Seed = 7

	palette := theme.MustLoadPalette()
	g, err := NewWithScreen(cfg, log, ui.WrapScreen(sim, palette), palette)
	if err != nil {
		t.Fatalf("NewWithScreen() error = %v", err)
	}
	return g
}

func TestNewSizesGridToTerminal(t *testing.T) {
	g := newTestGame(t)
	defer g.screen.Close()

	geom := g.Session().Geometry()
	if geom.Columns != 40 || geom.Rows != 24 {
		t.Errorf("grid = %dx%d, want 40x24", geom.Columns, geom.Rows)
	}
	if geom.CellSize != DefaultCellSize {
		t.Errorf("CellSize = %d, want %d", geom.CellSize, DefaultCellSize)
	}
}

func TestFrameClickStartsRound(t *testing.T) {
	g := newTestGame(t)
	defer g.screen.Close()

	b := g.Session().Menu().Start.Bounds
	g.events.Add(tcell.NewEventMouse(b.Min.X*2, b.Min.Y, tcell.Button1, tcell.ModNone))

	if !g.frame(context.Background(), time.Now()) {
		t.Fatal("frame() = false, want true")
	}
	if got := g.Session().State(); got != session.StatePlaying {
		t.Errorf("state = %v, want playing", got)
	}
}

func TestFrameStopsAfterExit(t *testing.T) {
	g := newTestGame(t)
	defer g.screen.Close()

	b := g.Session().Menu().Exit.Bounds
	g.events.Add(tcell.NewEventMouse(b.Min.X*2, b.Min.Y, tcell.Button1, tcell.ModNone))

	if g.frame(context.Background(), time.Now()) {
		t.Error("frame() = true after Exit, want false")
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	g := newTestGame(t)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	errc := make(chan error, 1)
	go func() { errc <- g.Run(ctx) }()

	select {
	case err := <-errc:
		if err != nil {
			t.Errorf("Run() error = %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
