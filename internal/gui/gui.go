// Package gui runs the snake session in a window, or in a browser when
// built for js/wasm, using Ebitengine.
package gui

import (
	"context"
	"fmt"
	"math/rand"
	"runtime"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"

	"github.com/samdwyer/gridsnake/internal/config"
	"github.com/samdwyer/gridsnake/internal/input"
	"github.com/samdwyer/gridsnake/internal/session"
	"github.com/samdwyer/gridsnake/internal/theme"
	"github.com/samdwyer/gridsnake/internal/ui"
)

// Web reports whether this build runs in a browser, where the process
// cannot exit.
const Web = runtime.GOOS == "js"

// DefaultCellSize is the cell edge in window pixels.
const DefaultCellSize = 20

// WindowTitle is shown in the title bar.
const WindowTitle = "Snake"

// bindings maps physical keys to controls.
var bindings = []struct {
	key     ebiten.Key
	control input.Key
}{
	{ebiten.KeyArrowUp, input.KeyUp},
	{ebiten.KeyW, input.KeyUp},
	{ebiten.KeyArrowRight, input.KeyRight},
	{ebiten.KeyD, input.KeyRight},
	{ebiten.KeyArrowLeft, input.KeyLeft},
	{ebiten.KeyA, input.KeyLeft},
	{ebiten.KeyArrowDown, input.KeyDown},
	{ebiten.KeyS, input.KeyDown},
	{ebiten.KeyEnter, input.KeyConfirm},
	{ebiten.KeySpace, input.KeyConfirm},
	{ebiten.KeyEscape, input.KeyQuit},
	{ebiten.KeyQ, input.KeyQuit},
}

// Game implements ebiten.Game around a session.
type Game struct {
	ctx      context.Context
	log      logrus.FieldLogger
	width    int
	height   int
	session  *session.Session
	renderer *ui.Renderer
	canvas   *Canvas
}

// New creates a game for a window of the configured size.
func New(ctx context.Context, cfg config.Config, log logrus.FieldLogger) (*Game, error) {
	palette, err := theme.LoadPalette()
	if err != nil {
		return nil, err
	}
	canvas, err := NewCanvas(palette)
	if err != nil {
		return nil, err
	}

	cellSize := cfg.CellSize
	if cellSize == 0 {
		cellSize = DefaultCellSize
	}
	seed := cfg.RandSeed()

	sess, err := session.New(session.Options{
		Width:        cfg.WindowWidth,
		Height:       cfg.WindowHeight,
		CellSize:     cellSize,
		BaseInterval: cfg.BaseInterval,
		Placement:    cfg.Placement(),
		Web:          Web,
		Rand:         rand.New(rand.NewSource(seed)),
		Measurer:     canvas,
		Log:          log,
	})
	if err != nil {
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"width":  cfg.WindowWidth,
		"height": cfg.WindowHeight,
		"seed":   seed,
		"theme":  palette.Name,
	}).Info("window game ready")

	return &Game{
		ctx:      ctx,
		log:      log,
		width:    cfg.WindowWidth,
		height:   cfg.WindowHeight,
		session:  sess,
		renderer: ui.NewRenderer(palette),
		canvas:   canvas,
	}, nil
}

// Update advances the session by one frame.
func (g *Game) Update() error {
	if err := g.ctx.Err(); err != nil {
		return ebiten.Termination
	}

	g.session.Update(g.ctx, time.Now(), poll())
	if g.session.Exited() {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the session onto the screen image.
func (g *Game) Draw(screen *ebiten.Image) {
	g.canvas.Target(screen)
	g.renderer.Render(g.canvas, g.session)
}

// Layout keeps the logical screen at the grid's viewport size.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

// Run opens the window and blocks until the player exits or the window closes.
func Run(ctx context.Context, cfg config.Config, log logrus.FieldLogger) error {
	g, err := New(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer g.session.Close()

	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowTitle(WindowTitle)
	ebiten.SetTPS(cfg.FrameRate)

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}

// poll reads this frame's key presses, click and cursor position.
func poll() input.Frame {
	var f input.Frame
	for _, b := range bindings {
		if inpututil.IsKeyJustPressed(b.key) {
			f.Keys = f.Keys.With(b.control)
		}
	}
	f.Clicked = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	f.Pointer.X, f.Pointer.Y = ebiten.CursorPosition()
	return f
}
