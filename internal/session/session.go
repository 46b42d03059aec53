package session

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/gridsnake/internal/entity"
	"github.com/samdwyer/gridsnake/internal/grid"
	"github.com/samdwyer/gridsnake/internal/input"
	"github.com/samdwyer/gridsnake/internal/speed"
	"github.com/samdwyer/gridsnake/internal/telemetry"
	"github.com/samdwyer/gridsnake/internal/tick"
)

// ErrGridTooSmall is returned when the viewport cannot hold a fresh snake.
var ErrGridTooSmall = errors.New("session: grid too small for a snake")

// Options configures a new session.
type Options struct {
	Width, Height int // Viewport size in pixels
	CellSize      int
	BaseInterval  time.Duration // Zero means speed.DefaultBase
	Placement     entity.Placement
	Web           bool // Web-hosted build: no Exit control
	Rand          *rand.Rand
	Measurer      TextMeasurer
	Log           logrus.FieldLogger
	Tracer        trace.Tracer // Nil means the global provider's session tracer
	Now           time.Time
}

// Session holds the entire game state. It is mutated only by Update.
type Session struct {
	state State
	geom  grid.Geometry
	menu  Menu
	web   bool

	snake     *entity.Snake
	food      *entity.FoodSpawner
	queue     input.Queue
	scheduler *tick.Scheduler
	curve     speed.Curve
	placement entity.Placement
	rng       *rand.Rand

	score      int
	finalScore int
	ticks      int
	collision  Collision
	pointer    image.Point
	exited     bool

	roundID   uuid.UUID
	roundSpan trace.Span
	log       logrus.FieldLogger
	tracer    trace.Tracer
}

// New creates a session in the menu state with a fresh snake and food.
func New(opts Options) (*Session, error) {
	geom := grid.New(opts.Width, opts.Height, opts.CellSize)
	if geom.Columns < entity.InitialLength || geom.Rows < 1 {
		return nil, fmt.Errorf("%w: %dx%d cells in %dx%d pixels",
			ErrGridTooSmall, geom.Columns, geom.Rows, opts.Width, opts.Height)
	}

	base := opts.BaseInterval
	if base == 0 {
		base = speed.DefaultBase
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	measurer := opts.Measurer
	if measurer == nil {
		measurer = FixedWidth{Advance: 1}
	}
	log := opts.Log
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	tracer := opts.Tracer
	if tracer == nil {
		tracer = telemetry.Tracer("session")
	}
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	s := &Session{
		state:     StateMenu,
		geom:      geom,
		menu:      LayoutMenu(measurer, geom.Width, geom.Height, opts.Web),
		web:       opts.Web,
		scheduler: tick.NewScheduler(now),
		curve:     speed.Curve{Base: base},
		placement: opts.Placement,
		rng:       rng,
		log:       log,
		tracer:    tracer,
	}
	s.fresh()

	s.log.WithFields(logrus.Fields{
		"columns":   geom.Columns,
		"rows":      geom.Rows,
		"cell_size": geom.CellSize,
		"placement": opts.Placement.String(),
		"web":       opts.Web,
	}).Info("session created")

	return s, nil
}

// Update runs one frame: it applies the frame's input to the current state
// and, while playing, advances the snake when a tick is due.
func (s *Session) Update(ctx context.Context, now time.Time, f input.Frame) {
	s.pointer = f.Pointer

	switch s.state {
	case StateMenu:
		s.updateMenu(ctx, now, f)
	case StatePlaying:
		s.queue.PushFrame(f)
		if s.scheduler.Due(now, s.curve.Interval(s.score)) {
			s.step()
		}
	case StateGameOver:
		if f.Pressed(input.KeyConfirm) {
			s.returnToMenu()
		}
	}
}

// updateMenu handles the Start and Exit controls.
func (s *Session) updateMenu(ctx context.Context, now time.Time, f input.Frame) {
	start := f.Pressed(input.KeyConfirm) || (f.Clicked && s.menu.Start.Contains(f.Pointer))
	if start {
		s.startRound(ctx, now)
		return
	}

	if !s.menu.HasExit {
		return
	}
	if f.Pressed(input.KeyQuit) || (f.Clicked && s.menu.Exit.Contains(f.Pointer)) {
		s.exited = true
		s.log.Info("exit requested from menu")
	}
}

// step runs a single simulation tick.
func (s *Session) step() {
	dir, _ := s.queue.Next(s.snake.Heading())
	s.snake.Advance(dir)
	s.ticks++

	// Only the first food cell the body covers is eaten per tick.
	for _, c := range s.food.Cells() {
		if s.snake.Occupies(c) {
			s.eat(c)
			break
		}
	}

	if hit, i, j := s.snake.SelfCollision(); hit {
		s.gameOver(Collision{Kind: CollisionSelf, Indices: []int{i, j}})
		return
	}
	if hit, i := s.snake.WallCollision(s.geom); hit {
		s.gameOver(Collision{Kind: CollisionWall, Indices: []int{i}})
	}
}

// eat consumes the food cell, replaces it and grows the snake.
func (s *Session) eat(c grid.Cell) {
	s.food.Remove(c)
	spawned := s.food.SpawnOne(s.snake.Occupies)
	s.snake.Grow()
	s.score++

	s.roundSpan.AddEvent("food.eaten", trace.WithAttributes(
		attribute.Int("score", s.score),
		attribute.Int("snake.length", s.snake.Len()),
	))
	s.log.WithFields(logrus.Fields{
		"round":   s.roundID.String(),
		"eaten":   c.String(),
		"spawned": spawned.String(),
		"score":   s.score,
		"length":  s.snake.Len(),
	}).Debug("food eaten")
}

// startRound enters the playing state with a fresh board.
func (s *Session) startRound(ctx context.Context, now time.Time) {
	s.fresh()
	s.score = 0
	s.ticks = 0
	s.state = StatePlaying
	s.scheduler.Reset(now)
	s.roundID = uuid.New()

	_, s.roundSpan = s.tracer.Start(ctx, "session.round", trace.WithAttributes(
		attribute.String("round.id", s.roundID.String()),
		attribute.Int("grid.columns", s.geom.Columns),
		attribute.Int("grid.rows", s.geom.Rows),
	))

	s.log.WithField("round", s.roundID.String()).Info("round started")
}

// gameOver ends the round. The score resets; the final score is kept for display.
func (s *Session) gameOver(c Collision) {
	s.collision = c
	s.finalScore = s.score
	s.score = 0
	s.state = StateGameOver

	s.roundSpan.SetAttributes(
		attribute.String("collision", c.Kind.String()),
		attribute.Int("score", s.finalScore),
		attribute.Int("snake.length", s.snake.Len()),
		attribute.Int("ticks", s.ticks),
	)
	s.roundSpan.SetStatus(codes.Ok, "")
	s.roundSpan.End()

	s.log.WithFields(logrus.Fields{
		"round":     s.roundID.String(),
		"collision": c.Kind.String(),
		"indices":   c.Indices,
		"score":     s.finalScore,
		"length":    s.snake.Len(),
		"ticks":     s.ticks,
	}).Info("game over")
}

// returnToMenu leaves game over for a fresh menu.
func (s *Session) returnToMenu() {
	s.fresh()
	s.state = StateMenu
	s.log.WithField("round", s.roundID.String()).Info("returned to menu")
}

// fresh replaces the snake and food and clears per-round state.
func (s *Session) fresh() {
	s.snake = entity.NewSnake(s.geom)
	s.food = entity.NewFoodSpawner(s.geom, s.rng, s.placement)
	for i := 0; i < entity.FoodCount; i++ {
		s.food.SpawnOne(s.snake.Occupies)
	}
	s.queue.Clear()
	s.collision = Collision{}
	s.roundSpan = trace.SpanFromContext(context.Background())
}

// Close ends an unfinished round span. Call when the frame loop stops.
func (s *Session) Close() {
	if s.state == StatePlaying {
		s.roundSpan.SetAttributes(attribute.Bool("abandoned", true))
		s.roundSpan.End()
		s.log.WithField("round", s.roundID.String()).Info("round abandoned")
	}
}

// State returns the current state.
func (s *Session) State() State { return s.state }

// Geometry returns the grid geometry.
func (s *Session) Geometry() grid.Geometry { return s.geom }

// Menu returns the menu layout.
func (s *Session) Menu() Menu { return s.menu }

// Body returns a copy of the snake's cells, tail first.
func (s *Session) Body() []grid.Cell { return s.snake.Cells() }

// Heading returns the snake's current direction.
func (s *Session) Heading() grid.Direction { return s.snake.Heading() }

// Food returns a copy of the food cells.
func (s *Session) Food() []grid.Cell { return s.food.Cells() }

// Score returns the score of the round in progress.
func (s *Session) Score() int { return s.score }

// FinalScore returns the score at the last game over.
func (s *Session) FinalScore() int { return s.finalScore }

// Collision returns what ended the last round.
func (s *Session) Collision() Collision {
	c := s.collision
	c.Indices = append([]int(nil), c.Indices...)
	return c
}

// Pointer returns the pointer position from the latest frame.
func (s *Session) Pointer() image.Point { return s.pointer }

// Web reports whether the session runs in a web-hosted build.
func (s *Session) Web() bool { return s.web }

// Exited reports whether the player chose Exit.
func (s *Session) Exited() bool { return s.exited }

// Ticks returns the number of ticks in the current or last round.
func (s *Session) Ticks() int { return s.ticks }

// LastTick returns the time of the last simulation tick.
func (s *Session) LastTick() time.Time { return s.scheduler.Last() }

// RoundID identifies the current or last round; zero before the first round.
func (s *Session) RoundID() uuid.UUID { return s.roundID }
