package ui

import (
	"image"
	"image/color"
	"math"
	"strconv"

	"golang.org/x/image/math/f64"

	"github.com/samdwyer/gridsnake/internal/grid"
	"github.com/samdwyer/gridsnake/internal/session"
	"github.com/samdwyer/gridsnake/internal/theme"
)

// Game over texts.
const (
	GameOverText = "Game Over"
	ContinueText = "Press Enter to continue"
	ScorePrefix  = "Score: "
)

// minGapCellSize is the smallest cell edge that still gets a gap between
// body segments.
const minGapCellSize = 3

// Renderer handles drawing the session to a canvas.
type Renderer struct {
	palette theme.Palette
}

// NewRenderer creates a new renderer with the given palette.
func NewRenderer(p theme.Palette) *Renderer {
	return &Renderer{palette: p}
}

// Render draws one frame for the session's current state.
func (r *Renderer) Render(c Canvas, s *session.Session) {
	switch s.State() {
	case session.StateMenu:
		c.Clear(r.palette.Background)
		r.renderMenu(c, s)
	case session.StatePlaying:
		r.renderField(c, s, false)
		r.renderScore(c, s.Geometry(), s.Score())
	case session.StateGameOver:
		r.renderField(c, s, true)
		r.renderGameOver(c, s)
	}
}

// renderMenu draws the title, the logo and the buttons, highlighting the one
// under the pointer.
func (r *Renderer) renderMenu(c Canvas, s *session.Session) {
	m := s.Menu()

	logo := m.Title.Size
	c.DrawImage(ImageLogo, f64.Vec2{m.Title.Pos[0] - logo*1.5, m.Title.Pos[1]}, f64.Vec2{logo, logo})
	c.DrawText(m.Title.Text, m.Title.Pos, m.Title.Size, r.palette.Text)

	r.renderButton(c, m.Start, s.Pointer())
	if m.HasExit {
		r.renderButton(c, m.Exit, s.Pointer())
	}
}

func (r *Renderer) renderButton(c Canvas, b session.Button, pointer image.Point) {
	fill := r.palette.Button
	if b.Contains(pointer) {
		fill = r.palette.ButtonHover
	}
	pos, size := rectVec(b.Bounds)
	c.DrawRect(pos, size, fill)
	c.DrawText(b.Text, b.Pos, b.Size, r.palette.Text)
}

// renderField draws the border, the food and the snake. When frozen, body
// cells involved in the last collision are highlighted.
func (r *Renderer) renderField(c Canvas, s *session.Session, frozen bool) {
	g := s.Geometry()
	c.Clear(r.palette.Border)

	field := image.Rectangle{
		Min: g.Offset,
		Max: g.Offset.Add(image.Pt(g.Columns*g.CellSize, g.Rows*g.CellSize)),
	}
	pos, size := rectVec(field)
	c.DrawRect(pos, size, r.palette.Background)

	cell := float64(g.CellSize)
	for _, f := range s.Food() {
		c.DrawImage(ImageFood, pointVec(g.CellOrigin(f)), f64.Vec2{cell, cell})
	}

	gap := 0.0
	if g.CellSize >= minGapCellSize {
		gap = 1
	}
	segment := f64.Vec2{cell - gap, cell - gap}

	body := s.Body()
	collision := s.Collision()
	for i, b := range body {
		c.DrawRect(pointVec(g.CellOrigin(b)), segment, r.segmentColor(i, len(body), frozen, collision))
	}
}

func (r *Renderer) segmentColor(i, n int, frozen bool, collision session.Collision) color.Color {
	switch {
	case frozen && collision.Involves(i):
		return r.palette.Highlight
	case i == n-1:
		return r.palette.Head
	default:
		return r.palette.Snake
	}
}

// renderScore draws the running score in the top-left corner.
func (r *Renderer) renderScore(c Canvas, g grid.Geometry, score int) {
	size := hudSize(g)
	c.DrawText(ScorePrefix+strconv.Itoa(score), f64.Vec2{size / 2, size / 2}, size, r.palette.Text)
}

// renderGameOver draws the centred game over banner over the frozen board.
func (r *Renderer) renderGameOver(c Canvas, s *session.Session) {
	g := s.Geometry()
	h := float64(g.Height)
	title := math.Max(h/10, 1)
	body := math.Max(h/20, 1)

	r.centerText(c, g, GameOverText, title, h/3)
	r.centerText(c, g, ScorePrefix+strconv.Itoa(s.FinalScore()), body, h/2)
	r.centerText(c, g, ContinueText, body, h/2+2*body)
}

func (r *Renderer) centerText(c Canvas, g grid.Geometry, s string, size, centerY float64) {
	ext := c.MeasureText(s, size)
	pos := f64.Vec2{(float64(g.Width) - ext[0]) / 2, centerY - ext[1]/2}
	c.DrawText(s, pos, size, r.palette.Text)
}

func hudSize(g grid.Geometry) float64 {
	return math.Max(float64(g.Height)/30, 1)
}

func pointVec(p image.Point) f64.Vec2 {
	return f64.Vec2{float64(p.X), float64(p.Y)}
}

func rectVec(r image.Rectangle) (pos, size f64.Vec2) {
	return pointVec(r.Min), f64.Vec2{float64(r.Dx()), float64(r.Dy())}
}
