package ui

import (
	"image/color"
	"math"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/image/math/f64"

	"github.com/samdwyer/gridsnake/internal/theme"
)

// columnsPerPixel is how many terminal columns make one viewport pixel, so
// that square cells look square in a typical terminal font.
const columnsPerPixel = 2

// Glyphs used for images in the terminal.
const (
	foodGlyph = '●'
	logoGlyph = '§'
)

// Screen wraps tcell.Screen as a Canvas. One viewport pixel is two columns
// wide and one row tall. Text is always one row high, whatever its size.
type Screen struct {
	screen  tcell.Screen
	palette theme.Palette
	bg      tcell.Color
}

// NewScreen creates and initializes a new terminal screen.
func NewScreen(p theme.Palette) (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := s.Init(); err != nil {
		return nil, err
	}
	return WrapScreen(s, p), nil
}

// WrapScreen adopts an initialized tcell screen, such as a simulation screen.
func WrapScreen(s tcell.Screen, p theme.Palette) *Screen {
	bg := tcell.FromImageColor(p.Background)
	s.SetStyle(tcell.StyleDefault.Background(bg).Foreground(tcell.FromImageColor(p.Text)))
	s.EnableMouse()
	s.HideCursor()
	s.Clear()
	return &Screen{screen: s, palette: p, bg: bg}
}

// Close finalizes the screen and restores terminal state.
func (s *Screen) Close() {
	s.screen.Fini()
}

// PollEvent waits for and returns the next terminal event. It returns nil
// once the screen is finalized.
func (s *Screen) PollEvent() tcell.Event {
	return s.screen.PollEvent()
}

// Show flushes the screen buffer to the terminal.
func (s *Screen) Show() {
	s.screen.Show()
}

// Sync forces a complete redraw of the screen.
func (s *Screen) Sync() {
	s.screen.Sync()
}

// Size returns the viewport in pixels.
func (s *Screen) Size() (width, height int) {
	cols, rows := s.screen.Size()
	return cols / columnsPerPixel, rows
}

// Clear fills the whole terminal with c.
func (s *Screen) Clear(c color.Color) {
	s.bg = tcell.FromImageColor(c)
	s.screen.SetStyle(tcell.StyleDefault.Background(s.bg).Foreground(tcell.FromImageColor(s.palette.Text)))
	s.screen.Clear()
}

// DrawRect fills the pixels covered by the rectangle.
func (s *Screen) DrawRect(pos, size f64.Vec2, c color.Color) {
	style := tcell.StyleDefault.Background(tcell.FromImageColor(c))
	s.fill(pos, size, ' ', style)
}

// DrawText writes s starting at pos, one rune per column.
func (s *Screen) DrawText(text string, pos f64.Vec2, _ float64, c color.Color) {
	x := int(math.Round(pos[0] * columnsPerPixel))
	y := int(math.Round(pos[1]))
	style := tcell.StyleDefault.
		Foreground(tcell.FromImageColor(c)).
		Background(s.backgroundAt(x, y))
	for i, ch := range []rune(text) {
		s.screen.SetContent(x+i, y, ch, nil, style)
	}
}

// DrawImage draws the image's glyph over every covered pixel.
func (s *Screen) DrawImage(id ImageID, pos, size f64.Vec2) {
	switch id {
	case ImageFood:
		s.fill(pos, size, foodGlyph, tcell.StyleDefault.Foreground(tcell.FromImageColor(s.palette.Food)).Background(s.bg))
	case ImageLogo:
		s.fill(pos, size, logoGlyph, tcell.StyleDefault.Foreground(tcell.FromImageColor(s.palette.Head)).Background(s.bg))
	}
}

// MeasureText implements session.TextMeasurer in pixels.
func (s *Screen) MeasureText(text string, _ float64) f64.Vec2 {
	cols := utf8.RuneCountInString(text)
	return f64.Vec2{math.Ceil(float64(cols) / columnsPerPixel), 1}
}

// fill sets every column of the pixel rectangle, clipped to the terminal.
func (s *Screen) fill(pos, size f64.Vec2, ch rune, style tcell.Style) {
	x0 := int(math.Round(pos[0])) * columnsPerPixel
	y0 := int(math.Round(pos[1]))
	x1 := int(math.Round(pos[0]+size[0])) * columnsPerPixel
	y1 := int(math.Round(pos[1] + size[1]))

	cols, rows := s.screen.Size()
	x0, y0 = max(x0, 0), max(y0, 0)
	x1, y1 = min(x1, cols), min(y1, rows)

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			s.screen.SetContent(x, y, ch, nil, style)
		}
	}
}

// backgroundAt returns the background already drawn at a column so text
// keeps the colour of the button or field beneath it.
func (s *Screen) backgroundAt(x, y int) tcell.Color {
	_, _, style, _ := s.screen.GetContent(x, y)
	_, bg, _ := style.Decompose()
	return bg
}
