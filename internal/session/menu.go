package session

import (
	"image"
	"math"
	"unicode/utf8"

	"golang.org/x/image/math/f64"
)

// Menu labels.
const (
	TitleText = "Snake"
	StartText = "Start"
	ExitText  = "Exit"
)

// TextMeasurer reports the rendered size of a string at a font size in
// pixels. Every canvas satisfies it.
type TextMeasurer interface {
	MeasureText(s string, size float64) f64.Vec2
}

// FixedWidth measures text as if every rune advanced by Advance times the
// font size. Used when no canvas is available.
type FixedWidth struct {
	Advance float64
}

// MeasureText implements TextMeasurer.
func (m FixedWidth) MeasureText(s string, size float64) f64.Vec2 {
	return f64.Vec2{float64(utf8.RuneCountInString(s)) * size * m.Advance, size}
}

// Label is a piece of text placed in the viewport.
type Label struct {
	Text string
	Pos  f64.Vec2 // Top-left of the text
	Size float64  // Font size in pixels
}

// Button is a clickable label with a background rectangle.
type Button struct {
	Label
	Bounds image.Rectangle
}

// Contains reports whether the pointer is over the button.
func (b Button) Contains(p image.Point) bool {
	return p.In(b.Bounds)
}

// Menu is the centred title screen layout.
type Menu struct {
	Title   Label
	Start   Button
	Exit    Button
	HasExit bool // False on web builds, where the process cannot exit
}

// LayoutMenu centres the title and buttons in a width x height viewport.
func LayoutMenu(m TextMeasurer, width, height int, web bool) Menu {
	titleSize := math.Max(float64(height)/10, 1)
	labelSize := math.Max(float64(height)/20, 1)

	title := m.MeasureText(TitleText, titleSize)
	menu := Menu{
		Title: Label{
			Text: TitleText,
			Pos:  f64.Vec2{(float64(width) - title[0]) / 2, float64(height)/4 - title[1]/2},
			Size: titleSize,
		},
		HasExit: !web,
	}

	menu.Start = layoutButton(m, StartText, labelSize, width, float64(height)/2)
	if menu.HasExit {
		gap := float64(menu.Start.Bounds.Dy()) * 2
		menu.Exit = layoutButton(m, ExitText, labelSize, width, float64(height)/2+gap)
	}
	return menu
}

// layoutButton centres a padded button horizontally around centerY.
func layoutButton(m TextMeasurer, text string, size float64, width int, centerY float64) Button {
	ext := m.MeasureText(text, size)
	pad := math.Max(math.Round(size/2), 1)

	w := math.Ceil(ext[0] + 2*pad)
	h := math.Ceil(ext[1] + pad)
	x := math.Round((float64(width) - w) / 2)
	y := math.Round(centerY - h/2)

	return Button{
		Label: Label{
			Text: text,
			Pos:  f64.Vec2{x + pad, y + pad/2},
			Size: size,
		},
		Bounds: image.Rect(int(x), int(y), int(x+w), int(y+h)),
	}
}
