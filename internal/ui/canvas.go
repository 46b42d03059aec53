// Package ui draws a session onto a platform canvas and holds the terminal
// canvas built on tcell.
package ui

import (
	"image/color"

	"golang.org/x/image/math/f64"

	"github.com/samdwyer/gridsnake/internal/session"
)

// ImageID names an image the platform loads or generates.
type ImageID int

const (
	ImageFood ImageID = iota
	ImageLogo
)

// String returns a human-readable image name.
func (id ImageID) String() string {
	switch id {
	case ImageFood:
		return "food"
	case ImageLogo:
		return "logo"
	default:
		return "unknown"
	}
}

// Canvas is the drawing surface a frontend provides. Positions and sizes are
// in viewport pixels.
type Canvas interface {
	session.TextMeasurer

	Clear(c color.Color)
	DrawRect(pos, size f64.Vec2, c color.Color)
	DrawText(s string, pos f64.Vec2, size float64, c color.Color)
	DrawImage(id ImageID, pos, size f64.Vec2)
}
