// Package input turns per-frame key and pointer state into directional
// intents for the snake.
package input

import (
	"image"

	"github.com/samdwyer/gridsnake/internal/grid"
)

// Key is an abstract control the platform can report as pressed.
type Key uint8

const (
	KeyUp Key = iota
	KeyRight
	KeyLeft
	KeyDown
	KeyConfirm // Starts a round from the menu and continues after game over
	KeyQuit    // Exits from the menu on native builds
)

// String returns a human-readable key name.
func (k Key) String() string {
	switch k {
	case KeyUp:
		return "up"
	case KeyRight:
		return "right"
	case KeyLeft:
		return "left"
	case KeyDown:
		return "down"
	case KeyConfirm:
		return "confirm"
	case KeyQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// KeySet is the set of keys pressed during one frame.
type KeySet uint16

// Keys builds a set from the given keys.
func Keys(keys ...Key) KeySet {
	var s KeySet
	for _, k := range keys {
		s = s.With(k)
	}
	return s
}

// With returns the set with k added.
func (s KeySet) With(k Key) KeySet {
	return s | 1<<k
}

// Has reports whether k is in the set.
func (s KeySet) Has(k Key) bool {
	return s&(1<<k) != 0
}

// directionPriority resolves simultaneous direction presses; first match wins.
var directionPriority = [...]struct {
	key Key
	dir grid.Direction
}{
	{KeyUp, grid.Up},
	{KeyRight, grid.Right},
	{KeyLeft, grid.Left},
	{KeyDown, grid.Down},
}

// Frame is the input collaborator's report for one rendered frame.
type Frame struct {
	Keys    KeySet      // Keys pressed this frame
	Clicked bool        // Left mouse button pressed this frame
	Pointer image.Point // Current pointer position in viewport pixels
}

// Direction returns the highest priority direction pressed this frame.
func (f Frame) Direction() (grid.Direction, bool) {
	for _, p := range directionPriority {
		if f.Keys.Has(p.key) {
			return p.dir, true
		}
	}
	return 0, false
}

// Pressed reports whether k was pressed this frame.
func (f Frame) Pressed(k Key) bool {
	return f.Keys.Has(k)
}

// Source is polled once per frame by the frame loop.
type Source interface {
	Poll() Frame
}
