// Package grid provides the discrete play field: cells, directions and the
// mapping from a pixel viewport onto a centred grid.
package grid

import "fmt"

// Cell is one discrete grid position.
type Cell struct {
	Col, Row int
}

// Add returns the cell offset by the given vector.
func (c Cell) Add(v Cell) Cell {
	return Cell{Col: c.Col + v.Col, Row: c.Row + v.Row}
}

// String returns the cell as "(col,row)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Col, c.Row)
}

// Direction is one of the four axis-aligned headings.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

var opposites = [...]Direction{
	Up:    Down,
	Down:  Up,
	Left:  Right,
	Right: Left,
}

var vectors = [...]Cell{
	Up:    {Col: 0, Row: -1},
	Down:  {Col: 0, Row: 1},
	Left:  {Col: -1, Row: 0},
	Right: {Col: 1, Row: 0},
}

// Valid reports whether d is one of the four defined directions.
func (d Direction) Valid() bool {
	return d >= Up && d <= Right
}

// Opposite returns the direction that reverses d.
func (d Direction) Opposite() Direction {
	d.mustBeValid()
	return opposites[d]
}

// Vector returns the unit step for d. Rows grow downwards.
func (d Direction) Vector() Cell {
	d.mustBeValid()
	return vectors[d]
}

// String returns a human-readable direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

func (d Direction) mustBeValid() {
	if !d.Valid() {
		panic(fmt.Sprintf("grid: invalid direction %d", int(d)))
	}
}
