package grid

import (
	"image"
	"math/rand"
)

// Geometry maps a pixel viewport onto a grid of square cells. The grid is
// centred; the remainder on each axis is split into a border margin.
type Geometry struct {
	Width    int // Viewport width in pixels
	Height   int // Viewport height in pixels
	CellSize int // Cell edge in pixels
	Columns  int
	Rows     int
	Offset   image.Point // Top-left pixel of cell (0,0)
}

// New computes the geometry for a viewport and cell size.
// A non-positive cell size is treated as 1.
func New(width, height, cellSize int) Geometry {
	if cellSize <= 0 {
		cellSize = 1
	}
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return Geometry{
		Width:    width,
		Height:   height,
		CellSize: cellSize,
		Columns:  width / cellSize,
		Rows:     height / cellSize,
		Offset: image.Point{
			X: (width % cellSize) / 2,
			Y: (height % cellSize) / 2,
		},
	}
}

// CellOrigin returns the top-left pixel of the cell.
func (g Geometry) CellOrigin(c Cell) image.Point {
	return image.Point{
		X: g.Offset.X + c.Col*g.CellSize,
		Y: g.Offset.Y + c.Row*g.CellSize,
	}
}

// CellRect returns the pixel rectangle covered by the cell.
func (g Geometry) CellRect(c Cell) image.Rectangle {
	min := g.CellOrigin(c)
	return image.Rectangle{Min: min, Max: min.Add(image.Pt(g.CellSize, g.CellSize))}
}

// InViewport reports whether r lies entirely within [0,Width) x [0,Height).
func (g Geometry) InViewport(r image.Rectangle) bool {
	return r.In(image.Rect(0, 0, g.Width, g.Height))
}

// InBounds reports whether the cell's projected rectangle is inside the viewport.
func (g Geometry) InBounds(c Cell) bool {
	return g.InViewport(g.CellRect(c))
}

// Center returns the middle cell of the grid.
func (g Geometry) Center() Cell {
	return Cell{Col: g.Columns / 2, Row: g.Rows / 2}
}

// Random returns a uniformly distributed cell. The grid must not be empty.
func (g Geometry) Random(rng *rand.Rand) Cell {
	if g.Columns <= 0 || g.Rows <= 0 {
		panic("grid: random cell requested on an empty grid")
	}
	return Cell{Col: rng.Intn(g.Columns), Row: rng.Intn(g.Rows)}
}
