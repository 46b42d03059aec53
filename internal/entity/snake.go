// Package entity provides the snake body and the food it eats.
package entity

import (
	"fmt"

	"github.com/samdwyer/gridsnake/internal/grid"
)

// InitialLength is the body length at spawn.
const InitialLength = 3

// Snake is an ordered body of cells, tail first and head last.
type Snake struct {
	cells   []grid.Cell
	heading grid.Direction
}

// NewSnake places a horizontal three-cell snake centred on the grid, facing right.
func NewSnake(g grid.Geometry) *Snake {
	head := g.Center()
	cells := make([]grid.Cell, 0, InitialLength)
	for i := InitialLength - 1; i >= 0; i-- {
		cells = append(cells, grid.Cell{Col: head.Col - i, Row: head.Row})
	}
	return &Snake{cells: cells, heading: grid.Right}
}

// SnakeFromCells builds a snake from cells ordered tail to head.
func SnakeFromCells(cells []grid.Cell, heading grid.Direction) *Snake {
	if len(cells) == 0 {
		panic("entity: snake needs at least one cell")
	}
	if !heading.Valid() {
		panic(fmt.Sprintf("entity: invalid heading %d", int(heading)))
	}
	return &Snake{cells: append([]grid.Cell(nil), cells...), heading: heading}
}

// Len returns the number of body cells.
func (s *Snake) Len() int {
	return len(s.cells)
}

// Head returns the leading cell.
func (s *Snake) Head() grid.Cell {
	s.mustNotBeEmpty()
	return s.cells[len(s.cells)-1]
}

// Tail returns the trailing cell.
func (s *Snake) Tail() grid.Cell {
	s.mustNotBeEmpty()
	return s.cells[0]
}

// Heading returns the direction of the last move.
func (s *Snake) Heading() grid.Direction {
	return s.heading
}

// Cells returns a copy of the body, tail first.
func (s *Snake) Cells() []grid.Cell {
	return append([]grid.Cell(nil), s.cells...)
}

// Advance moves the snake one cell in d. The length is unchanged.
// Call at most once per tick.
func (s *Snake) Advance(d grid.Direction) {
	s.mustNotBeEmpty()
	head := s.Head().Add(d.Vector())
	copy(s.cells, s.cells[1:])
	s.cells[len(s.cells)-1] = head
	s.heading = d
}

// Grow adds one cell behind the tail, continuing the line from the tail's
// neighbour through the tail. Called after the tick's Advance so the new
// segment never lands on the cell the tail just vacated.
func (s *Snake) Grow() {
	s.mustNotBeEmpty()
	tail := s.cells[0]

	var offset grid.Cell
	if len(s.cells) > 1 {
		next := s.cells[1]
		switch {
		case tail.Col == next.Col:
			offset.Row = tail.Row - next.Row
		case tail.Row == next.Row:
			offset.Col = tail.Col - next.Col
		}
	}

	s.cells = append([]grid.Cell{tail.Add(offset)}, s.cells...)
}

// Occupies reports whether any body cell equals c.
func (s *Snake) Occupies(c grid.Cell) bool {
	for _, b := range s.cells {
		if b == c {
			return true
		}
	}
	return false
}

// SelfCollision reports the first pair of body indices i < j holding the same cell.
func (s *Snake) SelfCollision() (collided bool, i, j int) {
	for i = 0; i < len(s.cells); i++ {
		for j = i + 1; j < len(s.cells); j++ {
			if s.cells[i] == s.cells[j] {
				return true, i, j
			}
		}
	}
	return false, -1, -1
}

// WallCollision reports the first body index whose projected rectangle leaves the viewport.
func (s *Snake) WallCollision(g grid.Geometry) (collided bool, index int) {
	for i, c := range s.cells {
		if !g.InBounds(c) {
			return true, i
		}
	}
	return false, -1
}

func (s *Snake) mustNotBeEmpty() {
	if len(s.cells) == 0 {
		panic("entity: snake body is empty")
	}
}
