package entity

import (
	"math/rand"
	"testing"

	"github.com/samdwyer/gridsnake/internal/grid"
)

func cells(pairs ...int) []grid.Cell {
	out := make([]grid.Cell, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, grid.Cell{Col: pairs[i], Row: pairs[i+1]})
	}
	return out
}

func equalCells(a, b []grid.Cell) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestNewSnake(t *testing.T) {
	g := grid.New(400, 300, 20) // 20x15, centre (10,7)
	s := NewSnake(g)

	want := cells(8, 7, 9, 7, 10, 7)
	if !equalCells(s.Cells(), want) {
		t.Errorf("NewSnake() cells = %v, want %v", s.Cells(), want)
	}
	if s.Heading() != grid.Right {
		t.Errorf("NewSnake().Heading() = %v, want right", s.Heading())
	}
	if s.Head() != (grid.Cell{Col: 10, Row: 7}) || s.Tail() != (grid.Cell{Col: 8, Row: 7}) {
		t.Errorf("NewSnake() head/tail = %v/%v", s.Head(), s.Tail())
	}
}

func TestAdvancePreservesLength(t *testing.T) {
	g := grid.New(400, 300, 20)
	s := NewSnake(g)
	rng := rand.New(rand.NewSource(7))
	dirs := []grid.Direction{grid.Up, grid.Down, grid.Left, grid.Right}

	for i := 0; i < 200; i++ {
		if i%10 == 0 {
			s.Grow()
		}
		before := s.Len()
		s.Advance(dirs[rng.Intn(len(dirs))])
		if s.Len() != before {
			t.Fatalf("Advance changed length %d -> %d", before, s.Len())
		}
	}
}

func TestAdvanceMovesHead(t *testing.T) {
	s := SnakeFromCells(cells(3, 5, 4, 5, 5, 5), grid.Right)

	s.Advance(grid.Up)

	want := cells(4, 5, 5, 5, 5, 4)
	if !equalCells(s.Cells(), want) {
		t.Errorf("after Advance(up) cells = %v, want %v", s.Cells(), want)
	}
	if s.Heading() != grid.Up {
		t.Errorf("Heading() = %v, want up", s.Heading())
	}
}

func TestGrow(t *testing.T) {
	tests := []struct {
		name string
		body []grid.Cell
		want grid.Cell
	}{
		{"horizontal moving right", cells(3, 5, 4, 5, 5, 5), grid.Cell{Col: 2, Row: 5}},
		{"horizontal moving left", cells(5, 5, 4, 5, 3, 5), grid.Cell{Col: 6, Row: 5}},
		{"vertical moving down", cells(5, 1, 5, 2, 5, 3), grid.Cell{Col: 5, Row: 0}},
		{"vertical moving up", cells(5, 3, 5, 2, 5, 1), grid.Cell{Col: 5, Row: 4}},
		{"bent body uses tail segment", cells(2, 2, 2, 3, 3, 3), grid.Cell{Col: 2, Row: 1}},
		{"stacked tail falls back to no offset", cells(1, 1, 1, 1, 2, 1), grid.Cell{Col: 1, Row: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := SnakeFromCells(tt.body, grid.Right)
			s.Grow()
			if s.Len() != len(tt.body)+1 {
				t.Errorf("Grow() length = %d, want %d", s.Len(), len(tt.body)+1)
			}
			if s.Tail() != tt.want {
				t.Errorf("Grow() tail = %v, want %v", s.Tail(), tt.want)
			}
			if !equalCells(s.Cells()[1:], tt.body) {
				t.Errorf("Grow() changed existing cells: %v", s.Cells())
			}
		})
	}
}

func TestGrowDiagonalNeighbourHasNoOffset(t *testing.T) {
	s := SnakeFromCells(cells(0, 0, 1, 1), grid.Right)
	s.Grow()
	if s.Tail() != (grid.Cell{Col: 0, Row: 0}) {
		t.Errorf("Grow() tail = %v, want (0,0)", s.Tail())
	}
}

func TestOccupies(t *testing.T) {
	s := SnakeFromCells(cells(3, 5, 4, 5, 5, 5), grid.Right)
	for _, c := range s.Cells() {
		if !s.Occupies(c) {
			t.Errorf("Occupies(%v) = false, want true", c)
		}
	}
	if s.Occupies(grid.Cell{Col: 6, Row: 5}) {
		t.Error("Occupies((6,5)) = true, want false")
	}
}

func TestSelfCollision(t *testing.T) {
	tests := []struct {
		name         string
		body         []grid.Cell
		want         bool
		wantI, wantJ int
	}{
		{"straight", cells(1, 1, 2, 1, 3, 1), false, -1, -1},
		{"head on interior cell", cells(1, 1, 2, 1, 2, 2, 1, 2, 1, 1), true, 0, 4},
		{"head on neck cell", cells(5, 5, 4, 5, 3, 5, 2, 5, 3, 5), true, 2, 4},
		{"first pair wins", cells(1, 1, 2, 2, 1, 1, 2, 2), true, 0, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := SnakeFromCells(tt.body, grid.Right)
			got, i, j := s.SelfCollision()
			if got != tt.want || i != tt.wantI || j != tt.wantJ {
				t.Errorf("SelfCollision() = %v,%d,%d want %v,%d,%d", got, i, j, tt.want, tt.wantI, tt.wantJ)
			}
		})
	}
}

func TestSelfCollisionMatchesDistinctCount(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	g := grid.New(100, 100, 20) // tight 5x5 grid forces overlaps
	dirs := []grid.Direction{grid.Up, grid.Down, grid.Left, grid.Right}

	for trial := 0; trial < 100; trial++ {
		s := NewSnake(g)
		for step := 0; step < 20; step++ {
			s.Advance(dirs[rng.Intn(len(dirs))])
			if step%3 == 0 {
				s.Grow()
			}

			distinct := make(map[grid.Cell]struct{})
			for _, c := range s.Cells() {
				distinct[c] = struct{}{}
			}
			wantCollision := len(distinct) < s.Len()
			if got, _, _ := s.SelfCollision(); got != wantCollision {
				t.Fatalf("SelfCollision() = %v for %v, distinct=%d len=%d",
					got, s.Cells(), len(distinct), s.Len())
			}
		}
	}
}

func TestWallCollision(t *testing.T) {
	g := grid.New(200, 100, 20) // 10x5

	tests := []struct {
		name      string
		body      []grid.Cell
		want      bool
		wantIndex int
	}{
		{"inside", cells(0, 0, 1, 0, 2, 0), false, -1},
		{"head past right edge", cells(8, 2, 9, 2, 10, 2), true, 2},
		{"head past top edge", cells(3, 1, 3, 0, 3, -1), true, 2},
		{"tail past left edge", cells(-1, 2, 0, 2, 1, 2), true, 0},
		{"bottom edge", cells(4, 3, 4, 4, 4, 5), true, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := SnakeFromCells(tt.body, grid.Right)
			got, idx := s.WallCollision(g)
			if got != tt.want || idx != tt.wantIndex {
				t.Errorf("WallCollision() = %v,%d want %v,%d", got, idx, tt.want, tt.wantIndex)
			}
		})
	}
}

func TestEmptyBodyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("SnakeFromCells(nil) should panic")
		}
	}()
	SnakeFromCells(nil, grid.Right)
}
