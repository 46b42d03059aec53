package grid

import (
	"image"
	"math/rand"
	"testing"
)

func TestNewGeometry(t *testing.T) {
	tests := []struct {
		name                string
		width, height, size int
		wantCols, wantRows  int
		wantOffset          image.Point
	}{
		{"exact fit", 400, 300, 20, 20, 15, image.Pt(0, 0)},
		{"remainder split", 410, 305, 20, 20, 15, image.Pt(5, 2)},
		{"odd remainder", 419, 319, 20, 20, 15, image.Pt(9, 9)},
		{"unit cells", 80, 24, 1, 80, 24, image.Pt(0, 0)},
		{"zero size treated as one", 10, 10, 0, 10, 10, image.Pt(0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(tt.width, tt.height, tt.size)
			if g.Columns != tt.wantCols || g.Rows != tt.wantRows {
				t.Errorf("New(%d,%d,%d) grid = %dx%d, want %dx%d",
					tt.width, tt.height, tt.size, g.Columns, g.Rows, tt.wantCols, tt.wantRows)
			}
			if g.Offset != tt.wantOffset {
				t.Errorf("New(%d,%d,%d).Offset = %v, want %v",
					tt.width, tt.height, tt.size, g.Offset, tt.wantOffset)
			}
		})
	}
}

func TestCellOrigin(t *testing.T) {
	g := New(410, 305, 20)

	got := g.CellOrigin(Cell{Col: 3, Row: 2})
	want := image.Pt(5+60, 2+40)
	if got != want {
		t.Errorf("CellOrigin((3,2)) = %v, want %v", got, want)
	}

	r := g.CellRect(Cell{Col: 0, Row: 0})
	if r.Dx() != 20 || r.Dy() != 20 {
		t.Errorf("CellRect size = %dx%d, want 20x20", r.Dx(), r.Dy())
	}
}

func TestInBoundsMatchesGrid(t *testing.T) {
	// Pixel projection and column/row bounds must agree for every offset.
	for _, g := range []Geometry{New(400, 300, 20), New(419, 319, 20), New(81, 25, 4)} {
		for col := -2; col <= g.Columns+1; col++ {
			for row := -2; row <= g.Rows+1; row++ {
				c := Cell{Col: col, Row: row}
				inGrid := col >= 0 && col < g.Columns && row >= 0 && row < g.Rows
				if got := g.InBounds(c); got != inGrid {
					t.Errorf("%dx%d/%d InBounds(%v) = %v, want %v",
						g.Width, g.Height, g.CellSize, c, got, inGrid)
				}
			}
		}
	}
}

func TestCenter(t *testing.T) {
	g := New(400, 300, 20)
	if got := g.Center(); got != (Cell{Col: 10, Row: 7}) {
		t.Errorf("Center() = %v, want (10,7)", got)
	}
}

func TestRandomStaysInGrid(t *testing.T) {
	g := New(100, 60, 10)
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 1000; i++ {
		c := g.Random(rng)
		if !g.InBounds(c) {
			t.Fatalf("Random() = %v outside %dx%d grid", c, g.Columns, g.Rows)
		}
	}
}

func TestRandomPanicsOnEmptyGrid(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Random() on empty grid should panic")
		}
	}()
	New(5, 5, 10).Random(rand.New(rand.NewSource(1)))
}
