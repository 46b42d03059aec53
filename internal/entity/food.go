package entity

import (
	"math/rand"

	"github.com/samdwyer/gridsnake/internal/grid"
)

// FoodCount is the number of food cells kept on the field while playing.
const FoodCount = 2

// maxPlacementAttempts bounds the retries of strict placement.
const maxPlacementAttempts = 100

// Placement selects how a food cell is chosen.
type Placement int

const (
	// PlacementFirstSample accepts the first uniform sample, even when it
	// lands on the snake or on another food cell.
	PlacementFirstSample Placement = iota
	// PlacementStrict resamples until the cell is free of snake and food.
	PlacementStrict
)

// String returns a human-readable placement name.
func (p Placement) String() string {
	switch p {
	case PlacementFirstSample:
		return "first_sample"
	case PlacementStrict:
		return "strict"
	default:
		return "unknown"
	}
}

// FoodSpawner holds the food cells on the field.
type FoodSpawner struct {
	geom      grid.Geometry
	rng       *rand.Rand
	placement Placement
	cells     []grid.Cell
}

// NewFoodSpawner creates an empty spawner over the grid.
func NewFoodSpawner(g grid.Geometry, rng *rand.Rand, placement Placement) *FoodSpawner {
	return &FoodSpawner{
		geom:      g,
		rng:       rng,
		placement: placement,
		cells:     make([]grid.Cell, 0, FoodCount),
	}
}

// SpawnOne places a new food cell and returns it. occupied reports snake
// cells and is consulted only by strict placement; it may be nil.
func (f *FoodSpawner) SpawnOne(occupied func(grid.Cell) bool) grid.Cell {
	c := f.geom.Random(f.rng)
	if f.placement == PlacementStrict {
		for i := 1; i < maxPlacementAttempts && !f.free(c, occupied); i++ {
			c = f.geom.Random(f.rng)
		}
	}
	f.cells = append(f.cells, c)
	return c
}

// free reports whether c is clear of food and of the occupied predicate.
func (f *FoodSpawner) free(c grid.Cell, occupied func(grid.Cell) bool) bool {
	if f.Has(c) {
		return false
	}
	return occupied == nil || !occupied(c)
}

// Add places food at a known cell, bypassing sampling.
func (f *FoodSpawner) Add(c grid.Cell) {
	f.cells = append(f.cells, c)
}

// Has reports whether any food cell equals c.
func (f *FoodSpawner) Has(c grid.Cell) bool {
	for _, fc := range f.cells {
		if fc == c {
			return true
		}
	}
	return false
}

// Remove deletes the first food cell equal to c.
func (f *FoodSpawner) Remove(c grid.Cell) bool {
	for i, fc := range f.cells {
		if fc == c {
			f.cells = append(f.cells[:i], f.cells[i+1:]...)
			return true
		}
	}
	return false
}

// Cells returns a copy of the food cells for drawing. Order is not meaningful.
func (f *FoodSpawner) Cells() []grid.Cell {
	return append([]grid.Cell(nil), f.cells...)
}

// Len returns the number of food cells.
func (f *FoodSpawner) Len() int {
	return len(f.cells)
}

// Reset removes all food.
func (f *FoodSpawner) Reset() {
	f.cells = f.cells[:0]
}

// Placement returns the spawner's placement mode.
func (f *FoodSpawner) Placement() Placement {
	return f.placement
}
