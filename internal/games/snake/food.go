package snake

import "math/rand"

// DefaultMaxFoodAttempts bounds the random search in SpawnAwayFrom.
const DefaultMaxFoodAttempts = 100

// Food is the single item the snake chases.
type Food struct {
	grid        Grid
	rng         *rand.Rand
	maxAttempts int
	position    Cell
}

// NewFood creates food on grid using rng for placement. A non-positive
// maxAttempts falls back to DefaultMaxFoodAttempts.
func NewFood(grid Grid, rng *rand.Rand, maxAttempts int) *Food {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxFoodAttempts
	}
	f := &Food{
		grid:        grid,
		rng:         rng,
		maxAttempts: maxAttempts,
	}
	f.SpawnRandom()
	return f
}

// SpawnRandom moves the food to a uniformly random cell of the grid.
func (f *Food) SpawnRandom() {
	f.position = Cell{
		X: f.rng.Intn(f.grid.Width),
		Y: f.rng.Intn(f.grid.Height),
	}
}

// SpawnAwayFrom retries SpawnRandom until the food lands outside occupied.
// After maxAttempts misses the last position is kept and false is returned;
// the search always terminates, even on a full grid.
func (f *Food) SpawnAwayFrom(occupied []Cell) bool {
	for range f.maxAttempts {
		f.SpawnRandom()
		if !contains(occupied, f.position) {
			return true
		}
	}
	return false
}

// Position returns the current food cell.
func (f *Food) Position() Cell {
	return f.position
}

func contains(cells []Cell, c Cell) bool {
	for _, x := range cells {
		if x == c {
			return true
		}
	}
	return false
}
