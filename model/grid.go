package model

import (
	"crypto/md5"
	"fmt"
	"math"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/gridlife/rules"
)

// GridEngine owns a fixed-size grid and advances it one generation per Step.
//
// The engine keeps two buffers: current is read during a sweep and next is
// written. Only interior cells (rows 1..height-2, cols 1..width-2) are
// evaluated, so the outermost ring is dead after every step. Edges never wrap.
//
// The zero value is uninitialized; construct with NewGridEngine.
type GridEngine struct {
	width      int
	height     int
	current    buffer
	next       buffer
	generation int
}

// NewGridEngine allocates an all-dead grid of width x height cells.
func NewGridEngine(width, height int) (*GridEngine, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimension, "[NewGridEngine] width=%d height=%d", width, height)
	}
	return &GridEngine{
		width:   width,
		height:  height,
		current: newBuffer(width, height),
		next:    newBuffer(width, height),
	}, nil
}

// PopulationFromPercent returns round(width*height*percent/100).
func PopulationFromPercent(width, height int, percent float64) int {
	return int(math.Round(float64(width*height) * percent / 100))
}

// Width returns the number of columns
func (g *GridEngine) Width() int {
	return g.width
}

// Height returns the number of rows
func (g *GridEngine) Height() int {
	return g.height
}

// Generation returns the number of completed steps since construction or the last Clear.
func (g *GridEngine) Generation() int {
	return g.generation
}

func (g *GridEngine) initialized() bool {
	return g != nil && g.current != nil
}

func (g *GridEngine) inBounds(row, col int) bool {
	return row >= 0 && row < g.height && col >= 0 && col < g.width
}

// Seed marks uniformly random dead cells alive until exactly count cells are
// alive. count must lie between the current population and width*height.
func (g *GridEngine) Seed(count int, rng RandomSource) error {
	if !g.initialized() {
		return errors.Wrap(ErrNotInitialized, "[Seed]")
	}
	alive := g.Population()
	if count < alive || count > g.width*g.height {
		return errors.Wrapf(ErrInvalidPopulation,
			"[Seed] count=%d alive=%d capacity=%d", count, alive, g.width*g.height)
	}

	for alive < count {
		row := rng.Intn(g.height)
		col := rng.Intn(g.width)
		if g.current[row][col] == Dead {
			g.current[row][col] = Alive
			alive++
		}
	}
	return nil
}

// CellState returns the state of (row, col) in the current generation
func (g *GridEngine) CellState(row, col int) (Cell, error) {
	if !g.initialized() {
		return Dead, errors.Wrap(ErrNotInitialized, "[CellState]")
	}
	if !g.inBounds(row, col) {
		return Dead, errors.Wrapf(ErrOutOfBounds, "[CellState] row=%d col=%d grid=%dx%d", row, col, g.width, g.height)
	}
	return g.current[row][col], nil
}

// SetCell overwrites the state of (row, col) in the current generation.
func (g *GridEngine) SetCell(row, col int, state Cell) error {
	if !g.initialized() {
		return errors.Wrap(ErrNotInitialized, "[SetCell]")
	}
	if !g.inBounds(row, col) {
		return errors.Wrapf(ErrOutOfBounds, "[SetCell] row=%d col=%d grid=%dx%d", row, col, g.width, g.height)
	}
	g.current[row][col] = state
	return nil
}

// NeighborCount returns the number of live cells among the 8 neighbors of
// (row, col). Neighbors that fall outside the grid count as dead.
func (g *GridEngine) NeighborCount(row, col int) (int, error) {
	if !g.initialized() {
		return 0, errors.Wrap(ErrNotInitialized, "[NeighborCount]")
	}
	if !g.inBounds(row, col) {
		return 0, errors.Wrapf(ErrOutOfBounds, "[NeighborCount] row=%d col=%d grid=%dx%d", row, col, g.width, g.height)
	}
	return g.countNeighbors(row, col), nil
}

func (g *GridEngine) countNeighbors(row, col int) int {
	count := 0

	minRow := max(0, row-1)
	maxRow := min(g.height-1, row+1)
	minCol := max(0, col-1)
	maxCol := min(g.width-1, col+1)

	for r := minRow; r <= maxRow; r++ {
		for c := minCol; c <= maxCol; c++ {
			if r == row && c == col {
				continue
			}
			count += int(g.current[r][c])
		}
	}
	return count
}

// applyRule writes the next state of (row, col) into the next buffer.
// next is all dead before a sweep, so only live results are written.
func (g *GridEngine) applyRule(row, col, neighbors int) {
	if rules.ApplyConwayRules(neighbors, g.current[row][col] == Alive) {
		g.next[row][col] = Alive
	}
}

// Step advances the grid by one generation. Every interior cell is evaluated
// against the previous generation; the result replaces it only after the
// full sweep.
func (g *GridEngine) Step() error {
	if !g.initialized() {
		return errors.Wrap(ErrNotInitialized, "[Step]")
	}

	for row := 1; row < g.height-1; row++ {
		for col := 1; col < g.width-1; col++ {
			g.applyRule(row, col, g.countNeighbors(row, col))
		}
	}

	g.current, g.next = g.next, g.current
	g.next.clear()
	g.generation++
	return nil
}

// Clear kills every cell and resets the generation counter.
func (g *GridEngine) Clear() error {
	if !g.initialized() {
		return errors.Wrap(ErrNotInitialized, "[Clear]")
	}
	g.current.clear()
	g.next.clear()
	g.generation = 0
	return nil
}

// Each calls fn for every cell of the current generation in row-major order.
func (g *GridEngine) Each(fn func(row, col int, state Cell)) error {
	if !g.initialized() {
		return errors.Wrap(ErrNotInitialized, "[Each]")
	}
	for row, n := 0, g.height; row < n; row++ {
		for col, n := 0, g.width; col < n; col++ {
			fn(row, col, g.current[row][col])
		}
	}
	return nil
}

// Population returns the number of live cells in the current generation
func (g *GridEngine) Population() (count int) {
	if !g.initialized() {
		return 0
	}
	for row, n := 0, g.height; row < n; row++ {
		for col, n := 0, g.width; col < n; col++ {
			count += int(g.current[row][col])
		}
	}
	return
}

// Hash returns an MD5 digest of the current generation
func (g *GridEngine) Hash() string {
	h := md5.New()
	if g.initialized() {
		for row, n := 0, g.height; row < n; row++ {
			for col, n := 0, g.width; col < n; col++ {
				h.Write([]byte{byte(g.current[row][col])})
			}
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
