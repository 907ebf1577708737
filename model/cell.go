package model

import "github.com/pkg/errors"

// Cell is the state of a single grid position.
type Cell uint8

const (
	Dead Cell = iota
	Alive
)

func (c Cell) String() string {
	if c == Alive {
		return "ALIVE"
	}
	return "DEAD"
}

// Error kinds returned by GridEngine. Match them with errors.Is.
var (
	ErrInvalidDimension  = errors.New("invalid grid dimension")
	ErrInvalidPopulation = errors.New("invalid population")
	ErrOutOfBounds       = errors.New("cell out of bounds")
	ErrNotInitialized    = errors.New("grid engine not initialized")
)

// RandomSource picks uniform integers in [0, n). *math/rand.Rand satisfies it.
type RandomSource interface {
	Intn(n int) int
}

// buffer is one full generation snapshot of the grid, indexed [row][col].
type buffer [][]Cell

func newBuffer(width, height int) buffer {
	cells := make(buffer, height)
	for i := range cells {
		cells[i] = make([]Cell, width)
	}
	return cells
}

func (b buffer) clear() {
	for row := range b {
		for col := range b[row] {
			b[row][col] = Dead
		}
	}
}
