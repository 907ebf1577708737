package model

import "github.com/pkg/errors"

// PlaceGlider places a glider with its bounding box's top-left corner at (row, col)
func PlaceGlider(g *GridEngine, row, col int) error {
	pattern := [][]Cell{
		{Dead, Alive, Dead},
		{Dead, Dead, Alive},
		{Alive, Alive, Alive},
	}
	return errors.Wrap(placePattern(g, row, col, pattern), "[PlaceGlider]")
}

// PlaceBlinker places a horizontal blinker starting at (row, col)
func PlaceBlinker(g *GridEngine, row, col int) error {
	return errors.Wrap(placePattern(g, row, col, [][]Cell{{Alive, Alive, Alive}}), "[PlaceBlinker]")
}

// PlaceBlock places a 2x2 block still-life at (row, col)
func PlaceBlock(g *GridEngine, row, col int) error {
	pattern := [][]Cell{
		{Alive, Alive},
		{Alive, Alive},
	}
	return errors.Wrap(placePattern(g, row, col, pattern), "[PlaceBlock]")
}

// placePattern fails without touching the grid if any cell of the pattern
// falls outside it.
func placePattern(g *GridEngine, row, col int, pattern [][]Cell) error {
	if !g.initialized() {
		return ErrNotInitialized
	}
	for r, cells := range pattern {
		for c := range cells {
			if !g.inBounds(row+r, col+c) {
				return errors.Wrapf(ErrOutOfBounds, "pattern at row=%d col=%d", row, col)
			}
		}
	}
	for r, cells := range pattern {
		for c, state := range cells {
			g.current[row+r][col+c] = state
		}
	}
	return nil
}
