package rules

/*
ApplyConwayRules returns whether a cell is alive in the next generation.

Conway's Game of Life (B3/S23):
  - a dead cell with exactly 3 live neighbors is born
  - a live cell with 2 or 3 live neighbors survives
  - every other cell is dead in the next generation
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	if alive {
		return neighbors == 2 || neighbors == 3
	}
	return neighbors == 3
}
