package model

// History remembers the hashes of recent generations for cycle detection.
type History struct {
	size   int
	hashes []string
}

// NewHistory keeps at most size hashes; size below 1 defaults to 5.
func NewHistory(size int) *History {
	if size < 1 {
		size = 5
	}
	return &History{size: size}
}

// Record adds the engine's current generation to the history
func (h *History) Record(g *GridEngine) {
	h.hashes = append(h.hashes, g.Hash())

	if len(h.hashes) > h.size {
		h.hashes = h.hashes[1:]
	}
}

// IsStagnant reports whether the engine's current generation equals one of
// the last three recorded generations (still-life or period 2/3 oscillator).
func (h *History) IsStagnant(g *GridEngine) bool {
	if len(h.hashes) < 3 {
		return false
	}

	current := g.Hash()
	for i := 1; i <= 3; i++ {
		if h.hashes[len(h.hashes)-i] == current {
			return true
		}
	}
	return false
}

// Reset forgets every recorded generation
func (h *History) Reset() {
	h.hashes = nil
}
