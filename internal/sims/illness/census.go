package illness

// Census counts cells per macro-state for one generation.
type Census struct {
	Generation int
	Healthy    int
	Infected   int
	Illed      int
}

// Total is the number of cells counted.
func (c Census) Total() int { return c.Healthy + c.Infected + c.Illed }

// Fraction returns the share of cells in state s, or 0 for an empty census.
func (c Census) Fraction(s State) float64 {
	total := c.Total()
	if total == 0 {
		return 0
	}
	var n int
	switch s {
	case StateHealthy:
		n = c.Healthy
	case StateInfected:
		n = c.Infected
	case StateIlled:
		n = c.Illed
	}
	return float64(n) / float64(total)
}

// Census tallies the current generation.
func (b *Board) Census() Census {
	c := Census{Generation: b.generation}
	for _, v := range b.cur.Cells() {
		switch Classify(v) {
		case StateHealthy:
			c.Healthy++
		case StateIlled:
			c.Illed++
		default:
			c.Infected++
		}
	}
	return c
}
