package game

// HasNoValidMoves reports whether none of the player's placed workers can
// take a single step. A player in this position loses before moving.
func HasNoValidMoves(b *Board, p *Player) bool {
	for _, w := range p.Workers {
		if w != nil && len(LegalDestinations(b, w)) > 0 {
			return false
		}
	}
	return true
}

// StandsOnTop reports whether the worker has reached a level 3 tower.
func StandsOnTop(b *Board, w *Worker) bool {
	c := w.Cell(b)
	return c != nil && c.Level() == MaxLevel
}

// tokenReward is what a build on c pays: two for a dome, one for
// completing the third level.
func tokenReward(c *Cell) int {
	switch {
	case c.HasDome():
		return 2
	case c.Level() == MaxLevel:
		return 1
	default:
		return 0
	}
}
