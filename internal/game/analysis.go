package game

// LegalDestinations lists the neighbouring cells the worker may move to.
func LegalDestinations(b *Board, w *Worker) []*Cell {
	return neighboursWhere(b, w, func(c *Cell) bool { return w.CanMoveTo(b, c) })
}

// LegalBuilds lists the neighbouring cells the worker may build on.
func LegalBuilds(b *Board, w *Worker) []*Cell {
	return neighboursWhere(b, w, w.CanBuildOn)
}

func neighboursWhere(b *Board, w *Worker, ok func(*Cell) bool) []*Cell {
	p, placed := w.Pos()
	if !placed {
		return nil
	}

	var out []*Cell
	for _, d := range neighbours {
		c := b.Cell(p.Row+d[0], p.Col+d[1])
		if c != nil && ok(c) {
			out = append(out, c)
		}
	}
	return out
}

// anyCell reports whether some cell on the board satisfies pred.
func anyCell(b *Board, pred func(*Cell) bool) bool {
	for i := range b.cells {
		if pred(&b.cells[i]) {
			return true
		}
	}
	return false
}
