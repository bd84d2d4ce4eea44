package game

// Highlighter writes selection and highlight intents onto the board for a
// renderer to draw. It never decides legality itself; it asks the worker.
type Highlighter struct {
	board *Board
}

func NewHighlighter(b *Board) *Highlighter {
	return &Highlighter{board: b}
}

func (h *Highlighter) Clear() {
	h.board.ClearMarkings()
}

// Select clears the board and marks a single cell as selected.
func (h *Highlighter) Select(c *Cell) {
	h.Clear()
	if c != nil {
		c.mark(StatusSelected, HighlightNone)
	}
}

// Movable selects the worker standing on from and highlights where it may
// move, skipping excluded (which may be nil).
func (h *Highlighter) Movable(from Pos, excluded *Cell) {
	h.neighbours(from, HighlightMove, excluded)
}

// Buildable is Movable for build targets.
func (h *Highlighter) Buildable(from Pos, excluded *Cell) {
	h.neighbours(from, HighlightBuild, excluded)
}

// ArtifactCells highlights every cell the artifact could target.
func (h *Highlighter) ArtifactCells(usable func(*Cell) bool) {
	h.Clear()
	for i := range h.board.cells {
		c := &h.board.cells[i]
		if usable(c) {
			c.mark(StatusHighlighted, HighlightArtifact)
		}
	}
}

func (h *Highlighter) neighbours(from Pos, kind HighlightType, excluded *Cell) {
	h.Clear()
	center := h.board.At(from)
	if center == nil || center.occupant == nil {
		return
	}
	w := center.occupant
	center.mark(StatusSelected, HighlightNone)

	for _, d := range neighbours {
		target := h.board.Cell(from.Row+d[0], from.Col+d[1])
		if target == nil || target == excluded {
			continue
		}
		var ok bool
		switch kind {
		case HighlightMove:
			ok = w.CanMoveTo(h.board, target)
		case HighlightBuild:
			ok = w.CanBuildOn(target)
		}
		if ok {
			target.mark(StatusHighlighted, kind)
		}
	}
}
