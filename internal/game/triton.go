package game

// Triton keeps moving: each time the worker lands on a perimeter space it
// may move again. The power resolves once the worker leaves the perimeter.
type Triton struct {
	awaiting bool
}

func (t *Triton) Name() string { return GodTriton }
func (t *Triton) Phase() PowerPhase { return MovePhase }
func (t *Triton) Armed() bool { return t.awaiting }

func (t *Triton) Description() string {
	return "Each time your worker moves into a perimeter space, it may immediately move again."
}

func (t *Triton) Available(b *Board, _ *Player, ts *TurnState, w *Worker) bool {
	return ts.Moved && !ts.Built && !ts.GodPowerResolved && w != nil && w.IsOnPerimeter(b)
}

func (t *Triton) Activate(_ *Board, hl *Highlighter, _ *Player, w *Worker) {
	if w == nil || !w.Placed() {
		return
	}
	t.awaiting = true
	hl.Movable(w.pos, nil)
}

func (t *Triton) PerformExtraAction(b *Board, hl *Highlighter, w *Worker, target *Cell, ts *TurnState) bool {
	if !t.awaiting || w == nil || !w.CanMoveTo(b, target) {
		return false
	}
	w.Move(b, target)
	if w.IsOnPerimeter(b) && !ts.GodPowerResolved {
		hl.Movable(w.pos, nil)
		return true
	}
	t.reset()
	ts.GodPowerResolved = true
	return true
}

func (t *Triton) reset() {
	t.awaiting = false
}
