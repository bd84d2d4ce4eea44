package game

// Artemis lets the worker move one additional time, but not back to the
// cell it started from.
type Artemis struct {
	origin   *Cell
	awaiting bool
}

func (a *Artemis) Name() string { return GodArtemis }
func (a *Artemis) Phase() PowerPhase { return MovePhase }
func (a *Artemis) Armed() bool { return a.awaiting }

func (a *Artemis) Description() string {
	return "Your worker may move one additional time, but not back to its initial space."
}

func (a *Artemis) Available(_ *Board, _ *Player, ts *TurnState, _ *Worker) bool {
	return ts.Moved && !ts.Built && !ts.GodPowerResolved
}

func (a *Artemis) Activate(b *Board, hl *Highlighter, _ *Player, w *Worker) {
	origin := b.LastMoved()
	if w == nil || !w.Placed() || origin == nil || origin.IsOccupied() {
		return
	}
	a.origin = origin
	a.awaiting = true
	hl.Movable(w.pos, origin)
}

func (a *Artemis) PerformExtraAction(b *Board, _ *Highlighter, w *Worker, target *Cell, ts *TurnState) bool {
	if !a.awaiting || w == nil || target == nil || target == a.origin {
		return false
	}
	if !w.CanMoveTo(b, target) {
		return false
	}
	w.Move(b, target)
	a.reset()
	ts.GodPowerResolved = true
	return true
}

func (a *Artemis) reset() {
	a.origin = nil
	a.awaiting = false
}
