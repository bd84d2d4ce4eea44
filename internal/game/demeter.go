package game

// Demeter lets the worker build one additional time, but not on the same
// space as the first build.
type Demeter struct {
	first    *Cell
	awaiting bool
}

func (d *Demeter) Name() string { return GodDemeter }
func (d *Demeter) Phase() PowerPhase { return BuildPhase }
func (d *Demeter) Armed() bool { return d.awaiting }

func (d *Demeter) Description() string {
	return "Your worker may build one additional time, but not on the same space."
}

func (d *Demeter) Available(_ *Board, _ *Player, ts *TurnState, _ *Worker) bool {
	return ts.Moved && ts.Built && !ts.GodPowerResolved
}

func (d *Demeter) Activate(b *Board, hl *Highlighter, _ *Player, w *Worker) {
	if w == nil || !w.Placed() {
		return
	}
	d.first = b.LastBuilt()
	d.awaiting = true
	hl.Buildable(w.pos, d.first)
}

func (d *Demeter) PerformExtraAction(b *Board, _ *Highlighter, w *Worker, target *Cell, ts *TurnState) bool {
	if !d.awaiting || w == nil || target == nil || target == d.first {
		return false
	}
	if !w.CanBuildOn(target) || !b.Build(target.Row(), target.Col()) {
		return false
	}
	d.reset()
	ts.GodPowerResolved = true
	return true
}

func (d *Demeter) reset() {
	d.first = nil
	d.awaiting = false
}
