package game

import (
	"fmt"
	"strings"
)

// PowerPhase is the normal-phase boundary after which a god power becomes
// eligible. A power belongs to exactly one phase.
type PowerPhase int

const (
	MovePhase PowerPhase = iota
	BuildPhase
)

func (p PowerPhase) String() string {
	if p == BuildPhase {
		return "build"
	}
	return "move"
}

const (
	GodArtemis = "Artemis"
	GodDemeter = "Demeter"
	GodTriton  = "Triton"
)

// GodPower is the capability every god card implements. The set is closed:
// only this package provides variants.
//
// Available is a pure predicate. Activate is called once when the player
// invokes the power; it may arm the power and highlight targets, or do
// nothing if its own preconditions do not hold. PerformExtraAction consumes
// one targeted click while armed and reports whether it was accepted; a
// rejected click leaves the power armed.
type GodPower interface {
	Name() string
	Phase() PowerPhase
	Description() string
	Available(b *Board, p *Player, ts *TurnState, w *Worker) bool
	Activate(b *Board, hl *Highlighter, p *Player, w *Worker)
	PerformExtraAction(b *Board, hl *Highlighter, w *Worker, target *Cell, ts *TurnState) bool
	Armed() bool

	reset()
}

// GodNames lists the gods NewGodPower understands.
func GodNames() []string {
	return []string{GodArtemis, GodDemeter, GodTriton}
}

// NewGodPower returns a fresh power for name, matched case-insensitively.
func NewGodPower(name string) (GodPower, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "artemis":
		return &Artemis{}, nil
	case "demeter":
		return &Demeter{}, nil
	case "triton":
		return &Triton{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownGod, name)
}
