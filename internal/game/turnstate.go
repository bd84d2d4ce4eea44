package game

// TurnPhase is the phase derived from the turn flags.
type TurnPhase int

const (
	PhaseMove TurnPhase = iota
	PhaseBuild
	PhaseGodPower
	PhaseEnd
)

var phaseNames = map[TurnPhase]string{
	PhaseMove:     "move",
	PhaseBuild:    "build",
	PhaseGodPower: "god-power",
	PhaseEnd:      "end",
}

func (p TurnPhase) String() string {
	if s, ok := phaseNames[p]; ok {
		return s
	}
	return "unknown"
}

// TurnState is a passive record of what happened this turn. The engine
// decides the order flags are set in; god powers may set them out of the
// usual move, build order.
type TurnState struct {
	Moved            bool `json:"moved"`
	Built            bool `json:"built"`
	GodPowerResolved bool `json:"godPowerResolved"`
	ArtifactResolved bool `json:"artifactResolved"`

	// BuyPhaseCompleted is scoped by the engine's shop policy, not by ResetTurn.
	BuyPhaseCompleted bool `json:"buyPhaseCompleted"`
}

// ResetTurn clears the per-turn flags.
func (t *TurnState) ResetTurn() {
	t.Moved = false
	t.Built = false
	t.GodPowerResolved = false
	t.ArtifactResolved = false
}

// CompleteTurn forces every flag, used when the clock runs out.
func (t *TurnState) CompleteTurn() {
	t.Moved = true
	t.Built = true
	t.GodPowerResolved = true
	t.ArtifactResolved = true
	t.BuyPhaseCompleted = true
}

func (t TurnState) IsTurnComplete() bool {
	return t.Moved && t.Built && t.GodPowerResolved
}

func (t TurnState) Phase() TurnPhase {
	switch {
	case !t.Moved:
		return PhaseMove
	case !t.Built:
		return PhaseBuild
	case !t.GodPowerResolved:
		return PhaseGodPower
	default:
		return PhaseEnd
	}
}
