package game

import "testing"

func TestTurnStatePhase(t *testing.T) {
	tests := []struct {
		ts   TurnState
		want TurnPhase
	}{
		{TurnState{}, PhaseMove},
		{TurnState{Moved: true}, PhaseBuild},
		{TurnState{Moved: true, Built: true}, PhaseGodPower},
		{TurnState{Moved: true, Built: true, GodPowerResolved: true}, PhaseEnd},
	}
	for _, tt := range tests {
		if got := tt.ts.Phase(); got != tt.want {
			t.Fatalf("Phase(%+v) = %s, want %s", tt.ts, got, tt.want)
		}
	}
}

func TestTurnStateResetKeepsBuyPhase(t *testing.T) {
	var ts TurnState
	ts.CompleteTurn()
	if !ts.IsTurnComplete() || !ts.ArtifactResolved || !ts.BuyPhaseCompleted {
		t.Fatalf("CompleteTurn left %+v", ts)
	}

	ts.ResetTurn()
	if ts.Moved || ts.Built || ts.GodPowerResolved || ts.ArtifactResolved {
		t.Fatalf("ResetTurn left %+v", ts)
	}
	if !ts.BuyPhaseCompleted {
		t.Fatal("ResetTurn cleared the buy phase flag")
	}
}

func TestIsTurnCompleteIgnoresArtifact(t *testing.T) {
	ts := TurnState{Moved: true, Built: true, GodPowerResolved: true}
	if !ts.IsTurnComplete() {
		t.Fatal("turn without artifact use should be complete")
	}
}

func TestTurnPhaseString(t *testing.T) {
	if got := PhaseGodPower.String(); got != "god-power" {
		t.Fatalf("String = %q, want god-power", got)
	}
	if got := TurnPhase(42).String(); got != "unknown" {
		t.Fatalf("String = %q, want unknown", got)
	}
}
