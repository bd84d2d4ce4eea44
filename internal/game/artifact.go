package game

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Artifact kinds sold by the shop.
const (
	KindTrident     = "trident"
	KindThunderbolt = "thunderbolt"
)

// Artifact is a one-shot purchasable effect. Each instance has its own ID
// so a player can hold two of the same kind. The set is closed.
//
// CanUse is the board-wide feasibility check, Usable the per-cell
// targeting predicate used for highlighting. PerformAction validates the
// target, mutates the board and removes the artifact from the player's
// inventory on success.
type Artifact interface {
	ID() string
	Kind() string
	Name() string
	Cost() int
	Description() string
	CanUse(b *Board) bool
	Usable(c *Cell) bool
	PerformAction(target *Cell, p *Player) bool

	artifact()
}

type artifactBase struct {
	id   string
	kind string
	name string
	cost int
}

func (a *artifactBase) ID() string { return a.id }
func (a *artifactBase) Kind() string { return a.kind }
func (a *artifactBase) Name() string { return a.name }
func (a *artifactBase) Cost() int { return a.cost }
func (a *artifactBase) artifact() {}

// ArtifactKinds lists the kinds NewArtifact understands, in shop order.
func ArtifactKinds() []string {
	return []string{KindTrident, KindThunderbolt}
}

// NewArtifact mints a fresh, unused artifact of the given kind.
func NewArtifact(kind string) (Artifact, error) {
	id := uuid.NewString()
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case KindTrident:
		return NewTrident(id), nil
	case KindThunderbolt:
		return NewThunderbolt(id), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownArtifact, kind)
}
