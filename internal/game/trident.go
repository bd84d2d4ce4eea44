package game

// Trident floods an empty space, making it impassable for the rest of the game.
type Trident struct {
	artifactBase
}

func NewTrident(id string) *Trident {
	return &Trident{artifactBase{id: id, kind: KindTrident, name: "Poseidon's Trident", cost: 2}}
}

func (t *Trident) Description() string {
	return "Flood an empty space. Flooded spaces cannot be built upon or moved onto by any worker."
}

func (t *Trident) CanUse(b *Board) bool {
	return anyCell(b, t.Usable)
}

func (t *Trident) Usable(c *Cell) bool {
	return c != nil && !c.IsOccupied() && !c.Flooded() && c.Level() == 0
}

func (t *Trident) PerformAction(target *Cell, p *Player) bool {
	if target == nil || target.IsOccupied() || target.HasDome() || target.Flooded() {
		return false
	}
	target.Flood()
	p.RemoveArtifact(t)
	return true
}
