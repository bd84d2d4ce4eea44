package game

// Thunderbolt destroys the topmost block of an incomplete tower.
type Thunderbolt struct {
	artifactBase
}

func NewThunderbolt(id string) *Thunderbolt {
	return &Thunderbolt{artifactBase{id: id, kind: KindThunderbolt, name: "Zeus' Thunderbolt", cost: 3}}
}

func (t *Thunderbolt) Description() string {
	return "Target an incomplete tower without a dome and destroy its topmost block."
}

// CanUse requires at least one tower that could lose a level.
func (t *Thunderbolt) CanUse(b *Board) bool {
	return anyCell(b, t.Usable)
}

// Usable excludes domed towers so a dome never sits below level 3, and
// flooded cells whose building is frozen.
func (t *Thunderbolt) Usable(c *Cell) bool {
	return c != nil &&
		!c.IsOccupied() &&
		!c.Flooded() &&
		!c.HasDome() &&
		c.Level() >= 1 && c.Level() <= MaxLevel
}

func (t *Thunderbolt) PerformAction(target *Cell, p *Player) bool {
	if !t.Usable(target) {
		return false
	}
	target.block.Destroy()
	p.RemoveArtifact(t)
	return true
}
