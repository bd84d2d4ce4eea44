package game

import "fmt"

// DefaultStartingTokens is a player's token balance at the start of a game.
const DefaultStartingTokens = 5

// WorkersPerPlayer is fixed by the rules.
const WorkersPerPlayer = 2

var DefaultPlayerColors = [2]string{"blue", "red"}

type Player struct {
	Index   int
	Name    string
	Color   string
	God     GodPower
	Workers [WorkersPerPlayer]*Worker

	tokens    int
	artifacts []Artifact
}

func NewPlayer(index int, name, color string, god GodPower, tokens int) *Player {
	p := &Player{
		Index:  index,
		Name:   name,
		Color:  color,
		God:    god,
		tokens: tokens,
	}
	for i := range p.Workers {
		p.Workers[i] = NewWorker(index, i)
	}
	return p
}

func (p *Player) Tokens() int { return p.tokens }

func (p *Player) AddTokens(n int) {
	if n > 0 {
		p.tokens += n
	}
}

// SpendTokens deducts n tokens, refusing to go negative.
func (p *Player) SpendTokens(n int) error {
	if n > p.tokens {
		return fmt.Errorf("%w: have %d, need %d", ErrInsufficientTokens, p.tokens, n)
	}
	p.tokens -= n
	return nil
}

// Artifacts returns a copy of the unused artifacts the player holds.
func (p *Player) Artifacts() []Artifact {
	return append([]Artifact(nil), p.artifacts...)
}

func (p *Player) Artifact(id string) Artifact {
	for _, a := range p.artifacts {
		if a.ID() == id {
			return a
		}
	}
	return nil
}

func (p *Player) AddArtifact(a Artifact) {
	p.artifacts = append(p.artifacts, a)
}

// RemoveArtifact drops a by identity and reports whether it was held.
func (p *Player) RemoveArtifact(a Artifact) bool {
	for i, held := range p.artifacts {
		if held == a {
			p.artifacts = append(p.artifacts[:i], p.artifacts[i+1:]...)
			return true
		}
	}
	return false
}

// Owns reports whether w belongs to the player.
func (p *Player) Owns(w *Worker) bool {
	return w != nil && w.Owner == p.Index
}
