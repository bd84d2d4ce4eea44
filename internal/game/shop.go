package game

import "fmt"

// Offer describes one artifact kind on sale.
type Offer struct {
	Kind        string `json:"kind"`
	Name        string `json:"name"`
	Cost        int    `json:"cost"`
	Description string `json:"description"`
}

// Shop sells artifacts during the buy phase. A purchase or an explicit
// close completes the buy phase for the turn.
type Shop struct {
	offers []Offer
}

func NewShop() *Shop {
	s := &Shop{}
	for _, kind := range ArtifactKinds() {
		a, err := NewArtifact(kind)
		if err != nil {
			panic(err)
		}
		s.offers = append(s.offers, Offer{
			Kind:        a.Kind(),
			Name:        a.Name(),
			Cost:        a.Cost(),
			Description: a.Description(),
		})
	}
	return s
}

func (s *Shop) Catalog() []Offer {
	return append([]Offer(nil), s.offers...)
}

// Buy charges the player and adds a fresh artifact to their inventory.
func (s *Shop) Buy(p *Player, ts *TurnState, kind string) (Artifact, error) {
	if ts.BuyPhaseCompleted {
		return nil, ErrShopClosed
	}
	a, err := NewArtifact(kind)
	if err != nil {
		return nil, err
	}
	if err := p.SpendTokens(a.Cost()); err != nil {
		return nil, fmt.Errorf("buy %s: %w", a.Name(), err)
	}
	p.AddArtifact(a)
	s.Close(ts)
	return a, nil
}

func (s *Shop) Close(ts *TurnState) {
	ts.BuyPhaseCompleted = true
}
