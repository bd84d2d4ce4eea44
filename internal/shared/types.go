package shared

import "santorini/internal/game"

// Actions accepted by a room, over HTTP or the websocket.
const (
	ActionClick        = "click"
	ActionUseGodPower  = "use_god_power"
	ActionSkipGodPower = "skip_god_power"
	ActionUseArtifact  = "use_artifact"
	ActionBuy          = "buy"
	ActionCloseShop    = "close_shop"
)

// Command is one player intent addressed to a room.
type Command struct {
	Action     string `json:"action"`
	Row        int    `json:"row"`
	Col        int    `json:"col"`
	ArtifactID string `json:"artifact_id,omitempty"`
	Kind       string `json:"kind,omitempty"`
}

type WorkerView struct {
	Owner int    `json:"owner"`
	ID    int    `json:"id"`
	Color string `json:"color"`
}

type CellView struct {
	Row       int         `json:"row"`
	Col       int         `json:"col"`
	Level     int         `json:"level"`
	Dome      bool        `json:"dome"`
	Flooded   bool        `json:"flooded"`
	Status    string      `json:"status"`
	Highlight string      `json:"highlight"`
	Worker    *WorkerView `json:"worker,omitempty"`
}

type GodView struct {
	Name        string `json:"name"`
	Phase       string `json:"phase"`
	Description string `json:"description"`
	Armed       bool   `json:"armed"`
}

type ArtifactView struct {
	ID          string `json:"id"`
	Kind        string `json:"kind"`
	Name        string `json:"name"`
	Cost        int    `json:"cost"`
	Description string `json:"description"`
}

type PlayerView struct {
	Index       int            `json:"index"`
	Name        string         `json:"name"`
	Color       string         `json:"color"`
	Tokens      int            `json:"tokens"`
	SecondsLeft int            `json:"seconds_left"`
	God         GodView        `json:"god"`
	Artifacts   []ArtifactView `json:"artifacts"`
}

// Snapshot is the render-ready state of a room after an event.
type Snapshot struct {
	Code           string         `json:"code"`
	Rows           int            `json:"rows"`
	Cols           int            `json:"cols"`
	Cells          []CellView     `json:"cells"`
	Players        []PlayerView   `json:"players"`
	Current        int            `json:"current"`
	Phase          string         `json:"phase"`
	Turn           game.TurnState `json:"turn"`
	ShopOpen       bool           `json:"shop_open"`
	Catalog        []game.Offer   `json:"catalog"`
	ActiveArtifact string         `json:"active_artifact,omitempty"`
	Winner         *int           `json:"winner"`
}

func FromEngine(code string, e *game.Engine) Snapshot {
	b := e.Board()
	s := Snapshot{
		Code:     code,
		Rows:     b.Rows(),
		Cols:     b.Cols(),
		Current:  e.CurrentIndex(),
		Phase:    e.TurnState().Phase().String(),
		Turn:     e.TurnState(),
		ShopOpen: e.ShopOpen(),
		Catalog:  e.Catalog(),
	}

	players := e.Players()
	for _, c := range b.Cells() {
		cv := CellView{
			Row:       c.Row(),
			Col:       c.Col(),
			Level:     c.Level(),
			Dome:      c.HasDome(),
			Flooded:   c.Flooded(),
			Status:    c.Status().String(),
			Highlight: c.Highlight().String(),
		}
		if w := c.Occupant(); w != nil {
			cv.Worker = &WorkerView{Owner: w.Owner, ID: w.ID, Color: players[w.Owner].Color}
		}
		s.Cells = append(s.Cells, cv)
	}

	for _, p := range players {
		pv := PlayerView{
			Index:       p.Index,
			Name:        p.Name,
			Color:       p.Color,
			Tokens:      p.Tokens(),
			SecondsLeft: e.SecondsLeft(p.Index),
			God: GodView{
				Name:        p.God.Name(),
				Phase:       p.God.Phase().String(),
				Description: p.God.Description(),
				Armed:       p.God.Armed(),
			},
			Artifacts: []ArtifactView{},
		}
		for _, a := range p.Artifacts() {
			pv.Artifacts = append(pv.Artifacts, ViewArtifact(a))
		}
		s.Players = append(s.Players, pv)
	}

	if a := e.ActiveArtifact(); a != nil {
		s.ActiveArtifact = a.ID()
	}
	if w := e.Winner(); w != nil {
		idx := w.Index
		s.Winner = &idx
	}
	return s
}

func ViewArtifact(a game.Artifact) ArtifactView {
	return ArtifactView{
		ID:          a.ID(),
		Kind:        a.Kind(),
		Name:        a.Name(),
		Cost:        a.Cost(),
		Description: a.Description(),
	}
}
