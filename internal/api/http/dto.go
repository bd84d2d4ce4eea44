package http

import "santorini/internal/game"

// CreateRoomRequest is the payload for POST /rooms.
type CreateRoomRequest struct {
	Players [2]game.PlayerDef `json:"players"`
}

// ClickRequest is the payload for POST /rooms/:code/click.
type ClickRequest struct {
	Row *int `json:"row" binding:"required"`
	Col *int `json:"col" binding:"required"`
}

// UseArtifactRequest is the payload for POST /rooms/:code/artifacts/use.
type UseArtifactRequest struct {
	ArtifactID string `json:"artifact_id" binding:"required"`
}

// BuyRequest is the payload for POST /rooms/:code/shop/buy.
type BuyRequest struct {
	Kind string `json:"kind" binding:"required"`
}
