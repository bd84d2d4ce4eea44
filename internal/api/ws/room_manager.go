package ws

import (
	"context"

	"santorini/internal/shared"
)

type RoomManager interface {
	Snapshot(roomCode string) (shared.Snapshot, error)
	Dispatch(ctx context.Context, roomCode string, cmd shared.Command) (shared.Snapshot, error)
}
