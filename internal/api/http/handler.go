package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"santorini/internal/game"
	"santorini/internal/room"
	"santorini/internal/shared"
)

// Rooms is what the handlers need from the room manager.
type Rooms interface {
	CreateRoom(players [2]game.PlayerDef) (*room.Room, error)
	Snapshot(code string) (shared.Snapshot, error)
	Dispatch(ctx context.Context, code string, cmd shared.Command) (shared.Snapshot, error)
	Delete(code string) error
}

// CreateRoomHandler starts a game between two players.
func CreateRoomHandler(rm Rooms) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateRoomRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
			return
		}
		r, err := rm.CreateRoom(req.Players)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"roomCode": r.Code, "room": r.Snapshot()})
	}
}

func GetRoomHandler(rm Rooms) gin.HandlerFunc {
	return func(c *gin.Context) {
		snap, err := rm.Snapshot(c.Param("code"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"room": snap})
	}
}

func DeleteRoomHandler(rm Rooms) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := rm.Delete(c.Param("code")); err != nil {
			writeError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// ClickHandler forwards a board click. Clicks that do not fit the turn are
// ignored by the engine and still answer 200 with the unchanged state.
func ClickHandler(rm Rooms) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ClickRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "row and col required"})
			return
		}
		dispatch(c, rm, shared.Command{Action: shared.ActionClick, Row: *req.Row, Col: *req.Col})
	}
}

func UseArtifactHandler(rm Rooms) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UseArtifactRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "artifact_id required"})
			return
		}
		dispatch(c, rm, shared.Command{Action: shared.ActionUseArtifact, ArtifactID: req.ArtifactID})
	}
}

func BuyHandler(rm Rooms) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req BuyRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "kind required"})
			return
		}
		dispatch(c, rm, shared.Command{Action: shared.ActionBuy, Kind: req.Kind})
	}
}

// ActionHandler serves the intents that carry no payload.
func ActionHandler(rm Rooms, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		dispatch(c, rm, shared.Command{Action: action})
	}
}

func CatalogHandler() gin.HandlerFunc {
	catalog := game.NewShop().Catalog()
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"artifacts": catalog})
	}
}

func GodsHandler() gin.HandlerFunc {
	type god struct {
		Name        string `json:"name"`
		Phase       string `json:"phase"`
		Description string `json:"description"`
	}
	var gods []god
	for _, name := range game.GodNames() {
		g, err := game.NewGodPower(name)
		if err != nil {
			continue
		}
		gods = append(gods, god{Name: g.Name(), Phase: g.Phase().String(), Description: g.Description()})
	}
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"gods": gods})
	}
}

func dispatch(c *gin.Context, rm Rooms, cmd shared.Command) {
	snap, err := rm.Dispatch(c.Request.Context(), c.Param("code"), cmd)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"room": snap})
}

func writeError(c *gin.Context, err error) {
	c.JSON(statusFor(err), gin.H{"error": err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, room.ErrRoomNotFound):
		return http.StatusNotFound
	case errors.Is(err, room.ErrRoomClosed):
		return http.StatusGone
	case errors.Is(err, room.ErrUnknownAction),
		errors.Is(err, game.ErrUnknownGod),
		errors.Is(err, game.ErrUnknownArtifact):
		return http.StatusBadRequest
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusConflict
	}
}
