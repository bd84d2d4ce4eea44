package http

import (
	"github.com/gin-gonic/gin"

	"santorini/internal/api/ws"
	"santorini/internal/config"
	"santorini/internal/shared"
)

func NewRouter(rm Rooms, hub *ws.Hub, cfg config.Config) *gin.Engine {
	r := gin.Default()

	// WebSocket for live board updates
	r.GET("/ws", hub.HandleWS)

	// --- ROOM ENDPOINTS ---
	r.POST("/rooms", CreateRoomHandler(rm))
	r.GET("/rooms/:code", GetRoomHandler(rm))
	r.DELETE("/rooms/:code", DeleteRoomHandler(rm))

	// --- TURN ENDPOINTS ---
	turn := r.Group("/rooms/:code")
	turn.POST("/click", ClickHandler(rm))
	turn.POST("/god-power/use", ActionHandler(rm, shared.ActionUseGodPower))
	turn.POST("/god-power/skip", ActionHandler(rm, shared.ActionSkipGodPower))
	turn.POST("/artifacts/use", UseArtifactHandler(rm))
	turn.POST("/shop/buy", BuyHandler(rm))
	turn.POST("/shop/close", ActionHandler(rm, shared.ActionCloseShop))

	// --- REFERENCE ENDPOINTS ---
	r.GET("/catalog", CatalogHandler())
	r.GET("/gods", GodsHandler())
	r.GET("/config", GetConfigHandler(cfg))

	return r
}
