package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"santorini/internal/config"
)

// GetConfigHandler exposes the game settings a renderer needs.
func GetConfigHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"board_rows":      cfg.BoardRows,
			"board_cols":      cfg.BoardCols,
			"turn_seconds":    cfg.TurnSeconds,
			"starting_tokens": cfg.StartingTokens,
			"shop_policy":     cfg.ShopPolicy,
		})
	}
}
