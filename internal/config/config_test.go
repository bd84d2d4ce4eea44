package config

import (
	"testing"
	"time"

	"santorini/internal/game"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("HTTPAddr = %s, want :8080", cfg.HTTPAddr)
	}
	if cfg.BoardRows != 5 || cfg.BoardCols != 5 {
		t.Fatalf("board = %dx%d, want 5x5", cfg.BoardRows, cfg.BoardCols)
	}
	if cfg.TurnSeconds != 900 {
		t.Fatalf("TurnSeconds = %d, want 900", cfg.TurnSeconds)
	}
	if cfg.StartingTokens != 5 {
		t.Fatalf("StartingTokens = %d, want 5", cfg.StartingTokens)
	}
	if cfg.RoomTTL != 30*time.Minute {
		t.Fatalf("RoomTTL = %s, want 30m", cfg.RoomTTL)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SANTORINI_HTTP_ADDR", ":9090")
	t.Setenv("SANTORINI_TURN_SECONDS", "60")
	t.Setenv("SANTORINI_SHOP_POLICY", "first_turn")
	t.Setenv("SANTORINI_ROOM_TTL", "5m")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTPAddr != ":9090" || cfg.TurnSeconds != 60 || cfg.RoomTTL != 5*time.Minute {
		t.Fatalf("cfg = %+v", cfg)
	}
	if got := cfg.EngineOptions().ShopPolicy; got != game.ShopFirstTurn {
		t.Fatalf("ShopPolicy = %s, want first_turn", got)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{"bad int", "SANTORINI_TURN_SECONDS", "soon"},
		{"zero turn", "SANTORINI_TURN_SECONDS", "0"},
		{"tiny board", "SANTORINI_BOARD_ROWS", "1"},
		{"bad policy", "SANTORINI_SHOP_POLICY", "never"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := Load(); err == nil {
				t.Fatalf("Load with %s=%s succeeded", tt.key, tt.value)
			}
		})
	}
}
