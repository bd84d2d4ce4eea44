package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"santorini/internal/game"
)

// Config is the server configuration, read from SANTORINI_* variables.
type Config struct {
	HTTPAddr       string        `env:"SANTORINI_HTTP_ADDR"       envDefault:":8080"`
	BoardRows      int           `env:"SANTORINI_BOARD_ROWS"      envDefault:"5"`
	BoardCols      int           `env:"SANTORINI_BOARD_COLS"      envDefault:"5"`
	TurnSeconds    int           `env:"SANTORINI_TURN_SECONDS"    envDefault:"900"`
	StartingTokens int           `env:"SANTORINI_STARTING_TOKENS" envDefault:"5"`
	ShopPolicy     string        `env:"SANTORINI_SHOP_POLICY"     envDefault:"every_turn"`
	RoomTTL        time.Duration `env:"SANTORINI_ROOM_TTL"        envDefault:"30m"`
	OTelEndpoint   string        `env:"SANTORINI_OTEL_ENDPOINT"`
}

// Load parses the environment and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.BoardRows < 2 || c.BoardCols < 2 {
		return fmt.Errorf("board must be at least 2x2, got %dx%d", c.BoardRows, c.BoardCols)
	}
	if c.TurnSeconds <= 0 {
		return fmt.Errorf("turn seconds must be positive, got %d", c.TurnSeconds)
	}
	if c.StartingTokens < 0 {
		return fmt.Errorf("starting tokens must not be negative, got %d", c.StartingTokens)
	}
	if _, err := game.ParseShopPolicy(c.ShopPolicy); err != nil {
		return err
	}
	return nil
}

// EngineOptions maps the configuration onto engine options. Countdowns and
// the random source are left for the caller.
func (c Config) EngineOptions() game.Options {
	policy, _ := game.ParseShopPolicy(c.ShopPolicy)
	return game.Options{
		Rows:           c.BoardRows,
		Cols:           c.BoardCols,
		StartingTokens: c.StartingTokens,
		ShopPolicy:     policy,
		TurnSeconds:    c.TurnSeconds,
	}
}
