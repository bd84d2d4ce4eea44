package game

import "errors"

// Errors returned by player intents. Clicks never fail; they are ignored.
var (
	ErrGameOver             = errors.New("game is over")
	ErrTurnIncomplete       = errors.New("must move, build, and use or skip god power before ending the turn")
	ErrMustMoveFirst        = errors.New("must move before using god power")
	ErrMustBuildFirst       = errors.New("must build before using god power")
	ErrGodPowerResolved     = errors.New("god power already used or skipped")
	ErrGodPowerUnavailable  = errors.New("god power not available")
	ErrUnknownGod           = errors.New("unknown god")
	ErrBuyPhaseOpen         = errors.New("buy phase not completed")
	ErrShopClosed           = errors.New("shop is closed")
	ErrInsufficientTokens   = errors.New("not enough tokens")
	ErrUnknownArtifact      = errors.New("unknown artifact")
	ErrArtifactAlreadyUsed  = errors.New("artifact already used or skipped this turn")
	ErrArtifactNotTurnStart = errors.New("artifacts can only be used at the beginning of a turn")
	ErrArtifactNotOwned     = errors.New("artifact not in inventory")
	ErrArtifactUnusable     = errors.New("artifact has no valid target")
)
