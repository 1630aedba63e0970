package game

import (
	"errors"

	"github.com/dtrung95/gamebot/internal/game/ledger"
)

// Action errors. All of them leave player state untouched.
var (
	// ErrInsufficientFunds is the ledger sentinel re-exported for callers
	// that only import the engine.
	ErrInsufficientFunds = ledger.ErrInsufficientFunds

	ErrUnknownItem   = errors.New("unknown item")
	ErrAlreadyOwned  = errors.New("already owned")
	ErrNotOwned      = errors.New("not owned")
	ErrWrongCategory = errors.New("wrong item category")
	ErrRodOrder      = errors.New("rod is not an upgrade over the current one")
	ErrOutOfBait     = errors.New("out of bait")
	ErrFullHP        = errors.New("hp already full")
	ErrBetTooSmall   = errors.New("bet below the minimum")
	ErrBadGuess      = errors.New("dice guess must be between 1 and 6")
	ErrBadCount      = errors.New("count must be positive")
	ErrBonusTaken    = errors.New("daily bonus already taken")
)
