// Package ledger mutates the shared coin, exp and level counters. All
// reward and payment paths go through it so the level-up rule is applied
// in exactly one place.
package ledger

import (
	"errors"
	"fmt"

	"github.com/dtrung95/gamebot/internal/model"
)

// ErrInsufficientFunds is returned when a debit exceeds the balance.
var ErrInsufficientFunds = errors.New("insufficient coins")

// CreditResult reports what a credit did beyond the plain amounts.
type CreditResult struct {
	LeveledUp  bool
	NewLevel   int32
	BonusCoins int64
}

// Credit awards coins and exp, then runs a single level-up check: at
// level*100 exp the player gains one level, exp resets to zero with any
// excess discarded, and 100*newLevel bonus coins are paid. Multiple
// levels never trigger from one credit. growHP additionally raises max
// HP by 20 and fully heals, the dungeon flavor of leveling.
func Credit(p *model.PlayerState, coins, exp int64, growHP bool) CreditResult {
	p.Coins += coins
	p.Exp += exp

	if p.Exp < int64(p.Level)*100 {
		return CreditResult{}
	}

	p.Level++
	p.Exp = 0
	bonus := int64(p.Level) * 100
	p.Coins += bonus
	if growHP {
		p.Dungeon.MaxHP += 20
		p.Dungeon.HP = p.Dungeon.MaxHP
	}
	return CreditResult{LeveledUp: true, NewLevel: p.Level, BonusCoins: bonus}
}

// Debit withdraws cost coins or fails without touching the balance.
func Debit(p *model.PlayerState, cost int64) error {
	if p.Coins < cost {
		return fmt.Errorf("%w: need %d, have %d", ErrInsufficientFunds, cost, p.Coins)
	}
	p.Coins -= cost
	return nil
}
