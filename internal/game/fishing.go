package game

import (
	"context"
	"log/slog"

	"github.com/dtrung95/gamebot/internal/data"
	"github.com/dtrung95/gamebot/internal/game/effect"
	"github.com/dtrung95/gamebot/internal/game/ledger"
	"github.com/dtrung95/gamebot/internal/game/rarity"
	"github.com/dtrung95/gamebot/internal/model"
)

// Catch is one landed fish with its scaled rewards.
type Catch struct {
	FishName string
	Rarity   data.Rarity
	Coins    int64
	Exp      int64
}

// CatchResult is the outcome of one CatchFish action. Catches holds one
// entry, or two when the rod's double-catch effect fired.
type CatchResult struct {
	Catches   []Catch
	BaitSaved bool
	BaitLeft  int32
	LevelUp   ledger.CreditResult
	Balance   int64
}

// CatchFish spends one bait (unless the rod's reduce-bait trial saves
// it), samples a fish through the rod's catch rates and the companion's
// rare boost, scales rewards through the modifier chain and credits
// them. The level-up check runs once, after every fish of the action.
func (e *Engine) CatchFish(ctx context.Context, userID int64) (*CatchResult, error) {
	var res *CatchResult
	err := e.withPlayer(ctx, userID, func(p *model.PlayerState) error {
		if p.Fishing.BaitCount <= 0 {
			return ErrOutOfBait
		}

		rod := data.GetRod(p.Fishing.RodName)
		if rod == nil {
			rod = data.GetRod(data.BaseRodName)
		}
		chain := e.buildChain(rod, p)

		saved := chain.FreeBait(e.rng)
		if !saved {
			p.Fishing.BaitCount--
		}

		catches := []Catch{e.sampleCatch(rod, chain)}
		if chain.DoubleCatch(e.rng) {
			catches = append(catches, e.sampleCatch(rod, chain))
		}

		now := e.clock()
		var coins, exp int64
		for _, c := range catches {
			p.AddCatch(c.FishName, now)
			coins += c.Coins
			exp += c.Exp
		}
		levelUp := ledger.Credit(p, coins, exp, false)

		res = &CatchResult{
			Catches:   catches,
			BaitSaved: saved,
			BaitLeft:  p.Fishing.BaitCount,
			LevelUp:   levelUp,
			Balance:   p.Coins,
		}
		slog.Debug("catch",
			"user_id", userID,
			"fish", catches[0].FishName,
			"double", len(catches) > 1,
			"coins", coins,
			"exp", exp)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// buildChain resolves the player's modifier stack for one action.
func (e *Engine) buildChain(rod *data.RodDef, p *model.PlayerState) effect.Chain {
	var companion *data.CompanionDef
	var level int32
	if active := p.Companions.Active; active != "" && p.HasCompanion(active) {
		companion = data.GetCompanion(active)
		level = p.CompanionLevel(active)
	}
	return effect.New(rod, companion, level)
}

func (e *Engine) sampleCatch(rod *data.RodDef, chain effect.Chain) Catch {
	tier := rarity.Sample(rod.CatchRates, chain.RareBoost(), e.rng)
	fish := rarity.PickFish(tier, e.rng)
	return Catch{
		FishName: fish.Name,
		Rarity:   fish.Rarity,
		Coins:    chain.ScaleCoins(fish.Coins),
		Exp:      chain.ScaleExp(fish.Exp),
	}
}

// BuyBait buys count bait at the configured price.
func (e *Engine) BuyBait(ctx context.Context, userID int64, count int32) (int32, error) {
	if count <= 0 {
		return 0, ErrBadCount
	}
	var left int32
	err := e.withPlayer(ctx, userID, func(p *model.PlayerState) error {
		if err := ledger.Debit(p, e.cfg.Game.BaitPrice*int64(count)); err != nil {
			return err
		}
		p.Fishing.BaitCount += count
		left = p.Fishing.BaitCount
		return nil
	})
	return left, err
}
