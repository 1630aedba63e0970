package game

import (
	"context"
	"log/slog"

	"github.com/dtrung95/gamebot/internal/data"
	"github.com/dtrung95/gamebot/internal/game/ledger"
	"github.com/dtrung95/gamebot/internal/model"
)

// BuyResult reports a completed purchase.
type BuyResult struct {
	Item    string
	Kind    string // "equipment", "rod" or "companion"
	Cost    int64
	Balance int64
}

// BuyItem resolves name across the equipment, rod and companion
// catalogs and buys it. Weapons, armor and accessories are unique per
// player; potions stack. A rod purchase replaces the equipped rod and
// must be an upgrade: rods at or below the current one are rejected.
// Companions are granted at level 1.
func (e *Engine) BuyItem(ctx context.Context, userID int64, name string) (*BuyResult, error) {
	var res *BuyResult
	err := e.withPlayer(ctx, userID, func(p *model.PlayerState) error {
		if eq := data.GetEquipment(name); eq != nil {
			if !eq.Stackable() && p.HasItem(name) {
				return ErrAlreadyOwned
			}
			if err := ledger.Debit(p, eq.Cost); err != nil {
				return err
			}
			p.AddItem(name, eq.Stackable())
			res = &BuyResult{Item: name, Kind: "equipment", Cost: eq.Cost, Balance: p.Coins}
			return nil
		}

		if rod := data.GetRod(name); rod != nil {
			if name == p.Fishing.RodName {
				return ErrAlreadyOwned
			}
			if data.RodIndex(name) <= data.RodIndex(p.Fishing.RodName) {
				return ErrRodOrder
			}
			if err := ledger.Debit(p, rod.Cost); err != nil {
				return err
			}
			p.Fishing.RodName = name
			res = &BuyResult{Item: name, Kind: "rod", Cost: rod.Cost, Balance: p.Coins}
			return nil
		}

		if comp := data.GetCompanion(name); comp != nil {
			if p.HasCompanion(name) {
				return ErrAlreadyOwned
			}
			if err := ledger.Debit(p, comp.Cost); err != nil {
				return err
			}
			p.AddCompanion(name)
			res = &BuyResult{Item: name, Kind: "companion", Cost: comp.Cost, Balance: p.Coins}
			return nil
		}

		return ErrUnknownItem
	})
	if err != nil {
		return nil, err
	}
	slog.Debug("purchase", "user_id", userID, "item", res.Item, "cost", res.Cost)
	return res, nil
}

// ActivateCompanion makes an owned companion the active one.
func (e *Engine) ActivateCompanion(ctx context.Context, userID int64, name string) error {
	if data.GetCompanion(name) == nil {
		return ErrUnknownItem
	}
	return e.withPlayer(ctx, userID, func(p *model.PlayerState) error {
		if !p.HasCompanion(name) {
			return ErrNotOwned
		}
		p.Companions.Active = name
		return nil
	})
}
