package game

import (
	"context"
	"log/slog"

	"github.com/dtrung95/gamebot/internal/data"
	"github.com/dtrung95/gamebot/internal/game/dungeon"
	"github.com/dtrung95/gamebot/internal/game/ledger"
	"github.com/dtrung95/gamebot/internal/model"
)

// ExploreResult is the outcome of one dungeon run.
type ExploreResult struct {
	Monster   string
	Floor     int32
	Outcome   dungeon.Outcome
	Turns     int
	Log       []string
	PlayerHP  int32
	MaxHP     int32
	Coins     int64
	Exp       int64
	Loot      string
	LevelUp   ledger.CreditResult
	NewFloor  int32
	Advanced  bool
	Balance   int64
}

// ExploreDungeon fights one random monster of the current floor. Defeat
// respawns the player at full HP with no other penalty. Victory pays the
// monster's bounty, rolls loot, runs the dungeon-flavored level-up check
// and may unlock the next floor.
func (e *Engine) ExploreDungeon(ctx context.Context, userID int64) (*ExploreResult, error) {
	var res *ExploreResult
	err := e.withPlayer(ctx, userID, func(p *model.PlayerState) error {
		monster := dungeon.PickMonster(p.Dungeon.CurrentFloor, e.rng)
		atk, def := dungeon.Aggregate(p)
		fight := dungeon.Resolve(dungeon.Encounter{
			Monster:  monster,
			PlayerHP: p.Dungeon.HP,
			Attack:   atk,
			Defense:  def,
		}, e.rng)

		res = &ExploreResult{
			Monster:  monster.Name,
			Floor:    p.Dungeon.CurrentFloor,
			Outcome:  fight.Outcome,
			Turns:    fight.Turns,
			Log:      fight.Log,
			NewFloor: p.Dungeon.CurrentFloor,
		}

		if fight.Outcome == dungeon.Defeat {
			p.Dungeon.HP = p.Dungeon.MaxHP // respawn
			res.PlayerHP = p.Dungeon.HP
			res.MaxHP = p.Dungeon.MaxHP
			res.Balance = p.Coins
			slog.Debug("dungeon defeat", "user_id", userID, "monster", monster.Name)
			return nil
		}

		p.Dungeon.HP = fight.PlayerHP
		if loot := dungeon.RollLoot(e.rng); loot != nil {
			if p.AddItem(loot.Name, false) {
				res.Loot = loot.Name
			}
		}
		res.LevelUp = ledger.Credit(p, monster.Coins, monster.Exp, true)
		if dungeon.RollFloorAdvance(p, e.rng) {
			res.Advanced = true
			res.NewFloor = p.Dungeon.CurrentFloor
		}

		res.Coins = monster.Coins
		res.Exp = monster.Exp
		res.PlayerHP = p.Dungeon.HP
		res.MaxHP = p.Dungeon.MaxHP
		res.Balance = p.Coins
		slog.Debug("dungeon victory",
			"user_id", userID,
			"monster", monster.Name,
			"turns", fight.Turns,
			"loot", res.Loot)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// EquipItem moves an owned weapon, armor piece or accessory into its
// slot. Potions cannot be equipped.
func (e *Engine) EquipItem(ctx context.Context, userID int64, name string) error {
	def := data.GetEquipment(name)
	if def == nil {
		return ErrUnknownItem
	}
	return e.withPlayer(ctx, userID, func(p *model.PlayerState) error {
		if !p.HasItem(name) {
			return ErrNotOwned
		}
		switch def.Category {
		case data.CategoryWeapon:
			p.Dungeon.EquippedWeapon = name
		case data.CategoryArmor:
			p.Dungeon.EquippedArmor = name
		case data.CategoryAccessory:
			p.Dungeon.EquippedAccessory = name
		default:
			return ErrWrongCategory
		}
		return nil
	})
}

// UsePotion consumes one owned potion and heals by its amount, clamped
// to max HP. Returns the HP actually restored.
func (e *Engine) UsePotion(ctx context.Context, userID int64, name string) (int32, error) {
	def := data.GetEquipment(name)
	if def == nil {
		return 0, ErrUnknownItem
	}
	if def.Category != data.CategoryPotion {
		return 0, ErrWrongCategory
	}
	var healed int32
	err := e.withPlayer(ctx, userID, func(p *model.PlayerState) error {
		if !p.HasItem(name) {
			return ErrNotOwned
		}
		if p.Dungeon.HP >= p.Dungeon.MaxHP {
			return ErrFullHP
		}
		healed = p.ApplyHeal(def.Heal)
		p.RemoveItem(name)
		return nil
	})
	return healed, err
}

// Heal restores full HP for the configured price.
func (e *Engine) Heal(ctx context.Context, userID int64) error {
	return e.withPlayer(ctx, userID, func(p *model.PlayerState) error {
		if p.Dungeon.HP >= p.Dungeon.MaxHP {
			return ErrFullHP
		}
		if err := ledger.Debit(p, e.cfg.Game.HealPrice); err != nil {
			return err
		}
		p.Dungeon.HP = p.Dungeon.MaxHP
		return nil
	})
}
