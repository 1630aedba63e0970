// Package db is the PostgreSQL persistence backend. One player maps to
// a players row plus item, companion and card rows, written in a single
// transaction per save.
package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dtrung95/gamebot/internal/model"
)

// DB wraps a pgx connection pool and implements store.Store.
type DB struct {
	pool *pgxpool.Pool
}

// New connects to PostgreSQL and returns a DB handle.
func New(ctx context.Context, dsn string) (*DB, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	return &DB{pool: pool}, nil
}

// Pool returns the underlying pgx pool.
func (d *DB) Pool() *pgxpool.Pool {
	return d.pool
}

func (d *DB) Close() error {
	d.pool.Close()
	return nil
}

// Load retrieves a player with all owned collections.
// Returns nil, nil if the player does not exist.
func (d *DB) Load(ctx context.Context, userID int64) (*model.PlayerState, error) {
	p := &model.PlayerState{UserID: userID}
	err := d.pool.QueryRow(ctx,
		`SELECT coins, level, exp,
		        rod_name, bait_count, caught_fish, total_caught, last_fish_time,
		        active_companion,
		        current_floor, max_floor, hp, max_hp, attack, defense,
		        equipped_weapon, equipped_armor, equipped_accessory,
		        slots_played, dice_wins, jackpot_won, last_daily_bonus, cards_opened
		 FROM players WHERE user_id = $1`, userID,
	).Scan(
		&p.Coins, &p.Level, &p.Exp,
		&p.Fishing.RodName, &p.Fishing.BaitCount, &p.Fishing.CaughtFish,
		&p.Fishing.TotalCaught, &p.Fishing.LastFishTime,
		&p.Companions.Active,
		&p.Dungeon.CurrentFloor, &p.Dungeon.MaxFloor, &p.Dungeon.HP, &p.Dungeon.MaxHP,
		&p.Dungeon.Attack, &p.Dungeon.Defense,
		&p.Dungeon.EquippedWeapon, &p.Dungeon.EquippedArmor, &p.Dungeon.EquippedAccessory,
		&p.Gacha.SlotsPlayed, &p.Gacha.DiceWins, &p.Gacha.JackpotsWon,
		&p.Gacha.LastDailyBonus, &p.Gacha.CardsOpened,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("querying player %d: %w", userID, err)
	}

	if err := d.loadCollections(ctx, p); err != nil {
		return nil, err
	}
	p.Normalize()
	return p, nil
}

func (d *DB) loadCollections(ctx context.Context, p *model.PlayerState) error {
	rows, err := d.pool.Query(ctx,
		`SELECT name, count FROM player_items WHERE user_id = $1 ORDER BY name`, p.UserID)
	if err != nil {
		return fmt.Errorf("querying items for %d: %w", p.UserID, err)
	}
	defer rows.Close()
	for rows.Next() {
		var name string
		var count int32
		if err := rows.Scan(&name, &count); err != nil {
			return fmt.Errorf("scanning item for %d: %w", p.UserID, err)
		}
		for i := int32(0); i < count; i++ {
			p.Dungeon.Inventory = append(p.Dungeon.Inventory, name)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("reading items for %d: %w", p.UserID, err)
	}

	crows, err := d.pool.Query(ctx,
		`SELECT name, level FROM player_companions WHERE user_id = $1 ORDER BY name`, p.UserID)
	if err != nil {
		return fmt.Errorf("querying companions for %d: %w", p.UserID, err)
	}
	defer crows.Close()
	p.Companions.Levels = make(map[string]int32)
	for crows.Next() {
		var name string
		var level int32
		if err := crows.Scan(&name, &level); err != nil {
			return fmt.Errorf("scanning companion for %d: %w", p.UserID, err)
		}
		p.Companions.Owned = append(p.Companions.Owned, name)
		p.Companions.Levels[name] = level
	}
	if err := crows.Err(); err != nil {
		return fmt.Errorf("reading companions for %d: %w", p.UserID, err)
	}

	krows, err := d.pool.Query(ctx,
		`SELECT name FROM player_cards WHERE user_id = $1 ORDER BY name`, p.UserID)
	if err != nil {
		return fmt.Errorf("querying cards for %d: %w", p.UserID, err)
	}
	defer krows.Close()
	for krows.Next() {
		var name string
		if err := krows.Scan(&name); err != nil {
			return fmt.Errorf("scanning card for %d: %w", p.UserID, err)
		}
		p.Gacha.Cards = append(p.Gacha.Cards, name)
	}
	if err := krows.Err(); err != nil {
		return fmt.Errorf("reading cards for %d: %w", p.UserID, err)
	}
	return nil
}

// Save writes the player and every collection in one transaction.
// Either all of it lands or none.
func (d *DB) Save(ctx context.Context, p *model.PlayerState) error {
	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction for player %d: %w", p.UserID, err)
	}
	defer func() {
		if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			slog.Error("rollback failed", "user_id", p.UserID, "error", err)
		}
	}()

	if err := d.saveTx(ctx, tx, p); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit for player %d: %w", p.UserID, err)
	}
	return nil
}

func (d *DB) saveTx(ctx context.Context, tx pgx.Tx, p *model.PlayerState) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO players (
		    user_id, coins, level, exp,
		    rod_name, bait_count, caught_fish, total_caught, last_fish_time,
		    active_companion,
		    current_floor, max_floor, hp, max_hp, attack, defense,
		    equipped_weapon, equipped_armor, equipped_accessory,
		    slots_played, dice_wins, jackpot_won, last_daily_bonus, cards_opened
		 ) VALUES (
		    $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12,
		    $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24
		 )
		 ON CONFLICT (user_id) DO UPDATE SET
		    coins = EXCLUDED.coins, level = EXCLUDED.level, exp = EXCLUDED.exp,
		    rod_name = EXCLUDED.rod_name, bait_count = EXCLUDED.bait_count,
		    caught_fish = EXCLUDED.caught_fish, total_caught = EXCLUDED.total_caught,
		    last_fish_time = EXCLUDED.last_fish_time,
		    active_companion = EXCLUDED.active_companion,
		    current_floor = EXCLUDED.current_floor, max_floor = EXCLUDED.max_floor,
		    hp = EXCLUDED.hp, max_hp = EXCLUDED.max_hp,
		    attack = EXCLUDED.attack, defense = EXCLUDED.defense,
		    equipped_weapon = EXCLUDED.equipped_weapon,
		    equipped_armor = EXCLUDED.equipped_armor,
		    equipped_accessory = EXCLUDED.equipped_accessory,
		    slots_played = EXCLUDED.slots_played, dice_wins = EXCLUDED.dice_wins,
		    jackpot_won = EXCLUDED.jackpot_won,
		    last_daily_bonus = EXCLUDED.last_daily_bonus,
		    cards_opened = EXCLUDED.cards_opened`,
		p.UserID, p.Coins, p.Level, p.Exp,
		p.Fishing.RodName, p.Fishing.BaitCount, p.Fishing.CaughtFish,
		p.Fishing.TotalCaught, p.Fishing.LastFishTime,
		p.Companions.Active,
		p.Dungeon.CurrentFloor, p.Dungeon.MaxFloor, p.Dungeon.HP, p.Dungeon.MaxHP,
		p.Dungeon.Attack, p.Dungeon.Defense,
		p.Dungeon.EquippedWeapon, p.Dungeon.EquippedArmor, p.Dungeon.EquippedAccessory,
		p.Gacha.SlotsPlayed, p.Gacha.DiceWins, p.Gacha.JackpotsWon,
		p.Gacha.LastDailyBonus, p.Gacha.CardsOpened,
	)
	if err != nil {
		return fmt.Errorf("upserting player %d: %w", p.UserID, err)
	}

	// Collections are replaced wholesale; per-row diffing is not worth
	// it at these sizes.
	for _, table := range []string{"player_items", "player_companions", "player_cards"} {
		if _, err := tx.Exec(ctx, `DELETE FROM `+table+` WHERE user_id = $1`, p.UserID); err != nil {
			return fmt.Errorf("clearing %s for %d: %w", table, p.UserID, err)
		}
	}

	counts := make(map[string]int32)
	for _, name := range p.Dungeon.Inventory {
		counts[name]++
	}
	for name, count := range counts {
		if _, err := tx.Exec(ctx,
			`INSERT INTO player_items (user_id, name, count) VALUES ($1, $2, $3)`,
			p.UserID, name, count); err != nil {
			return fmt.Errorf("saving item %q for %d: %w", name, p.UserID, err)
		}
	}

	for _, name := range p.Companions.Owned {
		level := p.CompanionLevel(name)
		if _, err := tx.Exec(ctx,
			`INSERT INTO player_companions (user_id, name, level) VALUES ($1, $2, $3)`,
			p.UserID, name, level); err != nil {
			return fmt.Errorf("saving companion %q for %d: %w", name, p.UserID, err)
		}
	}

	for _, name := range p.Gacha.Cards {
		if _, err := tx.Exec(ctx,
			`INSERT INTO player_cards (user_id, name) VALUES ($1, $2)`,
			p.UserID, name); err != nil {
			return fmt.Errorf("saving card %q for %d: %w", name, p.UserID, err)
		}
	}
	return nil
}

// LoadAll returns every stored player, ordered by user id.
func (d *DB) LoadAll(ctx context.Context) ([]*model.PlayerState, error) {
	rows, err := d.pool.Query(ctx, `SELECT user_id FROM players ORDER BY user_id`)
	if err != nil {
		return nil, fmt.Errorf("querying player ids: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning player id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading player ids: %w", err)
	}
	rows.Close()

	out := make([]*model.PlayerState, 0, len(ids))
	for _, id := range ids {
		p, err := d.Load(ctx, id)
		if err != nil {
			return nil, err
		}
		if p != nil {
			out = append(out, p)
		}
	}
	return out, nil
}

// SaveAll persists a batch of players, one transaction each.
func (d *DB) SaveAll(ctx context.Context, players []*model.PlayerState) error {
	for _, p := range players {
		if err := d.Save(ctx, p); err != nil {
			return err
		}
	}
	return nil
}
