// Package game is the engine facade: every player action is a
// lock -> load -> mutate -> save sequence over the persistence boundary,
// with all randomness drawn from an injectable source.
package game

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/dtrung95/gamebot/internal/config"
	"github.com/dtrung95/gamebot/internal/data"
	"github.com/dtrung95/gamebot/internal/game/dungeon"
	"github.com/dtrung95/gamebot/internal/game/rng"
	"github.com/dtrung95/gamebot/internal/model"
	"github.com/dtrung95/gamebot/internal/store"
)

// Engine executes game actions against persistent player state.
type Engine struct {
	cfg   config.Server
	store store.Store
	rng   rng.Source
	clock func() time.Time

	global    sync.Mutex
	perPlayer bool
	locksMu   sync.Mutex
	locks     map[int64]*sync.Mutex
}

// New builds an engine. The catalog must already be loaded.
func New(cfg config.Server, st store.Store, src rng.Source) *Engine {
	return &Engine{
		cfg:       cfg,
		store:     st,
		rng:       src,
		clock:     time.Now,
		perPlayer: cfg.LockMode == "player",
		locks:     make(map[int64]*sync.Mutex),
	}
}

// lockFor returns the mutex guarding a player's mutations. Global mode
// hands out one mutex for everyone, serializing the whole system.
func (e *Engine) lockFor(userID int64) *sync.Mutex {
	if !e.perPlayer {
		return &e.global
	}
	e.locksMu.Lock()
	defer e.locksMu.Unlock()
	mu, ok := e.locks[userID]
	if !ok {
		mu = &sync.Mutex{}
		e.locks[userID] = mu
	}
	return mu
}

// withPlayer runs fn under the player's lock and persists the mutated
// state. fn errors abort the save, so failed actions leave no trace.
func (e *Engine) withPlayer(ctx context.Context, userID int64, fn func(p *model.PlayerState) error) error {
	mu := e.lockFor(userID)
	mu.Lock()
	defer mu.Unlock()

	p, err := e.store.Load(ctx, userID)
	if err != nil {
		return fmt.Errorf("load player %d: %w", userID, err)
	}
	if p == nil {
		p = model.NewPlayerState(userID, data.BaseRodName, e.cfg.Game.StartingCoins)
		slog.Info("new player", "user_id", userID)
	}

	if err := fn(p); err != nil {
		return err
	}

	if err := e.store.Save(ctx, p); err != nil {
		return fmt.Errorf("save player %d: %w", userID, err)
	}
	return nil
}

// Profile is the read-only snapshot handed to presentation layers.
type Profile struct {
	Player       model.PlayerState
	Attack       int32
	Defense      int32
	ExpToLevel   int64
	CardAlbumMax int
}

// GetProfile returns the player's state with derived combat stats. An
// unknown player gets a fresh profile without being persisted.
func (e *Engine) GetProfile(ctx context.Context, userID int64) (*Profile, error) {
	mu := e.lockFor(userID)
	mu.Lock()
	defer mu.Unlock()

	p, err := e.store.Load(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load player %d: %w", userID, err)
	}
	if p == nil {
		p = model.NewPlayerState(userID, data.BaseRodName, e.cfg.Game.StartingCoins)
	}
	return e.profileOf(p), nil
}

func (e *Engine) profileOf(p *model.PlayerState) *Profile {
	atk, def := dungeon.Aggregate(p)
	return &Profile{
		Player:       *p,
		Attack:       atk,
		Defense:      def,
		ExpToLevel:   int64(p.Level)*100 - p.Exp,
		CardAlbumMax: len(data.Cards()),
	}
}
