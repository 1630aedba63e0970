// Package store is the persistence boundary for player state.
package store

import (
	"context"

	"github.com/dtrung95/gamebot/internal/model"
)

// Store loads and saves player state. Load returns nil, nil when the
// player has never been seen; absence is not an error.
type Store interface {
	Load(ctx context.Context, userID int64) (*model.PlayerState, error)
	Save(ctx context.Context, p *model.PlayerState) error
	LoadAll(ctx context.Context) ([]*model.PlayerState, error)
	SaveAll(ctx context.Context, players []*model.PlayerState) error
	Close() error
}
