package store

import (
	"context"
	"sort"
	"sync"

	"github.com/dtrung95/gamebot/internal/model"
)

// MemoryStore holds players in memory only. Used by tests and the
// simulator, where durability is noise.
type MemoryStore struct {
	mu      sync.Mutex
	players map[int64]*model.PlayerState
}

func NewMemory() *MemoryStore {
	return &MemoryStore{players: make(map[int64]*model.PlayerState)}
}

func (s *MemoryStore) Load(_ context.Context, userID int64) (*model.PlayerState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.players[userID]
	if !ok {
		return nil, nil
	}
	return clonePlayer(p), nil
}

func (s *MemoryStore) Save(_ context.Context, p *model.PlayerState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.players[p.UserID] = clonePlayer(p)
	return nil
}

func (s *MemoryStore) LoadAll(_ context.Context) ([]*model.PlayerState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*model.PlayerState, 0, len(s.players))
	for _, p := range s.players {
		out = append(out, clonePlayer(p))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UserID < out[j].UserID })
	return out, nil
}

func (s *MemoryStore) SaveAll(_ context.Context, players []*model.PlayerState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range players {
		s.players[p.UserID] = clonePlayer(p)
	}
	return nil
}

func (s *MemoryStore) Close() error { return nil }
