package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"sync"

	"github.com/dtrung95/gamebot/internal/model"
)

// FileStore keeps every player in one JSON document on disk, keyed by
// user id. The whole document is rewritten on each save through a temp
// file and rename, so a crash mid-write never truncates existing saves.
type FileStore struct {
	path string

	mu      sync.Mutex
	players map[int64]*model.PlayerState
}

// OpenFile reads the save document at path, creating parent directories
// as needed. A missing file is an empty store.
func OpenFile(path string) (*FileStore, error) {
	s := &FileStore{
		path:    path,
		players: make(map[int64]*model.PlayerState),
	}

	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create save directory: %w", err)
		}
		slog.Info("no save file yet, starting empty", "path", path)
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read save file %s: %w", path, err)
	}

	var doc map[string]*model.PlayerState
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse save file %s: %w", path, err)
	}
	for key, p := range doc {
		id, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("save file %s: bad player key %q: %w", path, key, err)
		}
		p.UserID = id
		p.Normalize()
		s.players[id] = p
	}

	slog.Info("save file loaded", "path", path, "players", len(s.players))
	return s, nil
}

func (s *FileStore) Load(_ context.Context, userID int64) (*model.PlayerState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.players[userID]
	if !ok {
		return nil, nil
	}
	return clonePlayer(p), nil
}

func (s *FileStore) Save(_ context.Context, p *model.PlayerState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.players[p.UserID] = clonePlayer(p)
	return s.flushLocked()
}

func (s *FileStore) LoadAll(_ context.Context) ([]*model.PlayerState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*model.PlayerState, 0, len(s.players))
	for _, p := range s.players {
		out = append(out, clonePlayer(p))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UserID < out[j].UserID })
	return out, nil
}

func (s *FileStore) SaveAll(_ context.Context, players []*model.PlayerState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range players {
		s.players[p.UserID] = clonePlayer(p)
	}
	return s.flushLocked()
}

func (s *FileStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.flushLocked()
}

func (s *FileStore) flushLocked() error {
	doc := make(map[string]*model.PlayerState, len(s.players))
	for id, p := range s.players {
		doc[strconv.FormatInt(id, 10)] = p
	}

	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode save document: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("write save file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace save file: %w", err)
	}
	return nil
}

// clonePlayer deep-copies so engine mutations between Save calls never
// leak into the store's snapshot.
func clonePlayer(p *model.PlayerState) *model.PlayerState {
	cp := *p
	cp.Fishing.CaughtFish = append([]string(nil), p.Fishing.CaughtFish...)
	if p.Fishing.LastFishTime != nil {
		at := *p.Fishing.LastFishTime
		cp.Fishing.LastFishTime = &at
	}
	cp.Companions.Owned = append([]string(nil), p.Companions.Owned...)
	cp.Companions.Levels = make(map[string]int32, len(p.Companions.Levels))
	for name, lvl := range p.Companions.Levels {
		cp.Companions.Levels[name] = lvl
	}
	cp.Dungeon.Inventory = append([]string(nil), p.Dungeon.Inventory...)
	cp.Gacha.Cards = append([]string(nil), p.Gacha.Cards...)
	if p.Gacha.LastDailyBonus != nil {
		at := *p.Gacha.LastDailyBonus
		cp.Gacha.LastDailyBonus = &at
	}
	return &cp
}
