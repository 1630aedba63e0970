// Package model defines the persistent player state. The JSON field
// names are the on-disk save format, so renaming a tag is a breaking
// change for existing saves.
package model

import (
	"slices"
	"time"
)

// CatchLogLimit bounds the retained catch history per player.
const CatchLogLimit = 20

// PlayerState is everything the engine knows about one player. Coins,
// exp and level are shared across every game mode.
type PlayerState struct {
	UserID     int64          `json:"user_id"`
	Coins      int64          `json:"coins"`
	Level      int32          `json:"level"`
	Exp        int64          `json:"exp"`
	Fishing    FishingState   `json:"fishing"`
	Companions CompanionState `json:"pets"`
	Dungeon    DungeonState   `json:"dungeon"`
	Gacha      GachaState     `json:"rng"`
}

// FishingState tracks the equipped rod, bait and catch history.
type FishingState struct {
	RodName      string     `json:"rod_name"`
	BaitCount    int32      `json:"bait_count"`
	CaughtFish   []string   `json:"caught_fish"`
	TotalCaught  int64      `json:"total_caught"`
	LastFishTime *time.Time `json:"last_fish_time"`
}

// CompanionState tracks owned companions, at most one of which is active.
type CompanionState struct {
	Owned  []string         `json:"owned"`
	Active string           `json:"active,omitempty"`
	Levels map[string]int32 `json:"pet_level"`
}

// DungeonState tracks combat stats, the explored floor and the item
// inventory. Non-stackable items appear in Inventory at most once.
type DungeonState struct {
	CurrentFloor      int32    `json:"current_floor"`
	MaxFloor          int32    `json:"max_floor"`
	HP                int32    `json:"hp"`
	MaxHP             int32    `json:"max_hp"`
	Attack            int32    `json:"attack"`
	Defense           int32    `json:"defense"`
	Inventory         []string `json:"inventory"`
	EquippedWeapon    string   `json:"equipped_weapon,omitempty"`
	EquippedArmor     string   `json:"equipped_armor,omitempty"`
	EquippedAccessory string   `json:"equipped_accessory,omitempty"`
}

// GachaState tracks chance-game counters and the card collection.
type GachaState struct {
	SlotsPlayed    int64      `json:"slots_played"`
	DiceWins       int64      `json:"dice_wins"`
	JackpotsWon    int64      `json:"jackpot_won"`
	LastDailyBonus *time.Time `json:"last_daily_bonus"`
	CardsOpened    int64      `json:"cards_opened"`
	Cards          []string   `json:"cards"`
}

// NewPlayerState returns a fresh player with the starter loadout.
func NewPlayerState(userID int64, startingRod string, startingCoins int64) *PlayerState {
	return &PlayerState{
		UserID: userID,
		Coins:  startingCoins,
		Level:  1,
		Exp:    0,
		Fishing: FishingState{
			RodName:   startingRod,
			BaitCount: 10,
		},
		Companions: CompanionState{
			Levels: make(map[string]int32),
		},
		Dungeon: DungeonState{
			CurrentFloor: 1,
			MaxFloor:     1,
			HP:           100,
			MaxHP:        100,
			Attack:       20,
			Defense:      10,
		},
	}
}

// AddCatch records a caught fish, keeping only the most recent
// CatchLogLimit entries.
func (p *PlayerState) AddCatch(fishName string, at time.Time) {
	p.Fishing.CaughtFish = append(p.Fishing.CaughtFish, fishName)
	if n := len(p.Fishing.CaughtFish); n > CatchLogLimit {
		p.Fishing.CaughtFish = p.Fishing.CaughtFish[n-CatchLogLimit:]
	}
	p.Fishing.TotalCaught++
	p.Fishing.LastFishTime = &at
}

// HasItem reports whether name is in the dungeon inventory.
func (p *PlayerState) HasItem(name string) bool {
	return slices.Contains(p.Dungeon.Inventory, name)
}

// ItemCount returns how many copies of name the inventory holds.
func (p *PlayerState) ItemCount(name string) int {
	n := 0
	for _, item := range p.Dungeon.Inventory {
		if item == name {
			n++
		}
	}
	return n
}

// AddItem puts an item into the dungeon inventory. Non-stackable items
// are kept unique: adding an owned one is a no-op and returns false.
func (p *PlayerState) AddItem(name string, stackable bool) bool {
	if !stackable && p.HasItem(name) {
		return false
	}
	p.Dungeon.Inventory = append(p.Dungeon.Inventory, name)
	return true
}

// RemoveItem removes one copy of name from the inventory and reports
// whether a copy was found.
func (p *PlayerState) RemoveItem(name string) bool {
	i := slices.Index(p.Dungeon.Inventory, name)
	if i < 0 {
		return false
	}
	p.Dungeon.Inventory = slices.Delete(p.Dungeon.Inventory, i, i+1)
	return true
}

// ApplyHeal raises HP by amount, clamped to MaxHP, and returns the
// amount actually restored.
func (p *PlayerState) ApplyHeal(amount int32) int32 {
	before := p.Dungeon.HP
	p.Dungeon.HP += amount
	if p.Dungeon.HP > p.Dungeon.MaxHP {
		p.Dungeon.HP = p.Dungeon.MaxHP
	}
	return p.Dungeon.HP - before
}

// HasCompanion reports whether the player owns the named companion.
func (p *PlayerState) HasCompanion(name string) bool {
	return slices.Contains(p.Companions.Owned, name)
}

// AddCompanion registers a newly bought companion at level 1.
func (p *PlayerState) AddCompanion(name string) {
	p.Companions.Owned = append(p.Companions.Owned, name)
	if p.Companions.Levels == nil {
		p.Companions.Levels = make(map[string]int32)
	}
	p.Companions.Levels[name] = 1
}

// CompanionLevel returns the level of an owned companion, minimum 1.
func (p *PlayerState) CompanionLevel(name string) int32 {
	if lvl, ok := p.Companions.Levels[name]; ok && lvl > 0 {
		return lvl
	}
	return 1
}

// AddCard adds a drawn card to the album. The album is unique per card
// name; duplicate pulls still pay coins but return false here.
func (p *PlayerState) AddCard(name string) bool {
	if slices.Contains(p.Gacha.Cards, name) {
		return false
	}
	p.Gacha.Cards = append(p.Gacha.Cards, name)
	return true
}

// Normalize repairs nil collections after loading an old save.
func (p *PlayerState) Normalize() {
	if p.Companions.Levels == nil {
		p.Companions.Levels = make(map[string]int32)
	}
	if p.Dungeon.CurrentFloor < 1 {
		p.Dungeon.CurrentFloor = 1
	}
	if p.Dungeon.MaxFloor < p.Dungeon.CurrentFloor {
		p.Dungeon.MaxFloor = p.Dungeon.CurrentFloor
	}
	if p.Level < 1 {
		p.Level = 1
	}
}
