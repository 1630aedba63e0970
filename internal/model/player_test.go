package model

import (
	"encoding/json"
	"testing"
	"time"
)

func TestNewPlayerStateDefaults(t *testing.T) {
	p := NewPlayerState(42, "Wooden Rod", 1000)

	if p.Coins != 1000 {
		t.Errorf("coins = %d, want 1000", p.Coins)
	}
	if p.Level != 1 || p.Exp != 0 {
		t.Errorf("level/exp = %d/%d, want 1/0", p.Level, p.Exp)
	}
	if p.Fishing.RodName != "Wooden Rod" || p.Fishing.BaitCount != 10 {
		t.Errorf("fishing = %+v", p.Fishing)
	}
	d := p.Dungeon
	if d.HP != 100 || d.MaxHP != 100 || d.Attack != 20 || d.Defense != 10 {
		t.Errorf("dungeon stats = %+v", d)
	}
	if d.CurrentFloor != 1 || d.MaxFloor != 1 {
		t.Errorf("floors = %d/%d, want 1/1", d.CurrentFloor, d.MaxFloor)
	}
}

func TestAddCatchTrimsLog(t *testing.T) {
	p := NewPlayerState(1, "Wooden Rod", 0)
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < CatchLogLimit+5; i++ {
		p.AddCatch("Carp", at)
	}
	p.AddCatch("Tuna", at)

	if len(p.Fishing.CaughtFish) != CatchLogLimit {
		t.Fatalf("log length = %d, want %d", len(p.Fishing.CaughtFish), CatchLogLimit)
	}
	if last := p.Fishing.CaughtFish[CatchLogLimit-1]; last != "Tuna" {
		t.Errorf("newest entry = %q, want Tuna", last)
	}
	if p.Fishing.TotalCaught != CatchLogLimit+6 {
		t.Errorf("total caught = %d, want %d", p.Fishing.TotalCaught, CatchLogLimit+6)
	}
	if p.Fishing.LastFishTime == nil || !p.Fishing.LastFishTime.Equal(at) {
		t.Errorf("last fish time = %v, want %v", p.Fishing.LastFishTime, at)
	}
}

func TestAddItemUniqueness(t *testing.T) {
	p := NewPlayerState(1, "Wooden Rod", 0)

	if !p.AddItem("Iron Sword", false) {
		t.Fatal("first add of a weapon should succeed")
	}
	if p.AddItem("Iron Sword", false) {
		t.Error("second add of a non-stackable item should be rejected")
	}
	if !p.AddItem("Small Potion", true) || !p.AddItem("Small Potion", true) {
		t.Fatal("stackable items should always add")
	}
	if got := p.ItemCount("Small Potion"); got != 2 {
		t.Errorf("potion count = %d, want 2", got)
	}
}

func TestRemoveItemTakesOneCopy(t *testing.T) {
	p := NewPlayerState(1, "Wooden Rod", 0)
	p.AddItem("Small Potion", true)
	p.AddItem("Small Potion", true)

	if !p.RemoveItem("Small Potion") {
		t.Fatal("remove of an owned item should succeed")
	}
	if got := p.ItemCount("Small Potion"); got != 1 {
		t.Errorf("count after remove = %d, want 1", got)
	}
	if p.RemoveItem("Excalibur") {
		t.Error("remove of an unowned item should fail")
	}
}

func TestApplyHealClampsToMax(t *testing.T) {
	p := NewPlayerState(1, "Wooden Rod", 0)
	p.Dungeon.HP = 80

	if restored := p.ApplyHeal(50); restored != 20 {
		t.Errorf("restored = %d, want 20", restored)
	}
	if p.Dungeon.HP != p.Dungeon.MaxHP {
		t.Errorf("hp = %d, want %d", p.Dungeon.HP, p.Dungeon.MaxHP)
	}
}

func TestCompanionLevelDefaultsToOne(t *testing.T) {
	p := NewPlayerState(1, "Wooden Rod", 0)

	if got := p.CompanionLevel("Goldfish"); got != 1 {
		t.Errorf("level of unknown companion = %d, want 1", got)
	}
	p.AddCompanion("Goldfish")
	if !p.HasCompanion("Goldfish") {
		t.Fatal("companion not registered")
	}
	p.Companions.Levels["Goldfish"] = 3
	if got := p.CompanionLevel("Goldfish"); got != 3 {
		t.Errorf("level = %d, want 3", got)
	}
}

func TestAddCardAlbumIsUnique(t *testing.T) {
	p := NewPlayerState(1, "Wooden Rod", 0)

	if !p.AddCard("Common Card") {
		t.Fatal("first pull of a card should be new")
	}
	if p.AddCard("Common Card") {
		t.Error("duplicate pull should not be new")
	}
	p.AddCard("Rare Card")

	if len(p.Gacha.Cards) != 2 {
		t.Errorf("album = %v, want 2 unique cards", p.Gacha.Cards)
	}
}

func TestSaveFormatFieldNames(t *testing.T) {
	p := NewPlayerState(7, "Wooden Rod", 1000)
	raw, err := json.Marshal(p)
	if err != nil {
		t.Fatal(err)
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"user_id", "coins", "level", "exp", "fishing", "pets", "dungeon", "rng"} {
		if _, ok := doc[key]; !ok {
			t.Errorf("save document missing %q", key)
		}
	}

	var fishing map[string]json.RawMessage
	if err := json.Unmarshal(doc["fishing"], &fishing); err != nil {
		t.Fatal(err)
	}
	if _, ok := fishing["rod_name"]; !ok {
		t.Error("fishing block missing rod_name")
	}
}

func TestNormalizeRepairsOldSaves(t *testing.T) {
	p := &PlayerState{UserID: 1}
	p.Normalize()

	if p.Level != 1 {
		t.Errorf("level = %d, want 1", p.Level)
	}
	if p.Dungeon.CurrentFloor != 1 || p.Dungeon.MaxFloor != 1 {
		t.Errorf("floors = %d/%d, want 1/1", p.Dungeon.CurrentFloor, p.Dungeon.MaxFloor)
	}
	if p.Companions.Levels == nil {
		t.Error("companion levels map not initialized")
	}
}
