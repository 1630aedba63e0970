package effect

import (
	"testing"

	"github.com/dtrung95/gamebot/internal/data"
	"github.com/dtrung95/gamebot/internal/game/rng"
)

func TestMain(m *testing.M) {
	if err := data.Load(); err != nil {
		panic(err)
	}
	m.Run()
}

func TestScaleCoinsTruncatesEachStage(t *testing.T) {
	rod := &data.RodDef{
		Name:    "test rod",
		Effects: data.Effects{data.EffectIncreaseCoins: 0.24},
	}
	comp := &data.CompanionDef{
		Name:    "test companion",
		Effects: data.Effects{data.EffectIncreaseCoins: 0.1},
	}
	c := New(rod, comp, 1)

	// 10 * 1.24 = 12.4 -> 12, then 12 * 1.1 = 13.2 -> 13.
	if got := c.ScaleCoins(10); got != 13 {
		t.Errorf("ScaleCoins(10) = %d, want 13", got)
	}
	// A single 36.4% multiplier would give 13 too, so pin a case where
	// staged truncation differs: 7 * 1.24 = 8.68 -> 8, 8 * 1.1 = 8.8 -> 8.
	if got := c.ScaleCoins(7); got != 8 {
		t.Errorf("ScaleCoins(7) = %d, want 8", got)
	}
}

func TestScaleWithoutEffectsIsIdentity(t *testing.T) {
	c := New(data.GetRod("Wooden Rod"), nil, 1)
	if got := c.ScaleCoins(123); got != 123 {
		t.Errorf("ScaleCoins = %d, want 123", got)
	}
	if got := c.ScaleExp(55); got != 55 {
		t.Errorf("ScaleExp = %d, want 55", got)
	}
}

func TestCompanionLevelScalesMagnitude(t *testing.T) {
	comp := &data.CompanionDef{
		Name:    "test companion",
		Effects: data.Effects{data.EffectIncreaseCoins: 0.2},
	}
	rod := data.GetRod("Wooden Rod")

	// Level 6: 0.2 * (1 + 0.5) = 0.3, so 100 -> 130.
	c := New(rod, comp, 6)
	if got := c.ScaleCoins(100); got != 130 {
		t.Errorf("level 6 ScaleCoins(100) = %d, want 130", got)
	}
	// Level 0 is treated as level 1.
	c = New(rod, comp, 0)
	if got := c.ScaleCoins(100); got != 120 {
		t.Errorf("level 0 ScaleCoins(100) = %d, want 120", got)
	}
}

func TestRareBoostComesFromCompanionOnly(t *testing.T) {
	// Titanium Rod carries a rare-rate effect but it must not reach the
	// tier sampler; its rarity pull lives in the catch-rate table.
	c := New(data.GetRod("Titanium Rod"), nil, 1)
	if got := c.RareBoost(); got != 0 {
		t.Errorf("rod-only RareBoost = %v, want 0", got)
	}

	c = New(data.GetRod("Titanium Rod"), data.GetCompanion("Shark"), 1)
	if got := c.RareBoost(); got != 0.2 {
		t.Errorf("RareBoost with Shark = %v, want 0.2", got)
	}

	// Level 3 Shark: 0.2 * 1.2 = 0.24.
	c = New(data.GetRod("Titanium Rod"), data.GetCompanion("Shark"), 3)
	if got := c.RareBoost(); got < 0.239 || got > 0.241 {
		t.Errorf("level 3 RareBoost = %v, want ~0.24", got)
	}
}

func TestRodTrials(t *testing.T) {
	c := New(data.GetRod("Diamond Rod"), nil, 1) // double_catch 0.07

	if !c.DoubleCatch(&rng.Scripted{Floats: []float64{0.05}}) {
		t.Error("draw below the rod chance should trigger a double catch")
	}
	if c.DoubleCatch(&rng.Scripted{Floats: []float64{0.07}}) {
		t.Error("draw at the rod chance should not trigger")
	}
	if c.FreeBait(&rng.Scripted{Floats: []float64{0.0}}) {
		t.Error("rod without reduce_bait should never save bait")
	}

	c = New(data.GetRod("Bamboo Rod"), nil, 1) // reduce_bait 0.11
	if !c.FreeBait(&rng.Scripted{Floats: []float64{0.1}}) {
		t.Error("draw below the reduce_bait chance should save bait")
	}
}
