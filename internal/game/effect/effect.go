// Package effect applies rod and companion bonuses to fishing rewards.
package effect

import (
	"github.com/dtrung95/gamebot/internal/data"
	"github.com/dtrung95/gamebot/internal/game/rng"
)

// Chain is the resolved modifier stack for one catch: the equipped rod
// first, then the active companion. Companion magnitudes are scaled by
// level before the chain is built, rod magnitudes are fixed.
type Chain struct {
	rod       data.Effects
	companion data.Effects
}

// New builds a chain. companion may be nil when no companion is active.
// Companion magnitudes grow 10% per level above 1.
func New(rod *data.RodDef, companion *data.CompanionDef, companionLevel int32) Chain {
	c := Chain{rod: rod.Effects}
	if companion == nil {
		return c
	}
	if companionLevel < 1 {
		companionLevel = 1
	}
	scale := 1 + float64(companionLevel-1)*0.1
	scaled := make(data.Effects, len(companion.Effects))
	for kind, magnitude := range companion.Effects {
		scaled[kind] = magnitude * scale
	}
	c.companion = scaled
	return c
}

// ScaleCoins applies coin bonuses. Each stage multiplies and truncates
// separately, so two 10% bonuses on 10 coins yield 12, not 12.1.
func (c Chain) ScaleCoins(v int64) int64 {
	return c.scale(v, data.EffectIncreaseCoins)
}

// ScaleExp applies exp bonuses with the same staging as ScaleCoins.
func (c Chain) ScaleExp(v int64) int64 {
	return c.scale(v, data.EffectIncreaseExp)
}

func (c Chain) scale(v int64, kind data.EffectKind) int64 {
	if m, ok := c.rod[kind]; ok {
		v = int64(float64(v) * (1 + m))
	}
	if m, ok := c.companion[kind]; ok {
		v = int64(float64(v) * (1 + m))
	}
	return v
}

// RareBoost returns the companion's rare-rate boost, zero without one.
// Rod rare-rate effects do not feed the tier sampler; the rod's pull
// toward rare fish is already in its catch-rate table.
func (c Chain) RareBoost() float64 {
	return c.companion[data.EffectIncreaseRareRate]
}

// DoubleCatch rolls the rod's double-catch chance.
func (c Chain) DoubleCatch(src rng.Source) bool {
	return c.rodTrial(data.EffectDoubleCatch, src)
}

// FreeBait rolls the rod's chance to not consume bait.
func (c Chain) FreeBait(src rng.Source) bool {
	return c.rodTrial(data.EffectReduceBait, src)
}

func (c Chain) rodTrial(kind data.EffectKind, src rng.Source) bool {
	m, ok := c.rod[kind]
	if !ok {
		return false
	}
	return src.Float64() < m
}
