// Package rarity implements the weighted tier sampler used by fishing.
package rarity

import (
	"github.com/dtrung95/gamebot/internal/data"
	"github.com/dtrung95/gamebot/internal/game/rng"
)

// boostedTiers are the tiers a rare-rate boost multiplies.
var boostedTiers = [3]data.Rarity{data.RarityRare, data.RarityEpic, data.RarityLegendary}

// Sample picks a tier from percentage rates, rarest first. A boost > 0
// multiplies the rare, epic and legendary rates by (1 + boost); if the
// boosted total exceeds 100 the whole distribution is rescaled back to
// 100, which taxes the common tiers in favor of the boosted ones.
// Draws past the covered range fall through to the commonest tier.
func Sample(rates map[data.Rarity]float64, boost float64, src rng.Source) data.Rarity {
	working := make(map[data.Rarity]float64, len(rates))
	for tier, rate := range rates {
		working[tier] = rate
	}

	if boost > 0 {
		for _, tier := range boostedTiers {
			working[tier] *= 1 + boost
		}
	}

	total := 0.0
	for _, rate := range working {
		total += rate
	}
	if total > 100 {
		for tier := range working {
			working[tier] = working[tier] / total * 100
		}
	}

	draw := src.Float64() * 100
	cumulative := 0.0
	for _, tier := range data.FishingTiers {
		cumulative += working[tier]
		if draw < cumulative {
			return tier
		}
	}
	return data.CommonestFishingTier
}

// PickFish selects a uniform fish of the given tier. Tiers with no fish
// fall back to the common pool.
func PickFish(tier data.Rarity, src rng.Source) *data.FishDef {
	pool := data.FishByRarity(tier)
	if len(pool) == 0 {
		pool = data.FishByRarity(data.CommonestFishingTier)
	}
	return pool[src.IntN(len(pool))]
}
