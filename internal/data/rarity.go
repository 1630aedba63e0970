package data

// Rarity is the tier bucket shared by fish, equipment, companions and cards.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
	RarityMythic    Rarity = "mythic"
	RarityDivine    Rarity = "divine"
	RarityUltraRare Rarity = "ultra_rare"
	RarityGod       Rarity = "god"
)

// FishingTiers lists the tiers a rod catch-rate table covers, ordered
// rarest → commonest. The rarity sampler walks this order, so any
// probability shortfall left after renormalization falls through to the
// commonest tier.
var FishingTiers = [5]Rarity{
	RarityLegendary,
	RarityEpic,
	RarityRare,
	RarityUncommon,
	RarityCommon,
}

// CommonestFishingTier is the fallback tier when a sampled tier has no
// catalog entries.
const CommonestFishingTier = RarityCommon

// EffectKind identifies a named modifier carried by rods and companions.
// A closed set: unknown keys cannot appear in the catalog.
type EffectKind int

const (
	EffectIncreaseRareRate EffectKind = iota // boosts non-common catch rates
	EffectIncreaseCoins                      // multiplies coin yield
	EffectIncreaseExp                        // multiplies exp yield
	EffectDoubleCatch                        // chance of a second catch
	EffectReduceBait                         // chance the action costs no bait
)

// String returns the stable catalog name of the effect.
func (k EffectKind) String() string {
	switch k {
	case EffectIncreaseRareRate:
		return "increase_rare_rate"
	case EffectIncreaseCoins:
		return "increase_coins"
	case EffectIncreaseExp:
		return "increase_exp"
	case EffectDoubleCatch:
		return "double_catch"
	case EffectReduceBait:
		return "reduce_bait"
	default:
		return "unknown"
	}
}

// Effects is a named effect → magnitude map attached to a rod or companion.
type Effects map[EffectKind]float64
