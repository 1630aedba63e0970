package data

// CompanionDef describes a purchasable fishing companion.
// Effect magnitudes scale with the companion's level when applied.
type CompanionDef struct {
	Name    string
	Rarity  Rarity
	Cost    int64
	Effects Effects
}

var companionDefs = []CompanionDef{
	{
		Name: "Goldfish", Rarity: RarityCommon, Cost: 500,
		Effects: Effects{EffectIncreaseCoins: 0.1},
	},
	{
		Name: "Dolphin", Rarity: RarityUncommon, Cost: 2000,
		Effects: Effects{EffectIncreaseExp: 0.15},
	},
	{
		Name: "Shark", Rarity: RarityRare, Cost: 10000,
		Effects: Effects{EffectIncreaseRareRate: 0.2},
	},
	{
		Name: "Whale", Rarity: RarityEpic, Cost: 50000,
		Effects: Effects{EffectIncreaseCoins: 0.25, EffectIncreaseExp: 0.25},
	},
	{
		Name: "Sea Dragon", Rarity: RarityLegendary, Cost: 200000,
		Effects: Effects{EffectIncreaseRareRate: 0.3, EffectIncreaseCoins: 0.3, EffectIncreaseExp: 0.3},
	},
	{
		Name: "Sea Spirit", Rarity: RarityMythic, Cost: 1000000,
		Effects: Effects{EffectIncreaseRareRate: 0.5, EffectIncreaseCoins: 0.5, EffectDoubleCatch: 0.1},
	},
}

// CompanionTable indexes companions by name. Built by Load.
var CompanionTable map[string]*CompanionDef

// GetCompanion returns the companion definition for name, or nil.
func GetCompanion(name string) *CompanionDef {
	if CompanionTable == nil {
		return nil
	}
	return CompanionTable[name]
}

// Companions returns all companions in catalog order.
func Companions() []CompanionDef {
	return companionDefs
}
