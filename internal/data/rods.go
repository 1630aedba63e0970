package data

// RodDef describes one fishing rod.
type RodDef struct {
	Name       string
	Tier       int32
	Cost       int64
	Effects    Effects
	CatchRates map[Rarity]float64 // percentages, sum <= 100
}

// BaseRodName is the starter rod every new player owns.
const BaseRodName = "Wooden Rod"

// rodDefs is the fixed rod catalog, ordered cheapest → most expensive.
// Catch rates follow the tier curves: common 80-5t, uncommon 15+2t,
// rare 3+1.5t, epic 1+0.5t, legendary 0.1+0.1t.
var rodDefs = []RodDef{
	{
		Name: "Wooden Rod", Tier: 1, Cost: 0,
		Effects:    Effects{},
		CatchRates: tierRates(1),
	},
	{
		Name: "Bamboo Rod", Tier: 1, Cost: 150,
		Effects:    Effects{EffectReduceBait: 0.11},
		CatchRates: tierRates(1),
	},
	{
		Name: "Iron Rod", Tier: 2, Cost: 400,
		Effects:    Effects{EffectIncreaseCoins: 0.24},
		CatchRates: tierRates(2),
	},
	{
		Name: "Steel Rod", Tier: 2, Cost: 1000,
		Effects:    Effects{EffectIncreaseExp: 0.36},
		CatchRates: tierRates(2),
	},
	{
		Name: "Titanium Rod", Tier: 3, Cost: 2500,
		Effects:    Effects{EffectIncreaseRareRate: 0.13, EffectIncreaseCoins: 0.26},
		CatchRates: tierRates(3),
	},
	{
		Name: "Carbon Rod", Tier: 3, Cost: 6000,
		Effects:    Effects{EffectIncreaseExp: 0.39, EffectReduceBait: 0.13},
		CatchRates: tierRates(3),
	},
	{
		Name: "Diamond Rod", Tier: 4, Cost: 15000,
		Effects:    Effects{EffectIncreaseRareRate: 0.14, EffectDoubleCatch: 0.07},
		CatchRates: tierRates(4),
	},
	{
		Name: "Platinum Rod", Tier: 4, Cost: 40000,
		Effects:    Effects{EffectIncreaseCoins: 0.28, EffectIncreaseExp: 0.42, EffectReduceBait: 0.14},
		CatchRates: tierRates(4),
	},
	{
		Name: "Mithril Rod", Tier: 5, Cost: 100000,
		Effects:    Effects{EffectIncreaseRareRate: 0.15, EffectIncreaseCoins: 0.3, EffectDoubleCatch: 0.075},
		CatchRates: tierRates(5),
	},
	{
		Name: "Dragon Rod", Tier: 5, Cost: 250000,
		Effects:    Effects{EffectIncreaseRareRate: 0.15, EffectIncreaseExp: 0.45, EffectDoubleCatch: 0.08},
		CatchRates: tierRates(5),
	},
}

// tierRates builds the catch-rate table for a rod tier.
func tierRates(tier int32) map[Rarity]float64 {
	t := float64(tier)
	common := 80 - t*5
	if common < 20 {
		common = 20
	}
	uncommon := 15 + t*2
	if uncommon > 40 {
		uncommon = 40
	}
	rare := 3 + t*1.5
	if rare > 25 {
		rare = 25
	}
	epic := 1 + t*0.5
	if epic > 10 {
		epic = 10
	}
	legendary := 0.1 + t*0.1
	if legendary > 5 {
		legendary = 5
	}
	return map[Rarity]float64{
		RarityCommon:    common,
		RarityUncommon:  uncommon,
		RarityRare:      rare,
		RarityEpic:      epic,
		RarityLegendary: legendary,
	}
}

// RodTable indexes rods by name. Built by Load.
var RodTable map[string]*RodDef

// rodIndex maps rod name → position in the upgrade order. Built by Load.
var rodIndex map[string]int

// GetRod returns the rod definition for name, or nil.
func GetRod(name string) *RodDef {
	if RodTable == nil {
		return nil
	}
	return RodTable[name]
}

// Rods returns all rods in upgrade order.
func Rods() []RodDef {
	return rodDefs
}

// RodIndex returns the position of a rod in the upgrade order,
// or -1 if the rod is unknown.
func RodIndex(name string) int {
	if idx, ok := rodIndex[name]; ok {
		return idx
	}
	return -1
}
