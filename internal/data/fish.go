package data

// FishDef describes one catchable fish.
type FishDef struct {
	Name   string
	Rarity Rarity
	Coins  int64
	Exp    int64
}

// fishDefs is the fixed fish catalog. Values are versioned literals so
// balance is identical across runs and testable (no generation at startup).
var fishDefs = []FishDef{
	// common
	{Name: "Perch", Rarity: RarityCommon, Coins: 8, Exp: 4},
	{Name: "Carp", Rarity: RarityCommon, Coins: 10, Exp: 5},
	{Name: "Bream", Rarity: RarityCommon, Coins: 7, Exp: 3},
	{Name: "Crucian", Rarity: RarityCommon, Coins: 9, Exp: 4},
	{Name: "Gudgeon", Rarity: RarityCommon, Coins: 5, Exp: 3},
	{Name: "Tilapia", Rarity: RarityCommon, Coins: 12, Exp: 6},
	{Name: "Anchovy", Rarity: RarityCommon, Coins: 6, Exp: 3},
	{Name: "Sardine", Rarity: RarityCommon, Coins: 11, Exp: 5},
	{Name: "Herring", Rarity: RarityCommon, Coins: 13, Exp: 6},
	{Name: "Mudskipper", Rarity: RarityCommon, Coins: 14, Exp: 7},
	{Name: "Goby", Rarity: RarityCommon, Coins: 16, Exp: 8},
	{Name: "Catfish", Rarity: RarityCommon, Coins: 20, Exp: 10},

	// uncommon
	{Name: "Mackerel", Rarity: RarityUncommon, Coins: 28, Exp: 11},
	{Name: "Snakehead", Rarity: RarityUncommon, Coins: 32, Exp: 12},
	{Name: "Mullet", Rarity: RarityUncommon, Coins: 35, Exp: 13},
	{Name: "Pomfret", Rarity: RarityUncommon, Coins: 40, Exp: 15},
	{Name: "Grouper", Rarity: RarityUncommon, Coins: 45, Exp: 16},
	{Name: "Snapper", Rarity: RarityUncommon, Coins: 48, Exp: 17},
	{Name: "Sea Bass", Rarity: RarityUncommon, Coins: 52, Exp: 18},
	{Name: "Barramundi", Rarity: RarityUncommon, Coins: 55, Exp: 19},
	{Name: "Eel", Rarity: RarityUncommon, Coins: 58, Exp: 20},
	{Name: "Flounder", Rarity: RarityUncommon, Coins: 60, Exp: 20},

	// rare
	{Name: "Tuna", Rarity: RarityRare, Coins: 90, Exp: 22},
	{Name: "Sturgeon", Rarity: RarityRare, Coins: 110, Exp: 25},
	{Name: "Salmon", Rarity: RarityRare, Coins: 120, Exp: 28},
	{Name: "Stingray", Rarity: RarityRare, Coins: 140, Exp: 30},
	{Name: "Swordfish", Rarity: RarityRare, Coins: 160, Exp: 33},
	{Name: "Marlin", Rarity: RarityRare, Coins: 175, Exp: 36},
	{Name: "Moonfish", Rarity: RarityRare, Coins: 190, Exp: 38},
	{Name: "Giant Ray", Rarity: RarityRare, Coins: 200, Exp: 40},

	// epic
	{Name: "Hammerhead Shark", Rarity: RarityEpic, Coins: 300, Exp: 60},
	{Name: "Whale Shark", Rarity: RarityEpic, Coins: 420, Exp: 80},
	{Name: "Giant Squid", Rarity: RarityEpic, Coins: 520, Exp: 100},
	{Name: "Manta King", Rarity: RarityEpic, Coins: 640, Exp: 120},
	{Name: "Abyssal Octopus", Rarity: RarityEpic, Coins: 720, Exp: 135},
	{Name: "Leviathan Pup", Rarity: RarityEpic, Coins: 800, Exp: 150},

	// legendary
	{Name: "Golden Koi", Rarity: RarityLegendary, Coins: 1200, Exp: 220},
	{Name: "Dragon Fish", Rarity: RarityLegendary, Coins: 2000, Exp: 300},
	{Name: "Phoenix Fish", Rarity: RarityLegendary, Coins: 3000, Exp: 380},
	{Name: "Unicorn Fish", Rarity: RarityLegendary, Coins: 4000, Exp: 450},
	{Name: "Divine Dragon Fish", Rarity: RarityLegendary, Coins: 5000, Exp: 500},
}

// FishTable indexes fish by name. Built by Load.
var FishTable map[string]*FishDef

// fishByRarity groups fish names per tier. Built by Load.
var fishByRarity map[Rarity][]*FishDef

// GetFish returns the fish definition for name, or nil.
func GetFish(name string) *FishDef {
	if FishTable == nil {
		return nil
	}
	return FishTable[name]
}

// FishByRarity returns all fish of the given tier (may be empty).
func FishByRarity(r Rarity) []*FishDef {
	if fishByRarity == nil {
		return nil
	}
	return fishByRarity[r]
}
