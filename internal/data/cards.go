package data

// CardDef describes one gacha card.
//
// Threshold is the cumulative upper bound of the card's slice of the
// [0, CardDrawSpace) sample space: a draw d selects the first card
// (rarest → commonest) with d < Threshold. The final card's threshold
// must equal CardDrawSpace so the partition is exhaustive.
type CardDef struct {
	Name      string
	Rarity    Rarity
	Threshold float64
	Coins     int64
}

// CardDrawSpace is the size of the gacha sample space. The draw uses
// a fractional value so sub-1-in-100000 odds stay representable.
const CardDrawSpace = 100000.0

// cardDefs is the fixed card catalog, ordered rarest → commonest.
// God Card is ~1 in 300,000, Ultra Rare ~1 in 100,000.
var cardDefs = []CardDef{
	{Name: "God Card", Rarity: RarityGod, Threshold: 0.033, Coins: 2000000},
	{Name: "Ultra Rare Card", Rarity: RarityUltraRare, Threshold: 0.133, Coins: 500000},
	{Name: "Divine Card", Rarity: RarityDivine, Threshold: 1.133, Coins: 100000},
	{Name: "Mythic Card", Rarity: RarityMythic, Threshold: 6.133, Coins: 20000},
	{Name: "Legendary Card", Rarity: RarityLegendary, Threshold: 56.133, Coins: 5000},
	{Name: "Epic Card", Rarity: RarityEpic, Threshold: 156.133, Coins: 1000},
	{Name: "Rare Card", Rarity: RarityRare, Threshold: 656.133, Coins: 200},
	{Name: "Uncommon Card", Rarity: RarityUncommon, Threshold: 2656.133, Coins: 50},
	{Name: "Common Card", Rarity: RarityCommon, Threshold: CardDrawSpace, Coins: 10},
}

// CardTable indexes cards by name. Built by Load.
var CardTable map[string]*CardDef

// GetCard returns the card definition for name, or nil.
func GetCard(name string) *CardDef {
	if CardTable == nil {
		return nil
	}
	return CardTable[name]
}

// Cards returns all cards ordered rarest → commonest.
func Cards() []CardDef {
	return cardDefs
}

// CardForDraw maps a draw in [0, CardDrawSpace) to its card.
// Draws at or beyond the sample space select the commonest card.
func CardForDraw(draw float64) *CardDef {
	for i := range cardDefs {
		if draw < cardDefs[i].Threshold {
			return &cardDefs[i]
		}
	}
	return &cardDefs[len(cardDefs)-1]
}
