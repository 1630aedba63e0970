// Package data holds the static definitions catalog: fish, rods,
// companions, monsters, equipment and gacha cards. Tables are fixed Go
// literals so game balance is identical across runs; Load validates them
// once at startup and builds the lookup indexes. The catalog is immutable
// after Load returns.
package data

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// ErrInvalidDefinitions marks a malformed catalog. It is fatal: callers
// must abort startup, it is never returned per-action.
var ErrInvalidDefinitions = errors.New("invalid definitions catalog")

// Load builds lookup tables and validates every definition.
// Must be called once before any accessor is used.
func Load() error {
	var problems []string

	problems = append(problems, loadFish()...)
	problems = append(problems, loadRods()...)
	problems = append(problems, loadCompanions()...)
	problems = append(problems, validateMonsters()...)
	problems = append(problems, loadEquipment()...)
	problems = append(problems, loadCards()...)
	problems = append(problems, validateNameUniqueness()...)

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidDefinitions, strings.Join(problems, "; "))
	}

	slog.Info("definitions catalog loaded",
		"fish", len(FishTable),
		"rods", len(RodTable),
		"companions", len(CompanionTable),
		"equipment", len(EquipmentTable),
		"cards", len(CardTable))
	return nil
}

func loadFish() []string {
	var problems []string
	if len(fishDefs) == 0 {
		return []string{"fish table is empty"}
	}

	FishTable = make(map[string]*FishDef, len(fishDefs))
	fishByRarity = make(map[Rarity][]*FishDef)
	for i := range fishDefs {
		f := &fishDefs[i]
		if f.Coins <= 0 || f.Exp <= 0 {
			problems = append(problems, fmt.Sprintf("fish %q must yield positive coins and exp", f.Name))
		}
		if !isFishingTier(f.Rarity) {
			problems = append(problems, fmt.Sprintf("fish %q has non-fishing rarity %q", f.Name, f.Rarity))
		}
		FishTable[f.Name] = f
		fishByRarity[f.Rarity] = append(fishByRarity[f.Rarity], f)
	}
	if len(fishByRarity[CommonestFishingTier]) == 0 {
		problems = append(problems, "no common fish: the sampler fallback tier would be empty")
	}
	return problems
}

func loadRods() []string {
	var problems []string
	if len(rodDefs) == 0 {
		return []string{"rod table is empty"}
	}

	RodTable = make(map[string]*RodDef, len(rodDefs))
	rodIndex = make(map[string]int, len(rodDefs))
	prevCost := int64(-1)
	for i := range rodDefs {
		r := &rodDefs[i]
		if r.Cost < prevCost {
			problems = append(problems, fmt.Sprintf("rod %q breaks the ascending cost order", r.Name))
		}
		prevCost = r.Cost

		sum := 0.0
		for _, tier := range FishingTiers {
			rate, ok := r.CatchRates[tier]
			if !ok {
				problems = append(problems, fmt.Sprintf("rod %q is missing a %s catch rate", r.Name, tier))
				continue
			}
			if rate < 0 {
				problems = append(problems, fmt.Sprintf("rod %q has negative %s catch rate", r.Name, tier))
			}
			sum += rate
		}
		if sum > 100 {
			problems = append(problems, fmt.Sprintf("rod %q catch rates sum to %.2f (>100)", r.Name, sum))
		}
		problems = append(problems, validateEffects(fmt.Sprintf("rod %q", r.Name), r.Effects)...)

		RodTable[r.Name] = r
		rodIndex[r.Name] = i
	}
	if GetRod(BaseRodName) == nil {
		problems = append(problems, fmt.Sprintf("base rod %q is not in the catalog", BaseRodName))
	}
	return problems
}

func loadCompanions() []string {
	var problems []string
	CompanionTable = make(map[string]*CompanionDef, len(companionDefs))
	for i := range companionDefs {
		c := &companionDefs[i]
		if c.Cost <= 0 {
			problems = append(problems, fmt.Sprintf("companion %q must have a positive cost", c.Name))
		}
		if len(c.Effects) == 0 {
			problems = append(problems, fmt.Sprintf("companion %q has no effects", c.Name))
		}
		problems = append(problems, validateEffects(fmt.Sprintf("companion %q", c.Name), c.Effects)...)
		CompanionTable[c.Name] = c
	}
	return problems
}

func validateMonsters() []string {
	var problems []string
	for floor := int32(1); floor <= MaxDungeonFloor; floor++ {
		set := monsterDefs[floor]
		if len(set) == 0 {
			problems = append(problems, fmt.Sprintf("floor %d has no monsters", floor))
			continue
		}
		for _, m := range set {
			if m.HP <= 0 || m.Attack <= 0 {
				problems = append(problems, fmt.Sprintf("monster %q must have positive hp and attack", m.Name))
			}
		}
	}
	return problems
}

func loadEquipment() []string {
	var problems []string
	if len(equipmentDefs) == 0 {
		return []string{"equipment table is empty"}
	}

	EquipmentTable = make(map[string]*EquipmentDef, len(equipmentDefs))
	equipmentByCategory = make(map[EquipmentCategory][]*EquipmentDef)
	for i := range equipmentDefs {
		e := &equipmentDefs[i]
		if e.Cost <= 0 {
			problems = append(problems, fmt.Sprintf("item %q must have a positive cost", e.Name))
		}
		if e.Category == CategoryPotion && e.Heal <= 0 {
			problems = append(problems, fmt.Sprintf("potion %q must heal a positive amount", e.Name))
		}
		EquipmentTable[e.Name] = e
		equipmentByCategory[e.Category] = append(equipmentByCategory[e.Category], e)
	}
	for _, cat := range []EquipmentCategory{CategoryWeapon, CategoryArmor, CategoryAccessory, CategoryPotion} {
		if len(equipmentByCategory[cat]) == 0 {
			problems = append(problems, fmt.Sprintf("no %s items: the loot roll for that category would be empty", cat))
		}
	}
	return problems
}

func loadCards() []string {
	var problems []string
	if len(cardDefs) == 0 {
		return []string{"card table is empty"}
	}

	CardTable = make(map[string]*CardDef, len(cardDefs))
	prev := 0.0
	for i := range cardDefs {
		c := &cardDefs[i]
		if c.Threshold <= prev {
			problems = append(problems, fmt.Sprintf("card %q threshold %.3f is not strictly increasing", c.Name, c.Threshold))
		}
		prev = c.Threshold
		if c.Coins <= 0 {
			problems = append(problems, fmt.Sprintf("card %q must reward positive coins", c.Name))
		}
		CardTable[c.Name] = c
	}
	if last := cardDefs[len(cardDefs)-1].Threshold; last != CardDrawSpace {
		problems = append(problems, fmt.Sprintf("card thresholds end at %.3f, must cover the full draw space %.0f", last, CardDrawSpace))
	}
	return problems
}

// validateNameUniqueness rejects a name appearing in more than one of the
// purchasable tables: the shop resolves categories by name.
func validateNameUniqueness() []string {
	var problems []string
	seen := make(map[string]string)
	note := func(name, table string) {
		if other, dup := seen[name]; dup {
			problems = append(problems, fmt.Sprintf("name %q appears in both %s and %s tables", name, other, table))
			return
		}
		seen[name] = table
	}
	for name := range EquipmentTable {
		note(name, "equipment")
	}
	for name := range RodTable {
		note(name, "rod")
	}
	for name := range CompanionTable {
		note(name, "companion")
	}
	return problems
}

func validateEffects(owner string, effects Effects) []string {
	var problems []string
	for kind, magnitude := range effects {
		if magnitude <= 0 || magnitude > 1 {
			problems = append(problems, fmt.Sprintf("%s effect %s magnitude %.3f out of (0,1]", owner, kind, magnitude))
		}
	}
	return problems
}

func isFishingTier(r Rarity) bool {
	for _, tier := range FishingTiers {
		if tier == r {
			return true
		}
	}
	return false
}
