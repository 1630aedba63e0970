// Package dungeon resolves turn-based encounters between a player's
// aggregated stats and a monster.
package dungeon

import (
	"fmt"

	"github.com/dtrung95/gamebot/internal/data"
	"github.com/dtrung95/gamebot/internal/game/rng"
	"github.com/dtrung95/gamebot/internal/model"
)

// MaxTurns bounds the combat loop. A fight still unresolved at the cap
// ends with the standing HP values, which reads as a win for the player
// since only death ends it early.
const MaxTurns = 20

// Outcome is the terminal state of an encounter.
type Outcome int

const (
	Victory Outcome = iota
	Defeat
)

func (o Outcome) String() string {
	if o == Defeat {
		return "defeat"
	}
	return "victory"
}

// Encounter is one fight's input: the monster and the player's
// effective stats after equipment.
type Encounter struct {
	Monster  data.MonsterDef
	PlayerHP int32
	Attack   int32
	Defense  int32
}

// Result is the resolved fight. PlayerHP may be negative on defeat;
// callers decide what respawn means.
type Result struct {
	Outcome   Outcome
	PlayerHP  int32
	MonsterHP int32
	Turns     int
	Log       []string
}

// Resolve runs the turn loop. Each turn the player strikes for
// max(1, attack - rand[0,5]); if the monster survives it strikes back
// for max(1, monsterAttack - defense + rand[-3,3]). The player always
// swings first, so a lethal first strike takes no damage at all.
func Resolve(e Encounter, src rng.Source) Result {
	monsterHP := e.Monster.HP
	playerHP := e.PlayerHP
	log := []string{fmt.Sprintf("engaged %s (%d HP)", e.Monster.Name, e.Monster.HP)}

	turns := 0
	for turn := 1; monsterHP > 0 && playerHP > 0; turn++ {
		turns = turn

		dmg := e.Attack - int32(src.IntN(6))
		if dmg < 1 {
			dmg = 1
		}
		monsterHP -= dmg
		log = append(log, fmt.Sprintf("turn %d: hit %s for %d", turn, e.Monster.Name, dmg))
		if monsterHP <= 0 {
			break
		}

		mdmg := e.Monster.Attack - e.Defense + int32(rng.Between(src, -3, 3))
		if mdmg < 1 {
			mdmg = 1
		}
		playerHP -= mdmg
		log = append(log, fmt.Sprintf("turn %d: %s hit back for %d", turn, e.Monster.Name, mdmg))

		if turn >= MaxTurns {
			break
		}
	}

	res := Result{PlayerHP: playerHP, MonsterHP: monsterHP, Turns: turns, Log: log}
	if playerHP <= 0 {
		res.Outcome = Defeat
	} else {
		res.Outcome = Victory
	}
	return res
}

// Aggregate folds equipped weapon, armor and accessory bonuses into the
// player's base attack and defense. Unknown equipped names count as
// nothing rather than failing the fight.
func Aggregate(p *model.PlayerState) (attack, defense int32) {
	attack = p.Dungeon.Attack
	defense = p.Dungeon.Defense

	if w := data.GetEquipment(p.Dungeon.EquippedWeapon); w != nil {
		attack += w.Attack
	}
	if a := data.GetEquipment(p.Dungeon.EquippedArmor); a != nil {
		defense += a.Defense
	}
	if acc := data.GetEquipment(p.Dungeon.EquippedAccessory); acc != nil {
		attack += acc.Attack
		defense += acc.Defense
	}
	return attack, defense
}

// RollLoot rolls the post-victory drop: 30% chance of any loot, then
// 40/30/20/10 across weapon, armor, accessory and potion, with a
// uniform pick inside the category. Returns nil for no drop.
func RollLoot(src rng.Source) *data.EquipmentDef {
	if src.Float64() >= 0.3 {
		return nil
	}

	var cat data.EquipmentCategory
	switch roll := src.Float64(); {
	case roll < 0.4:
		cat = data.CategoryWeapon
	case roll < 0.7:
		cat = data.CategoryArmor
	case roll < 0.9:
		cat = data.CategoryAccessory
	default:
		cat = data.CategoryPotion
	}

	pool := data.EquipmentByCategory(cat)
	return pool[src.IntN(len(pool))]
}

// RollFloorAdvance rolls the 20% chance to unlock the next floor.
// Nothing happens on the deepest floor.
func RollFloorAdvance(p *model.PlayerState, src rng.Source) bool {
	if p.Dungeon.CurrentFloor >= data.MaxDungeonFloor {
		return false
	}
	if src.Float64() >= 0.2 {
		return false
	}
	p.Dungeon.CurrentFloor++
	if p.Dungeon.MaxFloor < p.Dungeon.CurrentFloor {
		p.Dungeon.MaxFloor = p.Dungeon.CurrentFloor
	}
	return true
}

// PickMonster selects a uniform monster from the player's floor,
// clamped to the implemented range.
func PickMonster(floor int32, src rng.Source) data.MonsterDef {
	set := data.MonstersForFloor(floor)
	return set[src.IntN(len(set))]
}
