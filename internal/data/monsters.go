package data

// MonsterDef describes one dungeon monster.
type MonsterDef struct {
	Name   string
	HP     int32
	Attack int32
	Coins  int64
	Exp    int64
}

// MaxDungeonFloor is the deepest implemented floor. Requests for deeper
// floors are clamped here.
const MaxDungeonFloor int32 = 3

// monsterDefs groups monsters by floor.
var monsterDefs = map[int32][]MonsterDef{
	1: {
		{Name: "Goblin", HP: 30, Attack: 8, Coins: 20, Exp: 15},
		{Name: "Skeleton", HP: 40, Attack: 10, Coins: 30, Exp: 20},
		{Name: "Orc", HP: 50, Attack: 12, Coins: 40, Exp: 25},
	},
	2: {
		{Name: "Dark Knight", HP: 80, Attack: 18, Coins: 60, Exp: 40},
		{Name: "Shadow Beast", HP: 100, Attack: 20, Coins: 80, Exp: 50},
		{Name: "Fire Demon", HP: 120, Attack: 25, Coins: 100, Exp: 60},
	},
	3: {
		{Name: "Dragon", HP: 200, Attack: 35, Coins: 200, Exp: 100},
		{Name: "Lich King", HP: 250, Attack: 40, Coins: 300, Exp: 150},
		{Name: "Ancient Guardian", HP: 300, Attack: 45, Coins: 400, Exp: 200},
	},
}

// MonstersForFloor returns the monster set for a floor. Floors above
// MaxDungeonFloor clamp to the deepest set; floors below 1 clamp to 1.
func MonstersForFloor(floor int32) []MonsterDef {
	if floor > MaxDungeonFloor {
		floor = MaxDungeonFloor
	}
	if floor < 1 {
		floor = 1
	}
	return monsterDefs[floor]
}
