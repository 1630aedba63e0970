package dungeon

import (
	"testing"

	"github.com/dtrung95/gamebot/internal/data"
	"github.com/dtrung95/gamebot/internal/game/rng"
	"github.com/dtrung95/gamebot/internal/model"
)

func TestMain(m *testing.M) {
	if err := data.Load(); err != nil {
		panic(err)
	}
	m.Run()
}

func TestResolveFirstStrikeVictoryTakesNoDamage(t *testing.T) {
	e := Encounter{
		Monster:  data.MonsterDef{Name: "Goblin", HP: 50, Attack: 8},
		PlayerHP: 100,
		Attack:   1000,
		Defense:  10,
	}

	res := Resolve(e, rng.New(1))

	if res.Outcome != Victory {
		t.Fatalf("outcome = %s, want victory", res.Outcome)
	}
	if res.Turns != 1 {
		t.Errorf("turns = %d, want 1", res.Turns)
	}
	if res.PlayerHP != 100 {
		t.Errorf("player hp = %d, want untouched 100", res.PlayerHP)
	}
	if res.MonsterHP > 0 {
		t.Errorf("monster hp = %d, want <= 0", res.MonsterHP)
	}
}

func TestResolveDefeat(t *testing.T) {
	e := Encounter{
		Monster:  data.MonsterDef{Name: "Lich King", HP: 1000, Attack: 50},
		PlayerHP: 5,
		Attack:   1,
		Defense:  0,
	}

	res := Resolve(e, rng.New(2))

	if res.Outcome != Defeat {
		t.Fatalf("outcome = %s, want defeat", res.Outcome)
	}
	if res.PlayerHP > 0 {
		t.Errorf("player hp = %d, want <= 0", res.PlayerHP)
	}
	if res.Turns != 1 {
		t.Errorf("turns = %d, want 1", res.Turns)
	}
}

func TestResolveTurnCapEndsUnresolvedFight(t *testing.T) {
	// Both sides chip 1 HP per turn: neither dies within the cap.
	e := Encounter{
		Monster:  data.MonsterDef{Name: "Ancient Guardian", HP: 1000, Attack: 1},
		PlayerHP: 100,
		Attack:   1,
		Defense:  100,
	}

	res := Resolve(e, rng.New(3))

	if res.Turns != MaxTurns {
		t.Errorf("turns = %d, want the cap %d", res.Turns, MaxTurns)
	}
	if res.Outcome != Victory {
		t.Errorf("outcome = %s, surviving the cap counts as victory", res.Outcome)
	}
	if res.PlayerHP != 100-MaxTurns {
		t.Errorf("player hp = %d, want %d", res.PlayerHP, 100-MaxTurns)
	}
	if res.MonsterHP != 1000-MaxTurns {
		t.Errorf("monster hp = %d, want %d", res.MonsterHP, 1000-MaxTurns)
	}
}

func TestResolveMinimumDamageIsOne(t *testing.T) {
	// Attack 1 with any roll above 0 would go negative without the floor.
	e := Encounter{
		Monster:  data.MonsterDef{Name: "Goblin", HP: 3, Attack: 1},
		PlayerHP: 100,
		Attack:   1,
		Defense:  50,
	}
	src := &rng.Scripted{Ints: []int{5, 0, 5, 0, 5}} // player rolls 5, monster rolls -3

	res := Resolve(e, src)

	if res.Outcome != Victory {
		t.Fatalf("outcome = %s, want victory", res.Outcome)
	}
	if res.Turns != 3 {
		t.Errorf("turns = %d, want 3 (1 damage per swing against 3 HP)", res.Turns)
	}
}

func TestResolveIsDeterministicForFixedDraws(t *testing.T) {
	e := Encounter{
		Monster:  data.MonsterDef{Name: "Skeleton", HP: 40, Attack: 10},
		PlayerHP: 100,
		Attack:   20,
		Defense:  10,
	}

	a := Resolve(e, rng.New(77))
	b := Resolve(e, rng.New(77))

	if a.Outcome != b.Outcome || a.Turns != b.Turns || a.PlayerHP != b.PlayerHP || a.MonsterHP != b.MonsterHP {
		t.Errorf("same seed gave different fights: %+v vs %+v", a, b)
	}
	if len(a.Log) < 2 {
		t.Errorf("battle log too short: %v", a.Log)
	}
}

func TestAggregateFoldsEquipment(t *testing.T) {
	p := model.NewPlayerState(1, "Wooden Rod", 0)

	atk, def := Aggregate(p)
	if atk != 20 || def != 10 {
		t.Fatalf("bare stats = %d/%d, want 20/10", atk, def)
	}

	p.Dungeon.EquippedWeapon = "Iron Sword"    // +15 atk
	p.Dungeon.EquippedArmor = "Leather Armor"  // +5 def
	p.Dungeon.EquippedAccessory = "never-made" // ignored

	atk, def = Aggregate(p)
	if atk != 35 {
		t.Errorf("attack = %d, want 35", atk)
	}
	if def != 15 {
		t.Errorf("defense = %d, want 15", def)
	}
}

func TestRollLootCategorySplit(t *testing.T) {
	cases := []struct {
		name     string
		chance   float64
		category float64
		want     data.EquipmentCategory
	}{
		{"weapon band", 0.1, 0.0, data.CategoryWeapon},
		{"armor band", 0.1, 0.5, data.CategoryArmor},
		{"accessory band", 0.1, 0.8, data.CategoryAccessory},
		{"potion band", 0.1, 0.95, data.CategoryPotion},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			src := &rng.Scripted{Floats: []float64{tc.chance, tc.category}}
			loot := RollLoot(src)
			if loot == nil {
				t.Fatal("expected a drop")
			}
			if loot.Category != tc.want {
				t.Errorf("category = %s, want %s", loot.Category, tc.want)
			}
		})
	}

	if loot := RollLoot(&rng.Scripted{Floats: []float64{0.3}}); loot != nil {
		t.Errorf("draw at the loot chance should miss, got %q", loot.Name)
	}
}

func TestRollFloorAdvance(t *testing.T) {
	p := model.NewPlayerState(1, "Wooden Rod", 0)

	if !RollFloorAdvance(p, &rng.Scripted{Floats: []float64{0.19}}) {
		t.Fatal("draw under 0.2 should advance")
	}
	if p.Dungeon.CurrentFloor != 2 || p.Dungeon.MaxFloor != 2 {
		t.Errorf("floors = %d/%d, want 2/2", p.Dungeon.CurrentFloor, p.Dungeon.MaxFloor)
	}

	if RollFloorAdvance(p, &rng.Scripted{Floats: []float64{0.2}}) {
		t.Error("draw at 0.2 should not advance")
	}

	p.Dungeon.CurrentFloor = data.MaxDungeonFloor
	if RollFloorAdvance(p, &rng.Scripted{Floats: []float64{0.0}}) {
		t.Error("deepest floor must never advance")
	}
}

func TestPickMonsterStaysOnFloor(t *testing.T) {
	names := map[string]bool{}
	src := rng.New(5)
	for i := 0; i < 60; i++ {
		m := PickMonster(2, src)
		names[m.Name] = true
	}
	for _, want := range []string{"Dark Knight", "Shadow Beast", "Fire Demon"} {
		if !names[want] {
			t.Errorf("monster %q never picked on floor 2", want)
		}
	}
	if len(names) != 3 {
		t.Errorf("unexpected monsters picked: %v", names)
	}
}
