package data

import (
	"testing"
)

func TestMain(m *testing.M) {
	if err := Load(); err != nil {
		panic(err)
	}
	m.Run()
}

func TestCardForDraw(t *testing.T) {
	cases := []struct {
		draw float64
		want string
	}{
		{0, "God Card"},
		{0.032, "God Card"},
		{0.033, "Ultra Rare Card"},
		{0.133, "Divine Card"},
		{1.133, "Mythic Card"},
		{6.133, "Legendary Card"},
		{56.133, "Epic Card"},
		{156.133, "Rare Card"},
		{656.133, "Uncommon Card"},
		{2656.133, "Common Card"},
		{99999.999, "Common Card"},
		{CardDrawSpace, "Common Card"},
	}
	for _, tc := range cases {
		got := CardForDraw(tc.draw)
		if got == nil {
			t.Fatalf("CardForDraw(%v) = nil", tc.draw)
		}
		if got.Name != tc.want {
			t.Errorf("CardForDraw(%v) = %q, want %q", tc.draw, got.Name, tc.want)
		}
	}
}

func TestCardThresholdsPartitionDrawSpace(t *testing.T) {
	prev := 0.0
	for _, c := range Cards() {
		if c.Threshold <= prev {
			t.Errorf("card %q threshold %v not strictly increasing after %v", c.Name, c.Threshold, prev)
		}
		prev = c.Threshold
	}
	if prev != CardDrawSpace {
		t.Errorf("last threshold = %v, want %v", prev, CardDrawSpace)
	}
}

func TestRodCatchRatesSumWithinBudget(t *testing.T) {
	for _, r := range Rods() {
		sum := 0.0
		for _, tier := range FishingTiers {
			rate, ok := r.CatchRates[tier]
			if !ok {
				t.Fatalf("rod %q missing %s rate", r.Name, tier)
			}
			if rate < 0 {
				t.Errorf("rod %q has negative %s rate", r.Name, tier)
			}
			sum += rate
		}
		if sum > 100 {
			t.Errorf("rod %q rates sum to %v, want <= 100", r.Name, sum)
		}
	}
}

func TestRodIndexFollowsUpgradeOrder(t *testing.T) {
	if got := RodIndex(BaseRodName); got != 0 {
		t.Errorf("RodIndex(%q) = %d, want 0", BaseRodName, got)
	}
	if got := RodIndex("Broom"); got != -1 {
		t.Errorf("RodIndex of unknown rod = %d, want -1", got)
	}
	prev := int64(-1)
	for _, r := range Rods() {
		if r.Cost < prev {
			t.Errorf("rod %q cost %d cheaper than its predecessor", r.Name, r.Cost)
		}
		prev = r.Cost
	}
}

func TestMonstersForFloorClamps(t *testing.T) {
	cases := []struct {
		floor int32
		want  string
	}{
		{0, "Goblin"},
		{1, "Goblin"},
		{2, "Dark Knight"},
		{3, "Dragon"},
		{7, "Dragon"},
	}
	for _, tc := range cases {
		set := MonstersForFloor(tc.floor)
		if len(set) != 3 {
			t.Fatalf("floor %d has %d monsters, want 3", tc.floor, len(set))
		}
		if set[0].Name != tc.want {
			t.Errorf("floor %d first monster = %q, want %q", tc.floor, set[0].Name, tc.want)
		}
	}
}

func TestFishByRarityCoversEveryTier(t *testing.T) {
	for _, tier := range FishingTiers {
		if len(FishByRarity(tier)) == 0 {
			t.Errorf("no fish for tier %s", tier)
		}
	}
}

func TestLookupsResolveKnownNames(t *testing.T) {
	if GetFish("Carp") == nil {
		t.Error("GetFish(Carp) = nil")
	}
	if GetRod("Wooden Rod") == nil {
		t.Error("GetRod(Wooden Rod) = nil")
	}
	if GetCompanion("Goldfish") == nil {
		t.Error("GetCompanion(Goldfish) = nil")
	}
	if GetEquipment("Wooden Sword") == nil {
		t.Error("GetEquipment(Wooden Sword) = nil")
	}
	if GetCard("God Card") == nil {
		t.Error("GetCard(God Card) = nil")
	}
	if GetFish("Kraken") != nil {
		t.Error("GetFish of unknown fish should be nil")
	}
}

func TestOnlyPotionsStack(t *testing.T) {
	for _, cat := range []EquipmentCategory{CategoryWeapon, CategoryArmor, CategoryAccessory, CategoryPotion} {
		for _, e := range EquipmentByCategory(cat) {
			want := cat == CategoryPotion
			if e.Stackable() != want {
				t.Errorf("%s %q Stackable() = %v, want %v", cat, e.Name, e.Stackable(), want)
			}
		}
	}
}
