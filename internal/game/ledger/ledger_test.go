package ledger

import (
	"errors"
	"testing"

	"github.com/dtrung95/gamebot/internal/model"
)

func newPlayer() *model.PlayerState {
	return model.NewPlayerState(1, "Wooden Rod", 1000)
}

func TestCreditBelowThreshold(t *testing.T) {
	p := newPlayer()

	res := Credit(p, 40, 50, false)

	if res.LeveledUp {
		t.Error("50 exp at level 1 should not level up")
	}
	if p.Coins != 1040 || p.Exp != 50 || p.Level != 1 {
		t.Errorf("state = coins %d, exp %d, level %d", p.Coins, p.Exp, p.Level)
	}
}

func TestCreditLevelUpDiscardsExcessExp(t *testing.T) {
	p := newPlayer()
	p.Exp = 95

	res := Credit(p, 0, 10, false)

	if !res.LeveledUp || res.NewLevel != 2 {
		t.Fatalf("result = %+v, want level up to 2", res)
	}
	if p.Exp != 0 {
		t.Errorf("exp = %d, want 0 (excess 5 discarded)", p.Exp)
	}
	if res.BonusCoins != 200 {
		t.Errorf("bonus = %d, want 200", res.BonusCoins)
	}
	if p.Coins != 1200 {
		t.Errorf("coins = %d, want 1200", p.Coins)
	}
	if p.Dungeon.MaxHP != 100 {
		t.Errorf("max hp = %d, must not grow without growHP", p.Dungeon.MaxHP)
	}
}

func TestCreditAtMostOneLevel(t *testing.T) {
	p := newPlayer()

	res := Credit(p, 0, 100000, false)

	if res.NewLevel != 2 {
		t.Errorf("new level = %d, want 2 even for a huge credit", res.NewLevel)
	}
	if p.Level != 2 || p.Exp != 0 {
		t.Errorf("state = level %d, exp %d, want 2, 0", p.Level, p.Exp)
	}
}

func TestCreditGrowHPHealsToNewMax(t *testing.T) {
	p := newPlayer()
	p.Exp = 100
	p.Dungeon.HP = 13

	res := Credit(p, 0, 0, true)

	if !res.LeveledUp {
		t.Fatal("100 exp at level 1 should level up")
	}
	if p.Dungeon.MaxHP != 120 || p.Dungeon.HP != 120 {
		t.Errorf("hp = %d/%d, want 120/120", p.Dungeon.HP, p.Dungeon.MaxHP)
	}
}

func TestDebit(t *testing.T) {
	p := newPlayer()

	if err := Debit(p, 400); err != nil {
		t.Fatalf("debit within balance failed: %v", err)
	}
	if p.Coins != 600 {
		t.Errorf("coins = %d, want 600", p.Coins)
	}

	err := Debit(p, 601)
	if !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("overdraft err = %v, want ErrInsufficientFunds", err)
	}
	if p.Coins != 600 {
		t.Errorf("failed debit touched the balance: %d", p.Coins)
	}
}
