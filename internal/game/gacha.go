package game

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dtrung95/gamebot/internal/data"
	"github.com/dtrung95/gamebot/internal/game/ledger"
	"github.com/dtrung95/gamebot/internal/game/rng"
	"github.com/dtrung95/gamebot/internal/model"
)

// CardPull is one drawn card. New is false for album duplicates, which
// still pay their coin reward.
type CardPull struct {
	Name   string
	Rarity data.Rarity
	Coins  int64
	New    bool
}

// OpenResult is the outcome of opening n card packs.
type OpenResult struct {
	Pulls      []CardPull
	TotalCoins int64
	Balance    int64
}

// OpenCards buys and opens count packs of one card each. The full cost
// is debited up front; every pull pays its card's coin reward. Card
// coins never carry exp, so pack opening cannot level a player.
func (e *Engine) OpenCards(ctx context.Context, userID int64, count int) (*OpenResult, error) {
	if count <= 0 {
		return nil, ErrBadCount
	}
	var res *OpenResult
	err := e.withPlayer(ctx, userID, func(p *model.PlayerState) error {
		if err := ledger.Debit(p, e.cfg.Game.CardPackPrice*int64(count)); err != nil {
			return err
		}
		p.Gacha.CardsOpened += int64(count)

		res = &OpenResult{Pulls: make([]CardPull, 0, count)}
		for i := 0; i < count; i++ {
			card := data.CardForDraw(e.rng.Float64() * data.CardDrawSpace)
			isNew := p.AddCard(card.Name)
			p.Coins += card.Coins
			res.TotalCoins += card.Coins
			res.Pulls = append(res.Pulls, CardPull{
				Name:   card.Name,
				Rarity: card.Rarity,
				Coins:  card.Coins,
				New:    isNew,
			})
		}
		res.Balance = p.Coins
		return nil
	})
	if err != nil {
		return nil, err
	}
	slog.Debug("cards opened", "user_id", userID, "packs", count, "coins", res.TotalCoins)
	return res, nil
}

// slotSymbols is the reel strip; index 0 is the jackpot symbol.
var slotSymbols = [8]string{"diamond", "lemon", "orange", "grape", "bell", "star", "cherry", "seven"}

// SlotsResult is one slots spin.
type SlotsResult struct {
	Symbols    [3]string
	Multiplier int64
	Payout     int64
	Jackpot    bool
	Balance    int64
}

// PlaySlots spins three reels. Triples pay 100x for diamonds, 50x for
// sevens, 20x for stars and 5x otherwise; an adjacent pair pays 2x.
// Payouts of 50x and up count as jackpots.
func (e *Engine) PlaySlots(ctx context.Context, userID int64, bet int64) (*SlotsResult, error) {
	if bet < e.cfg.Game.MinBet {
		return nil, fmt.Errorf("%w: minimum %d", ErrBetTooSmall, e.cfg.Game.MinBet)
	}
	var res *SlotsResult
	err := e.withPlayer(ctx, userID, func(p *model.PlayerState) error {
		if err := ledger.Debit(p, bet); err != nil {
			return err
		}
		p.Gacha.SlotsPlayed++

		var reels [3]string
		for i := range reels {
			reels[i] = slotSymbols[e.rng.IntN(len(slotSymbols))]
		}

		var mult int64
		switch {
		case reels[0] == reels[1] && reels[1] == reels[2]:
			switch reels[0] {
			case "diamond":
				mult = 100
			case "seven":
				mult = 50
			case "star":
				mult = 20
			default:
				mult = 5
			}
		case reels[0] == reels[1] || reels[1] == reels[2]:
			mult = 2
		}

		res = &SlotsResult{Symbols: reels, Multiplier: mult}
		if mult > 0 {
			res.Payout = bet * mult
			p.Coins += res.Payout
			if mult >= 50 {
				p.Gacha.JackpotsWon++
				res.Jackpot = true
			}
		}
		res.Balance = p.Coins
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// DiceResult is one dice bet.
type DiceResult struct {
	Roll    int
	Guess   int
	Won     bool
	Payout  int64
	Balance int64
}

// PlayDice rolls one d6; an exact guess pays 6x the bet.
func (e *Engine) PlayDice(ctx context.Context, userID int64, bet int64, guess int) (*DiceResult, error) {
	if bet < e.cfg.Game.MinBet {
		return nil, fmt.Errorf("%w: minimum %d", ErrBetTooSmall, e.cfg.Game.MinBet)
	}
	if guess < 1 || guess > 6 {
		return nil, ErrBadGuess
	}
	var res *DiceResult
	err := e.withPlayer(ctx, userID, func(p *model.PlayerState) error {
		if err := ledger.Debit(p, bet); err != nil {
			return err
		}
		roll := rng.Between(e.rng, 1, 6)
		res = &DiceResult{Roll: roll, Guess: guess}
		if roll == guess {
			res.Won = true
			res.Payout = bet * 6
			p.Coins += res.Payout
			p.Gacha.DiceWins++
		}
		res.Balance = p.Coins
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// BonusResult is a claimed daily bonus.
type BonusResult struct {
	Coins   int64
	Balance int64
	NextAt  time.Time
}

// DailyBonus pays rand[50,200] plus 10 per level, claimable once every
// 24 hours.
func (e *Engine) DailyBonus(ctx context.Context, userID int64) (*BonusResult, error) {
	var res *BonusResult
	err := e.withPlayer(ctx, userID, func(p *model.PlayerState) error {
		now := e.clock()
		if last := p.Gacha.LastDailyBonus; last != nil {
			if wait := 24*time.Hour - now.Sub(*last); wait > 0 {
				return fmt.Errorf("%w: next in %s", ErrBonusTaken, wait.Round(time.Minute))
			}
		}

		bonus := int64(rng.Between(e.rng, 50, 200)) + int64(p.Level)*10
		p.Coins += bonus
		p.Gacha.LastDailyBonus = &now

		res = &BonusResult{Coins: bonus, Balance: p.Coins, NextAt: now.Add(24 * time.Hour)}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
