package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dtrung95/gamebot/internal/config"
	"github.com/dtrung95/gamebot/internal/data"
	"github.com/dtrung95/gamebot/internal/db"
	"github.com/dtrung95/gamebot/internal/game"
	"github.com/dtrung95/gamebot/internal/game/rng"
	"github.com/dtrung95/gamebot/internal/store"
)

const ConfigPath = "config/gamebot.yaml"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfgPath := ConfigPath
	if p := os.Getenv("GAMEBOT_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))
	slog.Info("gamebot starting", "log_level", cfg.LogLevel, "backend", cfg.Storage.Backend)

	if err := data.Load(); err != nil {
		return fmt.Errorf("loading definitions: %w", err)
	}

	st, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	players, err := st.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("loading players: %w", err)
	}
	slog.Info("players loaded", "count", len(players))

	engine := game.New(cfg, st, rng.Default())

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return consoleLoop(gctx, engine, os.Stdin)
	})

	if every := cfg.Game.AutosaveEverySec; every > 0 {
		g.Go(func() error {
			return checkpointLoop(gctx, st, time.Duration(every)*time.Second)
		})
	}

	if err := g.Wait(); err != nil && err != context.Canceled {
		return err
	}
	return nil
}

func openStore(ctx context.Context, cfg config.Server) (store.Store, error) {
	switch cfg.Storage.Backend {
	case "postgres":
		if err := db.RunMigrations(ctx, cfg.Storage.Database.DSN()); err != nil {
			return nil, fmt.Errorf("running migrations: %w", err)
		}
		d, err := db.New(ctx, cfg.Storage.Database.DSN())
		if err != nil {
			return nil, fmt.Errorf("connecting to database: %w", err)
		}
		slog.Info("database connected")
		return d, nil
	default:
		return store.OpenFile(cfg.Storage.Path)
	}
}

// checkpointLoop periodically rewrites the whole save set. Per-action
// saves already persist everything; this guards against a backend that
// was wired in with batched writes.
func checkpointLoop(ctx context.Context, st store.Store, every time.Duration) error {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			players, err := st.LoadAll(ctx)
			if err != nil {
				return fmt.Errorf("checkpoint load: %w", err)
			}
			if err := st.SaveAll(ctx, players); err != nil {
				return fmt.Errorf("checkpoint save: %w", err)
			}
			slog.Debug("checkpoint", "players", len(players))
		}
	}
}

// consoleLoop is a thin stand-in for a chat transport: one command per
// line, acting on behalf of the given player id.
func consoleLoop(ctx context.Context, e *game.Engine, in io.Reader) error {
	lines := make(chan string)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	fmt.Println("gamebot console. Type 'help' for commands.")
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			if strings.TrimSpace(line) == "quit" {
				return nil
			}
			if out := dispatch(ctx, e, line); out != "" {
				fmt.Println(out)
			}
		}
	}
}

func dispatch(ctx context.Context, e *game.Engine, line string) string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}
	cmd := fields[0]
	if cmd == "help" {
		return helpText
	}

	if len(fields) < 2 {
		return "usage: <command> <player-id> [args], see 'help'"
	}
	userID, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return fmt.Sprintf("bad player id %q", fields[1])
	}
	args := fields[2:]

	out, err := runCommand(ctx, e, cmd, userID, args)
	if err != nil {
		return "error: " + err.Error()
	}
	return out
}

func runCommand(ctx context.Context, e *game.Engine, cmd string, userID int64, args []string) (string, error) {
	switch cmd {
	case "fish":
		res, err := e.CatchFish(ctx, userID)
		if err != nil {
			return "", err
		}
		var b strings.Builder
		for _, c := range res.Catches {
			fmt.Fprintf(&b, "caught %s (%s): +%d coins, +%d exp\n", c.FishName, c.Rarity, c.Coins, c.Exp)
		}
		if res.BaitSaved {
			b.WriteString("bait saved!\n")
		}
		if res.LevelUp.LeveledUp {
			fmt.Fprintf(&b, "LEVEL UP! now level %d (+%d coins)\n", res.LevelUp.NewLevel, res.LevelUp.BonusCoins)
		}
		fmt.Fprintf(&b, "bait left: %d, balance: %d", res.BaitLeft, res.Balance)
		return b.String(), nil

	case "dungeon":
		res, err := e.ExploreDungeon(ctx, userID)
		if err != nil {
			return "", err
		}
		var b strings.Builder
		fmt.Fprintf(&b, "floor %d: %s vs you, %s in %d turns\n", res.Floor, res.Monster, res.Outcome, res.Turns)
		if res.Loot != "" {
			fmt.Fprintf(&b, "loot: %s\n", res.Loot)
		}
		if res.LevelUp.LeveledUp {
			fmt.Fprintf(&b, "LEVEL UP! now level %d\n", res.LevelUp.NewLevel)
		}
		if res.Advanced {
			fmt.Fprintf(&b, "floor %d unlocked!\n", res.NewFloor)
		}
		fmt.Fprintf(&b, "hp %d/%d, +%d coins, +%d exp, balance %d",
			res.PlayerHP, res.MaxHP, res.Coins, res.Exp, res.Balance)
		return b.String(), nil

	case "buy":
		res, err := e.BuyItem(ctx, userID, strings.Join(args, " "))
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("bought %s (%s) for %d, balance %d", res.Item, res.Kind, res.Cost, res.Balance), nil

	case "equip":
		if err := e.EquipItem(ctx, userID, strings.Join(args, " ")); err != nil {
			return "", err
		}
		return "equipped", nil

	case "use":
		healed, err := e.UsePotion(ctx, userID, strings.Join(args, " "))
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("healed %d hp", healed), nil

	case "companion":
		if err := e.ActivateCompanion(ctx, userID, strings.Join(args, " ")); err != nil {
			return "", err
		}
		return "companion activated", nil

	case "heal":
		if err := e.Heal(ctx, userID); err != nil {
			return "", err
		}
		return "fully healed", nil

	case "bait":
		count := 1
		if len(args) > 0 {
			if count, _ = strconv.Atoi(args[0]); count == 0 {
				return "", fmt.Errorf("bad bait count %q", args[0])
			}
		}
		left, err := e.BuyBait(ctx, userID, int32(count))
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("bait: %d", left), nil

	case "cards":
		count := 1
		if len(args) > 0 {
			if count, _ = strconv.Atoi(args[0]); count == 0 {
				return "", fmt.Errorf("bad pack count %q", args[0])
			}
		}
		res, err := e.OpenCards(ctx, userID, count)
		if err != nil {
			return "", err
		}
		var b strings.Builder
		for _, pull := range res.Pulls {
			marker := ""
			if pull.New {
				marker = " NEW"
			}
			fmt.Fprintf(&b, "%s (%s): +%d coins%s\n", pull.Name, pull.Rarity, pull.Coins, marker)
		}
		fmt.Fprintf(&b, "total +%d coins, balance %d", res.TotalCoins, res.Balance)
		return b.String(), nil

	case "slots":
		if len(args) < 1 {
			return "", fmt.Errorf("usage: slots <id> <bet>")
		}
		bet, _ := strconv.ParseInt(args[0], 10, 64)
		res, err := e.PlaySlots(ctx, userID, bet)
		if err != nil {
			return "", err
		}
		line := strings.Join(res.Symbols[:], " | ")
		if res.Payout > 0 {
			return fmt.Sprintf("%s\nwin x%d: +%d coins, balance %d", line, res.Multiplier, res.Payout, res.Balance), nil
		}
		return fmt.Sprintf("%s\nno win, balance %d", line, res.Balance), nil

	case "dice":
		if len(args) < 2 {
			return "", fmt.Errorf("usage: dice <id> <bet> <guess>")
		}
		bet, _ := strconv.ParseInt(args[0], 10, 64)
		guess, _ := strconv.Atoi(args[1])
		res, err := e.PlayDice(ctx, userID, bet, guess)
		if err != nil {
			return "", err
		}
		if res.Won {
			return fmt.Sprintf("rolled %d, you guessed %d: +%d coins, balance %d", res.Roll, res.Guess, res.Payout, res.Balance), nil
		}
		return fmt.Sprintf("rolled %d, you guessed %d: lost, balance %d", res.Roll, res.Guess, res.Balance), nil

	case "daily":
		res, err := e.DailyBonus(ctx, userID)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("daily bonus +%d coins, balance %d, next at %s",
			res.Coins, res.Balance, res.NextAt.Format(time.RFC3339)), nil

	case "profile":
		prof, err := e.GetProfile(ctx, userID)
		if err != nil {
			return "", err
		}
		p := prof.Player
		return fmt.Sprintf(
			"player %d: level %d (%d exp, %d to next), %d coins\n"+
				"rod %s, bait %d, caught %d\n"+
				"hp %d/%d, atk %d, def %d, floor %d/%d\n"+
				"companion: %s, cards %d/%d",
			p.UserID, p.Level, p.Exp, prof.ExpToLevel, p.Coins,
			p.Fishing.RodName, p.Fishing.BaitCount, p.Fishing.TotalCaught,
			p.Dungeon.HP, p.Dungeon.MaxHP, prof.Attack, prof.Defense,
			p.Dungeon.CurrentFloor, p.Dungeon.MaxFloor,
			orNone(p.Companions.Active), len(p.Gacha.Cards), prof.CardAlbumMax), nil

	default:
		return "", fmt.Errorf("unknown command %q, see 'help'", cmd)
	}
}

func orNone(s string) string {
	if s == "" {
		return "none"
	}
	return s
}

const helpText = `commands (id = player id):
  fish <id>                 cast the rod
  dungeon <id>              fight a monster on the current floor
  buy <id> <item>           buy equipment, potions, rods or companions
  equip <id> <item>         equip an owned weapon/armor/accessory
  use <id> <potion>         drink an owned potion
  companion <id> <name>     activate an owned companion
  heal <id>                 full heal for coins
  bait <id> [n]             buy bait
  cards <id> [n]            open card packs
  slots <id> <bet>          spin the slots
  dice <id> <bet> <guess>   bet on a d6
  daily <id>                claim the daily bonus
  profile <id>              show the player
  quit                      exit`

// parseLogLevel converts string log level to slog.Level.
// Defaults to Info if invalid or empty.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
