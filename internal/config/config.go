package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Server holds all configuration for the game engine process.
type Server struct {
	LogLevel string `yaml:"log_level"`

	Storage StorageConfig `yaml:"storage"`

	// Locking strategy for player mutations: "global" serializes every
	// action system-wide, "player" serializes per player only.
	LockMode string `yaml:"lock_mode"`

	Game GameConfig `yaml:"game"`
}

// StorageConfig selects and parameterizes the persistence backend.
type StorageConfig struct {
	// Backend is "file" or "postgres".
	Backend string `yaml:"backend"`

	// Path of the JSON save document, file backend only.
	Path string `yaml:"path"`

	Database DatabaseConfig `yaml:"database"`
}

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// GameConfig tunes economy constants. Probability tables and balance
// live in the definitions catalog, only prices and floors are here.
type GameConfig struct {
	StartingCoins    int64 `yaml:"starting_coins"`
	BaitPrice        int64 `yaml:"bait_price"`      // per piece
	HealPrice        int64 `yaml:"heal_price"`      // full heal at the inn
	CardPackPrice    int64 `yaml:"card_pack_price"` // per pack of one card
	MinBet           int64 `yaml:"min_bet"`         // slots and dice
	AutosaveEverySec int   `yaml:"autosave_every_sec"`
}

// Default returns the server config with stock values.
func Default() Server {
	return Server{
		LogLevel: "info",
		LockMode: "global",
		Storage: StorageConfig{
			Backend: "file",
			Path:    "data/players.json",
			Database: DatabaseConfig{
				Host:     "127.0.0.1",
				Port:     5432,
				User:     "gamebot",
				Password: "gamebot",
				DBName:   "gamebot",
				SSLMode:  "disable",
			},
		},
		Game: GameConfig{
			StartingCoins:    1000,
			BaitPrice:        10,
			HealPrice:        50,
			CardPackPrice:    100,
			MinBet:           10,
			AutosaveEverySec: 60,
		},
	}
}

// Load reads server config from a YAML file.
// If the file doesn't exist, returns defaults.
func Load(path string) (Server, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects values the engine cannot run with.
func (c Server) Validate() error {
	switch c.Storage.Backend {
	case "file", "postgres":
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}
	switch c.LockMode {
	case "global", "player":
	default:
		return fmt.Errorf("unknown lock mode %q", c.LockMode)
	}
	if c.Game.StartingCoins < 0 {
		return fmt.Errorf("starting_coins must not be negative")
	}
	if c.Game.BaitPrice <= 0 || c.Game.HealPrice <= 0 || c.Game.CardPackPrice <= 0 {
		return fmt.Errorf("prices must be positive")
	}
	if c.Game.MinBet <= 0 {
		return fmt.Errorf("min_bet must be positive")
	}
	return nil
}
