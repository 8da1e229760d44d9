// Package config reads match and storage settings from the environment,
// loading a .env file first when one is present.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"belote-engine/internal/game"
	"belote-engine/internal/shared"

	"github.com/joho/godotenv"
)

const (
	KeyTargetScore = "BELOTE_TARGET_SCORE"
	KeyFirstDeal   = "BELOTE_FIRST_DEAL"
	KeySecondDeal  = "BELOTE_SECOND_DEAL"
	KeySeed        = "BELOTE_SEED"
	KeyFirstDealer = "BELOTE_FIRST_DEALER"
	KeyPlayers     = "BELOTE_PLAYERS"
	KeyBots        = "BELOTE_BOTS"
	KeyDBDriver    = "BELOTE_DB_DRIVER"
	KeyDBDSN       = "BELOTE_DB_DSN"
)

var defaultPlayers = [shared.NumSeats]string{"North", "East", "South", "West"}

type Config struct {
	Rules   game.Rules
	Seed    uint64
	Players [shared.NumSeats]string
	Bots    [shared.NumSeats]string
	DB      DBConfig
}

type DBConfig struct {
	Driver string
	DSN    string
}

// Load reads files (".env" when none are given) and then the environment.
// Missing files are ignored; variables already set win over file values.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("loading %s: %w", f, err)
		}
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() (Config, error) {
	cfg := Config{
		Rules:   game.DefaultRules(),
		Players: defaultPlayers,
		DB:      DBConfig{Driver: "sqlite3", DSN: "./belote.db"},
	}
	var err error

	if cfg.Rules.TargetScore, err = intVar(KeyTargetScore, cfg.Rules.TargetScore); err != nil {
		return Config{}, err
	}
	if cfg.Rules.FirstDeal, err = intVar(KeyFirstDeal, cfg.Rules.FirstDeal); err != nil {
		return Config{}, err
	}
	if cfg.Rules.SecondDeal, err = intVar(KeySecondDeal, cfg.Rules.SecondDeal); err != nil {
		return Config{}, err
	}
	dealer, err := intVar(KeyFirstDealer, int(cfg.Rules.FirstDealer))
	if err != nil {
		return Config{}, err
	}
	cfg.Rules.FirstDealer = shared.Seat(dealer)
	if err := cfg.Rules.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid rules: %w", err)
	}

	if v, ok := os.LookupEnv(KeySeed); ok && v != "" {
		if cfg.Seed, err = strconv.ParseUint(v, 10, 64); err != nil {
			return Config{}, fmt.Errorf("%s: %w", KeySeed, err)
		}
	}
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}

	if cfg.Players, err = listVar(KeyPlayers, cfg.Players); err != nil {
		return Config{}, err
	}
	if cfg.Bots, err = listVar(KeyBots, cfg.Bots); err != nil {
		return Config{}, err
	}

	if v := os.Getenv(KeyDBDriver); v != "" {
		cfg.DB.Driver = v
	}
	switch cfg.DB.Driver {
	case "sqlite3", "pgx":
	default:
		return Config{}, fmt.Errorf("%s: unsupported driver %q", KeyDBDriver, cfg.DB.Driver)
	}
	if v := os.Getenv(KeyDBDSN); v != "" {
		cfg.DB.DSN = v
	}
	return cfg, nil
}

func intVar(key string, def int) (int, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

// listVar reads exactly four comma separated, non-empty entries.
func listVar(key string, def [shared.NumSeats]string) ([shared.NumSeats]string, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def, nil
	}
	parts := strings.Split(v, ",")
	if len(parts) != shared.NumSeats {
		return def, fmt.Errorf("%s: want %d entries, got %d", key, shared.NumSeats, len(parts))
	}
	var out [shared.NumSeats]string
	for i, p := range parts {
		out[i] = strings.TrimSpace(p)
		if out[i] == "" {
			return def, fmt.Errorf("%s: entry %d is empty", key, i+1)
		}
	}
	return out, nil
}
