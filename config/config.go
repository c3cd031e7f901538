// Package config loads the front-end configuration from the environment,
// with an optional .env file picked up via godotenv. Library packages take
// options instead; only the binaries read the process environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment keys. All optional; defaults reproduce a 1280x720 board at
// five pixels per cell.
const (
	EnvCols    = "MAZE_COLS"
	EnvRows    = "MAZE_ROWS"
	EnvCell    = "MAZE_CELL_SIZE"
	EnvSeed    = "MAZE_SEED"
	EnvDelayMS = "MAZE_DELAY_MS"
)

// Defaults.
const (
	DefaultCols     = 256
	DefaultRows     = 144
	DefaultCellSize = 5
)

// ErrBadValue is wrapped around every malformed or out-of-range variable.
var ErrBadValue = errors.New("config: bad value")

// Config holds everything the binaries need to build a board.
type Config struct {
	Cols     int           // grid width in cells
	Rows     int           // grid height in cells
	CellSize int           // pixels per cell
	Seed     int64         // generator seed, 0 means the fixed default
	Delay    time.Duration // pause between replay frames
}

// Load reads the environment, after loading a .env file when one exists.
// Missing keys fall back to defaults; present keys must parse and pass
// validation.
func Load() (Config, error) {
	// A missing .env file is the normal case, not an error.
	_ = godotenv.Load()

	cfg := Config{}

	var err error
	if cfg.Cols, err = getEnvAsIntWithDefault(EnvCols, DefaultCols); err != nil {
		return Config{}, err
	}
	if cfg.Rows, err = getEnvAsIntWithDefault(EnvRows, DefaultRows); err != nil {
		return Config{}, err
	}
	if cfg.CellSize, err = getEnvAsIntWithDefault(EnvCell, DefaultCellSize); err != nil {
		return Config{}, err
	}
	if cfg.Seed, err = getEnvAsInt64WithDefault(EnvSeed, 0); err != nil {
		return Config{}, err
	}
	delayMS, err := getEnvAsIntWithDefault(EnvDelayMS, 0)
	if err != nil {
		return Config{}, err
	}
	cfg.Delay = time.Duration(delayMS) * time.Millisecond

	if err = cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) validate() error {
	if c.Cols <= 0 {
		return fmt.Errorf("%w: %s must be positive, got %d", ErrBadValue, EnvCols, c.Cols)
	}
	if c.Rows <= 0 {
		return fmt.Errorf("%w: %s must be positive, got %d", ErrBadValue, EnvRows, c.Rows)
	}
	if c.CellSize <= 0 {
		return fmt.Errorf("%w: %s must be positive, got %d", ErrBadValue, EnvCell, c.CellSize)
	}
	if c.Delay < 0 {
		return fmt.Errorf("%w: %s must not be negative, got %s", ErrBadValue, EnvDelayMS, c.Delay)
	}

	return nil
}

// getEnvAsIntWithDefault returns the variable as an int, or the default when
// it is unset.
func getEnvAsIntWithDefault(key string, def int) (int, error) {
	raw, exists := os.LookupEnv(key)
	if !exists || raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer, got %q", ErrBadValue, key, raw)
	}

	return v, nil
}

// getEnvAsInt64WithDefault is getEnvAsIntWithDefault for 64-bit seeds.
func getEnvAsInt64WithDefault(key string, def int64) (int64, error) {
	raw, exists := os.LookupEnv(key)
	if !exists || raw == "" {
		return def, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer, got %q", ErrBadValue, key, raw)
	}

	return v, nil
}
