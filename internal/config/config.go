// Package config resolves command defaults from the environment and an
// optional .env file. Variables already set in the environment win over the
// file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/alexiusacademia/gocbeam/internal/beam"
	"github.com/alexiusacademia/gocbeam/internal/linsolve"
	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvSolver    = "GOCBEAM_SOLVER"
	EnvPlacement = "GOCBEAM_PLACEMENT"
	EnvReactions = "GOCBEAM_REACTIONS"
	EnvE         = "GOCBEAM_E"
	EnvStations  = "GOCBEAM_STATIONS"
)

// DefaultFile is read by Load when no path is given.
const DefaultFile = ".env"

// DefaultStations is the number of evenly spaced internal force stations.
const DefaultStations = 101

// Config holds the resolved defaults.
type Config struct {
	Solver    string
	Placement beam.Placement
	Recovery  beam.Recovery
	E         float64 // 0 when unset
	Stations  int
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Solver:    "dense",
		Placement: beam.PlacementStrict,
		Recovery:  beam.RecoveryReference,
		Stations:  DefaultStations,
	}
}

// Load reads path (DefaultFile when empty), overlays the process
// environment and parses the result. A missing file is not an error.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultFile
	}

	vals, err := godotenv.Read(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		vals = map[string]string{}
	}

	for _, key := range []string{EnvSolver, EnvPlacement, EnvReactions, EnvE, EnvStations} {
		if v, ok := os.LookupEnv(key); ok {
			vals[key] = v
		}
	}

	return Parse(vals)
}

// Parse builds a Config from variable values, falling back to Default for
// the ones that are missing or empty.
func Parse(vals map[string]string) (Config, error) {
	cfg := Default()
	get := func(key string) string { return strings.TrimSpace(vals[key]) }

	if v := get(EnvSolver); v != "" {
		if _, err := linsolve.New(v); err != nil {
			return cfg, fmt.Errorf("config: %s: %w", EnvSolver, err)
		}
		cfg.Solver = strings.ToLower(v)
	}

	var err error
	if cfg.Placement, err = beam.ParsePlacement(get(EnvPlacement)); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", EnvPlacement, err)
	}
	if cfg.Recovery, err = beam.ParseRecovery(get(EnvReactions)); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", EnvReactions, err)
	}

	if v := get(EnvE); v != "" {
		e, err := strconv.ParseFloat(v, 64)
		if err != nil || e <= 0 {
			return cfg, fmt.Errorf("config: %s must be a positive number, got %q", EnvE, v)
		}
		cfg.E = e
	}

	if v := get(EnvStations); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 2 {
			return cfg, fmt.Errorf("config: %s must be an integer >= 2, got %q", EnvStations, v)
		}
		cfg.Stations = n
	}

	return cfg, nil
}
