package main

import (
	"fmt"
	"math"

	"github.com/BurntSushi/toml"
	"github.com/Neumenon/sigil/sigil"
)

// fileConfig mirrors the TOML constants file. Every key is optional;
// defined keys overlay the library defaults.
type fileConfig struct {
	C1             float64 `toml:"c1"`
	C2             float64 `toml:"c2"`
	FloorFrequency float64 `toml:"floor_frequency"`
	Tolerance      float64 `toml:"tolerance"`
}

// runtimeConfig is the resolved configuration handed to subcommands.
type runtimeConfig struct {
	Constants sigil.Constants
	Floor     float64
	Tolerance float64
}

func defaultRuntimeConfig() runtimeConfig {
	return runtimeConfig{
		Constants: sigil.DefaultConstants(),
		Floor:     sigil.DefaultFloor,
		Tolerance: sigil.DefaultTolerance,
	}
}

// loadRuntimeConfig overlays the TOML file at path onto the defaults. An
// empty path returns the defaults unchanged.
func loadRuntimeConfig(path string) (runtimeConfig, error) {
	cfg := defaultRuntimeConfig()
	if path == "" {
		return cfg, nil
	}

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return runtimeConfig{}, fmt.Errorf("load constants config: %w", err)
	}

	if meta.IsDefined("c1") {
		if err := checkPositive("c1", raw.C1); err != nil {
			return runtimeConfig{}, err
		}
		cfg.Constants.C1 = raw.C1
	}

	if meta.IsDefined("c2") {
		if err := checkPositive("c2", raw.C2); err != nil {
			return runtimeConfig{}, err
		}
		cfg.Constants.C2 = raw.C2
	}

	if meta.IsDefined("floor_frequency") {
		if err := checkPositive("floor_frequency", raw.FloorFrequency); err != nil {
			return runtimeConfig{}, err
		}
		cfg.Floor = raw.FloorFrequency
	}

	if meta.IsDefined("tolerance") {
		if math.IsNaN(raw.Tolerance) || raw.Tolerance < 0 {
			return runtimeConfig{}, fmt.Errorf("tolerance must be non-negative, got %v", raw.Tolerance)
		}
		cfg.Tolerance = raw.Tolerance
	}

	return cfg, nil
}

func checkPositive(key string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return fmt.Errorf("%s must be positive and finite, got %v", key, v)
	}
	return nil
}
