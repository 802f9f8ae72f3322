package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	water "github.com/rmera/gowater"
)

//fileConfig is the TOML shape of a gowater configuration file. See
//ex.config.toml for a commented example.
type fileConfig struct {
	Cutoff  float64              `toml:"cutoff"`
	Prec    int                  `toml:"prec"`
	Colors  map[string][]float64 `toml:"colors"`  //oxygen colors, by protonation state
	Species map[string][]float64 `toml:"species"` //colors for non-oxygen species
}

//the protonation states accepted as keys of the [colors] table.
var stateKeys = map[string]water.State{
	"hydroxide": water.Hydroxide,
	"water":     water.Water,
	"hydronium": water.Hydronium,
	"other":     water.Other,
}

//loadConfig reads the TOML file at path and overlays whatever it defines
//onto o. Values absent from the file keep what o already has, so flags and
//files can be combined.
func loadConfig(path string, o *water.Options) error {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if meta.IsDefined("cutoff") {
		if raw.Cutoff <= 0 {
			return fmt.Errorf("load config: cutoff must be positive, got %v", raw.Cutoff)
		}
		o.Cutoff(raw.Cutoff)
	}
	if meta.IsDefined("prec") {
		if raw.Prec < 1 {
			return fmt.Errorf("load config: prec must be at least 1, got %d", raw.Prec)
		}
		o.Prec(raw.Prec)
	}
	table := o.Colors()
	for k, v := range raw.Colors {
		s, ok := stateKeys[strings.ToLower(k)]
		if !ok {
			return fmt.Errorf("load config: unknown protonation state %q in [colors]", k)
		}
		c, err := toRGB(v)
		if err != nil {
			return fmt.Errorf("load config: color for state %q: %w", k, err)
		}
		table.SetState(s, c)
	}
	for k, v := range raw.Species {
		if k == water.Oxygen {
			return fmt.Errorf("load config: oxygen colors are per-state; set them in [colors]")
		}
		c, err := toRGB(v)
		if err != nil {
			return fmt.Errorf("load config: color for species %q: %w", k, err)
		}
		table.SetSpecies(k, c)
	}
	return nil
}

//toRGB checks that v is a usable color: exactly 3 components, each in [0,1].
func toRGB(v []float64) (water.RGB, error) {
	var c water.RGB
	if len(v) != 3 {
		return c, fmt.Errorf("a color needs exactly 3 components, got %d", len(v))
	}
	for i, f := range v {
		if f < 0 || f > 1 {
			return c, fmt.Errorf("components must be in [0,1], got %v", f)
		}
		c[i] = f
	}
	return c, nil
}
