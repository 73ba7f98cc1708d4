// Package config loads the converter's HCL configuration file:
//
//	renotation = "real.dat"
//
//	solver {
//	  threshold_chroma = 0.2
//	  max_iterations   = 64
//	}
//
// Every setting is optional and defaults to the standard calibration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclsyntax"

	"github.com/jsvensson/munsell/internal/engine"
)

// Config is a resolved configuration file.
type Config struct {
	// Renotation is the dataset path, absolute or relative to the working
	// directory. Empty when the file names none.
	Renotation string
	Solver     engine.Options
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{Solver: engine.DefaultOptions()}
}

type rawConfig struct {
	Renotation *string      `hcl:"renotation,optional"`
	Solver     *solverBlock `hcl:"solver,block"`
}

type solverBlock struct {
	ThresholdChroma      *float64 `hcl:"threshold_chroma,optional"`
	ConvergenceThreshold *float64 `hcl:"convergence_threshold,optional"`
	FallbackThreshold    *float64 `hcl:"fallback_threshold,optional"`
	RhoThreshold         *float64 `hcl:"rho_threshold,optional"`
	MaxIterations        *int     `hcl:"max_iterations,optional"`
	DampingFloor         *float64 `hcl:"damping_floor,optional"`
}

// Load reads the configuration file at path. A relative renotation path is
// resolved against the directory of the file.
func Load(path string) (*Config, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	cfg, err := Parse(src, path)
	if err != nil {
		return nil, err
	}
	if cfg.Renotation != "" && !filepath.IsAbs(cfg.Renotation) {
		cfg.Renotation = filepath.Join(filepath.Dir(path), cfg.Renotation)
	}
	return cfg, nil
}

// Parse decodes configuration source. filename is used in diagnostics only.
func Parse(src []byte, filename string) (*Config, error) {
	file, diags := hclsyntax.ParseConfig(src, filename, hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing config: %s", diags.Error())
	}

	var raw rawConfig
	if diags := gohcl.DecodeBody(file.Body, nil, &raw); diags.HasErrors() {
		return nil, fmt.Errorf("decoding config: %s", diags.Error())
	}

	cfg := Default()
	if raw.Renotation != nil {
		cfg.Renotation = *raw.Renotation
	}
	if s := raw.Solver; s != nil {
		o := &cfg.Solver
		set(&o.ThresholdChroma, s.ThresholdChroma)
		set(&o.ConvergenceThreshold, s.ConvergenceThreshold)
		set(&o.FallbackThreshold, s.FallbackThreshold)
		set(&o.RhoThreshold, s.RhoThreshold)
		set(&o.MaxIterations, s.MaxIterations)
		set(&o.DampingFloor, s.DampingFloor)
	}

	if err := cfg.Solver.Validate(); err != nil {
		return nil, fmt.Errorf("%s: solver: %w", filename, err)
	}
	return cfg, nil
}

func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}
