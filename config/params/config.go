// Package params defines the tunable parameters of an automaton run.
package params

import (
	"github.com/mohae/deepcopy"
	"github.com/pkg/errors"
)

// AutomatonConfig contains the parameters fixed for the whole lifetime of one
// automaton instance.
type AutomatonConfig struct {
	ConfigName string `yaml:"CONFIG_NAME"`
	// Cells is the row length N.
	Cells int `yaml:"CELLS"`
	// BlockWidth is the bit width W of one storage block.
	BlockWidth int `yaml:"BLOCK_WIDTH"`
	// Generations is the number of steps taken after the seed generation.
	Generations int `yaml:"GENERATIONS"`
	// Rule is the Wolfram code of the elementary rule.
	Rule uint8 `yaml:"RULE"`
	// Seed describes the alive cells of generation 0.
	Seed       string `yaml:"SEED"`
	AliveGlyph string `yaml:"ALIVE_GLYPH"`
	DeadGlyph  string `yaml:"DEAD_GLYPH"`
	// RandomSeed drives the rows generated by verification runs.
	RandomSeed int64 `yaml:"RANDOM_SEED"`
}

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid automaton config")

var activeConfig = DefaultConfig()

// DefaultConfig returns the reference configuration: 24 cells in 8-bit blocks
// advanced 100 generations under rule 110.
func DefaultConfig() *AutomatonConfig {
	return &AutomatonConfig{
		ConfigName:  "default",
		Cells:       24,
		BlockWidth:  8,
		Generations: 100,
		Rule:        110,
		Seed:        "canonical",
		AliveGlyph:  "#",
		DeadGlyph:   " ",
		RandomSeed:  1,
	}
}

// Config retrieves the active configuration.
func Config() *AutomatonConfig {
	return activeConfig
}

// OverrideConfig replaces the active configuration. The preferred pattern is
// to call Config().Copy(), change the specific parameters, and then call
// OverrideConfig(c).
func OverrideConfig(c *AutomatonConfig) {
	activeConfig = c
}

// Copy returns a copy of the config object.
func (c *AutomatonConfig) Copy() *AutomatonConfig {
	config := deepcopy.Copy(*c).(AutomatonConfig)
	return &config
}

// Validate checks the parameters for values the automaton cannot run with.
func (c *AutomatonConfig) Validate() error {
	if c.Cells < 1 {
		return errors.Wrapf(ErrInvalidConfig, "cells must be positive, got %d", c.Cells)
	}
	switch c.BlockWidth {
	case 8, 16, 32, 64:
	default:
		return errors.Wrapf(ErrInvalidConfig, "block width must be 8, 16, 32 or 64, got %d", c.BlockWidth)
	}
	if c.Generations < 0 {
		return errors.Wrapf(ErrInvalidConfig, "generations must not be negative, got %d", c.Generations)
	}
	if c.AliveGlyph == "" || c.DeadGlyph == "" {
		return errors.Wrap(ErrInvalidConfig, "glyphs must not be empty")
	}
	return nil
}
