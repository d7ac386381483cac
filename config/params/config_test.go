package params

import (
	"testing"

	"github.com/prysmaticlabs/automaton/shared/testutil/assert"
	"github.com/prysmaticlabs/automaton/shared/testutil/require"
)

func TestDefaultConfig_Valid(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(c *AutomatonConfig)
		wantErr string
	}{
		{name: "zero cells", modify: func(c *AutomatonConfig) { c.Cells = 0 }, wantErr: "cells must be positive"},
		{name: "odd width", modify: func(c *AutomatonConfig) { c.BlockWidth = 12 }, wantErr: "block width must be"},
		{name: "negative generations", modify: func(c *AutomatonConfig) { c.Generations = -1 }, wantErr: "generations must not be negative"},
		{name: "empty glyph", modify: func(c *AutomatonConfig) { c.AliveGlyph = "" }, wantErr: "glyphs must not be empty"},
		{name: "wide blocks", modify: func(c *AutomatonConfig) { c.BlockWidth = 64 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig()
			tt.modify(c)
			err := c.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, tt.wantErr, err)
		})
	}
}

func TestConfig_Copy(t *testing.T) {
	c := DefaultConfig()
	cp := c.Copy()
	cp.Cells = 100
	cp.Seed = "single"
	assert.Equal(t, 24, c.Cells)
	assert.Equal(t, "canonical", c.Seed)
}

func TestOverrideConfig(t *testing.T) {
	prev := Config()
	defer OverrideConfig(prev)

	c := Config().Copy()
	c.Generations = 7
	OverrideConfig(c)
	assert.Equal(t, 7, Config().Generations)
}
