package params

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prysmaticlabs/automaton/shared/testutil/assert"
	"github.com/prysmaticlabs/automaton/shared/testutil/require"
)

func writeConfig(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadConfigFile_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `CONFIG_NAME: wide
CELLS: 80
BLOCK_WIDTH: 64
GENERATIONS: 40
SEED: "single"
`)
	conf, err := LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, "wide", conf.ConfigName)
	assert.Equal(t, 80, conf.Cells)
	assert.Equal(t, 64, conf.BlockWidth)
	assert.Equal(t, 40, conf.Generations)
	assert.Equal(t, "single", conf.Seed)
	// Unset keys keep their defaults.
	assert.Equal(t, uint8(110), conf.Rule)
	assert.Equal(t, "#", conf.AliveGlyph)
}

func TestLoadConfigFile_UnknownKey(t *testing.T) {
	path := writeConfig(t, "CELLZ: 10\n")
	_, err := LoadConfigFile(path)
	assert.ErrorContains(t, "could not parse config file", err)
}

func TestLoadConfigFile_Invalid(t *testing.T) {
	path := writeConfig(t, "BLOCK_WIDTH: 7\n")
	_, err := LoadConfigFile(path)
	assert.ErrorContains(t, "block width must be", err)
}

func TestLoadConfigFile_Missing(t *testing.T) {
	_, err := LoadConfigFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorContains(t, "could not read config file", err)
}
