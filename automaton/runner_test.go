package automaton

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/prysmaticlabs/automaton/config/params"
	"github.com/prysmaticlabs/automaton/shared/testutil/assert"
	"github.com/prysmaticlabs/automaton/shared/testutil/require"
	logTest "github.com/sirupsen/logrus/hooks/test"
)

func TestRunner_Run(t *testing.T) {
	hook := logTest.NewGlobal()
	before := testutil.ToFloat64(generationsTotal)

	r, err := NewRunner(params.DefaultConfig(), DefaultGlyphs)
	require.NoError(t, err)
	var out bytes.Buffer
	require.NoError(t, r.Run(context.Background(), &out))
	require.NoError(t, r.Status())

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Equal(t, 101, len(lines))
	f := NewEngine(8, 24, CanonicalSeed(24), Rule110)
	assert.Equal(t, Render(f.Cells(), DefaultGlyphs), lines[0], "generation 0 is the seed")
	f.Step()
	assert.Equal(t, Render(f.Cells(), DefaultGlyphs), lines[1])
	for i, line := range lines {
		assert.Equal(t, 47, len(line), "line %d", i)
	}

	assert.Equal(t, uint64(100), r.Engine().Generation())
	assert.Equal(t, before+100, testutil.ToFloat64(generationsTotal))
	assert.LogsContain(t, hook, "Starting automaton")
	assert.LogsContain(t, hook, "Finished automaton")
}

func TestRunner_ZeroGenerations(t *testing.T) {
	cfg := params.DefaultConfig()
	cfg.Generations = 0
	r, err := NewRunner(cfg, DefaultGlyphs)
	require.NoError(t, err)
	var out bytes.Buffer
	require.NoError(t, r.Run(context.Background(), &out))
	assert.Equal(t, 1, strings.Count(out.String(), "\n"))
}

func TestRunner_Deterministic(t *testing.T) {
	cfg := params.DefaultConfig()
	cfg.Cells = 70
	cfg.BlockWidth = 16
	cfg.Seed = "single"
	outputs := make([]string, 2)
	for i := range outputs {
		r, err := NewRunner(cfg, DefaultGlyphs)
		require.NoError(t, err)
		var out bytes.Buffer
		require.NoError(t, r.Run(context.Background(), &out))
		outputs[i] = out.String()
	}
	assert.Equal(t, outputs[0], outputs[1])
}

func TestRunner_Canceled(t *testing.T) {
	r, err := NewRunner(params.DefaultConfig(), DefaultGlyphs)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out bytes.Buffer
	err = r.Run(ctx, &out)
	assert.ErrorContains(t, "stopped after 0 generations", err)
	require.ErrorIs(t, err, context.Canceled)
	assert.ErrorContains(t, "context canceled", r.Status())
	assert.Equal(t, 1, strings.Count(out.String(), "\n"), "seed generation is still rendered")
}

func TestRunner_ConfigIsCopied(t *testing.T) {
	cfg := params.DefaultConfig()
	cfg.Generations = 3
	r, err := NewRunner(cfg, DefaultGlyphs)
	require.NoError(t, err)
	cfg.Generations = 50
	var out bytes.Buffer
	require.NoError(t, r.Run(context.Background(), &out))
	assert.Equal(t, 4, strings.Count(out.String(), "\n"))
}

func TestNewRunner_Invalid(t *testing.T) {
	cfg := params.DefaultConfig()
	cfg.BlockWidth = 24
	_, err := NewRunner(cfg, DefaultGlyphs)
	assert.ErrorContains(t, "block width", err)

	cfg = params.DefaultConfig()
	cfg.Seed = "cells:99"
	_, err = NewRunner(cfg, DefaultGlyphs)
	assert.ErrorContains(t, "could not build seed", err)
}
