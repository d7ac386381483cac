package automaton

import (
	"math/rand"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const (
	// SeedCanonical is the reference start state.
	SeedCanonical = "canonical"
	// SeedSingle leaves only the second to last cell alive.
	SeedSingle = "single"

	cellsPrefix = "cells:"
)

// canonicalBlocks is the reference seed as consecutive 8-bit blocks.
var canonicalBlocks = []byte{0, 1, 2}

// ErrInvalidSeed is returned for seed descriptions that cannot be applied to
// the configured row.
var ErrInvalidSeed = errors.New("invalid seed")

// CanonicalSeed returns the alive cells of the reference start state, the
// blocks {0, 1, 2} packed most significant bit first into bytes. Cells beyond
// n are dropped. For n = 24 this is cells 15 and 22.
func CanonicalSeed(n int) []int {
	var alive []int
	for b, block := range canonicalBlocks {
		for bit := 0; bit < 8; bit++ {
			i := b*8 + bit
			if i < n && block>>uint(7-bit)&1 == 1 {
				alive = append(alive, i)
			}
		}
	}
	return alive
}

// ParseSeed resolves a seed description into the alive cells of an n-cell row.
// Accepted forms are "canonical", "single", "cells:i,j,k" and a pattern of
// '#' (alive) and '.' (dead) no longer than the row.
func ParseSeed(spec string, n int) ([]int, error) {
	spec = strings.TrimSpace(spec)
	switch {
	case spec == "" || spec == SeedCanonical:
		return CanonicalSeed(n), nil
	case spec == SeedSingle:
		if n < 2 {
			return nil, errors.Wrapf(ErrInvalidSeed, "%q needs at least 2 cells, got %d", spec, n)
		}
		return []int{n - 2}, nil
	case strings.HasPrefix(spec, cellsPrefix):
		return parseCellList(strings.TrimPrefix(spec, cellsPrefix), n)
	default:
		return parsePattern(spec, n)
	}
}

func parseCellList(list string, n int) ([]int, error) {
	seen := make(map[int]bool)
	alive := make([]int, 0)
	for _, part := range strings.Split(list, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		i, err := strconv.Atoi(part)
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidSeed, "could not parse cell %q: %v", part, err)
		}
		if i < 0 || i >= n {
			return nil, errors.Wrapf(ErrInvalidSeed, "cell %d out of range [0, %d)", i, n)
		}
		if !seen[i] {
			seen[i] = true
			alive = append(alive, i)
		}
	}
	sort.Ints(alive)
	return alive, nil
}

func parsePattern(pattern string, n int) ([]int, error) {
	if len(pattern) > n {
		return nil, errors.Wrapf(ErrInvalidSeed, "pattern of %d cells does not fit %d", len(pattern), n)
	}
	alive := make([]int, 0)
	for i, c := range pattern {
		switch c {
		case '#':
			alive = append(alive, i)
		case '.':
		default:
			return nil, errors.Wrapf(ErrInvalidSeed, "unexpected %q at position %d", c, i)
		}
	}
	return alive, nil
}

// RandomSeed returns a reproducible seed where every cell is alive with
// probability one half.
func RandomSeed(rng *rand.Rand, n int) []int {
	alive := make([]int, 0, n/2)
	for i := 0; i < n; i++ {
		if rng.Intn(2) == 1 {
			alive = append(alive, i)
		}
	}
	return alive
}
