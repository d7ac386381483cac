package automaton

import (
	"github.com/prysmaticlabs/automaton/shared/bitfield"
	gobitfield "github.com/prysmaticlabs/go-bitfield"
)

// StepDoubleBuffered computes the next generation into a separate buffer
// reading only previous generation values, then copies it back into cells.
// It follows the same boundary policy as Step and serves as its oracle.
func StepDoubleBuffered(cells bitfield.Cells, rules RuleTable) {
	n := cells.Len()
	if n < 3 {
		return
	}
	next := gobitfield.NewBitlist(uint64(n))
	next.SetBitAt(0, cells.BitAt(0))
	next.SetBitAt(uint64(n-1), cells.BitAt(n-1))
	for i := 1; i < n-1; i++ {
		next.SetBitAt(uint64(i), rules.Evaluate(cells.BitAt(i-1), cells.BitAt(i), cells.BitAt(i+1)))
	}
	for i := 0; i < n; i++ {
		cells.SetBitAt(i, next.BitAt(uint64(i)))
	}
}

// Snapshot returns the cells as a slice.
func Snapshot(cells bitfield.Cells) []bool {
	out := make([]bool, cells.Len())
	for i := range out {
		out[i] = cells.BitAt(i)
	}
	return out
}
