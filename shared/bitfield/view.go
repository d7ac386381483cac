package bitfield

import (
	"github.com/prysmaticlabs/automaton/shared/bitutil"
	"golang.org/x/exp/constraints"
)

// View addresses a single cell by its block and shift so that repeated access
// to the same position skips the index arithmetic. A view aliases the field it
// was taken from and must not outlive a single pass over it.
type View[B constraints.Unsigned] struct {
	block *B
	shift uint
}

// ViewAt returns a view of cell i.
func (f *Field[B]) ViewAt(i int) View[B] {
	f.check(i)
	block, shift := bitutil.Locate(i, f.width)
	return View[B]{block: &f.blocks[block], shift: shift}
}

// Get reports whether the viewed cell is alive.
func (v View[B]) Get() bool {
	return *v.block>>v.shift&1 == 1
}

// Flip toggles the viewed cell.
func (v View[B]) Flip() {
	*v.block ^= B(1) << v.shift
}

// ConditionalFlip toggles the viewed cell when cond is true.
func (v View[B]) ConditionalFlip(cond bool) {
	if cond {
		v.Flip()
	}
}
