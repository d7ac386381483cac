// Package automaton advances a one-dimensional, two-state cellular automaton
// held in a bit-packed field.
package automaton

import (
	"fmt"

	"github.com/prysmaticlabs/automaton/shared/bitfield"
	"golang.org/x/exp/constraints"
)

// Step replaces the contents of f with its next generation under rules.
//
// The update runs in place in a single left to right pass. A 3-cell window
// slides over the row and the result computed for a window's center is only
// written back one iteration later, when that cell has become the left edge
// of the window and is read for the last time. Every neighborhood is therefore
// evaluated on previous generation values without a second row buffer.
//
// Cells 0 and f.Len()-1 are boundary cells and keep their value forever. Rows
// shorter than three cells consist of boundary cells only and are left
// untouched.
func Step[B constraints.Unsigned](f *bitfield.Field[B], rules RuleTable) {
	n := f.Len()
	if n < 3 {
		return
	}
	left, center, right := f.ViewAt(0), f.ViewAt(1), f.ViewAt(2)

	// The pending value for cell 0 is its own value, so the first write is a no-op.
	pending := left.Get()
	var result bool
	for i := 3; i <= n; i++ {
		result = rules.Evaluate(left.Get(), center.Get(), right.Get())
		left.ConditionalFlip(left.Get() != pending)

		pending = result
		left, center = center, right
		// i == n is one past the last cell. The right window is not moved and
		// never read again; the iteration only exists to flush cell n-3.
		if i < n {
			right = f.ViewAt(i)
		}
	}
	// left now sits at n-2. Cell n-1 is never written.
	left.ConditionalFlip(left.Get() != result)
}

// Engine owns one automaton instance: the field, its rule table and the
// generation counter. The block width is chosen at construction.
type Engine struct {
	cells      bitfield.Cells
	step       func()
	rules      RuleTable
	width      int
	sizeBytes  int
	generation uint64
}

// NewEngine returns an engine over a row of n cells packed into blocks of the
// given bit width (8, 16, 32 or 64) with the alive cells set. Any other width
// panics.
func NewEngine(width, n int, alive []int, rules RuleTable) *Engine {
	switch width {
	case 8:
		return newEngine[uint8](n, alive, rules)
	case 16:
		return newEngine[uint16](n, alive, rules)
	case 32:
		return newEngine[uint32](n, alive, rules)
	case 64:
		return newEngine[uint64](n, alive, rules)
	default:
		panic(fmt.Sprintf("automaton: unsupported block width %d", width))
	}
}

func newEngine[B constraints.Unsigned](n int, alive []int, rules RuleTable) *Engine {
	f := bitfield.New[B](n)
	for _, i := range alive {
		f.SetBitAt(i, true)
	}
	return &Engine{
		cells:     f,
		step:      func() { Step(f, rules) },
		rules:     rules,
		width:     f.Width(),
		sizeBytes: f.SizeBytes(),
	}
}

// Step advances the automaton by one generation.
func (e *Engine) Step() {
	e.step()
	e.generation++
}

// Cells exposes the current generation.
func (e *Engine) Cells() bitfield.Cells {
	return e.cells
}

// Generation returns the number of steps taken so far.
func (e *Engine) Generation() uint64 {
	return e.generation
}

// Rules returns the rule table the engine was built with.
func (e *Engine) Rules() RuleTable {
	return e.rules
}

// Width returns the block width in bits.
func (e *Engine) Width() int {
	return e.width
}

// SizeBytes returns the memory held by the packed row.
func (e *Engine) SizeBytes() int {
	return e.sizeBytes
}
