// Package bitfield stores a fixed number of binary cells packed into
// fixed-width unsigned blocks.
//
// Cells are packed most significant bit first: cell i lives in block i/W at
// bit W-1-(i%W), where W is the bit width of the block type. The unused low
// bits of the final block are padding. They are cleared on construction and
// never read or written through the Field API.
//
// Indices outside [0, Len()) are programming errors and cause a panic with an
// *IndexError value.
package bitfield

import (
	"fmt"
	"math/bits"

	"github.com/prysmaticlabs/automaton/shared/bitutil"
	"golang.org/x/exp/constraints"
)

var _ = Cells(&Field[uint8]{})

// Cells is the block-layout agnostic view of a field.
type Cells interface {
	Len() int
	BitAt(i int) bool
	SetBitAt(i int, val bool)
	Flip(i int)
	ConditionalFlip(i int, cond bool)
	Count() int
}

// IndexError is the panic value raised on out of range cell access.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("bitfield: index %d out of range [0, %d)", e.Index, e.Len)
}

// Field is a bit-packed row of n cells stored in blocks of type B.
type Field[B constraints.Unsigned] struct {
	blocks []B
	n      int
	width  int
}

// BlockWidth returns the number of bits held by one block of type B.
func BlockWidth[B constraints.Unsigned]() int {
	return bits.Len64(uint64(^B(0)))
}

// New returns a field of n dead cells.
func New[B constraints.Unsigned](n int) *Field[B] {
	if n < 1 {
		panic(fmt.Sprintf("bitfield: invalid length %d", n))
	}
	w := BlockWidth[B]()
	return &Field[B]{
		blocks: make([]B, bitutil.BlockLength(n, w)),
		n:      n,
		width:  w,
	}
}

// FromBlocks returns a field of n cells initialized from blocks. The slice is
// copied and must hold exactly the number of blocks needed for n cells.
func FromBlocks[B constraints.Unsigned](n int, blocks []B) *Field[B] {
	f := New[B](n)
	if len(blocks) != len(f.blocks) {
		panic(fmt.Sprintf("bitfield: %d cells need %d blocks, got %d", n, len(f.blocks), len(blocks)))
	}
	copy(f.blocks, blocks)
	f.clearPadding()
	return f
}

func (f *Field[B]) clearPadding() {
	pad := bitutil.PaddingBits(f.n, f.width)
	if pad == 0 {
		return
	}
	last := len(f.blocks) - 1
	f.blocks[last] &^= B(1)<<uint(pad) - 1
}

func (f *Field[B]) check(i int) {
	if i < 0 || i >= f.n {
		panic(&IndexError{Index: i, Len: f.n})
	}
}

// Len returns the number of cells.
func (f *Field[B]) Len() int {
	return f.n
}

// Width returns the block width in bits.
func (f *Field[B]) Width() int {
	return f.width
}

// SizeBytes returns the storage held by the blocks.
func (f *Field[B]) SizeBytes() int {
	return len(f.blocks) * f.width / 8
}

// BitAt reports whether cell i is alive.
func (f *Field[B]) BitAt(i int) bool {
	f.check(i)
	block, shift := bitutil.Locate(i, f.width)
	return f.blocks[block]>>shift&1 == 1
}

// Flip toggles cell i.
func (f *Field[B]) Flip(i int) {
	f.check(i)
	block, shift := bitutil.Locate(i, f.width)
	f.blocks[block] ^= B(1) << shift
}

// ConditionalFlip toggles cell i only when cond is true. The index is
// validated either way.
func (f *Field[B]) ConditionalFlip(i int, cond bool) {
	f.check(i)
	if cond {
		f.Flip(i)
	}
}

// SetBitAt sets cell i to val.
func (f *Field[B]) SetBitAt(i int, val bool) {
	f.ConditionalFlip(i, f.BitAt(i) != val)
}

// Count returns the number of alive cells.
func (f *Field[B]) Count() int {
	total := 0
	for _, b := range f.blocks {
		total += bits.OnesCount64(uint64(b))
	}
	return total
}

// Blocks returns a copy of the underlying blocks.
func (f *Field[B]) Blocks() []B {
	out := make([]B, len(f.blocks))
	copy(out, f.blocks)
	return out
}

// Bools returns the cells as a slice, index for index.
func (f *Field[B]) Bools() []bool {
	out := make([]bool, f.n)
	for i := range out {
		out[i] = f.BitAt(i)
	}
	return out
}

// Copy returns an independent copy of the field.
func (f *Field[B]) Copy() *Field[B] {
	return &Field[B]{
		blocks: f.Blocks(),
		n:      f.n,
		width:  f.width,
	}
}

// Equal reports whether both fields hold the same cells.
func (f *Field[B]) Equal(o *Field[B]) bool {
	if o == nil || f.n != o.n {
		return false
	}
	for i := range f.blocks {
		if f.blocks[i] != o.blocks[i] {
			return false
		}
	}
	return true
}
