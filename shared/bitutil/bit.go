// Package bitutil maps cell indices onto fixed-width, most significant bit
// first storage blocks.
package bitutil

// BlockLength returns the number of w-bit blocks needed to hold n bits.
func BlockLength(n, w int) int {
	return (n + w - 1) / w
}

// Locate returns the block holding bit i and the shift of that bit inside the
// block. Bits are packed in reverse order: the first bit of a block sits at
// shift w-1 and the last one at shift 0.
func Locate(i, w int) (block int, shift uint) {
	return i / w, uint(w - 1 - i%w)
}

// PaddingBits returns how many low-order bits of the final block are unused
// when n bits are packed into w-bit blocks.
func PaddingBits(n, w int) int {
	if rem := n % w; rem != 0 {
		return w - rem
	}
	return 0
}
