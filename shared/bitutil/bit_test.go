package bitutil

import (
	"testing"
)

func TestBlockLength(t *testing.T) {
	tests := []struct {
		n    int
		w    int
		want int
	}{
		{n: 1, w: 8, want: 1},
		{n: 8, w: 8, want: 1},
		{n: 9, w: 8, want: 2},
		{n: 24, w: 8, want: 3},
		{n: 24, w: 16, want: 2},
		{n: 64, w: 64, want: 1},
		{n: 65, w: 64, want: 2},
	}
	for _, tt := range tests {
		if got := BlockLength(tt.n, tt.w); got != tt.want {
			t.Errorf("BlockLength(%d, %d) = %d, want = %d", tt.n, tt.w, got, tt.want)
		}
	}
}

func TestLocate(t *testing.T) {
	tests := []struct {
		i     int
		w     int
		block int
		shift uint
	}{
		{i: 0, w: 8, block: 0, shift: 7},
		{i: 7, w: 8, block: 0, shift: 0},
		{i: 8, w: 8, block: 1, shift: 7},
		{i: 22, w: 8, block: 2, shift: 1},
		{i: 22, w: 16, block: 1, shift: 9},
		{i: 63, w: 64, block: 0, shift: 0},
		{i: 64, w: 64, block: 1, shift: 63},
	}
	for _, tt := range tests {
		block, shift := Locate(tt.i, tt.w)
		if block != tt.block || shift != tt.shift {
			t.Errorf("Locate(%d, %d) = (%d, %d), want = (%d, %d)", tt.i, tt.w, block, shift, tt.block, tt.shift)
		}
	}
}

func TestPaddingBits(t *testing.T) {
	tests := []struct {
		n    int
		w    int
		want int
	}{
		{n: 24, w: 8, want: 0},
		{n: 20, w: 8, want: 4},
		{n: 24, w: 16, want: 8},
		{n: 1, w: 64, want: 63},
	}
	for _, tt := range tests {
		if got := PaddingBits(tt.n, tt.w); got != tt.want {
			t.Errorf("PaddingBits(%d, %d) = %d, want = %d", tt.n, tt.w, got, tt.want)
		}
	}
}
