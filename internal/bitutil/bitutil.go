// Package bitutil provides small helpers for slicing bit-fields out of
// machine words.
package bitutil

import (
	"golang.org/x/exp/constraints"
)

// Mask returns a value with the low 'width' bits set.
// Widths of 64 and above saturate to all ones.
func Mask(width uint) uint64 {
	if width >= 64 {
		return ^uint64(0)
	}
	return 1<<width - 1
}

// Extract returns the 'width'-bit field of 'value' starting at bit 'shift'.
func Extract[T constraints.Unsigned](value T, shift, width uint) uint64 {
	return uint64(value) >> shift & Mask(width)
}

// Binary formats 'value' as a zero-padded binary string of exactly
// 'width' digits, most significant bit first.
func Binary[T constraints.Unsigned](value T, width uint) string {
	buf := make([]byte, width)
	v := uint64(value)
	for i := int(width) - 1; i >= 0; i-- {
		buf[i] = byte('0' + v&1)
		v >>= 1
	}
	return string(buf)
}
