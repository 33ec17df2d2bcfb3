package crc

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// Reflect mirrors the low width bits of v. Bits at or above width are dropped.
func Reflect(v uint64, width uint) uint64 {
	if width == 0 {
		return 0
	}
	return bits.Reverse64(v) >> (64 - width)
}

// ReflectByte mirrors the 8 bits of b.
func ReflectByte(b byte) byte {
	return bits.Reverse8(b)
}

// Reverse is Reflect for any unsigned type.
func Reverse[T constraints.Unsigned](v T, width uint) T {
	return T(Reflect(uint64(v), width))
}
