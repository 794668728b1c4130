// Package bithelp holds the bit twiddling shared by the curve decoders.
package bithelp

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// NumBits returns the number of bits in the unsigned integer type I.
func NumBits[I constraints.Unsigned]() int {
	return bits.OnesCount64(uint64(^I(0)))
}

// LowOrderMask returns a mask selecting the length lowest bits: 0b00001111.
func LowOrderMask[I constraints.Unsigned](length int) I {
	if length >= NumBits[I]() {
		return ^I(0)
	}
	return I(1)<<length - 1
}

// StripedMask returns a mask with alternating runs of stripe zeros and stripe
// ones, a run of ones at the low end: 0b00110011.
// stripe must be a power of two.
func StripedMask[I constraints.Unsigned](stripe int) I {
	stripes := LowOrderMask[I](stripe)
	for length := 2 * stripe; length < NumBits[I](); length *= 2 {
		stripes |= stripes << length
	}
	return stripes
}

// XorScan computes the high-to-low inclusive XOR scan of v:
// bit k of the result is the XOR of bits k and up of v.
// It is a bitwise rendition of the Hillis/Steele parallel scan.
func XorScan[I constraints.Unsigned](v I) I {
	for stride := 1; stride < NumBits[I](); stride *= 2 {
		v ^= v >> stride
	}
	return v
}

// XorScanExclusive computes the high-to-low exclusive XOR scan of v:
// bit k of the result is the XOR of bits k+1 and up of v.
func XorScanExclusive[I constraints.Unsigned](v I) I {
	return XorScan(v >> 1)
}

// SwapMasked swaps the bits of a and b in the positions selected by mask.
func SwapMasked[I constraints.Unsigned](mask, a, b I) (I, I) {
	keep := ^mask
	return a&keep | b&mask, b&keep | a&mask
}
