// Package morton decodes indices on the 2D Morton (Z-order) curve.
//
// A Morton index interleaves the bits of two coordinates: the even-position
// bits form x, the odd-position bits form y. Decoding the sequence of all
// indices traces a fractal Z-shaped curve through the grid.
package morton

import (
	"math/bits"

	"golang.org/x/exp/constraints"

	"github.com/pdok/scurve/bithelp"
)

// deinterleave compacts the even-position bits of z into the low half of the
// word. It is the canonical magic-mask bit compaction: keep every other bit,
// then OR-shift neighboring groups together with ever wider stripes until
// half a word is grouped. Every step runs for every input, no branches.
func deinterleave[I constraints.Unsigned](z I) I {
	z &= bithelp.StripedMask[I](1)
	for stride := 1; stride < bithelp.NumBits[I]()/2; stride *= 2 {
		z = (z | z>>stride) & bithelp.StripedMask[I](2*stride)
	}
	return z
}

// decode splits a Morton index into its two coordinates.
// y reuses the x compaction after dropping the lowest bit.
func decode[I constraints.Unsigned](code I) (x, y I) {
	return deinterleave(code), deinterleave(code >> 1)
}

// Decode8 decodes an 8-bit Morton index. x and y each fit in 4 bits.
func Decode8(code uint8) (x, y uint8) {
	return decode(code)
}

// Decode16 decodes a 16-bit Morton index into two 8-bit coordinates.
func Decode16(code uint16) (x, y uint8) {
	x16, y16 := decode(code)
	return uint8(x16), uint8(y16)
}

// Decode32 decodes a 32-bit Morton index into two 16-bit coordinates.
func Decode32(code uint32) (x, y uint16) {
	x32, y32 := decode(code)
	return uint16(x32), uint16(y32)
}

// Decode64 decodes a 64-bit Morton index into two 32-bit coordinates.
func Decode64(code uint64) (x, y uint32) {
	x64, y64 := decode(code)
	return uint32(x64), uint32(y64)
}

// Iterator walks the Morton curve in index order without re-decoding every
// index. Incrementing an index flips a run of low-order bits; those flips
// split evenly over the even (x) and odd (y) bit positions, so the next
// coordinates follow from an XOR on the previous ones.
type Iterator[I constraints.Unsigned] struct {
	next I
	x, y I
	done bool
}

// NewIterator returns an Iterator positioned at start.
func NewIterator[I constraints.Unsigned](start I) *Iterator[I] {
	x, y := decode(start)
	return &Iterator[I]{next: start, x: x, y: y}
}

// Next returns the coordinates of the next index on the curve.
// ok is false once the whole curve has been walked.
func (it *Iterator[I]) Next() (x, y I, ok bool) {
	if it.done {
		return 0, 0, false
	}
	x, y = it.x, it.y
	code := it.next
	if code == ^I(0) {
		it.done = true
		return x, y, true
	}

	flipped := code ^ (code + 1) // a run of ones covering the flipped low bits
	numFlipped := bits.OnesCount64(uint64(flipped))
	numEven := numFlipped / 2
	numOdd := numFlipped - numEven

	// numOdd of the flipped bits sit on even positions (the extra flipped bit
	// goes to x on a tie), the other numEven sit on odd positions.
	it.x ^= flipped >> numEven
	it.y ^= flipped >> numOdd
	it.next = code + 1
	return x, y, true
}
