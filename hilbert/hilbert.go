// Package hilbert decodes indices on the 2D Hilbert curve.
//
// Unlike the Morton curve, the Hilbert curve only ever moves between grid
// neighbors, which makes it the better sort order when spatial locality
// matters. The price is a more involved construction: the curve is built
// recursively from quadrant subdivisions whose local traversal order depends
// on a rotation/reflection inherited from the levels above.
//
// The convention used here is the ]-shaped base pattern
// (0,0) → (1,0) → (1,1) → (0,1), the variant carried to N dimensions in
// "Compact Hilbert Indices" by Chris Hamilton (CS-2006-07). Under this
// convention the curve starts in (0,0) and ends in (0, 2^(W/2)−1).
package hilbert

import (
	"golang.org/x/exp/constraints"

	"github.com/pdok/scurve/bithelp"
)

// orientation is the symmetry transform applied to a quadrant's local
// traversal order. The recursion only ever produces these four elements of
// the square's symmetry group.
type orientation uint8

const (
	identity     orientation = iota
	diagonal                 // reflected across the main diagonal (x and y swapped)
	rotated                  // rotated 180 degrees (x and y complemented)
	antidiagonal             // reflected across the antidiagonal (swapped and complemented)
)

// quadrantOffsets maps (orientation, 2-bit index group) to the cell offset of
// the group's quadrant within the current square.
var quadrantOffsets = [4][4][2]uint8{
	identity:     {{0, 0}, {1, 0}, {1, 1}, {0, 1}},
	diagonal:     {{0, 0}, {0, 1}, {1, 1}, {1, 0}},
	rotated:      {{1, 1}, {0, 1}, {0, 0}, {1, 0}},
	antidiagonal: {{1, 1}, {1, 0}, {0, 0}, {0, 1}},
}

// nextOrientation maps (orientation, 2-bit index group) to the orientation of
// the sub-square that group selects: the first quadrant toggles the diagonal
// reflection, the last toggles both the reflection and the rotation, the two
// middle quadrants keep the orientation.
var nextOrientation = [4][4]orientation{
	identity:     {diagonal, identity, identity, antidiagonal},
	diagonal:     {identity, diagonal, diagonal, rotated},
	rotated:      {antidiagonal, rotated, rotated, diagonal},
	antidiagonal: {rotated, antidiagonal, antidiagonal, identity},
}

// decode walks the index in 2-bit groups from most- to least-significant.
// Each group selects a quadrant at the current subdivision level; the tables
// above resolve it to a coordinate contribution and the orientation to use
// one level deeper.
func decode[I constraints.Unsigned](code I) (x, y I) {
	o := identity
	for level := bithelp.NumBits[I]()/2 - 1; level >= 0; level-- {
		g := code >> (2 * level) & 3
		offset := quadrantOffsets[o][g]
		x |= I(offset[0]) << level
		y |= I(offset[1]) << level
		o = nextOrientation[o][g]
	}
	return x, y
}

// Decode8 decodes an 8-bit Hilbert index. x and y each fit in 4 bits.
func Decode8(code uint8) (x, y uint8) {
	return decode(code)
}

// Decode16 decodes a 16-bit Hilbert index into two 8-bit coordinates.
func Decode16(code uint16) (x, y uint8) {
	x16, y16 := decode(code)
	return uint8(x16), uint8(y16)
}

// Decode32 decodes a 32-bit Hilbert index into two 16-bit coordinates.
func Decode32(code uint32) (x, y uint16) {
	x32, y32 := decode(code)
	return uint16(x32), uint16(y32)
}

// Decode64 decodes a 64-bit Hilbert index into two 32-bit coordinates.
func Decode64(code uint64) (x, y uint32) {
	x64, y64 := decode(code)
	return uint32(x64), uint32(y64)
}
