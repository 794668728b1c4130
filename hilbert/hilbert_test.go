package hilbert

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pdok/scurve/bithelp"
	"github.com/pdok/scurve/morton"
)

// TestDecode8GoldenTable pins down the full order-2 curve, one entry per
// index, derived from the ]-shaped construction convention.
func TestDecode8GoldenTable(t *testing.T) {
	want := [16][2]uint8{
		{0, 0}, {0, 1}, {1, 1}, {1, 0},
		{2, 0}, {3, 0}, {3, 1}, {2, 1},
		{2, 2}, {3, 2}, {3, 3}, {2, 3},
		{1, 3}, {1, 2}, {0, 2}, {0, 3},
	}
	for code, wantXY := range want {
		gotX, gotY := Decode8(uint8(code))
		require.Equalf(t, wantXY, [2]uint8{gotX, gotY}, `wrong coords for index %v`, code)
	}
}

func TestDecodeIsBijective(t *testing.T) {
	t.Run("8bit", func(t *testing.T) {
		var seen [16][16]bool
		for code := 0; code <= 0xff; code++ {
			x, y := Decode8(uint8(code))
			require.Falsef(t, seen[x][y], `coords (%v,%v) produced twice, last by index %v`, x, y, code)
			seen[x][y] = true
		}
	})
	t.Run("16bit", func(t *testing.T) {
		var seen [256 * 256]bool
		for code := 0; code <= 0xffff; code++ {
			x, y := Decode16(uint16(code))
			cell := uint(x)*256 + uint(y)
			require.Falsef(t, seen[cell], `coords (%v,%v) produced twice, last by index %v`, x, y, code)
			seen[cell] = true
		}
	})
}

// TestDecodeLocality checks the defining Hilbert property: consecutive
// indices decode to cells at Chebyshev distance exactly 1.
func TestDecodeLocality(t *testing.T) {
	chebyshev := func(a, b uint8) int {
		if a > b {
			return int(a - b)
		}
		return int(b - a)
	}
	t.Run("8bit", func(t *testing.T) {
		prevX, prevY := Decode8(0)
		for code := 1; code <= 0xff; code++ {
			x, y := Decode8(uint8(code))
			dist := max(chebyshev(prevX, x), chebyshev(prevY, y))
			require.Equalf(t, 1, dist, `indices %v and %v decode to non-adjacent cells (%v,%v) and (%v,%v)`,
				code-1, code, prevX, prevY, x, y)
			prevX, prevY = x, y
		}
	})
	t.Run("16bit", func(t *testing.T) {
		prevX, prevY := Decode16(0)
		for code := 1; code <= 0xffff; code++ {
			x, y := Decode16(uint16(code))
			dist := max(chebyshev(prevX, x), chebyshev(prevY, y))
			require.Equalf(t, 1, dist, `indices %v and %v decode to non-adjacent cells (%v,%v) and (%v,%v)`,
				code-1, code, prevX, prevY, x, y)
			prevX, prevY = x, y
		}
	})
}

func TestDecodeBoundaries(t *testing.T) {
	x8, y8 := Decode8(0)
	require.Equal(t, [2]uint8{0, 0}, [2]uint8{x8, y8})
	x8, y8 = Decode8(0xff)
	require.Equal(t, [2]uint8{0, 0xf}, [2]uint8{x8, y8})

	x16, y16 := Decode16(0)
	require.Equal(t, [2]uint8{0, 0}, [2]uint8{x16, y16})
	x16, y16 = Decode16(0xffff)
	require.Equal(t, [2]uint8{0, 0xff}, [2]uint8{x16, y16})

	x32, y32 := Decode32(0)
	require.Equal(t, [2]uint16{0, 0}, [2]uint16{x32, y32})
	x32, y32 = Decode32(0xffffffff)
	require.Equal(t, [2]uint16{0, 0xffff}, [2]uint16{x32, y32})

	x64, y64 := Decode64(0)
	require.Equal(t, [2]uint32{0, 0}, [2]uint32{x64, y64})
	x64, y64 = Decode64(0xffffffffffffffff)
	require.Equal(t, [2]uint32{0, 0xffffffff}, [2]uint32{x64, y64})
}

func TestDecodeConsistencyAcrossWidths(t *testing.T) {
	for code := 0; code <= 0xffff; code++ {
		x16, y16 := Decode16(uint16(code))
		x32, y32 := Decode32(uint32(code))
		x64, y64 := Decode64(uint64(code))
		require.Equalf(t, [2]uint16{uint16(x16), uint16(y16)}, [2]uint16{x32, y32},
			`32-bit decode disagrees with 16-bit decode for index %v`, code)
		require.Equalf(t, [2]uint32{uint32(x32), uint32(y32)}, [2]uint32{x64, y64},
			`64-bit decode disagrees with 32-bit decode for index %v`, code)
		if code <= 0xff {
			x8, y8 := Decode8(uint8(code))
			require.Equalf(t, [2]uint8{uint8(x16), uint8(y16)}, [2]uint8{x8, y8},
				`16-bit decode disagrees with 8-bit decode for index %v`, code)
		}
	}
}

func TestDecodeIsDeterministic(t *testing.T) {
	for _, code := range []uint64{0, 1, 42, 0xdeadbeef, 0xffffffffffffffff} {
		x1, y1 := Decode64(code)
		x2, y2 := Decode64(code)
		require.Equal(t, [2]uint32{x1, y1}, [2]uint32{x2, y2})
	}
}

// scanDecode16 is an independent closed form of the same curve: split the
// index like a Morton code, derive the per-level swap and complement bits
// with exclusive XOR scans, then apply them with a masked bit swap.
func scanDecode16(code uint16) (x, y uint8) {
	low, high := morton.Decode16(code)
	and := low & high // complements the coordinates one level deeper
	xor := low ^ high // the base pattern's x coordinate
	notXor := ^xor    // swaps the coordinates one level deeper

	swapMask := bithelp.XorScanExclusive(notXor)
	complementMask := bithelp.XorScanExclusive(and)

	coordX, coordY := bithelp.SwapMasked(swapMask, xor, high)
	return coordX ^ complementMask, coordY ^ complementMask
}

func TestDecodeMatchesScanForm(t *testing.T) {
	for code := 0; code <= 0xffff; code++ {
		gotX, gotY := Decode16(uint16(code))
		wantX, wantY := scanDecode16(uint16(code))
		require.Equalf(t, [2]uint8{wantX, wantY}, [2]uint8{gotX, gotY},
			`table decode disagrees with scan decode for index %016b`, code)
	}
}

// TestOrientationTables sanity-checks the constant data: every orientation
// visits each quadrant cell exactly once, and transitions stay in the group.
func TestOrientationTables(t *testing.T) {
	for o, offsets := range quadrantOffsets {
		var seen [2][2]bool
		for g, offset := range offsets {
			require.Falsef(t, seen[offset[0]][offset[1]],
				`orientation %v maps two groups to cell (%v,%v)`, o, offset[0], offset[1])
			seen[offset[0]][offset[1]] = true
			require.Less(t, uint8(nextOrientation[o][g]), uint8(4))
		}
	}
}

func BenchmarkDecode64(b *testing.B) {
	var x, y uint32
	for i := 0; i < b.N; i++ {
		x, y = Decode64(uint64(i) * 0x9e3779b97f4a7c15)
	}
	_, _ = x, y
}
