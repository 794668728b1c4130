// Package render draws space-filling curves as text, one glyph per grid cell.
package render

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/truncate"

	"github.com/pdok/scurve/hilbert"
	"github.com/pdok/scurve/morton"
)

// CurveKind selects which decoder traces the curve.
type CurveKind string

const (
	Morton  CurveKind = `morton`
	Hilbert CurveKind = `hilbert`
)

// MaxOrder is the highest drawable curve order (2^8 x 2^8 cells).
const MaxOrder = 8

// directions toward a neighboring cell, y growing downward like the rows
const (
	dirUp = iota
	dirRight
	dirDown
	dirLeft
)

// path glyph indices, keyed by the pair of cell edges the path runs through
const (
	pathVertical = iota
	pathHorizontal
	pathUpRight
	pathRightDown
	pathDownLeft
	pathLeftUp
)

// Draw renders the curve of the given kind and order with the profile's
// palette. The result has 2^order rows of 2^order cells, the first row being
// the y=0 row. Rows are clipped to the profile's MaxWidth if set.
func Draw(kind CurveKind, order int, profile Profile) (string, error) {
	if order < 1 || order > MaxOrder {
		return ``, fmt.Errorf(`order %d out of range 1-%d`, order, MaxOrder)
	}
	palette, ok := profile.Palettes.Get(profile.Palette)
	if !ok {
		return ``, fmt.Errorf(`unknown palette %q`, profile.Palette)
	}
	points, err := curvePoints(kind, order)
	if err != nil {
		return ``, err
	}

	size := 1 << order
	cells := make([]string, size*size)
	last := len(points) - 1
	cells[cellIndex(points[0], size)] = startGlyph(palette, points[0], points[1])
	cells[cellIndex(points[last], size)] = endGlyph(palette, points[last-1], points[last])
	for i := 1; i < last; i++ {
		cells[cellIndex(points[i], size)] = pathGlyph(palette, points[i-1], points[i], points[i+1])
	}

	rows := make([]string, size)
	for y := 0; y < size; y++ {
		row := strings.Join(cells[y*size:(y+1)*size], ``)
		if profile.MaxWidth > 0 {
			row = truncate.StringWithTail(row, profile.MaxWidth, `...`)
		}
		rows[y] = row
	}
	return strings.Join(rows, "\n"), nil
}

// curvePoints decodes all indices of the order's curve, in curve order.
// Orders below 8 are carved out of the 16-bit curve by self-similarity;
// for the Hilbert curve an odd number of skipped levels leaves a diagonal
// reflection, hence the coordinate swap at odd orders.
func curvePoints(kind CurveKind, order int) ([][2]int, error) {
	size := 1 << order
	points := make([][2]int, size*size)
	switch kind {
	case Morton:
		it := morton.NewIterator(uint16(0))
		for i := range points {
			x, y, _ := it.Next()
			points[i] = [2]int{int(x), int(y)}
		}
	case Hilbert:
		for i := range points {
			x, y := hilbert.Decode16(uint16(i))
			if order%2 == 1 {
				x, y = y, x
			}
			points[i] = [2]int{int(x), int(y)}
		}
	default:
		return nil, fmt.Errorf(`unknown curve kind %q`, kind)
	}
	return points, nil
}

func cellIndex(point [2]int, size int) int {
	return point[1]*size + point[0]
}

// direction returns the direction from a cell toward a neighboring cell,
// or -1 if the cells are not grid neighbors.
func direction(from, to [2]int) int {
	dx := to[0] - from[0]
	dy := to[1] - from[1]
	switch [2]int{dx, dy} {
	case [2]int{0, -1}:
		return dirUp
	case [2]int{1, 0}:
		return dirRight
	case [2]int{0, 1}:
		return dirDown
	case [2]int{-1, 0}:
		return dirLeft
	}
	return -1
}

func startGlyph(palette Palette, start, next [2]int) string {
	dir := direction(start, next)
	if dir < 0 {
		return palette.Jump
	}
	return palette.Start[dir]
}

func endGlyph(palette Palette, prev, end [2]int) string {
	dir := direction(prev, end) // direction of travel, not toward the neighbor
	if dir < 0 {
		return palette.Jump
	}
	return palette.End[dir]
}

func pathGlyph(palette Palette, prev, cell, next [2]int) string {
	toPrev := direction(cell, prev)
	toNext := direction(cell, next)
	if toPrev < 0 || toNext < 0 {
		return palette.Jump
	}
	edges := [2]int{toPrev, toNext}
	if toPrev > toNext {
		edges = [2]int{toNext, toPrev}
	}
	switch edges {
	case [2]int{dirUp, dirDown}:
		return palette.Path[pathVertical]
	case [2]int{dirRight, dirLeft}:
		return palette.Path[pathHorizontal]
	case [2]int{dirUp, dirRight}:
		return palette.Path[pathUpRight]
	case [2]int{dirRight, dirDown}:
		return palette.Path[pathRightDown]
	case [2]int{dirDown, dirLeft}:
		return palette.Path[pathDownLeft]
	default: // dirUp, dirLeft
		return palette.Path[pathLeftUp]
	}
}
