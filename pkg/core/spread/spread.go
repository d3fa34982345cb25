// Package spread pairs pages for saddle-stitch bindings.
//
// A saddle-stitched booklet nests folded sheets, so the outermost sheet
// carries the first and last pages, the next sheet the second and
// second-to-last, and so on. For an 8-page booklet:
//
//	(8,1) (7,2) (6,3) (5,4)
//
// Page numbers in this package are 1-indexed, as printers count them.
package spread

// Spread is one side of a folded sheet: a pair of facing pages.
type Spread struct {
	Left, Right int
}

// Generate returns the saddle-stitch spreads for adjusted pages, outermost
// first. adjusted is expected to be a multiple of 4; the result has
// adjusted/2 spreads.
func Generate(adjusted int) []Spread {
	if adjusted <= 0 {
		return nil
	}
	out := make([]Spread, 0, adjusted/2)
	for l, r := adjusted, 1; l > r; l, r = l-1, r+1 {
		out = append(out, Spread{Left: l, Right: r})
	}
	return out
}

// Slots returns the physical (left, right) slot assignment of s.
// Odd pages are rectos, so the odd page takes the right slot and the even
// page the left slot, whatever order the pair was generated in.
func Slots(s Spread) (left, right int) {
	if s.Left%2 != 0 && s.Right%2 == 0 {
		return s.Right, s.Left
	}
	return s.Left, s.Right
}

// RoundUp rounds n up to the next multiple of unit.
func RoundUp(n, unit int) int {
	if unit <= 0 || n <= 0 {
		return 0
	}
	return (n + unit - 1) / unit * unit
}
