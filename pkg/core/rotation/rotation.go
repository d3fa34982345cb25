// Package rotation resolves the effective rotation of a grid cell.
//
// Schemes that fold a sheet head-to-head (tent cards, side-fold cards, 8-up
// signatures) print one row of pages upside down. Which row turns depends on
// the global rotation, an optional rotation type and the scheme's default
// policy. The whole decision is one table:
//
//	rotation  type     top row  bottom row
//	0         any      0        0
//	180       top      180      0
//	180       bottom   0        180
//	180       none     180      180   (BothRows policy)
//	180       none     180      0     (TopRowOnly policy, tent cards)
package rotation

import (
	"github.com/matzehuels/imposer/pkg/core/grid"
)

// Degrees accepted for rotation.
const (
	None    = 0
	Flipped = 180
)

// Type selects which row a 180° rotation applies to.
type Type string

// Rotation types. TypeDefault defers to the scheme's [Policy].
const (
	TypeDefault Type = ""
	TypeTop     Type = "top"
	TypeBottom  Type = "bottom"
)

// Valid reports whether t is a known rotation type.
func (t Type) Valid() bool {
	switch t {
	case TypeDefault, TypeTop, TypeBottom:
		return true
	}
	return false
}

// Row classifies a grid row.
type Row int

const (
	RowBottom Row = iota
	RowTop
)

func (r Row) String() string {
	if r == RowTop {
		return "top"
	}
	return "bottom"
}

// RowOf classifies a grid row. Single-row grids only have a bottom row.
func RowOf(g grid.Grid, row int) Row {
	if g.IsTop(row) {
		return RowTop
	}
	return RowBottom
}

// Policy decides which rows turn when rotation is 180 and no type is given.
type Policy int

const (
	// BothRows rotates every row.
	BothRows Policy = iota
	// TopRowOnly rotates the top row only. Tent cards default to this.
	TopRowOnly
)

// Resolve returns the effective rotation (0 or 180) of a cell in row.
func Resolve(deg int, typ Type, row Row, p Policy) int {
	if deg != Flipped {
		return None
	}
	switch typ {
	case TypeTop:
		return flipIf(row == RowTop)
	case TypeBottom:
		return flipIf(row == RowBottom)
	}
	if p == TopRowOnly {
		return flipIf(row == RowTop)
	}
	return Flipped
}

func flipIf(ok bool) int {
	if ok {
		return Flipped
	}
	return None
}

// Origin returns the draw origin for content placed in cell at deg.
// A 180° turn about the origin sweeps content into the third quadrant, so
// the origin moves to the cell's opposite corner to keep the same bounds.
func Origin(c grid.Cell, deg int) (x, y float64) {
	if deg == Flipped {
		return c.X + c.W, c.Y + c.H
	}
	return c.X, c.Y
}
