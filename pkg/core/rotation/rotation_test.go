package rotation

import (
	"testing"

	"github.com/matzehuels/imposer/pkg/core/grid"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name   string
		deg    int
		typ    Type
		row    Row
		policy Policy
		want   int
	}{
		{"zero ignores type", 0, TypeTop, RowTop, BothRows, 0},
		{"zero ignores policy", 0, TypeDefault, RowTop, TopRowOnly, 0},
		{"top type bottom row", 180, TypeTop, RowBottom, BothRows, 0},
		{"top type top row", 180, TypeTop, RowTop, BothRows, 180},
		{"bottom type bottom row", 180, TypeBottom, RowBottom, BothRows, 180},
		{"bottom type top row", 180, TypeBottom, RowTop, BothRows, 0},
		{"default both rows top", 180, TypeDefault, RowTop, BothRows, 180},
		{"default both rows bottom", 180, TypeDefault, RowBottom, BothRows, 180},
		{"tent default top", 180, TypeDefault, RowTop, TopRowOnly, 180},
		{"tent default bottom", 180, TypeDefault, RowBottom, TopRowOnly, 0},
		{"tent explicit bottom", 180, TypeBottom, RowBottom, TopRowOnly, 180},
		{"unknown degrees", 90, TypeDefault, RowTop, BothRows, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Resolve(tt.deg, tt.typ, tt.row, tt.policy); got != tt.want {
				t.Errorf("Resolve(%d, %q, %v, %v) = %d, want %d", tt.deg, tt.typ, tt.row, tt.policy, got, tt.want)
			}
		})
	}
}

func TestRowOf(t *testing.T) {
	two := grid.New(2, 2, 1, 1)
	if RowOf(two, 1) != RowTop {
		t.Error("row 1 of two-row grid should be top")
	}
	if RowOf(two, 0) != RowBottom {
		t.Error("row 0 of two-row grid should be bottom")
	}
	if RowOf(grid.New(1, 3, 1, 1), 0) != RowBottom {
		t.Error("single-row grid should classify as bottom")
	}
}

func TestOrigin(t *testing.T) {
	c := grid.New(2, 2, 100, 200).Cell(1, 1)

	x, y := Origin(c, 0)
	if x != 100 || y != 200 {
		t.Errorf("Origin(0) = (%v,%v), want (100,200)", x, y)
	}

	x, y = Origin(c, 180)
	if x != 200 || y != 400 {
		t.Errorf("Origin(180) = (%v,%v), want (200,400)", x, y)
	}
}

func TestTypeValid(t *testing.T) {
	for _, typ := range []Type{TypeDefault, TypeTop, TypeBottom} {
		if !typ.Valid() {
			t.Errorf("%q should be valid", typ)
		}
	}
	if Type("left").Valid() {
		t.Error(`"left" should be invalid`)
	}
}
