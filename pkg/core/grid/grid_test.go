package grid

import "testing"

func TestCellOrigin(t *testing.T) {
	g := New(2, 4, 100, 200)

	tests := []struct {
		row, col int
		wantX    float64
		wantY    float64
	}{
		{0, 0, 0, 0},
		{0, 3, 300, 0},
		{1, 0, 0, 200},
		{1, 2, 200, 200},
	}

	for _, tt := range tests {
		c := g.Cell(tt.row, tt.col)
		if c.X != tt.wantX || c.Y != tt.wantY {
			t.Errorf("Cell(%d,%d) = (%v,%v), want (%v,%v)", tt.row, tt.col, c.X, c.Y, tt.wantX, tt.wantY)
		}
		if c.W != 100 || c.H != 200 {
			t.Errorf("Cell(%d,%d) size = %vx%v, want 100x200", tt.row, tt.col, c.W, c.H)
		}
	}
}

func TestSheetSize(t *testing.T) {
	tests := []struct {
		name       string
		g          Grid
		wantW      float64
		wantH      float64
		wantLength int
	}{
		{"single", New(1, 1, 612, 792), 612, 792, 1},
		{"spread", New(1, 2, 612, 792), 1224, 792, 2},
		{"tri-fold", New(1, 3, 100, 50), 300, 50, 3},
		{"eight-up", New(2, 4, 100, 50), 400, 100, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := tt.g.SheetSize()
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("SheetSize() = %vx%v, want %vx%v", w, h, tt.wantW, tt.wantH)
			}
			if got := tt.g.Len(); got != tt.wantLength {
				t.Errorf("Len() = %d, want %d", got, tt.wantLength)
			}
		})
	}
}

func TestReadingOrder(t *testing.T) {
	g := New(2, 2, 10, 10)
	got := g.Reading()

	want := [][2]int{{1, 0}, {1, 1}, {0, 0}, {0, 1}}
	if len(got) != len(want) {
		t.Fatalf("Reading() returned %d cells, want %d", len(got), len(want))
	}
	for i, c := range got {
		if c.Row != want[i][0] || c.Col != want[i][1] {
			t.Errorf("Reading()[%d] = (%d,%d), want (%d,%d)", i, c.Row, c.Col, want[i][0], want[i][1])
		}
	}
}

func TestCellsRowMajor(t *testing.T) {
	g := New(2, 3, 1, 1)
	cells := g.Cells()
	if cells[0].Row != 0 || cells[0].Col != 0 {
		t.Errorf("first cell = (%d,%d), want (0,0)", cells[0].Row, cells[0].Col)
	}
	if last := cells[len(cells)-1]; last.Row != 1 || last.Col != 2 {
		t.Errorf("last cell = (%d,%d), want (1,2)", last.Row, last.Col)
	}
}

func TestIsTop(t *testing.T) {
	if New(1, 2, 1, 1).IsTop(0) {
		t.Error("single-row grid should have no top row")
	}
	g := New(2, 1, 1, 1)
	if g.IsTop(0) {
		t.Error("row 0 of a two-row grid is the bottom row")
	}
	if !g.IsTop(1) {
		t.Error("row 1 of a two-row grid is the top row")
	}
}

func TestCellEdges(t *testing.T) {
	c := New(2, 2, 10, 20).Cell(1, 1)
	if c.Right() != 20 || c.Top() != 40 {
		t.Errorf("edges = (%v,%v), want (20,40)", c.Right(), c.Top())
	}
	if c.CenterX() != 15 || c.CenterY() != 30 {
		t.Errorf("center = (%v,%v), want (15,30)", c.CenterX(), c.CenterY())
	}
}
