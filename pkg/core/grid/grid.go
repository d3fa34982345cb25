package grid

// Cell is a single slot of a grid. All coordinates are in points.
type Cell struct {
	Row, Col int
	X, Y     float64
	W, H     float64
}

// Right returns the x coordinate of the cell's right edge.
func (c Cell) Right() float64 { return c.X + c.W }

// Top returns the y coordinate of the cell's top edge.
func (c Cell) Top() float64 { return c.Y + c.H }

// CenterX returns the horizontal center point of the cell.
func (c Cell) CenterX() float64 { return c.X + c.W/2 }

// CenterY returns the vertical center point of the cell.
func (c Cell) CenterY() float64 { return c.Y + c.H/2 }

// Grid is an R×C arrangement of uniform page cells.
type Grid struct {
	Rows, Cols    int
	Width, Height float64 // size of one cell
}

// New returns a grid of rows×cols cells of w×h points each.
func New(rows, cols int, w, h float64) Grid {
	return Grid{Rows: rows, Cols: cols, Width: w, Height: h}
}

// Cell returns the cell at (row, col). Row 0 is the bottom row.
func (g Grid) Cell(row, col int) Cell {
	return Cell{
		Row: row,
		Col: col,
		X:   float64(col) * g.Width,
		Y:   float64(row) * g.Height,
		W:   g.Width,
		H:   g.Height,
	}
}

// SheetSize returns the sheet dimensions that exactly hold the grid.
func (g Grid) SheetSize() (w, h float64) {
	return float64(g.Cols) * g.Width, float64(g.Rows) * g.Height
}

// Len returns the number of cells.
func (g Grid) Len() int { return g.Rows * g.Cols }

// Cells returns every cell in row-major order starting at the bottom row.
func (g Grid) Cells() []Cell {
	out := make([]Cell, 0, g.Len())
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			out = append(out, g.Cell(r, c))
		}
	}
	return out
}

// Reading returns every cell in reading order: top row first, left to right.
func (g Grid) Reading() []Cell {
	out := make([]Cell, 0, g.Len())
	for r := g.Rows - 1; r >= 0; r-- {
		for c := 0; c < g.Cols; c++ {
			out = append(out, g.Cell(r, c))
		}
	}
	return out
}

// IsTop reports whether row is the top row of a multi-row grid.
// Single-row grids have no top row.
func (g Grid) IsTop(row int) bool {
	return g.Rows > 1 && row == g.Rows-1
}
