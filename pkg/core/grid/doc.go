// Package grid computes cell geometry for uniform page grids on a sheet.
//
// # Overview
//
// Every imposition scheme places pages of one uniform size into an R×C grid
// of cells. A [Grid] answers two questions: where does each cell start, and
// how large is the resulting sheet.
//
// # Coordinates
//
// Coordinates follow PDF user space: the origin is the bottom-left corner of
// the sheet and y increases upward. Row 0 is therefore the BOTTOM row:
//
//	row 1:  (0,h)   (w,h)   (2w,h)
//	row 0:  (0,0)   (w,0)   (2w,0)
//
// The sheet measures cols*w by rows*h.
//
// # Fill Order
//
// Sequential schemes fill a sheet in reading order: top row first, left to
// right. [Grid.Reading] enumerates cells in that order so callers never
// reimplement the row flip.
//
//	g := grid.New(2, 2, 612, 792)
//	for _, c := range g.Reading() {
//	    fmt.Println(c.Row, c.Col, c.X, c.Y)
//	}
package grid
