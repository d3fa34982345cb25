// Package sheetmap draws an imposition plan as a Graphviz diagram.
//
// Each sheet becomes one node whose label is an HTML table mirroring the
// sheet's grid: the top row of the table is the top row of the sheet.
// Cells show 1-indexed page numbers, "·" for blank slots, and a "↻" suffix
// on pages turned 180°. Edges follow print order. For the signature scheme
// the sheets of each signature are grouped in a cluster.
//
//	dot := sheetmap.ToDOT(plan, sheetmap.Options{})
//	svg, err := sheetmap.RenderSVG(ctx, dot)
package sheetmap
