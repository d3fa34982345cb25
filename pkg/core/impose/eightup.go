package impose

import (
	"github.com/matzehuels/imposer/pkg/core/spread"
)

// variant selects how the two sides of an 8-up sheet are printed.
type variant int

const (
	sheetwise variant = iota
	workTurn
	workTumble
)

func (v variant) String() string {
	switch v {
	case workTurn:
		return "work-turn"
	case workTumble:
		return "work-tumble"
	default:
		return "sheetwise"
	}
}

// perfectBoundOffsets maps every cell of the two sheets of a 16-page
// signature to a page offset within the signature, indexed
// [variant][sheet][row][col]. Row 0 is the bottom row. Horizontally
// adjacent cells in columns (0,1) and (2,3) always face each other across
// the spine, so each pair sums to 15.
//
// Sheetwise prints the front form on one sheet and the back form on the
// other. Work-and-turn keeps each half of the front with the half of the
// back it backs up after a turn on the short edge. Work-and-tumble keeps
// each row with the row it backs up after a tumble on the long edge.
var perfectBoundOffsets = [3][2][2][4]int{
	sheetwise: {
		{{3, 12, 15, 0}, {4, 11, 8, 7}},
		{{1, 14, 13, 2}, {6, 9, 10, 5}},
	},
	workTurn: {
		{{3, 12, 13, 2}, {4, 11, 10, 5}},
		{{1, 14, 15, 0}, {6, 9, 8, 7}},
	},
	workTumble: {
		{{3, 12, 15, 0}, {2, 13, 14, 1}},
		{{5, 10, 9, 6}, {4, 11, 8, 7}},
	},
}

const perfectBoundGroup = 16

func perfectBound(v variant) builder {
	return func(p *planner) error {
		adjusted := spread.RoundUp(p.pages(), perfectBoundGroup)
		p.plan.AdjustedPageCount = adjusted

		table := perfectBoundOffsets[v]
		for base := 0; base < adjusted; base += perfectBoundGroup {
			for _, sheet := range table {
				s := p.newSheet()
				for row := p.grid.Rows - 1; row >= 0; row-- {
					for col := 0; col < p.grid.Cols; col++ {
						p.put(&s, p.grid.Cell(row, col), base+sheet[row][col])
					}
				}
				p.emit(s)
			}
		}
		p.trace("perfect-bound signatures", "variant", v, "signatures", adjusted/perfectBoundGroup)
		return nil
	}
}

// spreadsPerSheet is the number of spreads on one 2x4 center-stitch sheet.
const spreadsPerSheet = 4

// spreadGroups returns, per sheet, the spread indexes placed in positions
// 0-3 (top-left, top-right, bottom-left, bottom-right). -1 marks an empty
// position.
func spreadGroups(v variant, total int) [][spreadsPerSheet]int {
	at := func(i int) int {
		if i < total {
			return i
		}
		return -1
	}

	var out [][spreadsPerSheet]int
	switch v {
	case sheetwise:
		// Sheets come in front/back pairs covering eight spreads. Spread
		// 2k+1 backs spread 2k, so the back sheet mirrors the front's columns.
		for b := 0; b < total; b += 2 * spreadsPerSheet {
			out = append(out,
				[spreadsPerSheet]int{at(b), at(b + 2), at(b + 4), at(b + 6)},
				[spreadsPerSheet]int{at(b + 3), at(b + 1), at(b + 7), at(b + 5)},
			)
		}
	case workTumble:
		for b := 0; b < total; b += spreadsPerSheet {
			out = append(out, [spreadsPerSheet]int{at(b), at(b + 2), at(b + 1), at(b + 3)})
		}
	default:
		for b := 0; b < total; b += spreadsPerSheet {
			out = append(out, [spreadsPerSheet]int{at(b), at(b + 1), at(b + 2), at(b + 3)})
		}
	}
	return out
}

func centerStitch(v variant) builder {
	return func(p *planner) error {
		adjusted := spread.RoundUp(p.pages(), 4)
		p.plan.AdjustedPageCount = adjusted

		spreads := spread.Generate(adjusted)
		for _, group := range spreadGroups(v, len(spreads)) {
			s := p.newSheet()
			for pos, idx := range group {
				row := p.grid.Rows - 1 - pos/2
				col := (pos % 2) * 2
				left, right := p.grid.Cell(row, col), p.grid.Cell(row, col+1)
				if idx < 0 {
					p.put(&s, left, -1)
					p.put(&s, right, -1)
					continue
				}
				l, r := spread.Slots(spreads[idx])
				p.put(&s, left, l-1)
				p.put(&s, right, r-1)
			}
			p.emit(s)
		}
		return nil
	}
}
