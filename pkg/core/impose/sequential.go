package impose

import "github.com/matzehuels/imposer/pkg/core/spread"

// buildMerge is the identity imposition: one sheet per page.
func buildMerge(p *planner) error {
	p.plan.AdjustedPageCount = p.pages()
	c := p.grid.Cell(0, 0)
	for i := 0; i < p.pages(); i++ {
		s := p.newSheet()
		p.put(&s, c, i)
		p.emit(s)
	}
	return nil
}

// buildSequential fills each sheet with consecutive pages in reading order.
func buildSequential(p *planner) error {
	cells := p.grid.Reading()
	per := len(cells)
	p.plan.AdjustedPageCount = spread.RoundUp(p.pages(), per)

	for base := 0; base < p.pages(); base += per {
		s := p.newSheet()
		for i, c := range cells {
			p.put(&s, c, base+i)
		}
		p.emit(s)
	}
	return nil
}

// pamphletPanels is the letter-fold panel order for a group of six pages:
// outside panels 5, 6, 1 on the first sheet, inside panels 2, 3, 4 on the
// second.
var pamphletPanels = [2][3]int{
	{4, 5, 0},
	{1, 2, 3},
}

func buildPamphlet(p *planner) error {
	const group = 6
	cells := p.grid.Reading()
	p.plan.AdjustedPageCount = spread.RoundUp(p.pages(), group)

	for base := 0; base < p.pages(); base += group {
		for _, panels := range pamphletPanels {
			s := p.newSheet()
			for i, c := range cells {
				p.put(&s, c, base+panels[i])
			}
			p.emit(s)
		}
	}
	return nil
}
