package impose

import "github.com/matzehuels/imposer/pkg/core/spread"

// buildBooklet lays out saddle-stitch spreads, one per sheet side.
func buildBooklet(p *planner) error {
	adjusted := spread.RoundUp(p.pages(), 4)
	p.plan.AdjustedPageCount = adjusted

	left, right := p.grid.Cell(0, 0), p.grid.Cell(0, 1)
	for _, sp := range spread.Generate(adjusted) {
		l, r := spread.Slots(sp)
		s := p.newSheet()
		p.put(&s, left, l-1)
		p.put(&s, right, r-1)
		p.emit(s)
	}
	return nil
}
