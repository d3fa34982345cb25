package plan

import (
	"github.com/matzehuels/imposer/pkg/core/impose"
	"github.com/matzehuels/imposer/pkg/errors"
)

// Verify checks that p is internally consistent. It returns the first
// violation found as an INVALID_PLAN error.
func Verify(p *impose.Plan) error {
	if p == nil {
		return errors.New(errors.ErrCodeInvalidPlan, "plan is nil")
	}
	if p.TotalInputPages < 0 {
		return errors.New(errors.ErrCodeInvalidPlan, "negative page count %d", p.TotalInputPages)
	}
	if p.BlanksAdded != p.AdjustedPageCount-p.TotalInputPages || p.BlanksAdded < 0 {
		return errors.New(errors.ErrCodeInvalidPlan,
			"blanks added %d does not match adjusted %d minus input %d",
			p.BlanksAdded, p.AdjustedPageCount, p.TotalInputPages)
	}

	seen := make([]bool, p.TotalInputPages)
	for i, s := range p.Sheets {
		if i > 0 && (s.Width != p.Sheets[0].Width || s.Height != p.Sheets[0].Height) {
			return errors.New(errors.ErrCodeInvalidPlan,
				"sheet %d is %gx%g, sheet 0 is %gx%g", i, s.Width, s.Height, p.Sheets[0].Width, p.Sheets[0].Height)
		}
		for j, pp := range s.Pages {
			if pp.Rotation != 0 && pp.Rotation != 180 {
				return errors.New(errors.ErrCodeInvalidPlan, "sheet %d slot %d: rotation %d", i, j, pp.Rotation)
			}
			if pp.Blank() {
				continue
			}
			idx := pp.Index()
			if idx < 0 || idx >= p.TotalInputPages {
				return errors.New(errors.ErrCodeInvalidPlan, "sheet %d slot %d: page %d out of range", i, j, idx)
			}
			if seen[idx] {
				return errors.New(errors.ErrCodeInvalidPlan, "sheet %d slot %d: page %d placed twice", i, j, idx)
			}
			seen[idx] = true
		}
	}
	for idx, ok := range seen {
		if !ok {
			return errors.New(errors.ErrCodeInvalidPlan, "page %d is never placed", idx)
		}
	}
	return nil
}
