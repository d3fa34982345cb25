package plan

import "github.com/matzehuels/imposer/pkg/core/impose"

// Summary holds headline numbers of a plan.
type Summary struct {
	Scheme      string  `json:"scheme"`
	Pages       int     `json:"pages"`
	Adjusted    int     `json:"adjusted"`
	Blanks      int     `json:"blanks"`
	Sheets      int     `json:"sheets"`
	Slots       int     `json:"slots"`
	BlankSlots  int     `json:"blank_slots"`
	Rotated     int     `json:"rotated"`
	SheetWidth  float64 `json:"sheet_width"`
	SheetHeight float64 `json:"sheet_height"`
	Signatures  int     `json:"signatures,omitempty"`
}

// Summarize counts sheets, slots, blank slots and rotated pages.
func Summarize(p *impose.Plan) Summary {
	s := Summary{
		Scheme:     p.Scheme,
		Pages:      p.TotalInputPages,
		Adjusted:   p.AdjustedPageCount,
		Blanks:     p.BlanksAdded,
		Sheets:     len(p.Sheets),
		Signatures: len(p.Signatures),
	}
	if len(p.Sheets) > 0 {
		s.SheetWidth, s.SheetHeight = p.Sheets[0].Width, p.Sheets[0].Height
	}
	for _, sh := range p.Sheets {
		s.Slots += len(sh.Pages)
		for _, pp := range sh.Pages {
			switch {
			case pp.Blank():
				s.BlankSlots++
			case pp.Rotation == 180:
				s.Rotated++
			}
		}
	}
	return s
}

// Occupancy returns the share of slots holding a source page.
func (s Summary) Occupancy() float64 {
	if s.Slots == 0 {
		return 0
	}
	return float64(s.Slots-s.BlankSlots) / float64(s.Slots)
}
