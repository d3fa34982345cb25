package impose

import (
	"github.com/matzehuels/imposer/pkg/core/rotation"
	"github.com/matzehuels/imposer/pkg/core/signature"
	"github.com/matzehuels/imposer/pkg/errors"
)

// PageSize is the size of one source page in points.
type PageSize struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Letter is used when a request carries no page size.
var Letter = PageSize{Width: 612, Height: 792}

// IsZero reports whether no size was given.
func (s PageSize) IsZero() bool { return s.Width == 0 && s.Height == 0 }

// Orientations for schemes whose grid shape can flip.
const (
	OrientationLandscape = "landscape"
	OrientationPortrait  = "portrait"
)

// Options are the per-request knobs of a scheme.
type Options struct {
	Rotation      int           `json:"rotation,omitempty"`       // 0 or 180
	RotationType  rotation.Type `json:"rotation_type,omitempty"`  // "", "top" or "bottom"
	SignatureSize int           `json:"signature_size,omitempty"` // signature scheme only
	Orientation   string        `json:"orientation,omitempty"`    // 2-up only
}

// Validate rejects malformed options. Signature sizes are never rejected:
// the signature scheme clamps them.
func (o Options) Validate() error {
	if err := errors.ValidateRotation(o.Rotation); err != nil {
		return err
	}
	if err := errors.ValidateRotationType(string(o.RotationType)); err != nil {
		return err
	}
	return errors.ValidateOrientation(o.Orientation)
}

// Request is everything the planner needs.
type Request struct {
	PageCount int      `json:"page_count"`
	PageSize  PageSize `json:"page_size"`
	Scheme    string   `json:"scheme"`
	Options   Options  `json:"options"`
}

// Validate rejects malformed requests before planning begins.
func (r Request) Validate() error {
	if err := errors.ValidatePageCount(r.PageCount); err != nil {
		return err
	}
	if err := errors.ValidatePageSize(r.PageSize.Width, r.PageSize.Height); err != nil {
		return err
	}
	return r.Options.Validate()
}

// PlacedPage positions one source page on a sheet.
//
// X and Y are the draw origin. For a 180° rotation the origin sits at the
// cell's top-right corner so the turned page still fills the cell.
type PlacedPage struct {
	Source   *int    `json:"source"` // 0-indexed source page, nil for a blank slot
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Rotation int     `json:"rotation"`
}

// Blank reports whether the slot is intentionally empty.
func (p PlacedPage) Blank() bool { return p.Source == nil }

// Index returns the source page index, or -1 for a blank slot.
func (p PlacedPage) Index() int {
	if p.Source == nil {
		return -1
	}
	return *p.Source
}

// Sheet is one output page.
type Sheet struct {
	Width  float64      `json:"width"`
	Height float64      `json:"height"`
	Pages  []PlacedPage `json:"pages"`
}

// Plan is the complete, ordered result of imposing a document.
type Plan struct {
	Scheme            string  `json:"scheme"`
	Sheets            []Sheet `json:"sheets"`
	TotalInputPages   int     `json:"total_input_pages"`
	AdjustedPageCount int     `json:"adjusted_page_count"`
	BlanksAdded       int     `json:"blanks_added"`

	// PageWidth and PageHeight are the source page size the sheets derive from.
	PageWidth  float64 `json:"page_width"`
	PageHeight float64 `json:"page_height"`

	// Signatures lists the balanced signatures (signature scheme only).
	Signatures []signature.Layout `json:"signatures,omitempty"`
}

// PageSize returns the source page size the plan was built for.
func (p *Plan) PageSize() PageSize { return PageSize{Width: p.PageWidth, Height: p.PageHeight} }

// Empty reports whether the plan has no sheets.
func (p *Plan) Empty() bool { return len(p.Sheets) == 0 }
