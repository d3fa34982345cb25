package impose

import (
	"github.com/matzehuels/imposer/pkg/core/grid"
	"github.com/matzehuels/imposer/pkg/core/rotation"
	"github.com/matzehuels/imposer/pkg/errors"
)

// Tracer receives diagnostic events while a plan is built. Its signature
// matches the charmbracelet/log methods, so logger.Debug can be passed
// directly. Tracers observe; they never influence the plan.
type Tracer func(msg any, keyvals ...any)

// Option configures [Build].
type Option func(*config)

type config struct {
	trace Tracer
}

// WithTracer installs a trace hook.
func WithTracer(t Tracer) Option {
	return func(c *config) {
		if t != nil {
			c.trace = t
		}
	}
}

// Build computes the imposition plan for req.
//
// A zero page count yields an empty plan. An unknown scheme yields
// *errors.UnsupportedSchemeError. Malformed options yield an INVALID_INPUT
// error. Build is pure: identical requests produce identical plans.
func Build(req Request, opts ...Option) (*Plan, error) {
	cfg := config{trace: func(any, ...any) {}}
	for _, o := range opts {
		o(&cfg)
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}
	s, ok := Lookup(req.Scheme)
	if !ok {
		return nil, &errors.UnsupportedSchemeError{Scheme: req.Scheme}
	}

	size := req.PageSize
	if size.IsZero() {
		size = Letter
	}
	rows, cols := s.Shape(req.Options)

	p := &planner{
		req:    req,
		scheme: s,
		grid:   grid.New(rows, cols, size.Width, size.Height),
		trace:  cfg.trace,
		plan: &Plan{
			Scheme:          s.Name,
			Sheets:          []Sheet{},
			TotalInputPages: req.PageCount,
			PageWidth:       size.Width,
			PageHeight:      size.Height,
		},
	}
	p.trace("scheme selected", "scheme", s.Name, "family", s.Family, "pages", req.PageCount, "grid", []int{rows, cols})

	if req.PageCount == 0 {
		return p.plan, nil
	}
	if err := s.build(p); err != nil {
		return nil, err
	}
	p.plan.BlanksAdded = p.plan.AdjustedPageCount - req.PageCount
	return p.plan, nil
}

// planner carries the state of one Build call.
type planner struct {
	req    Request
	scheme Scheme
	grid   grid.Grid
	trace  Tracer
	plan   *Plan
}

func (p *planner) pages() int { return p.req.PageCount }

func (p *planner) newSheet() Sheet {
	w, h := p.grid.SheetSize()
	return Sheet{Width: w, Height: h, Pages: make([]PlacedPage, 0, p.grid.Len())}
}

// put places source page src into cell c. Indexes outside the document
// become blank slots.
func (p *planner) put(s *Sheet, c grid.Cell, src int) {
	pp := PlacedPage{X: c.X, Y: c.Y, Width: c.W, Height: c.H}
	if src >= 0 && src < p.req.PageCount {
		idx := src
		pp.Source = &idx
		if p.scheme.Rotates {
			o := p.req.Options
			deg := rotation.Resolve(o.Rotation, o.RotationType, rotation.RowOf(p.grid, c.Row), p.scheme.Policy)
			pp.X, pp.Y = rotation.Origin(c, deg)
			pp.Rotation = deg
		}
	}
	s.Pages = append(s.Pages, pp)
}

func (p *planner) emit(s Sheet) {
	p.plan.Sheets = append(p.plan.Sheets, s)
	p.trace("sheet emitted", "sheet", len(p.plan.Sheets)-1, "slots", len(s.Pages))
}
