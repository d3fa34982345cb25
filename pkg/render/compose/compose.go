// Package compose executes an imposition plan against a source document.
//
// [Render] walks a plan sheet by sheet. For each sheet it asks the
// [Canvas] for a new output page, draws every placed page at its slot and
// leaves blank slots empty. Page copies for different slots may run
// concurrently, but the canvas always sees sheets, and the pages within a
// sheet, in plan order.
//
//	doc := source.Blank(6, impose.Letter)
//	canvas := sink.NewSVGCanvas()
//	if err := compose.Render(ctx, doc, plan, canvas); err != nil {
//	    return err
//	}
//	svg := canvas.Bytes()
package compose

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/imposer/pkg/core/impose"
	"github.com/matzehuels/imposer/pkg/errors"
	"github.com/matzehuels/imposer/pkg/observability"
)

// Handle is an embeddable copy of one source page.
type Handle interface {
	// Source returns the 0-indexed page the handle was copied from.
	Source() int
}

// Document is a source document.
type Document interface {
	PageCount() int
	PageSize(index int) (w, h float64, err error)
	CopyPage(ctx context.Context, index int) (Handle, error)
}

// Canvas receives output pages.
type Canvas interface {
	BeginSheet(w, h float64) error
	Draw(h Handle, x, y, w, hgt float64, rotation int) error
	EndSheet() error
}

// DefaultConcurrency bounds concurrent page copies per sheet.
const DefaultConcurrency = 8

// Option configures [Render].
type Option func(*renderer)

type renderer struct {
	concurrency int
}

// WithConcurrency sets the maximum number of concurrent page copies.
// Values below 1 are ignored.
func WithConcurrency(n int) Option {
	return func(r *renderer) {
		if n > 0 {
			r.concurrency = n
		}
	}
}

// Render draws plan onto canvas using pages from doc.
//
// The document must have at least plan.TotalInputPages pages. Render stops
// at the first error and returns it; sheets already ended stay on the
// canvas.
func Render(ctx context.Context, doc Document, plan *impose.Plan, canvas Canvas, opts ...Option) error {
	r := renderer{concurrency: DefaultConcurrency}
	for _, o := range opts {
		o(&r)
	}

	if n := doc.PageCount(); n < plan.TotalInputPages {
		return errors.New(errors.ErrCodeInvalidDocument,
			"document has %d pages, plan needs %d", n, plan.TotalInputPages)
	}

	hooks := observability.Render()
	for i, sheet := range plan.Sheets {
		if err := ctx.Err(); err != nil {
			return err
		}
		handles, err := r.copySheet(ctx, doc, sheet)
		if err != nil {
			return err
		}
		if err := drawSheet(canvas, sheet, handles); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "sheet %d", i)
		}
		hooks.OnSheetRendered(ctx, i, len(sheet.Pages))
	}
	return nil
}

// copySheet copies every non-blank page of sheet concurrently. The result
// is indexed like sheet.Pages; blank slots stay nil.
func (r renderer) copySheet(ctx context.Context, doc Document, sheet impose.Sheet) ([]Handle, error) {
	handles := make([]Handle, len(sheet.Pages))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)
	for i, p := range sheet.Pages {
		if p.Blank() {
			continue
		}
		g.Go(func() error {
			h, err := doc.CopyPage(gctx, p.Index())
			if err != nil {
				return errors.Wrap(errors.ErrCodeInvalidDocument, err, "copy page %d", p.Index()+1)
			}
			handles[i] = h
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return handles, nil
}

func drawSheet(c Canvas, sheet impose.Sheet, handles []Handle) error {
	if err := c.BeginSheet(sheet.Width, sheet.Height); err != nil {
		return err
	}
	for i, p := range sheet.Pages {
		if handles[i] == nil {
			continue
		}
		if err := c.Draw(handles[i], p.X, p.Y, p.Width, p.Height, p.Rotation); err != nil {
			return err
		}
	}
	return c.EndSheet()
}
