// Package pdf reads source documents from PDF files with pdfcpu.
//
// The document is parsed and validated once by [Open] or [Read]. Page
// sizes come from each page's crop box, falling back to the media box, and
// swap width and height for pages rotated by 90 or 270 degrees. Nothing
// else is retained: CopyPage hands out a page reference with its displayed
// size.
package pdf

import (
	"bytes"
	"context"
	"io"
	"os"

	pdfapi "github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"github.com/matzehuels/imposer/pkg/errors"
	"github.com/matzehuels/imposer/pkg/render/compose"
)

// Page references one source page.
type Page struct {
	Index         int
	Width, Height float64
}

// Source implements compose.Handle.
func (p *Page) Source() int { return p.Index }

// Document holds the displayed page sizes of a validated PDF.
type Document struct {
	sizes [][2]float64
}

// Open reads the PDF at path.
func Open(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "open %s", path)
	}
	return Read(bytes.NewReader(data))
}

// Read parses a PDF from r.
func Read(r io.ReadSeeker) (*Document, error) {
	conf := model.NewDefaultConfiguration()
	ctx, err := pdfapi.ReadValidateAndOptimize(r, conf)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "read pdf")
	}
	if err := ctx.EnsurePageCount(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "count pages")
	}

	d := &Document{sizes: make([][2]float64, ctx.PageCount)}
	for i := range d.sizes {
		_, _, inh, err := ctx.PageDict(i+1, false)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "page %d", i+1)
		}
		if inh == nil {
			return nil, errors.New(errors.ErrCodeInvalidDocument, "page %d has no page tree attributes", i+1)
		}
		w, h, err := boxSize(inh.CropBox, inh.MediaBox)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "page %d", i+1)
		}
		d.sizes[i] = orient(w, h, inh.Rotate)
	}
	return d, nil
}

// PageCount returns the number of pages.
func (d *Document) PageCount() int { return len(d.sizes) }

// PageSize returns the displayed size of page index (0-indexed).
func (d *Document) PageSize(index int) (float64, float64, error) {
	if err := d.check(index); err != nil {
		return 0, 0, err
	}
	return d.sizes[index][0], d.sizes[index][1], nil
}

// CopyPage returns a reference to page index.
func (d *Document) CopyPage(ctx context.Context, index int) (compose.Handle, error) {
	if err := d.check(index); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &Page{
		Index:  index,
		Width:  d.sizes[index][0],
		Height: d.sizes[index][1],
	}, nil
}

func (d *Document) check(index int) error {
	if index < 0 || index >= len(d.sizes) {
		return errors.New(errors.ErrCodeInvalidInput, "page %d out of range (document has %d pages)", index+1, len(d.sizes))
	}
	return nil
}

var _ compose.Document = (*Document)(nil)

// boxSize returns the size of the first usable box.
func boxSize(boxes ...*types.Rectangle) (float64, float64, error) {
	for _, b := range boxes {
		if b != nil && b.Width() > 0 && b.Height() > 0 {
			return b.Width(), b.Height(), nil
		}
	}
	return 0, 0, errors.New(errors.ErrCodeInvalidDocument, "no crop box or media box")
}

// orient swaps the dimensions of pages displayed sideways.
func orient(w, h float64, rotate int) [2]float64 {
	r := ((rotate % 360) + 360) % 360
	if r == 90 || r == 270 {
		return [2]float64{h, w}
	}
	return [2]float64{w, h}
}
