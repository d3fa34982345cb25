// Package source provides documents to render plans against.
//
// [Blank] is a synthetic document of uniformly sized pages. It needs no
// input file, which makes it the source for proofs built from a page count
// alone. Real PDFs are read by the [pdf] subpackage.
//
// [pdf]: github.com/matzehuels/imposer/pkg/source/pdf
package source

import (
	"context"

	"github.com/matzehuels/imposer/pkg/core/impose"
	"github.com/matzehuels/imposer/pkg/errors"
	"github.com/matzehuels/imposer/pkg/render/compose"
)

// Page is the handle returned by synthetic documents.
type Page struct {
	Index         int
	Width, Height float64
}

// Source implements compose.Handle.
func (p Page) Source() int { return p.Index }

// BlankDocument is a document of n identical empty pages.
type BlankDocument struct {
	n    int
	size impose.PageSize
}

// Blank returns a document of n pages of the given size. A zero size means
// US Letter.
func Blank(n int, size impose.PageSize) *BlankDocument {
	if size.IsZero() {
		size = impose.Letter
	}
	return &BlankDocument{n: n, size: size}
}

// PageCount returns the number of pages.
func (d *BlankDocument) PageCount() int { return d.n }

// PageSize returns the size of page index.
func (d *BlankDocument) PageSize(index int) (float64, float64, error) {
	if err := d.check(index); err != nil {
		return 0, 0, err
	}
	return d.size.Width, d.size.Height, nil
}

// CopyPage returns a handle for page index.
func (d *BlankDocument) CopyPage(ctx context.Context, index int) (compose.Handle, error) {
	if err := d.check(index); err != nil {
		return nil, err
	}
	return Page{Index: index, Width: d.size.Width, Height: d.size.Height}, nil
}

func (d *BlankDocument) check(index int) error {
	if index < 0 || index >= d.n {
		return errors.New(errors.ErrCodeInvalidInput, "page %d out of range (document has %d pages)", index+1, d.n)
	}
	return nil
}

var _ compose.Document = (*BlankDocument)(nil)

// FirstPageSize returns the size of the first page of doc, which every
// sheet of a plan derives from. Empty documents report a zero size.
func FirstPageSize(doc compose.Document) (impose.PageSize, error) {
	if doc.PageCount() == 0 {
		return impose.PageSize{}, nil
	}
	w, h, err := doc.PageSize(0)
	if err != nil {
		return impose.PageSize{}, err
	}
	return impose.PageSize{Width: w, Height: h}, nil
}
