package pipeline

import (
	"bytes"
	"os"

	"github.com/matzehuels/imposer/pkg/cache"
	"github.com/matzehuels/imposer/pkg/core/impose"
	"github.com/matzehuels/imposer/pkg/errors"
	"github.com/matzehuels/imposer/pkg/render/compose"
	"github.com/matzehuels/imposer/pkg/source"
	"github.com/matzehuels/imposer/pkg/source/pdf"
)

// Source is a loaded input document.
type Source struct {
	Doc compose.Document
	// Size is the page size plans are built for.
	Size impose.PageSize
	// Hash identifies the input bytes. Empty for blank documents.
	Hash string
}

// Load opens opts.Input, or creates a blank document of opts.Pages pages
// when no input is given. An explicit opts.PageSize overrides the size of
// the input's first page.
func Load(opts Options) (*Source, error) {
	if opts.Input == "" {
		size := opts.PageSize
		if size.IsZero() {
			size = impose.Letter
		}
		return &Source{Doc: source.Blank(opts.Pages, size), Size: size}, nil
	}

	data, err := os.ReadFile(opts.Input)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "input %s", opts.Input)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidDocument, err, "input %s", opts.Input)
	}
	doc, err := pdf.Read(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	size := opts.PageSize
	if size.IsZero() {
		if size, err = source.FirstPageSize(doc); err != nil {
			return nil, err
		}
	}
	return &Source{Doc: doc, Size: size, Hash: cache.Hash(data)}, nil
}
