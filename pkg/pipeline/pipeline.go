// Package pipeline runs the load → plan → render sequence shared by the
// CLI and the HTTP server.
//
// # Stages
//
//  1. Load: open the input PDF, or stand in a blank document of Pages pages
//  2. Plan: build the imposition plan for the scheme
//  3. Render: produce the requested outputs (json, svg, pdf, png, dot, map)
//
// Plans and artifacts are cached through a [cache.Cache]. Plan keys depend
// only on the request, so a plan for a 64-page booklet is reused regardless
// of which PDF it is later rendered against.
//
// # Usage
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Scheme:  "booklet",
//	    Input:   "zine.pdf",
//	    Formats: []string{"svg", "json"},
//	})
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/imposer/pkg/cache"
	"github.com/matzehuels/imposer/pkg/core/impose"
	"github.com/matzehuels/imposer/pkg/errors"
)

// Output formats.
const (
	FormatJSON = "json"
	FormatSVG  = "svg"
	FormatPDF  = "pdf"
	FormatPNG  = "png"
	FormatDOT  = "dot"
	FormatMap  = "map" // sheet map rendered by Graphviz
)

// Formats lists every supported output format.
var Formats = []string{FormatJSON, FormatSVG, FormatPDF, FormatPNG, FormatDOT, FormatMap}

// DefaultFormat is rendered when no format is requested.
const DefaultFormat = FormatSVG

// Options configures one pipeline run. It is also the body of the HTTP
// render endpoint.
type Options struct {
	Scheme   string          `json:"scheme"`
	Options  impose.Options  `json:"options"`
	PageSize impose.PageSize `json:"page_size"`

	// Pages is the page count of a blank proof. Ignored when Input is set.
	Pages int `json:"pages"`
	// Input is a PDF path. Its page count and first page size drive the plan.
	Input string `json:"-"`

	Formats []string `json:"formats,omitempty"`
	Title   string   `json:"title,omitempty"`
	Refresh bool     `json:"refresh,omitempty"`

	Logger *log.Logger `json:"-"`

	validated bool
}

// Result holds the outputs of a pipeline run.
type Result struct {
	Plan      *impose.Plan
	PlanHash  string
	Artifacts map[string][]byte
	Stats     Stats
	CacheInfo CacheInfo
}

// Stats holds timing and size information.
type Stats struct {
	Pages      int
	Sheets     int
	LoadTime   time.Duration
	PlanTime   time.Duration
	RenderTime time.Duration
}

// CacheInfo records which stages were served from the cache.
type CacheInfo struct {
	PlanHit   bool
	RenderHit bool
}

// ValidateFormat checks that format is supported.
func ValidateFormat(format string) error {
	if !slices.Contains(Formats, format) {
		return errors.New(errors.ErrCodeInvalidInput, "invalid format: %q (must be one of: %s)", format, strings.Join(Formats, ", "))
	}
	return nil
}

// ValidateFormats checks every format.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateAndSetDefaults checks the options and fills in defaults. It is
// idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Scheme == "" {
		return errors.New(errors.ErrCodeInvalidInput, "scheme is required")
	}
	if _, ok := impose.Lookup(o.Scheme); !ok {
		return &errors.UnsupportedSchemeError{Scheme: o.Scheme}
	}
	if err := o.Options.Validate(); err != nil {
		return err
	}
	if err := errors.ValidatePageSize(o.PageSize.Width, o.PageSize.Height); err != nil {
		return err
	}
	if o.Input == "" {
		if err := errors.ValidatePageCount(o.Pages); err != nil {
			return err
		}
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{DefaultFormat}
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// Request returns the planner request for a document of pages pages of the
// given size.
func (o *Options) Request(pages int, size impose.PageSize) impose.Request {
	return impose.Request{
		PageCount: pages,
		PageSize:  size,
		Scheme:    o.Scheme,
		Options:   o.Options,
	}
}

// PlanKeyOpts returns the cache key inputs for a plan.
func PlanKeyOpts(req impose.Request) cache.PlanKeyOpts {
	size := req.PageSize
	if size.IsZero() {
		size = impose.Letter
	}
	return cache.PlanKeyOpts{
		Scheme:        req.Scheme,
		Pages:         req.PageCount,
		Width:         size.Width,
		Height:        size.Height,
		Rotation:      req.Options.Rotation,
		RotationType:  string(req.Options.RotationType),
		SignatureSize: req.Options.SignatureSize,
		Orientation:   req.Options.Orientation,
	}
}

// ArtifactKeyOpts returns the cache key inputs for one rendered format.
func (o *Options) ArtifactKeyOpts(format, sourceHash string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format: format,
		Title:  o.Title,
		Source: sourceHash,
	}
}
