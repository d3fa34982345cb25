package pipeline

import (
	"context"

	"github.com/matzehuels/imposer/pkg/core/impose"
	"github.com/matzehuels/imposer/pkg/errors"
	"github.com/matzehuels/imposer/pkg/render/compose"
	"github.com/matzehuels/imposer/pkg/render/sheetmap"
	"github.com/matzehuels/imposer/pkg/render/sink"
)

// Render produces plan in each of opts.Formats.
func Render(ctx context.Context, doc compose.Document, plan *impose.Plan, opts Options) (map[string][]byte, error) {
	var svgOpts []sink.SVGOption
	if opts.Title != "" {
		svgOpts = append(svgOpts, sink.WithTitle(opts.Title))
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatJSON:
			data, err = sink.RenderJSON(plan)
		case FormatSVG:
			data, err = sink.RenderSVG(ctx, doc, plan, svgOpts...)
		case FormatPDF:
			data, err = sink.RenderPDF(ctx, doc, plan, svgOpts...)
		case FormatPNG:
			data, err = sink.RenderPNG(ctx, doc, plan, sink.WithPNGSVGOptions(svgOpts...))
		case FormatDOT:
			data = []byte(sheetmap.ToDOT(plan, sheetmap.Options{Coordinates: true}))
		case FormatMap:
			data, err = sheetmap.RenderSVG(ctx, sheetmap.ToDOT(plan, sheetmap.Options{}))
		default:
			return nil, errors.New(errors.ErrCodeInvalidInput, "unsupported format: %s", format)
		}

		if err != nil {
			if errors.GetCode(err) == "" {
				err = errors.Wrap(errors.ErrCodeInternal, err, "render %s", format)
			}
			return nil, err
		}
		opts.Logger.Debug("rendered", "format", format, "bytes", len(data))
		artifacts[format] = data
	}
	return artifacts, nil
}
