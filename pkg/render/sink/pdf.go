package sink

import (
	"context"

	"github.com/matzehuels/imposer/pkg/core/impose"
	"github.com/matzehuels/imposer/pkg/render"
	"github.com/matzehuels/imposer/pkg/render/compose"
)

// RenderPDF renders the SVG proof and converts it to PDF.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(ctx context.Context, doc compose.Document, plan *impose.Plan, opts ...SVGOption) ([]byte, error) {
	svg, err := RenderSVG(ctx, doc, plan, opts...)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(ctx, svg)
}
