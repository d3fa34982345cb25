// Package sink provides output formats for imposition plans.
//
// # Overview
//
// A "sink" turns a plan into a final artifact:
//
//   - SVG: a proof of every sheet with numbered page cells
//   - PDF: the SVG proof converted by rsvg-convert
//   - PNG: the SVG proof rasterized by rsvg-convert
//   - JSON: the plan itself, for external renderers
//
// # SVG Proofs
//
// [SVGCanvas] implements [compose.Canvas]. Sheets are stacked top to bottom
// with a caption under each. Every drawn page shows its 1-indexed page
// number; pages turned 180° carry an upside-down label and a marker on
// their head edge. Areas no page covers are hatched, so blank slots stand
// out.
//
//	svg, err := sink.RenderSVG(ctx, doc, plan, sink.WithTitle("zine"))
//
// # SVG Options
//
//   - [WithTitle]: caption prefix for each sheet
//   - [WithGap]: vertical space between sheets, in points
//
// [compose.Canvas]: github.com/matzehuels/imposer/pkg/render/compose#Canvas
package sink
