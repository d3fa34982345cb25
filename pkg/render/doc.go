// Package render turns imposition plans into proofs and diagrams.
//
// # Overview
//
//   - [compose]: executes a plan against a source document, sheet by sheet
//   - [sink]: proof outputs (SVG, PDF, PNG) and the JSON plan export
//   - [sheetmap]: Graphviz diagram of which pages land on which sheet
//
// # Format Conversion
//
// [ToPDF] and [ToPNG] convert any SVG to other formats using the external
// rsvg-convert tool (from librsvg).
//
//	svg, err := sink.RenderSVG(ctx, doc, plan)
//	pdf, err := render.ToPDF(ctx, svg)
//	png, err := render.ToPNG(ctx, svg, 2.0)  // 2x scale
//
// [compose]: github.com/matzehuels/imposer/pkg/render/compose
// [sink]: github.com/matzehuels/imposer/pkg/render/sink
// [sheetmap]: github.com/matzehuels/imposer/pkg/render/sheetmap
package render
