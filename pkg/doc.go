// Package pkg provides the libraries behind imposer, a print imposition
// planner.
//
// # Overview
//
// Imposition decides where every page of a document lands on the printed
// sheets, and in which orientation, so that folding, cutting and binding
// the sheets yields the pages in reading order. The pkg directory is
// organized into three areas:
//
//  1. [core] - Pure planning algorithms (spreads, signatures, grids, rotation)
//  2. [render] - Executing a plan against a document (proofs, diagrams)
//  3. [pipeline] - Orchestration (load → plan → render) with caching
//
// # Architecture
//
//	Source document (PDF or page count)
//	         ↓
//	    [core/impose] (scheme → Plan)
//	         ↓
//	    [render/compose] (Plan × Document → sheets)
//	         ↓
//	    SVG/PDF/PNG/JSON/DOT output
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/imposer/pkg/core/impose"
//	    "github.com/matzehuels/imposer/pkg/render/sink"
//	    "github.com/matzehuels/imposer/pkg/source"
//	)
//
//	p, err := impose.Build(impose.Request{
//	    PageCount: 12,
//	    PageSize:  impose.Letter,
//	    Scheme:    "booklet",
//	})
//	doc := source.Blank(12, impose.Letter)
//	svg, err := sink.RenderSVG(ctx, doc, p)
//
// # Main Packages
//
// [core/impose] - The planner. Every scheme turns a [impose.Request] into a
// [impose.Plan] of sheets, each listing placed pages with position, scale
// and rotation.
//
// [core/spread], [core/signature], [core/grid], [core/rotation] - The
// building blocks the schemes are assembled from.
//
// [render/compose] - Draws a plan onto a [compose.Canvas] using pages from a
// [compose.Document].
//
// [render/sink], [render/sheetmap] - Concrete outputs.
//
// [source] - Documents to impose: blank proofs and PDFs.
//
// [plan] - JSON export, import, verification and summaries of plans.
//
// [preset] - Named jobs loaded from TOML.
//
// [cache] - File, Redis and null caches keyed by request hash.
//
// [core]: https://pkg.go.dev/github.com/matzehuels/imposer/pkg/core
// [core/impose]: https://pkg.go.dev/github.com/matzehuels/imposer/pkg/core/impose
// [core/spread]: https://pkg.go.dev/github.com/matzehuels/imposer/pkg/core/spread
// [core/signature]: https://pkg.go.dev/github.com/matzehuels/imposer/pkg/core/signature
// [core/grid]: https://pkg.go.dev/github.com/matzehuels/imposer/pkg/core/grid
// [core/rotation]: https://pkg.go.dev/github.com/matzehuels/imposer/pkg/core/rotation
// [render]: https://pkg.go.dev/github.com/matzehuels/imposer/pkg/render
// [render/compose]: https://pkg.go.dev/github.com/matzehuels/imposer/pkg/render/compose
// [render/sink]: https://pkg.go.dev/github.com/matzehuels/imposer/pkg/render/sink
// [render/sheetmap]: https://pkg.go.dev/github.com/matzehuels/imposer/pkg/render/sheetmap
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/imposer/pkg/pipeline
// [source]: https://pkg.go.dev/github.com/matzehuels/imposer/pkg/source
// [plan]: https://pkg.go.dev/github.com/matzehuels/imposer/pkg/plan
// [preset]: https://pkg.go.dev/github.com/matzehuels/imposer/pkg/preset
// [cache]: https://pkg.go.dev/github.com/matzehuels/imposer/pkg/cache
package pkg
