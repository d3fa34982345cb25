// Package impose computes imposition plans: where every source page of a
// document lands on a sequence of printed sheets.
//
// # Overview
//
// [Build] takes a page count, a scheme name and [Options], and returns a
// [Plan]. A plan lists sheets in print order; each sheet lists its
// [PlacedPage] slots with position, size, rotation and the 0-indexed source
// page (nil for a blank slot). Plans carry no document content, so the same
// plan can be rendered against any document with that many pages.
//
// # Schemes
//
// Sixteen schemes are registered, grouped into families that share a
// handler:
//
//	identity        merge
//	n-up            2-up, 4-up, tent-card, side-fold-card
//	booklet         booklet
//	2-side          2-side
//	tri-fold        tri-fold-brochure, tri-fold-pamphlet
//	perfect-bound   8-up-perfect-bound-{sheetwise,work-turn,work-tumble}
//	center-stitch   8-up-center-stitch-{sheetwise,work-turn,work-tumble}
//	signature       signature
//
// [Schemes] and [Lookup] expose the registry.
//
// # Padding
//
// Schemes that group pages pad the document up to a whole number of groups.
// [Plan.AdjustedPageCount] is the padded count and [Plan.BlanksAdded] the
// difference. Padding pages appear as blank slots.
//
// # Purity
//
// Build performs no I/O and keeps no state between calls. Identical
// requests produce identical plans, and concurrent calls are safe. A
// [Tracer] passed via [WithTracer] observes planning decisions without
// influencing them.
//
//	plan, err := impose.Build(impose.Request{PageCount: 6, Scheme: impose.SchemeBooklet})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(len(plan.Sheets), plan.BlanksAdded) // 4 2
package impose
