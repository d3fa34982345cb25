package impose

import (
	"github.com/matzehuels/imposer/pkg/core/rotation"
)

// Scheme names.
const (
	SchemeMerge            = "merge"
	Scheme2Up              = "2-up"
	Scheme4Up              = "4-up"
	SchemeTentCard         = "tent-card"
	SchemeSideFoldCard     = "side-fold-card"
	SchemeBooklet          = "booklet"
	Scheme2Side            = "2-side"
	SchemeTriFoldBrochure  = "tri-fold-brochure"
	SchemeTriFoldPamphlet  = "tri-fold-pamphlet"
	SchemePerfectSheetwise = "8-up-perfect-bound-sheetwise"
	SchemePerfectWorkTurn  = "8-up-perfect-bound-work-turn"
	SchemePerfectTumble    = "8-up-perfect-bound-work-tumble"
	SchemeCenterSheetwise  = "8-up-center-stitch-sheetwise"
	SchemeCenterWorkTurn   = "8-up-center-stitch-work-turn"
	SchemeCenterTumble     = "8-up-center-stitch-work-tumble"
	SchemeSignature        = "signature"
)

// Family groups schemes that share a handler.
type Family string

const (
	FamilyIdentity     Family = "identity"
	FamilyNUp          Family = "n-up"
	FamilyBooklet      Family = "booklet"
	FamilySides        Family = "2-side"
	FamilyTriFold      Family = "tri-fold"
	FamilyPerfectBound Family = "perfect-bound"
	FamilyCenterStitch Family = "center-stitch"
	FamilySignature    Family = "signature"
)

// Scheme describes one binding convention.
type Scheme struct {
	Name        string
	Family      Family
	Rows, Cols  int
	Unit        int // source pages per group; 0 when set by options
	Rotates     bool
	Policy      rotation.Policy
	Description string

	build builder
}

// Shape returns the grid shape for opts.
func (s Scheme) Shape(opts Options) (rows, cols int) {
	if s.Name == Scheme2Up && opts.Orientation == OrientationPortrait {
		return s.Cols, s.Rows
	}
	return s.Rows, s.Cols
}

// PagesPerSheet returns the number of cells on one sheet.
func (s Scheme) PagesPerSheet() int { return s.Rows * s.Cols }

type builder func(*planner) error

var registry = []Scheme{
	{
		Name: SchemeMerge, Family: FamilyIdentity, Rows: 1, Cols: 1, Unit: 1,
		Description: "one sheet per page, no reordering",
		build:       buildMerge,
	},
	{
		Name: Scheme2Up, Family: FamilyNUp, Rows: 1, Cols: 2, Unit: 2, Rotates: true,
		Description: "two consecutive pages per sheet",
		build:       buildSequential,
	},
	{
		Name: Scheme4Up, Family: FamilyNUp, Rows: 2, Cols: 2, Unit: 4, Rotates: true,
		Description: "four consecutive pages per sheet",
		build:       buildSequential,
	},
	{
		Name: SchemeTentCard, Family: FamilyNUp, Rows: 2, Cols: 1, Unit: 2, Rotates: true,
		Policy:      rotation.TopRowOnly,
		Description: "two panels folded into a standing card",
		build:       buildSequential,
	},
	{
		Name: SchemeSideFoldCard, Family: FamilyNUp, Rows: 2, Cols: 2, Unit: 4, Rotates: true,
		Description: "quarter-fold greeting card",
		build:       buildSequential,
	},
	{
		Name: SchemeBooklet, Family: FamilyBooklet, Rows: 1, Cols: 2, Unit: 4,
		Description: "saddle-stitch booklet, outside-in spreads",
		build:       buildBooklet,
	},
	{
		Name: Scheme2Side, Family: FamilySides, Rows: 1, Cols: 2, Unit: 2,
		Description: "consecutive page pairs side by side",
		build:       buildSequential,
	},
	{
		Name: SchemeTriFoldBrochure, Family: FamilyTriFold, Rows: 1, Cols: 3, Unit: 3,
		Description: "three consecutive panels per sheet",
		build:       buildSequential,
	},
	{
		Name: SchemeTriFoldPamphlet, Family: FamilyTriFold, Rows: 1, Cols: 3, Unit: 6,
		Description: "six panels on two sheets in letter-fold order",
		build:       buildPamphlet,
	},
	{
		Name: SchemePerfectSheetwise, Family: FamilyPerfectBound, Rows: 2, Cols: 4, Unit: 16, Rotates: true,
		Description: "16-page signatures, front and back on separate sheets",
		build:       perfectBound(sheetwise),
	},
	{
		Name: SchemePerfectWorkTurn, Family: FamilyPerfectBound, Rows: 2, Cols: 4, Unit: 16, Rotates: true,
		Description: "16-page signatures, work and turn",
		build:       perfectBound(workTurn),
	},
	{
		Name: SchemePerfectTumble, Family: FamilyPerfectBound, Rows: 2, Cols: 4, Unit: 16, Rotates: true,
		Description: "16-page signatures, work and tumble",
		build:       perfectBound(workTumble),
	},
	{
		Name: SchemeCenterSheetwise, Family: FamilyCenterStitch, Rows: 2, Cols: 4, Unit: 4, Rotates: true,
		Description: "saddle-stitch spreads four per sheet, sheetwise",
		build:       centerStitch(sheetwise),
	},
	{
		Name: SchemeCenterWorkTurn, Family: FamilyCenterStitch, Rows: 2, Cols: 4, Unit: 4, Rotates: true,
		Description: "saddle-stitch spreads four per sheet, work and turn",
		build:       centerStitch(workTurn),
	},
	{
		Name: SchemeCenterTumble, Family: FamilyCenterStitch, Rows: 2, Cols: 4, Unit: 4, Rotates: true,
		Description: "saddle-stitch spreads four per sheet, work and tumble",
		build:       centerStitch(workTumble),
	},
	{
		Name: SchemeSignature, Family: FamilySignature, Rows: 1, Cols: 2,
		Description: "balanced N-page signatures (4-60)",
		build:       buildSignature,
	},
}

var byName = func() map[string]Scheme {
	m := make(map[string]Scheme, len(registry))
	for _, s := range registry {
		m[s.Name] = s
	}
	return m
}()

// Lookup returns the scheme registered under name.
func Lookup(name string) (Scheme, bool) {
	s, ok := byName[name]
	return s, ok
}

// Schemes returns every supported scheme in a stable order.
func Schemes() []Scheme {
	out := make([]Scheme, len(registry))
	copy(out, registry)
	return out
}

// Names returns every supported scheme name in a stable order.
func Names() []string {
	out := make([]string, len(registry))
	for i, s := range registry {
		out[i] = s.Name
	}
	return out
}
