package preset

import (
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/matzehuels/imposer/pkg/core/impose"
	"github.com/matzehuels/imposer/pkg/errors"
)

// PageSizes maps paper names to portrait sizes in points.
var PageSizes = map[string]impose.PageSize{
	"letter":  {Width: 612, Height: 792},
	"legal":   {Width: 612, Height: 1008},
	"tabloid": {Width: 792, Height: 1224},
	"half":    {Width: 396, Height: 612},
	"a3":      {Width: 842, Height: 1191},
	"a4":      {Width: 595, Height: 842},
	"a5":      {Width: 420, Height: 595},
	"a6":      {Width: 298, Height: 420},
}

// PageSizeNames returns the known paper names, sorted.
func PageSizeNames() []string {
	return slices.Sorted(maps.Keys(PageSizes))
}

// ParsePageSize accepts a paper name ("a5", case-insensitive) or explicit
// points ("420x595").
func ParsePageSize(s string) (impose.PageSize, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if size, ok := PageSizes[key]; ok {
		return size, nil
	}

	w, h, ok := strings.Cut(key, "x")
	if ok {
		wf, errW := strconv.ParseFloat(w, 64)
		hf, errH := strconv.ParseFloat(h, 64)
		if errW == nil && errH == nil {
			if err := errors.ValidatePageSize(wf, hf); err != nil {
				return impose.PageSize{}, err
			}
			return impose.PageSize{Width: wf, Height: hf}, nil
		}
	}
	return impose.PageSize{}, errors.New(errors.ErrCodeInvalidInput,
		"unknown page size %q (use one of %s, or WIDTHxHEIGHT in points)", s, strings.Join(PageSizeNames(), ", "))
}
