package signature

import (
	"errors"
	"slices"
)

// DefaultSize is substituted when a requested size is not supported.
const DefaultSize = 16

// SupportedSizes lists every signature size [Order] accepts, ascending.
var SupportedSizes = []int{4, 8, 12, 16, 20, 32, 36, 40, 44, 48, 52, 56, 60}

// ErrUnsupportedSize is returned by [Order] for sizes not in [SupportedSizes].
var ErrUnsupportedSize = errors.New("unsupported signature size")

// Supported reports whether size is in [SupportedSizes].
func Supported(size int) bool {
	_, ok := slices.BinarySearch(SupportedSizes, size)
	return ok
}

// Normalize returns size if it is supported and [DefaultSize] otherwise.
// A zero size means "not requested" and also yields the default.
func Normalize(size int) int {
	if Supported(size) {
		return size
	}
	return DefaultSize
}

// Sides holds the 0-indexed page order of one signature.
// Both slices have size/2 entries, read as consecutive (left, right) pairs.
type Sides struct {
	Front []int
	Back  []int
}

// Pairs splits a side into (left, right) spread pairs.
func Pairs(side []int) [][2]int {
	out := make([][2]int, 0, len(side)/2)
	for i := 0; i+1 < len(side); i += 2 {
		out = append(out, [2]int{side[i], side[i+1]})
	}
	return out
}

// Order returns the front and back page order for a signature of size pages
// whose first page has 0-indexed number base.
func Order(size, base int) (Sides, error) {
	if !Supported(size) {
		return Sides{}, ErrUnsupportedSize
	}
	perSide := size / 2
	s := Sides{
		Front: make([]int, 0, perSide),
		Back:  make([]int, 0, perSide),
	}
	p := 0
	for i := 0; i < perSide/2; i++ {
		s.Front = append(s.Front, pair(size, base, p)...)
		p++
	}
	for i := 0; i < perSide/2; i++ {
		s.Back = append(s.Back, pair(size, base, p)...)
		p++
	}
	return s, nil
}

// pair faces page p with its spine partner. Even p puts the partner on the
// left, odd p on the right.
func pair(size, base, p int) []int {
	lo, hi := base+p, base+size-1-p
	if p%2 == 0 {
		return []int{hi, lo}
	}
	return []int{lo, hi}
}
