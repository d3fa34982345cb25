package errors

import (
	"math"
	"unicode"
)

// MaxPageCount bounds the documents the planner accepts.
const MaxPageCount = 100000

// ValidatePageCount rejects negative or absurdly large page counts.
// Zero is valid and produces an empty plan.
func ValidatePageCount(n int) error {
	if n < 0 {
		return New(ErrCodeInvalidInput, "page count must not be negative: %d", n)
	}
	if n > MaxPageCount {
		return New(ErrCodeInvalidInput, "page count too large (max %d): %d", MaxPageCount, n)
	}
	return nil
}

// ValidatePageSize checks page dimensions in points.
// A zero size is allowed and means "use the default page size".
func ValidatePageSize(w, h float64) error {
	if w == 0 && h == 0 {
		return nil
	}
	if math.IsNaN(w) || math.IsNaN(h) || math.IsInf(w, 0) || math.IsInf(h, 0) {
		return New(ErrCodeInvalidInput, "page size must be finite")
	}
	if w <= 0 || h <= 0 {
		return New(ErrCodeInvalidInput, "page size must be positive: %gx%g", w, h)
	}
	return nil
}

// ValidateRotation accepts 0 and 180 degrees only.
func ValidateRotation(deg int) error {
	if deg != 0 && deg != 180 {
		return New(ErrCodeInvalidInput, "rotation must be 0 or 180, got %d", deg)
	}
	return nil
}

// ValidateRotationType accepts "", "top" and "bottom".
func ValidateRotationType(t string) error {
	switch t {
	case "", "top", "bottom":
		return nil
	}
	return New(ErrCodeInvalidInput, "rotation type must be top or bottom, got %q", t)
}

// ValidateOrientation accepts "", "landscape" and "portrait".
func ValidateOrientation(o string) error {
	switch o {
	case "", "landscape", "portrait":
		return nil
	}
	return New(ErrCodeInvalidInput, "orientation must be landscape or portrait, got %q", o)
}

// ValidatePresetName validates a preset name from a config file or flag.
func ValidatePresetName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidPreset, "preset name cannot be empty")
	}
	if len(name) > 64 {
		return New(ErrCodeInvalidPreset, "preset name too long (max 64 characters)")
	}
	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-' && r != '_' {
			return New(ErrCodeInvalidPreset, "preset name contains invalid character %q", r)
		}
	}
	return nil
}
