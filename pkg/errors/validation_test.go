package errors

import (
	"math"
	"strings"
	"testing"
)

func TestValidatePageCount(t *testing.T) {
	tests := []struct {
		name    string
		input   int
		wantErr bool
	}{
		{"zero", 0, false},
		{"one", 1, false},
		{"typical", 250, false},
		{"max", MaxPageCount, false},
		{"negative", -1, true},
		{"too large", MaxPageCount + 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePageCount(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePageCount(%d) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidInput) {
				t.Errorf("ValidatePageCount(%d) returned wrong error code: %v", tt.input, err)
			}
		})
	}
}

func TestValidatePageSize(t *testing.T) {
	tests := []struct {
		name    string
		w, h    float64
		wantErr bool
	}{
		{"letter", 612, 792, false},
		{"default", 0, 0, false},
		{"zero width", 0, 792, true},
		{"negative", -612, 792, true},
		{"nan", math.NaN(), 792, true},
		{"inf", 612, math.Inf(1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePageSize(tt.w, tt.h)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePageSize(%v, %v) error = %v, wantErr %v", tt.w, tt.h, err, tt.wantErr)
			}
		})
	}
}

func TestValidateRotation(t *testing.T) {
	for _, deg := range []int{0, 180} {
		if err := ValidateRotation(deg); err != nil {
			t.Errorf("ValidateRotation(%d) error = %v", deg, err)
		}
	}
	for _, deg := range []int{90, 270, -180, 360} {
		if err := ValidateRotation(deg); err == nil {
			t.Errorf("ValidateRotation(%d) should fail", deg)
		}
	}
}

func TestValidateRotationType(t *testing.T) {
	for _, typ := range []string{"", "top", "bottom"} {
		if err := ValidateRotationType(typ); err != nil {
			t.Errorf("ValidateRotationType(%q) error = %v", typ, err)
		}
	}
	for _, typ := range []string{"Top", "left", "both"} {
		if err := ValidateRotationType(typ); err == nil {
			t.Errorf("ValidateRotationType(%q) should fail", typ)
		}
	}
}

func TestValidateOrientation(t *testing.T) {
	for _, o := range []string{"", "landscape", "portrait"} {
		if err := ValidateOrientation(o); err != nil {
			t.Errorf("ValidateOrientation(%q) error = %v", o, err)
		}
	}
	if err := ValidateOrientation("square"); err == nil {
		t.Error(`ValidateOrientation("square") should fail`)
	}
}

func TestValidatePresetName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "zine", false},
		{"dashes", "a5-booklet", false},
		{"underscores", "perfect_bound_16", false},
		{"empty", "", true},
		{"spaces", "my preset", true},
		{"slash", "a/b", true},
		{"too long", strings.Repeat("a", 65), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePresetName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePresetName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidPreset) {
				t.Errorf("ValidatePresetName(%q) returned wrong error code: %v", tt.input, err)
			}
		})
	}
}

func TestErrorCodesAreUnique(t *testing.T) {
	codes := []Code{
		ErrCodeInvalidInput,
		ErrCodeInvalidFormat,
		ErrCodeInvalidDocument,
		ErrCodeInvalidPlan,
		ErrCodeInvalidPreset,
		ErrCodeUnsupportedScheme,
		ErrCodeNotFound,
		ErrCodeFileNotFound,
		ErrCodePresetNotFound,
		ErrCodeInternal,
		ErrCodeUnsupported,
	}

	seen := make(map[Code]bool)
	for _, code := range codes {
		if seen[code] {
			t.Errorf("Duplicate error code: %s", code)
		}
		seen[code] = true
	}
}
