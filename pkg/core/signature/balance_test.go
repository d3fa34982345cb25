package signature

import (
	"reflect"
	"testing"
)

func TestBalance(t *testing.T) {
	tests := []struct {
		name      string
		total     int
		requested int
		want      Balanced
	}{
		{
			name:  "even split",
			total: 32, requested: 16,
			want: Balanced{SignatureSize: 16, LastSignatureSize: 16, TotalSignatures: 2},
		},
		{
			name:  "few blanks accepted",
			total: 30, requested: 16,
			want: Balanced{SignatureSize: 16, LastSignatureSize: 16, TotalSignatures: 2, TotalBlanksAdded: 2},
		},
		{
			name:  "small remainder shrinks last",
			total: 34, requested: 16,
			want: Balanced{SignatureSize: 16, LastSignatureSize: 4, TotalSignatures: 3, TotalBlanksAdded: 2},
		},
		{
			name:  "exact remainder",
			total: 40, requested: 32,
			want: Balanced{SignatureSize: 32, LastSignatureSize: 8, TotalSignatures: 2},
		},
		{
			name:  "unfoldable remainder pads to candidate",
			total: 22, requested: 16,
			want: Balanced{SignatureSize: 16, LastSignatureSize: 8, TotalSignatures: 2, TotalBlanksAdded: 2},
		},
		{
			name:  "shorter than one signature",
			total: 10, requested: 16,
			want: Balanced{SignatureSize: 16, LastSignatureSize: 12, TotalSignatures: 1, TotalBlanksAdded: 2},
		},
		{
			name:  "single page",
			total: 1, requested: 16,
			want: Balanced{SignatureSize: 16, LastSignatureSize: 4, TotalSignatures: 1, TotalBlanksAdded: 3},
		},
		{
			name:  "empty document",
			total: 0, requested: 16,
			want: Balanced{SignatureSize: 16, LastSignatureSize: 16},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Balance(tt.total, tt.requested)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Balance(%d, %d) = %+v, want %+v", tt.total, tt.requested, got, tt.want)
			}
		})
	}
}

func TestBalanceCoversDocument(t *testing.T) {
	for _, req := range SupportedSizes {
		for total := 1; total <= 130; total++ {
			b := Balance(total, req)
			if got := b.Pages(); got != total+b.TotalBlanksAdded {
				t.Fatalf("Balance(%d, %d): pages %d != total %d + blanks %d", total, req, got, total, b.TotalBlanksAdded)
			}
			if !Supported(b.LastSignatureSize) {
				t.Fatalf("Balance(%d, %d): last size %d cannot be folded", total, req, b.LastSignatureSize)
			}
			if b.LastSignatureSize > b.SignatureSize {
				t.Fatalf("Balance(%d, %d): last size %d grew", total, req, b.LastSignatureSize)
			}
		}
	}
}

func TestLayouts(t *testing.T) {
	got := Balance(34, 16).Layouts()
	want := []Layout{
		{Index: 0, Base: 0, Size: 16},
		{Index: 1, Base: 16, Size: 16},
		{Index: 2, Base: 32, Size: 4},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Layouts() = %v, want %v", got, want)
	}
}
