package signature

// MaxBlanks is the largest number of blank pages accepted in the trailing
// signature before a smaller size is considered.
const MaxBlanks = 4

// Balanced describes how a document splits into signatures.
type Balanced struct {
	SignatureSize     int // size of every signature except the last
	LastSignatureSize int
	TotalSignatures   int
	TotalBlanksAdded  int
}

// Pages returns the padded page count covered by all signatures.
func (b Balanced) Pages() int {
	if b.TotalSignatures == 0 {
		return 0
	}
	return (b.TotalSignatures-1)*b.SignatureSize + b.LastSignatureSize
}

// Balance splits total pages into signatures of requested size, shrinking
// the trailing signature when padding it would waste more than [MaxBlanks]
// pages.
func Balance(total, requested int) Balanced {
	b := Balanced{SignatureSize: requested, LastSignatureSize: requested}
	if total <= 0 || requested <= 0 {
		return b
	}

	complete := total / requested
	remaining := total % requested
	if remaining == 0 {
		b.TotalSignatures = complete
		return b
	}

	b.TotalSignatures = complete + 1
	blanks := requested - remaining
	if blanks <= MaxBlanks {
		b.TotalBlanksAdded = blanks
		return b
	}

	// An exact fit needs no blanks at all, but only if Order can fold it.
	if remaining >= 4 && remaining%2 == 0 && Supported(remaining) {
		b.LastSignatureSize = remaining
		return b
	}

	best := 0
	for i := len(SupportedSizes) - 1; i >= 0; i-- {
		size := SupportedSizes[i]
		if size >= remaining && size-remaining <= MaxBlanks {
			best = size
		}
	}
	if best > 0 {
		b.LastSignatureSize = best
		b.TotalBlanksAdded = best - remaining
		return b
	}

	b.TotalBlanksAdded = blanks
	return b
}

// Layout locates one signature within the document.
type Layout struct {
	Index int `json:"index"`
	Base  int `json:"base"` // 0-indexed first page
	Size  int `json:"size"`
}

// Layouts expands a balance into consecutive signature locations.
func (b Balanced) Layouts() []Layout {
	out := make([]Layout, 0, b.TotalSignatures)
	base := 0
	for i := 0; i < b.TotalSignatures; i++ {
		size := b.SignatureSize
		if i == b.TotalSignatures-1 {
			size = b.LastSignatureSize
		}
		out = append(out, Layout{Index: i, Base: base, Size: size})
		base += size
	}
	return out
}
