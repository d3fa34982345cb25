package impose

import (
	"github.com/matzehuels/imposer/pkg/core/signature"
	"github.com/matzehuels/imposer/pkg/errors"
)

// buildSignature splits the document into balanced signatures and emits
// one sheet per spread pair: all front pairs of a signature, then its back
// pairs.
func buildSignature(p *planner) error {
	requested := p.req.Options.SignatureSize
	size := signature.Normalize(requested)
	if size != requested {
		p.trace("signature size clamped", "requested", requested, "size", size)
	}

	b := signature.Balance(p.pages(), size)
	p.plan.AdjustedPageCount = b.Pages()
	p.plan.Signatures = b.Layouts()
	p.trace("signature balanced",
		"size", b.SignatureSize,
		"last", b.LastSignatureSize,
		"signatures", b.TotalSignatures,
		"blanks", b.TotalBlanksAdded)

	left, right := p.grid.Cell(0, 0), p.grid.Cell(0, 1)
	for _, sig := range p.plan.Signatures {
		sides, err := signature.Order(sig.Size, sig.Base)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "signature %d of size %d", sig.Index, sig.Size)
		}
		for _, side := range [][]int{sides.Front, sides.Back} {
			for _, pair := range signature.Pairs(side) {
				s := p.newSheet()
				p.put(&s, left, pair[0])
				p.put(&s, right, pair[1])
				p.emit(s)
			}
		}
	}
	return nil
}
