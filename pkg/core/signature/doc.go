// Package signature computes page order and sizing for printer signatures.
//
// # Overview
//
// A signature is a folded group of sheets forming one self-contained block of
// consecutive pages. Perfect-bound books are a stack of signatures. This
// package answers two questions:
//
//   - [Order]: in which order do a signature's pages land on the front and
//     back of its sheets?
//   - [Balance]: when the document does not divide evenly, how large should
//     the trailing signature be?
//
// # Page Order
//
// For a signature of S pages starting at base, the front side holds the
// outer pairs and the back side the inner pairs, each flattened as
// (left, right) spread pairs:
//
//	front: base+S-1, base+0, base+1, base+S-2, ...
//	back:  base+k,   base+S-1-k, ...
//
// Each left/right pair sums to 2*base+S-1: facing pages across the spine.
//
// # Supported Sizes
//
// Sizes must be one of [SupportedSizes]. Anything else makes [Order] return
// [ErrUnsupportedSize]; callers fall back to [DefaultSize].
//
// # Balancing
//
// A 34-page document in 16-page signatures leaves 2 pages for a third
// signature, which would need 14 blanks. [Balance] instead shrinks the last
// signature to 4 pages (2 blanks). Only the trailing signature changes size.
package signature
