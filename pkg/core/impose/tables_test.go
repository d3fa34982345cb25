package impose

import (
	"testing"

	"github.com/matzehuels/imposer/pkg/core/signature"
)

func TestPerfectBoundTablesArePermutations(t *testing.T) {
	for v, sheets := range perfectBoundOffsets {
		seen := make(map[int]bool)
		for _, sheet := range sheets {
			for _, row := range sheet {
				for _, off := range row {
					if off < 0 || off >= perfectBoundGroup {
						t.Errorf("%s: offset %d out of range", variant(v), off)
					}
					if seen[off] {
						t.Errorf("%s: offset %d repeated", variant(v), off)
					}
					seen[off] = true
				}
			}
		}
		if len(seen) != perfectBoundGroup {
			t.Errorf("%s: %d offsets, want %d", variant(v), len(seen), perfectBoundGroup)
		}
	}
}

// Facing pages of a 16-page signature sum to 15, exactly as the spread
// pairs produced by signature.Order do.
func TestPerfectBoundTablesPairFacingPages(t *testing.T) {
	sides, err := signature.Order(perfectBoundGroup, 0)
	if err != nil {
		t.Fatal(err)
	}
	facing := make(map[[2]int]bool)
	for _, side := range [][]int{sides.Front, sides.Back} {
		for _, p := range signature.Pairs(side) {
			facing[[2]int{p[0], p[1]}] = true
			facing[[2]int{p[1], p[0]}] = true
		}
	}

	for v, sheets := range perfectBoundOffsets {
		for s, sheet := range sheets {
			for r, row := range sheet {
				for c := 0; c < len(row); c += 2 {
					pair := [2]int{row[c], row[c+1]}
					if pair[0]+pair[1] != perfectBoundGroup-1 {
						t.Errorf("%s sheet %d row %d: %v do not face", variant(v), s, r, pair)
					}
					if !facing[pair] {
						t.Errorf("%s sheet %d row %d: %v is not a signature spread", variant(v), s, r, pair)
					}
				}
			}
		}
	}
}

func TestSpreadGroupsCoverEverySpread(t *testing.T) {
	for _, v := range []variant{sheetwise, workTurn, workTumble} {
		for total := 1; total <= 40; total++ {
			seen := make(map[int]bool)
			for _, g := range spreadGroups(v, total) {
				for _, idx := range g {
					if idx < 0 {
						continue
					}
					if seen[idx] {
						t.Errorf("%s total=%d: spread %d repeated", v, total, idx)
					}
					seen[idx] = true
				}
			}
			if len(seen) != total {
				t.Errorf("%s total=%d: %d spreads placed", v, total, len(seen))
			}
		}
	}
}

func TestSheetwiseGroupsPairFrontAndBack(t *testing.T) {
	groups := spreadGroups(sheetwise, 8)
	if len(groups) != 2 {
		t.Fatalf("groups = %d, want 2", len(groups))
	}
	front, back := groups[0], groups[1]
	// Mirrored columns: the back of position 0 is position 1 of the next sheet.
	want := [spreadsPerSheet]int{front[1] + 1, front[0] + 1, front[3] + 1, front[2] + 1}
	if back != want {
		t.Errorf("back = %v, want %v", back, want)
	}
}
