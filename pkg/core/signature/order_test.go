package signature

import (
	"errors"
	"reflect"
	"testing"
)

func TestOrderSixteen(t *testing.T) {
	s, err := Order(16, 0)
	if err != nil {
		t.Fatalf("Order(16, 0) error: %v", err)
	}

	wantFront := []int{15, 0, 1, 14, 13, 2, 3, 12}
	wantBack := []int{11, 4, 5, 10, 9, 6, 7, 8}
	if !reflect.DeepEqual(s.Front, wantFront) {
		t.Errorf("Front = %v, want %v", s.Front, wantFront)
	}
	if !reflect.DeepEqual(s.Back, wantBack) {
		t.Errorf("Back = %v, want %v", s.Back, wantBack)
	}
}

func TestOrderFour(t *testing.T) {
	s, err := Order(4, 8)
	if err != nil {
		t.Fatalf("Order(4, 8) error: %v", err)
	}
	if want := []int{11, 8}; !reflect.DeepEqual(s.Front, want) {
		t.Errorf("Front = %v, want %v", s.Front, want)
	}
	if want := []int{9, 10}; !reflect.DeepEqual(s.Back, want) {
		t.Errorf("Back = %v, want %v", s.Back, want)
	}
}

func TestOrderCoversEverySupportedSize(t *testing.T) {
	for _, base := range []int{0, 16, 37} {
		for _, size := range SupportedSizes {
			s, err := Order(size, base)
			if err != nil {
				t.Fatalf("Order(%d, %d) error: %v", size, base, err)
			}
			if len(s.Front) != size/2 || len(s.Back) != size/2 {
				t.Fatalf("Order(%d, %d) sides = %d/%d, want %d each", size, base, len(s.Front), len(s.Back), size/2)
			}

			seen := make(map[int]bool, size)
			for _, p := range append(append([]int{}, s.Front...), s.Back...) {
				if p < base || p >= base+size {
					t.Errorf("Order(%d, %d): page %d out of range", size, base, p)
				}
				if seen[p] {
					t.Errorf("Order(%d, %d): page %d repeated", size, base, p)
				}
				seen[p] = true
			}
			if len(seen) != size {
				t.Errorf("Order(%d, %d) covered %d pages, want %d", size, base, len(seen), size)
			}

			for _, side := range [][]int{s.Front, s.Back} {
				for _, pair := range Pairs(side) {
					if pair[0]+pair[1] != 2*base+size-1 {
						t.Errorf("Order(%d, %d): pair %v does not face across the spine", size, base, pair)
					}
				}
			}
		}
	}
}

func TestOrderAlternatesSides(t *testing.T) {
	for _, size := range SupportedSizes {
		s, err := Order(size, 0)
		if err != nil {
			t.Fatal(err)
		}
		pairs := append(Pairs(s.Front), Pairs(s.Back)...)
		for p, pair := range pairs {
			low := min(pair[0], pair[1])
			if low != p {
				t.Fatalf("Order(%d) pair %d = %v, want page %d", size, p, pair, p)
			}
			lowLeft := pair[0] == low
			if lowLeft != (p%2 == 1) {
				t.Errorf("Order(%d) pair %d = %v: page %d on the wrong side", size, p, pair, p)
			}
		}
	}
}

func TestOrderRejectsUnsupported(t *testing.T) {
	for _, size := range []int{0, 2, 6, 7, 24, 28, 64, -4} {
		if _, err := Order(size, 0); !errors.Is(err, ErrUnsupportedSize) {
			t.Errorf("Order(%d) error = %v, want ErrUnsupportedSize", size, err)
		}
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct{ in, want int }{
		{0, 16},
		{4, 4},
		{32, 32},
		{24, 16},
		{61, 16},
		{-8, 16},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestPairs(t *testing.T) {
	got := Pairs([]int{15, 0, 1, 14})
	want := [][2]int{{15, 0}, {1, 14}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Pairs() = %v, want %v", got, want)
	}
}
