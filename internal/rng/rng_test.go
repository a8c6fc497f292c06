package rng

import "testing"

func TestSeededIsReproducible(t *testing.T) {
	a := New(42)
	b := New(42)
	for i := 0; i < 100; i++ {
		if x, y := a.Intn(1000), b.Intn(1000); x != y {
			t.Fatalf("draw %d differs: %d vs %d", i, x, y)
		}
	}
}

func TestIntnBounds(t *testing.T) {
	g := New(7)
	if got := g.Intn(0); got != 0 {
		t.Errorf("Intn(0) = %d, expected 0", got)
	}
	for i := 0; i < 1000; i++ {
		if v := g.Intn(5); v < 0 || v >= 5 {
			t.Fatalf("Intn(5) = %d out of range", v)
		}
		if f := g.Float64(); f < 0 || f >= 1 {
			t.Fatalf("Float64() = %f out of range", f)
		}
	}
}

func TestScripted(t *testing.T) {
	s := &Scripted{Ints: []int{3, 12, -4}, Floats: []float64{0.25, 1.5}}

	tests := []struct {
		n        int
		expected int
	}{
		{10, 3},
		{10, 2},
		{10, 4},
		{2, 1},
	}
	for _, tt := range tests {
		if got := s.Intn(tt.n); got != tt.expected {
			t.Errorf("Intn(%d) = %d, expected %d", tt.n, got, tt.expected)
		}
	}

	if got := s.Float64(); got != 0.25 {
		t.Errorf("Float64() = %f, expected 0.25", got)
	}
	if got := s.Float64(); got != 0 {
		t.Errorf("out-of-range script value should read as 0, got %f", got)
	}
}

func TestRangeAndPick(t *testing.T) {
	s := &Scripted{Ints: []int{1}, Floats: []float64{0.5}}
	if got := Range(s, 10, 2); got != 6 {
		t.Errorf("Range with swapped bounds = %f, expected 6", got)
	}
	if got := Pick(s, []string{"a", "b", "c"}); got != "b" {
		t.Errorf("Pick = %q, expected b", got)
	}
	if got := Pick(s, []string(nil)); got != "" {
		t.Errorf("Pick on empty = %q", got)
	}
}
