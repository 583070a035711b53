package sim

import "testing"

func TestLCGDeterminism(t *testing.T) {
	a := NewLCG(42)
	b := NewLCG(42)

	for i := 0; i < 100; i++ {
		va, vb := a.Float64(), b.Float64()
		if va != vb {
			t.Fatalf("sequences diverged at step %d: %v != %v", i, va, vb)
		}
		if va < 0 || va >= 1 {
			t.Fatalf("Float64 out of [0,1) at step %d: %v", i, va)
		}
	}
}

func TestLCGFirstValue(t *testing.T) {
	// state(1) = 1*1664525 + 1013904223 = 1015568748
	got := NewLCG(1).Float64()
	want := float64(1015568748) / (1 << 32)
	if got != want {
		t.Fatalf("first value for seed 1 = %v, want %v", got, want)
	}
}

func TestLCGBetween(t *testing.T) {
	r := NewLCG(7)
	for i := 0; i < 1000; i++ {
		v := r.Between(55, 100)
		if v < 55 || v >= 100 {
			t.Fatalf("Between(55,100) = %v out of range", v)
		}
	}
}

func TestLCGIntN(t *testing.T) {
	r := NewLCG(7)
	seen := make(map[int]bool)
	for i := 0; i < 1000; i++ {
		n := r.IntN(6)
		if n < 0 || n >= 6 {
			t.Fatalf("IntN(6) = %d out of range", n)
		}
		seen[n] = true
	}
	if len(seen) != 6 {
		t.Fatalf("IntN(6) produced %d distinct values over 1000 draws, want 6", len(seen))
	}
}
