package core

import "testing"

func TestByteGridFloorsDimensions(t *testing.T) {
	g := NewByteGrid(0, -4)
	if g.W != 1 || g.H != 1 || len(g.Cells()) != 1 {
		t.Fatalf("grid = %dx%d (%d cells), want 1x1", g.W, g.H, len(g.Cells()))
	}
}

func TestByteGridRowsAndClamp(t *testing.T) {
	g := NewByteGrid(4, 3)
	g.Row(2)[1] = 9
	if g.Cells()[g.Index(1, 2)] != 9 {
		t.Fatal("Row does not alias the backing slice")
	}
	for in, want := range map[int]int{-1: 0, 0: 0, 3: 3, 4: 3, 10: 3} {
		if got := g.ClampX(in); got != want {
			t.Fatalf("ClampX(%d) = %d, want %d", in, got, want)
		}
	}
	g.Clear()
	for _, v := range g.Cells() {
		if v != 0 {
			t.Fatal("Clear left data behind")
		}
	}
}

func TestRNGRanges(t *testing.T) {
	r := NewRNG(42)
	for i := 0; i < 1000; i++ {
		if v := r.Uint8Range(200, 255); v < 200 {
			t.Fatalf("Uint8Range = %d", v)
		}
		if v := r.Uint8Range(10, 5); v < 5 || v > 10 {
			t.Fatalf("reversed Uint8Range = %d", v)
		}
		if v := r.IntN(3); v < 0 || v > 2 {
			t.Fatalf("IntN(3) = %d", v)
		}
		if v := r.Range(0.5, 1); v < 0.5 || v >= 1.5 {
			t.Fatalf("Range = %v", v)
		}
	}
	if r.IntN(0) != 0 {
		t.Fatal("IntN(0) should be 0")
	}
	a, b := NewRNG(7), NewRNG(7)
	for i := 0; i < 10; i++ {
		if a.Float64() != b.Float64() {
			t.Fatal("equal seeds diverged")
		}
	}
}

func TestRegistryKeepsOrder(t *testing.T) {
	var r Registry[int]
	r.Register("b", 1)
	r.Register("a", 2)
	r.Register("", 3)
	r.Register("b", 4)
	names := r.Names()
	if len(names) != 2 || names[0] != "b" || names[1] != "a" {
		t.Fatalf("names = %v", names)
	}
	if v, ok := r.Lookup("b"); !ok || v != 4 {
		t.Fatalf("Lookup(b) = %d, %v", v, ok)
	}
}
