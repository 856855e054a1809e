package fire

import (
	"testing"

	"firefield/internal/core"
)

func TestLayoutDesktop(t *testing.T) {
	l := ComputeLayout(DefaultConfig(), core.Size{W: 1024, H: 768})
	if l.Mobile {
		t.Fatal("1024px should be desktop")
	}
	if l.Scale != 3 {
		t.Fatalf("scale = %d, want 3", l.Scale)
	}
	if l.Grid.W != 341 || l.Grid.H != 128 {
		t.Fatalf("grid = %dx%d, want 341x128", l.Grid.W, l.Grid.H)
	}
	// floor(768*0.38) = 291 is below the 300 floor.
	if l.MaxFlameHeight != 300 {
		t.Fatalf("max flame height = %d, want 300", l.MaxFlameHeight)
	}
	if l.AshCount != 80 {
		t.Fatalf("ash count = %d, want 80", l.AshCount)
	}
}

func TestLayoutMobile(t *testing.T) {
	l := ComputeLayout(DefaultConfig(), core.Size{W: 600, H: 800})
	if !l.Mobile || l.Scale != 4 {
		t.Fatalf("mobile=%v scale=%d, want mobile scale 4", l.Mobile, l.Scale)
	}
	if l.Grid.W != 150 {
		t.Fatalf("grid width = %d, want 150", l.Grid.W)
	}
	if l.MaxFlameHeight != 300 {
		t.Fatalf("max flame height = %d, want 300", l.MaxFlameHeight)
	}
	if l.AshCount != 45 {
		t.Fatalf("ash count = %d, want 45", l.AshCount)
	}
}

func TestLayoutTallViewportRaisesFlameCap(t *testing.T) {
	l := ComputeLayout(DefaultConfig(), core.Size{W: 1920, H: 1200})
	if want := 456; l.MaxFlameHeight != want {
		t.Fatalf("max flame height = %d, want %d", l.MaxFlameHeight, want)
	}
	if l.FlameHeight() != 456 {
		t.Fatalf("flame height = %v, want capped 456", l.FlameHeight())
	}
	if l.FlameTop() != 1200-456 {
		t.Fatalf("flame top = %v, want %d", l.FlameTop(), 1200-456)
	}
}

func TestLayoutDegenerateViewports(t *testing.T) {
	cfg := DefaultConfig()
	for _, vp := range []core.Size{{W: 0, H: 0}, {W: 1, H: 1}, {W: -50, H: -20}, {W: 5000, H: 0}} {
		l := ComputeLayout(cfg, vp)
		if l.Grid.W < cfg.MinGridWidth || l.Grid.H < cfg.MinGridHeight {
			t.Fatalf("viewport %v produced grid %v below minimums", vp, l.Grid)
		}
		if l.MaxFlameHeight < cfg.MinFlameHeight {
			t.Fatalf("viewport %v produced flame cap %d", vp, l.MaxFlameHeight)
		}
		if l.Viewport.W < 0 || l.Viewport.H < 0 {
			t.Fatalf("viewport %v not clamped: %v", vp, l.Viewport)
		}
	}

	cfg.MinGridWidth = 0
	cfg.MinGridHeight = -3
	cfg.ScaleMobile = 0
	l := ComputeLayout(cfg, core.Size{})
	if l.Grid.W < 1 || l.Grid.H < 1 || l.Scale < 1 {
		t.Fatalf("zero minimums produced empty layout %+v", l)
	}
}
