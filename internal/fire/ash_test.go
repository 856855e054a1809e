package fire

import (
	"testing"

	"firefield/internal/core"
)

func TestAshRecyclesThroughTop(t *testing.T) {
	p := DefaultConfig().Ash
	rng := core.NewRNG(7)
	a := AshParticle{X: 50, Y: -9.9, Speed: 0.2, Opacity: 0.3}
	a.Advance(400, 300, p, rng)
	if a.Y != 310 {
		t.Fatalf("y = %v, want 310", a.Y)
	}
	if a.X < 0 || a.X >= 400 {
		t.Fatalf("x = %v, want within [0, 400)", a.X)
	}
}

func TestAshWrapsHorizontally(t *testing.T) {
	p := DefaultConfig().Ash
	rng := core.NewRNG(8)

	left := AshParticle{X: -9.95, Y: 100, Drift: -0.1, Opacity: 0.3}
	left.Advance(400, 300, p, rng)
	if left.X != 410 {
		t.Fatalf("left wrap x = %v, want 410", left.X)
	}

	right := AshParticle{X: 409.95, Y: 100, Drift: 0.1, Opacity: 0.3}
	right.Advance(400, 300, p, rng)
	if right.X != -10 {
		t.Fatalf("right wrap x = %v, want -10", right.X)
	}
}

func TestAshOpacityStaysInBand(t *testing.T) {
	p := DefaultConfig().Ash
	rng := core.NewRNG(9)
	ash := spawnAsh(50, 800, 600, p, rng)
	for step := 0; step < 500; step++ {
		for i := range ash {
			ash[i].Advance(800, 600, p, rng)
			if o := ash[i].Opacity; o < p.OpacityFloor || o > p.OpacityCeil {
				t.Fatalf("particle %d opacity %v outside band", i, o)
			}
			if y := ash[i].Y; y < -p.Margin-1 || y > 600+p.Margin {
				t.Fatalf("particle %d y %v escaped the viewport", i, y)
			}
		}
	}
}

func TestSpawnAshRanges(t *testing.T) {
	p := DefaultConfig().Ash
	ash := spawnAsh(200, 640, 480, p, core.NewRNG(10))
	if len(ash) != 200 {
		t.Fatalf("spawned %d particles, want 200", len(ash))
	}
	for i, a := range ash {
		if a.X < 0 || a.X >= 640 || a.Y < 0 || a.Y >= 480 {
			t.Fatalf("particle %d spawned off-screen at (%v, %v)", i, a.X, a.Y)
		}
		if a.Radius < 0.6 || a.Radius >= 2.4 {
			t.Fatalf("particle %d radius %v", i, a.Radius)
		}
		if a.Speed < 0.15 || a.Speed >= 0.4 {
			t.Fatalf("particle %d speed %v", i, a.Speed)
		}
		if a.Drift < -0.125 || a.Drift >= 0.125 {
			t.Fatalf("particle %d drift %v", i, a.Drift)
		}
	}
}
