package main

import (
	"testing"

	"firefield/internal/core"
	"firefield/internal/fire"
)

func TestParseViewports(t *testing.T) {
	got, err := parseViewports("375x667, 1920x1080,")
	if err != nil {
		t.Fatalf("parseViewports: %v", err)
	}
	if len(got) != 2 || got[0] != (core.Size{W: 375, H: 667}) || got[1] != (core.Size{W: 1920, H: 1080}) {
		t.Fatalf("viewports = %v", got)
	}
	if _, err := parseViewports("1024-768"); err == nil {
		t.Fatal("malformed viewport accepted")
	}
}

func TestRunScenarioReachGrowsAsDecayDrops(t *testing.T) {
	vp := core.Size{W: 1024, H: 768}
	hot := runScenario(fire.DefaultConfig(), scenario{viewport: vp, decayStep: 2}, 200, 100, 1)
	cold := runScenario(fire.DefaultConfig(), scenario{viewport: vp, decayStep: 12}, 200, 100, 1)
	if hot.grid != (core.Size{W: 341, H: 128}) {
		t.Fatalf("grid = %v", hot.grid)
	}
	if hot.meanReach <= cold.meanReach {
		t.Fatalf("decay 2 reach %.1f should exceed decay 12 reach %.1f", hot.meanReach, cold.meanReach)
	}
	if cold.peakReach == 0 || cold.coverage <= 0 {
		t.Fatalf("cold scenario produced no flame: %+v", cold)
	}
}
