package ui

import (
	"strings"
	"testing"

	"firefield/internal/core"
)

func TestReportAlignsValuesPerGroup(t *testing.T) {
	snap := core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "Layout", Params: []core.Parameter{
			{Key: "grid_w", Label: "Grid width", Value: "128"},
			{Key: "scale", Label: "Scale", Value: "3"},
		}},
		{Name: "Fire", Params: []core.Parameter{
			{Key: "palette", Label: "Palette", Value: "ember"},
		}},
	}}

	got := Report(snap)
	want := "[Layout]\n" +
		"Grid width  128\n" +
		"Scale       3\n" +
		"\n" +
		"[Fire]\n" +
		"Palette  ember\n"
	if got != want {
		t.Fatalf("report mismatch:\n%s\nwant:\n%s", got, want)
	}
}

func TestReportEmptySnapshot(t *testing.T) {
	if got := Report(core.ParameterSnapshot{}); strings.TrimSpace(got) != "" {
		t.Fatalf("empty snapshot rendered %q", got)
	}
}
