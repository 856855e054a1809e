package ui

import (
	"strings"

	"firefield/internal/core"
)

// Report renders a snapshot as aligned plain text, one block per group.
func Report(s core.ParameterSnapshot) string {
	var b strings.Builder
	for i, g := range s.Groups {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString("[" + g.Name + "]\n")
		width := 0
		for _, p := range g.Params {
			width = max(width, len(p.Label))
		}
		for _, p := range g.Params {
			b.WriteString(p.Label)
			b.WriteString(strings.Repeat(" ", width-len(p.Label)+2))
			b.WriteString(p.Value)
			b.WriteByte('\n')
		}
	}
	return b.String()
}
