package ui

import (
	"fmt"
	"strings"
)

// sparkBlocks are the eighth-height bar glyphs used for the CPU graph.
var sparkBlocks = []rune("▁▂▃▄▅▆▇█")

// renderSparkline draws values (0-100) as a single-line graph, newest on
// the right, truncated on the left to fit width.
func renderSparkline(values []float64, width int) string {
	if width <= 0 || len(values) == 0 {
		return ""
	}
	if len(values) > width {
		values = values[len(values)-width:]
	}

	var sb strings.Builder
	for _, v := range values {
		idx := int(v / 100 * float64(len(sparkBlocks)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkBlocks) {
			idx = len(sparkBlocks) - 1
		}
		sb.WriteRune(sparkBlocks[idx])
	}
	return sb.String()
}

// renderBar draws a labeled horizontal gauge: Label [|||||     ].
func renderBar(value, max, width int, label string) string {
	barLen := width - len(label) - 3
	if barLen < 5 {
		return fmt.Sprintf("%s %d%%", label, value)
	}
	if max <= 0 {
		max = 1
	}

	filled := int(float64(value) / float64(max) * float64(barLen))
	if filled > barLen {
		filled = barLen
	}
	if filled < 0 {
		filled = 0
	}

	bar := strings.Repeat("|", filled) + strings.Repeat(" ", barLen-filled)

	style := GraphStyle
	if value*100 >= max*80 {
		style = AlertGraphStyle
	}
	return fmt.Sprintf("%s [%s]", label, style.Render(bar))
}
