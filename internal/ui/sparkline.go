package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Sparkline block characters representing 8 vertical levels (lowest to highest).
var sparklineBlocks = []rune("▁▂▃▄▅▆▇█")

// sparkline renders the newest width values. Percent data uses a fixed 0-100
// scale and is coloured by the last value; other data scales to its own
// min/max and uses the graph colour.
func sparkline(data []float64, width int, percent bool) string {
	if len(data) == 0 || width <= 0 {
		return ""
	}
	if len(data) > width {
		data = data[len(data)-width:]
	}

	minVal, maxVal := 0.0, 100.0
	if !percent {
		minVal, maxVal = data[0], data[0]
		for _, v := range data {
			if v < minVal {
				minVal = v
			}
			if v > maxVal {
				maxVal = v
			}
		}
	}

	var sb strings.Builder
	sb.Grow(len(data) * 3)
	levels := len(sparklineBlocks)
	valueRange := maxVal - minVal
	for _, v := range data {
		level := levels / 2
		if valueRange > 0 {
			level = int((v - minVal) / valueRange * float64(levels-1))
		}
		if level < 0 {
			level = 0
		} else if level >= levels {
			level = levels - 1
		}
		sb.WriteRune(sparklineBlocks[level])
	}

	color := colorGraph
	if percent {
		color = thresholdColor(data[len(data)-1])
	}
	return lipgloss.NewStyle().Foreground(color).Render(sb.String())
}
