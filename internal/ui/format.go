package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/Dicklesworthstone/sysdash/internal/model"
)

func gaugeBar(pct float64, width int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	if width < 1 {
		width = 1
	}
	filled := int((pct / 100) * float64(width))
	if filled > width {
		filled = width
	}
	bar := lipgloss.NewStyle().Foreground(thresholdColor(pct)).Render(strings.Repeat(gaugeFill, filled))
	return fmt.Sprintf("[%s%s] %5.1f%%", bar, strings.Repeat(gaugeEmpty, width-filled), pct)
}

func card(title, body string) string {
	titleStr := labelStyle.Render(title)
	content := titleStr + "\n" + body
	return cardStyle.Render(content)
}

// FormatBytes renders a byte count with binary units ("1.5 GiB").
func FormatBytes(b uint64) string { return humanize.IBytes(b) }

// FormatCount renders a counter with thousands separators.
func FormatCount(n uint64) string { return humanize.Comma(int64(n)) }

// FormatDuration renders seconds as "3d 4h 5m", or "42s" below a minute.
func FormatDuration(seconds uint64) string {
	if seconds < 60 {
		return fmt.Sprintf("%ds", seconds)
	}
	d := seconds / 86400
	h := seconds % 86400 / 3600
	m := seconds % 3600 / 60
	switch {
	case d > 0:
		return fmt.Sprintf("%dd %dh %dm", d, h, m)
	case h > 0:
		return fmt.Sprintf("%dh %dm", h, m)
	default:
		return fmt.Sprintf("%dm", m)
	}
}

// FormatTemperature renders an optional reading in Celsius.
func FormatTemperature(t *float64) string {
	if t == nil {
		return model.NotAvailable
	}
	return fmt.Sprintf("%.1f°C", *t)
}

// FormatRate renders bytes per second.
func FormatRate(bytesPerSec float64) string {
	if bytesPerSec < 0 {
		bytesPerSec = 0
	}
	return humanize.IBytes(uint64(bytesPerSec)) + "/s"
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return string(r[:n-1]) + "…"
}
