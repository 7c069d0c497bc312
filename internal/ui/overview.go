package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Dicklesworthstone/sysdash/internal/model"
	"github.com/Dicklesworthstone/sysdash/internal/sampler"
)

// overviewPanel is the default tab: one card per metric category.
type overviewPanel struct {
	snap     *model.OverviewSnapshot
	cpu      *series
	mem      *series
	topDisks int
}

func newOverviewPanel(historySize, topDisks int) *overviewPanel {
	return &overviewPanel{
		cpu:      newSeries(historySize),
		mem:      newSeries(historySize),
		topDisks: topDisks,
	}
}

func (p *overviewPanel) apply(u sampler.Update) error {
	var snap model.OverviewSnapshot
	if err := model.Decode(u.Payload, &snap); err != nil {
		return err
	}
	p.snap = &snap
	p.cpu.push(snap.CPU.Usage)
	p.mem.push(snap.Memory.UsedPercent())
	return nil
}

func (p *overviewPanel) view(width, height int) string {
	if p.snap == nil {
		return subtleStyle.Render("Waiting for first sample…")
	}
	s := p.snap

	cpuCard := card("CPU", fmt.Sprintf("%s\nCores: %d  Avg freq: %d MHz  Temp: %s\n%s\n%s",
		truncate(orDefault(s.CPU.Name, model.NotAvailable), 44),
		s.CPU.CoreCount, s.CPU.Frequency, FormatTemperature(s.CPU.Temperature),
		gaugeBar(s.CPU.Usage, 28),
		sparkline(p.cpu.all(), 36, true)))

	sysCard := card("System", fmt.Sprintf("Host:   %s\nKernel: %s\nUptime: %s\nLoad:   %.2f %.2f %.2f",
		truncate(s.System.DisplayHostName(), 28),
		truncate(orDefault(s.System.KernelVersion, model.NotAvailable), 28),
		FormatDuration(s.System.Uptime),
		s.System.Load1, s.System.Load5, s.System.Load15))

	memCard := card("Memory", fmt.Sprintf("RAM  %s %s / %s\nSwap %s %s / %s\n%s",
		gaugeBar(s.Memory.UsedPercent(), 20), FormatBytes(s.Memory.Used), FormatBytes(s.Memory.Total),
		gaugeBar(s.Memory.SwapPercent(), 20), FormatBytes(s.Memory.SwapUsed), FormatBytes(s.Memory.SwapTotal),
		sparkline(p.mem.all(), 36, true)))

	diskLines := make([]string, 0, p.topDisks)
	for _, d := range s.Disks.Top(p.topDisks) {
		diskLines = append(diskLines, fmt.Sprintf("%-14s %s %s free",
			truncate(d.Mount, 14), gaugeBar(d.UsedPercent(), 16), FormatBytes(d.Available)))
	}
	if len(diskLines) == 0 {
		diskLines = append(diskLines, subtleStyle.Render("no disks"))
	}
	diskCard := card("Disks", strings.Join(diskLines, "\n"))

	n := s.Network
	netCard := card("Network", fmt.Sprintf("Interfaces: %d\nRX %s  %s pkts  %d err\nTX %s  %s pkts  %d err",
		n.Interfaces,
		FormatBytes(n.BytesReceived), FormatCount(n.PacketsReceived), n.ErrorsReceived,
		FormatBytes(n.BytesTransmitted), FormatCount(n.PacketsTransmitted), n.ErrorsTransmitted))

	line1 := lipgloss.JoinHorizontal(lipgloss.Top, cpuCard, sysCard, memCard)
	line2 := lipgloss.JoinHorizontal(lipgloss.Top, diskCard, netCard)
	if width > 0 && lipgloss.Width(line1) > width {
		return lipgloss.JoinVertical(lipgloss.Left, cpuCard, sysCard, memCard, diskCard, netCard)
	}
	return lipgloss.JoinVertical(lipgloss.Left, line1, line2)
}
