package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Dicklesworthstone/sysdash/internal/model"
	"github.com/Dicklesworthstone/sysdash/internal/sampler"
)

const coresPerColumn = 8

// cpuMemoryPanel shows CPU and memory detail with usage over time.
type cpuMemoryPanel struct {
	upd  *model.CPUMemoryUpdate
	cpu  *series
	mem  *series
	swap *series
}

func newCPUMemoryPanel(historySize int) *cpuMemoryPanel {
	return &cpuMemoryPanel{
		cpu:  newSeries(historySize),
		mem:  newSeries(historySize),
		swap: newSeries(historySize),
	}
}

func (p *cpuMemoryPanel) apply(u sampler.Update) error {
	var upd model.CPUMemoryUpdate
	if err := model.Decode(u.Payload, &upd); err != nil {
		return err
	}
	p.upd = &upd
	p.cpu.push(upd.Usage)
	p.mem.push(upd.Memory.UsedPercent())
	p.swap.push(upd.Memory.SwapPercent())
	return nil
}

func (p *cpuMemoryPanel) view(width, height int) string {
	if p.upd == nil {
		return subtleStyle.Render("Waiting for first sample…")
	}
	u := p.upd

	chartWidth := width - 40
	if chartWidth < 10 {
		chartWidth = 10
	}

	info := fmt.Sprintf("Name: %s\nCore count: %d\nUsage: %.1f%%\nFrequency: %d MHz\nTemperature: %s",
		truncate(orDefault(u.Name, model.NotAvailable), 30), u.CoreCount, u.Usage, u.Frequency,
		FormatTemperature(u.Temperature))
	cpuRow := lipgloss.JoinHorizontal(lipgloss.Top,
		card("CPU", info),
		card("CPU usage over time", sparkline(p.cpu.all(), chartWidth, true)))

	coreRow := card("Cores", p.renderCores())

	mem := u.Memory
	memInfo := fmt.Sprintf("Total: %s\nUsed: %s\nFree: %s\nSwap: %s\nUsed swap: %s\nFree swap: %s",
		FormatBytes(mem.Total), FormatBytes(mem.Used), FormatBytes(mem.Available),
		FormatBytes(mem.SwapTotal), FormatBytes(mem.SwapUsed), FormatBytes(mem.SwapAvailable))
	memChart := fmt.Sprintf("Memory %s\nSwap   %s",
		sparkline(p.mem.all(), chartWidth, true),
		sparkline(p.swap.all(), chartWidth, true))
	memRow := lipgloss.JoinHorizontal(lipgloss.Top,
		card("Memory / Swap", memInfo),
		card("Memory & swap usage over time", memChart))

	return lipgloss.JoinVertical(lipgloss.Left, cpuRow, coreRow, memRow)
}

func (p *cpuMemoryPanel) renderCores() string {
	if len(p.upd.Cores) == 0 {
		return subtleStyle.Render("no per-core data")
	}
	var columns []string
	for start := 0; start < len(p.upd.Cores); start += coresPerColumn {
		end := start + coresPerColumn
		if end > len(p.upd.Cores) {
			end = len(p.upd.Cores)
		}
		lines := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			c := p.upd.Cores[i]
			lines = append(lines, fmt.Sprintf("core %-3d %s %5d MHz %8s",
				i, gaugeBar(c.Usage, 10), c.Frequency, FormatTemperature(c.Temperature)))
		}
		columns = append(columns, strings.Join(lines, "\n"))
	}
	for i := range columns[:len(columns)-1] {
		columns[i] = lipgloss.NewStyle().MarginRight(2).Render(columns[i])
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, columns...)
}
