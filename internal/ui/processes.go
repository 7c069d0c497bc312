package ui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Dicklesworthstone/sysdash/internal/model"
	"github.com/Dicklesworthstone/sysdash/internal/sampler"
)

// Fixed column widths; command takes the remaining space.
var processColumnWidths = []struct {
	title string
	width int
}{
	{"pid", 7},
	{"name", 18},
	{"mem", 10},
	{"virtmem", 10},
	{"cpu", 7},
	{"cputime", 9},
	{"user", 12},
	{"runtime", 11},
}

// processPanel is a scrollable process table.
type processPanel struct {
	table table.Model
	list  []model.ProcessEntry
	width int
}

func newProcessPanel() *processPanel {
	t := table.New(
		table.WithColumns(processColumns(0)),
		table.WithFocused(true),
		table.WithHeight(10),
	)
	return &processPanel{table: t}
}

func processColumns(width int) []table.Column {
	cols := make([]table.Column, 0, len(processColumnWidths)+1)
	used := 0
	for _, c := range processColumnWidths {
		cols = append(cols, table.Column{Title: c.title, Width: c.width})
		// bubbles/table pads each cell by one space on each side.
		used += c.width + 2
	}
	cmdWidth := width - used - 2
	if cmdWidth < 16 {
		cmdWidth = 16
	}
	return append(cols, table.Column{Title: "command", Width: cmdWidth})
}

func (p *processPanel) apply(u sampler.Update) error {
	var list model.ProcessList
	if err := model.Decode(u.Payload, &list); err != nil {
		return err
	}
	p.list = list.Processes
	p.table.SetRows(processRows(list.Processes))
	return nil
}

func processRows(procs []model.ProcessEntry) []table.Row {
	rows := make([]table.Row, len(procs))
	for i, proc := range procs {
		rows[i] = table.Row{
			strconv.Itoa(int(proc.PID)),
			model.OrNA(proc.Name),
			FormatBytes(proc.Memory),
			FormatBytes(proc.VirtualMemory),
			fmt.Sprintf("%.1f%%", proc.CPUUsage),
			FormatDuration(proc.CPUTime),
			model.OrNA(proc.User),
			FormatDuration(proc.RunTime),
			model.OrNA(proc.Command),
		}
	}
	return rows
}

func (p *processPanel) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	p.table, cmd = p.table.Update(msg)
	return cmd
}

func (p *processPanel) view(width, height int) string {
	if width != p.width {
		p.width = width
		p.table.SetColumns(processColumns(width))
	}
	if height > 3 {
		p.table.SetHeight(height - 2)
	}
	header := labelStyle.Render("Processes") + "  " + subtleStyle.Render(fmt.Sprintf("%d running", len(p.list)))
	return header + "\n" + p.table.View()
}
