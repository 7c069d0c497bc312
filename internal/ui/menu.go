package ui

import (
	"strings"

	"github.com/Dicklesworthstone/sysdash/internal/sampler"
)

// Tab is a dashboard panel in the menu ring.
type Tab int

const (
	TabOverview Tab = iota
	TabCPUMemory
	TabProcesses
	TabDisks
	TabNetwork
	tabCount
)

var tabTitles = [tabCount]string{"Overview", "CPU & Memory", "Processes", "Disk", "Network"}

// Next advances through the ring, wrapping from Network to Overview.
func (t Tab) Next() Tab { return (t + 1) % tabCount }

// Previous steps back through the ring, wrapping from Overview to Network.
func (t Tab) Previous() Tab { return (t + tabCount - 1) % tabCount }

// Title is the menu label.
func (t Tab) Title() string {
	if t < 0 || t >= tabCount {
		return ""
	}
	return tabTitles[t]
}

// Context is the polling context that feeds this tab.
func (t Tab) Context() sampler.PollingContext {
	switch t {
	case TabCPUMemory:
		return sampler.ContextCPUAndMemory
	case TabProcesses:
		return sampler.ContextProcesses
	case TabDisks:
		return sampler.ContextDisks
	case TabNetwork:
		return sampler.ContextNetwork
	default:
		return sampler.ContextOverview
	}
}

func tabFor(c sampler.PollingContext) Tab {
	switch c {
	case sampler.ContextCPUAndMemory:
		return TabCPUMemory
	case sampler.ContextProcesses:
		return TabProcesses
	case sampler.ContextDisks:
		return TabDisks
	case sampler.ContextNetwork:
		return TabNetwork
	default:
		return TabOverview
	}
}

func renderMenu(active Tab) string {
	titles := make([]string, 0, tabCount)
	for t := TabOverview; t < tabCount; t++ {
		if t == active {
			titles = append(titles, activeTabStyle.Render(t.Title()))
		} else {
			titles = append(titles, tabStyle.Render(t.Title()))
		}
	}
	return menuStyle.Render(strings.Join(titles, subtleStyle.Render("│")))
}
