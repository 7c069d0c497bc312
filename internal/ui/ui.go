package ui

import (
	"context"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Dicklesworthstone/sysdash/internal/config"
	"github.com/Dicklesworthstone/sysdash/internal/errors"
	"github.com/Dicklesworthstone/sysdash/internal/logger"
	"github.com/Dicklesworthstone/sysdash/internal/sampler"
)

// panel is the view state of one tab. Panels keep their state while another
// tab is active.
type panel interface {
	apply(u sampler.Update) error
	view(width, height int) string
}

// Model drains the poller's mailbox and renders the active tab.
type Model struct {
	cfg    config.Config
	poller *sampler.Poller
	inbox  *sampler.Mailbox
	stop   context.CancelFunc
	log    logger.Logger

	keys KeyMap
	help help.Model
	tab  Tab

	panels    [tabCount]panel
	processes *processPanel
	applied   [tabCount]uint64 // last Seq applied per panel

	width    int
	height   int
	dirty    bool
	frame    string
	quitting bool
}

// New builds the dashboard model. stop cancels the poller goroutine.
func New(cfg config.Config, poller *sampler.Poller, inbox *sampler.Mailbox, stop context.CancelFunc, log logger.Logger) *Model {
	if log == nil {
		log = logger.Noop()
	}
	procs := newProcessPanel()
	m := &Model{
		cfg:       cfg,
		poller:    poller,
		inbox:     inbox,
		stop:      stop,
		log:       log,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		tab:       tabFor(poller.Context()),
		processes: procs,
		width:     120,
		height:    40,
		dirty:     true,
	}
	m.panels = [tabCount]panel{
		TabOverview:  newOverviewPanel(cfg.HistorySize, cfg.TopDisks),
		TabCPUMemory: newCPUMemoryPanel(cfg.HistorySize),
		TabProcesses: procs,
		TabDisks:     newDiskPanel(),
		TabNetwork:   newNetworkPanel(cfg.HistorySize, 2*cfg.PollInterval),
	}
	return m
}

// Messages
type tickMsg struct{}

func (m *Model) tickCmd() tea.Cmd {
	return tea.Tick(m.cfg.FrameInterval, func(time.Time) tea.Msg { return tickMsg{} })
}

func (m *Model) Init() tea.Cmd { return m.tickCmd() }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.dirty = true
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, m.quit()
		case key.Matches(msg, m.keys.Next):
			m.switchTab(m.tab.Next())
		case key.Matches(msg, m.keys.Prev):
			m.switchTab(m.tab.Previous())
		case m.tab == TabProcesses:
			m.dirty = true
			return m, m.processes.update(msg)
		}
	case tickMsg:
		if m.quitting {
			return m, nil
		}
		// One update per frame at most.
		if u, ok := m.inbox.TryRecv(); ok {
			m.apply(u)
		}
		return m, m.tickCmd()
	}
	return m, nil
}

// apply routes u to the panel for its context. Updates older than what the
// panel already shows are dropped, which happens after a tab switch when
// the synchronous refresh overtakes a queued tick.
func (m *Model) apply(u sampler.Update) {
	t := tabFor(u.Context)
	if u.Seq <= m.applied[t] {
		m.log.Debug("dropping stale %s update %d", u.Context, u.Seq)
		return
	}
	if err := m.panels[t].apply(u); err != nil {
		m.log.Warn("dropping %s update %d: %v", u.Context, u.Seq, err)
		return
	}
	m.applied[t] = u.Seq
	m.dirty = true
}

func (m *Model) switchTab(t Tab) {
	m.tab = t
	c := t.Context()
	m.poller.SetContext(c)
	u, err := m.poller.RefreshNow(c)
	if err != nil {
		m.log.Error("refresh %s: %v", c, err)
	} else {
		m.apply(u)
	}
	m.dirty = true
}

func (m *Model) quit() tea.Cmd {
	m.quitting = true
	if m.stop != nil {
		m.stop()
	}
	m.inbox.Close()
	return tea.Quit
}

// View returns the cached frame unless something changed since the last call.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.dirty && m.frame != "" {
		return m.frame
	}
	m.frame = m.render()
	m.dirty = false
	return m.frame
}

func (m *Model) render() string {
	header := lipgloss.JoinHorizontal(lipgloss.Center,
		titleStyle.Render("sysdash")+"  ",
		renderMenu(m.tab))
	footer := footerStyle.Render(m.help.View(m.keys))

	bodyHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	body := m.panels[m.tab].view(m.width, bodyHeight)
	if bodyHeight > 0 {
		body = lipgloss.NewStyle().MaxHeight(bodyHeight).Render(body)
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

// RunTUI starts the poller and the Bubble Tea program, and restores the
// terminal once the program exits.
func RunTUI(cfg config.Config) error {
	if !isTerminal(os.Stdout) {
		return errors.New(errors.ErrTerminal,
			"sysdash needs an interactive terminal",
			"Run it directly in a terminal, or use 'sysdash snapshot' for a one-off reading")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	inbox := sampler.NewMailbox()
	poller := sampler.NewPoller(
		sampler.NewSource(sampler.NewProbe()),
		inbox,
		cfg.PollInterval,
		logger.New("[poller]", cfg.Debug),
	)
	go poller.Run(ctx)

	uiLog := logger.New("[ui]", cfg.Debug)
	prog := tea.NewProgram(New(cfg, poller, inbox, cancel, uiLog), tea.WithAltScreen())
	_, err := prog.Run()

	inbox.Close()
	restoreTerminal(os.Stdout, uiLog)

	if err != nil {
		return errors.WrapWithCode(err, errors.ErrTerminal,
			"The dashboard could not drive the terminal",
			"Check that the terminal supports raw mode and the alternate screen")
	}
	return nil
}
