package ui

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dicklesworthstone/sysdash/internal/config"
	"github.com/Dicklesworthstone/sysdash/internal/logger"
	"github.com/Dicklesworthstone/sysdash/internal/model"
	"github.com/Dicklesworthstone/sysdash/internal/sampler"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

// scriptedRefresher serves the given overview snapshots in order and then
// panics, which the poller turns into skipped ticks.
type scriptedRefresher struct {
	mu       sync.Mutex
	overview []model.OverviewSnapshot
	served   int
}

func (r *scriptedRefresher) Snapshot(c sampler.PollingContext) any {
	r.mu.Lock()
	defer r.mu.Unlock()
	switch c {
	case sampler.ContextOverview:
		if r.served >= len(r.overview) {
			panic("no more samples")
		}
		s := r.overview[r.served]
		r.served++
		return s
	case sampler.ContextCPUAndMemory:
		return model.CPUMemoryUpdate{
			Name:      "Test CPU",
			CoreCount: 2,
			Usage:     12.5,
			Frequency: 2100,
			Cores:     []model.CPUCore{{Usage: 10, Frequency: 2100}, {Usage: 15, Frequency: 2100}},
			Memory:    model.MemorySnapshot{Total: 100, Used: 25},
		}
	case sampler.ContextProcesses:
		return model.ProcessList{Processes: []model.ProcessEntry{
			{PID: 10, Name: model.StringPtr("busy"), CPUUsage: 50},
			{PID: 20, Name: model.StringPtr("idle"), CPUUsage: 1},
			{PID: 30, CPUUsage: 0},
		}}
	case sampler.ContextDisks:
		return model.DiskInfo{Disks: []model.DiskEntry{{Mount: "/", FileSystem: "ext4", Total: 100, Used: 40, Available: 60}}}
	case sampler.ContextNetwork:
		return model.NetworkSnapshot{Interfaces: 2, BytesReceived: 1000}
	}
	return nil
}

func overviews(usages ...float64) []model.OverviewSnapshot {
	out := make([]model.OverviewSnapshot, len(usages))
	for i, u := range usages {
		out[i] = model.OverviewSnapshot{CPU: model.CPUSnapshot{Name: "Test CPU", Usage: u}}
	}
	return out
}

func testConfig() config.Config {
	cfg := config.Default()
	cfg.FrameInterval = time.Millisecond
	cfg.PollInterval = 10 * time.Millisecond
	return cfg
}

type harness struct {
	model   *Model
	poller  *sampler.Poller
	inbox   *sampler.Mailbox
	log     *logger.BufferLogger
	stopped bool
}

func newHarness(t *testing.T, ref sampler.Refresher) *harness {
	t.Helper()
	h := &harness{inbox: sampler.NewMailbox(), log: logger.NewBufferLogger()}
	h.poller = sampler.NewPoller(ref, h.inbox, 10*time.Millisecond, nil)
	h.model = New(testConfig(), h.poller, h.inbox, func() { h.stopped = true }, h.log)
	return h
}

func encoded(t *testing.T, c sampler.PollingContext, seq uint64, snap any) sampler.Update {
	t.Helper()
	u, err := sampler.NewUpdate(c, seq, snap)
	require.NoError(t, err)
	return u
}

func (h *harness) overview() *overviewPanel {
	return h.model.panels[TabOverview].(*overviewPanel)
}

func TestModel_StartsOnOverview(t *testing.T) {
	h := newHarness(t, &scriptedRefresher{})
	assert.Equal(t, TabOverview, h.model.tab)
	assert.Contains(t, h.model.View(), "Waiting for first sample")
}

func TestModel_AppliesPublishedUpdatesOnceInOrder(t *testing.T) {
	ref := &scriptedRefresher{overview: overviews(10, 20, 30)}
	h := newHarness(t, ref)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan struct{})
	go func() {
		h.poller.Run(ctx)
		close(done)
	}()

	// Tick much faster than the poller publishes.
	deadline := time.Now().Add(2 * time.Second)
	for h.overview().cpu.len() < 3 && time.Now().Before(deadline) {
		h.model.Update(tickMsg{})
		time.Sleep(time.Millisecond)
	}
	// Keep ticking past a few more poll intervals; nothing else arrives.
	for i := 0; i < 50; i++ {
		h.model.Update(tickMsg{})
		time.Sleep(time.Millisecond)
	}
	cancel()
	<-done

	assert.Equal(t, []float64{10, 20, 30}, h.overview().cpu.all())
	assert.Equal(t, uint64(3), h.model.applied[TabOverview])
	assert.Equal(t, 0, h.inbox.Len())
}

func TestModel_TickDrainsAtMostOneUpdate(t *testing.T) {
	h := newHarness(t, &scriptedRefresher{})
	for i, usage := range []float64{1, 2, 3} {
		snap := model.OverviewSnapshot{CPU: model.CPUSnapshot{Usage: usage}}
		require.NoError(t, h.inbox.Send(encoded(t, sampler.ContextOverview, uint64(i+1), snap)))
	}

	_, cmd := h.model.Update(tickMsg{})
	assert.NotNil(t, cmd, "tick should schedule the next frame")
	assert.Equal(t, 1, h.overview().cpu.len())
	assert.Equal(t, 2, h.inbox.Len())

	h.model.Update(tickMsg{})
	h.model.Update(tickMsg{})
	assert.Equal(t, []float64{1, 2, 3}, h.overview().cpu.all())
}

func TestModel_ZeroMemoryTotalRendersZeroPercent(t *testing.T) {
	h := newHarness(t, &scriptedRefresher{})
	snap := model.OverviewSnapshot{Memory: model.MemorySnapshot{Total: 0, Used: 4096}}
	h.model.apply(encoded(t, sampler.ContextOverview, 1, snap))

	latest, ok := h.overview().mem.latest()
	require.True(t, ok)
	assert.Equal(t, 0.0, latest)
	assert.Contains(t, h.model.View(), "0.0%")
}

func TestModel_DecodeFailureKeepsPriorState(t *testing.T) {
	h := newHarness(t, &scriptedRefresher{})
	good := model.OverviewSnapshot{CPU: model.CPUSnapshot{Usage: 42}}
	h.model.apply(encoded(t, sampler.ContextOverview, 1, good))

	h.model.apply(sampler.Update{Context: sampler.ContextOverview, Seq: 2, Payload: []byte("{not json")})

	assert.True(t, h.log.HasLevel("warn"))
	assert.Equal(t, []float64{42}, h.overview().cpu.all())
	assert.Equal(t, 42.0, h.overview().snap.CPU.Usage)
	assert.Equal(t, uint64(1), h.model.applied[TabOverview])
}

func TestModel_DropsStaleUpdates(t *testing.T) {
	h := newHarness(t, &scriptedRefresher{})
	h.model.apply(encoded(t, sampler.ContextOverview, 5, model.OverviewSnapshot{CPU: model.CPUSnapshot{Usage: 5}}))
	h.model.apply(encoded(t, sampler.ContextOverview, 4, model.OverviewSnapshot{CPU: model.CPUSnapshot{Usage: 4}}))

	assert.Equal(t, []float64{5}, h.overview().cpu.all())
	assert.True(t, h.log.HasLevel("debug"))
}

func TestModel_UpdatesForInactiveTabsAreKept(t *testing.T) {
	h := newHarness(t, &scriptedRefresher{})
	h.model.apply(encoded(t, sampler.ContextDisks, 1, model.DiskInfo{Disks: []model.DiskEntry{{Mount: "/data"}}}))

	disks := h.model.panels[TabDisks].(*diskPanel)
	require.NotNil(t, disks.info)
	assert.Equal(t, "/data", disks.info.Disks[0].Mount)
	assert.Equal(t, TabOverview, h.model.tab)
}

func TestModel_TabSwitchSetsContextAndRefreshes(t *testing.T) {
	h := newHarness(t, &scriptedRefresher{overview: overviews(7)})

	h.model.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, TabCPUMemory, h.model.tab)
	assert.Equal(t, sampler.ContextCPUAndMemory, h.poller.Context())
	cpu := h.model.panels[TabCPUMemory].(*cpuMemoryPanel)
	require.NotNil(t, cpu.upd, "new tab should be filled synchronously")
	assert.Equal(t, "Test CPU", cpu.upd.Name)
	assert.Contains(t, h.model.View(), "CPU usage over time")

	h.model.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, TabOverview, h.model.tab)
	assert.Equal(t, sampler.ContextOverview, h.poller.Context())
	assert.Equal(t, []float64{7}, h.overview().cpu.all())

	h.model.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, TabNetwork, h.model.tab)
	assert.Equal(t, sampler.ContextNetwork, h.poller.Context())
}

func TestModel_TabSwitchRefreshFailureIsLogged(t *testing.T) {
	h := newHarness(t, &scriptedRefresher{})
	h.model.switchTab(TabOverview) // scripted refresher has nothing to serve

	assert.True(t, h.log.HasLevel("error"))
	assert.Nil(t, h.overview().snap)
}

func TestModel_ProcessTableScrolls(t *testing.T) {
	h := newHarness(t, &scriptedRefresher{})
	h.model.switchTab(TabProcesses)
	require.Equal(t, 0, h.model.processes.table.Cursor())

	h.model.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, h.model.processes.table.Cursor())

	view := h.model.View()
	assert.Contains(t, view, "busy")
	assert.Contains(t, view, "N/A", "missing process name should render as N/A")
}

func TestModel_Quit(t *testing.T) {
	keys := []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune("q")},
		{Type: tea.KeyEscape},
		{Type: tea.KeyF10},
		{Type: tea.KeyCtrlC},
	}
	for _, k := range keys {
		t.Run(k.String(), func(t *testing.T) {
			h := newHarness(t, &scriptedRefresher{})
			_, cmd := h.model.Update(k)
			require.NotNil(t, cmd)
			assert.IsType(t, tea.QuitMsg{}, cmd())
			assert.True(t, h.stopped)
			assert.ErrorIs(t, h.inbox.Send(sampler.Update{}), sampler.ErrMailboxClosed)
			assert.Empty(t, h.model.View())

			_, cmd = h.model.Update(tickMsg{})
			assert.Nil(t, cmd, "no frames after quitting")
		})
	}
}

func TestModel_ViewIsCachedUntilDirty(t *testing.T) {
	h := newHarness(t, &scriptedRefresher{})
	first := h.model.View()
	assert.False(t, h.model.dirty)

	h.model.frame = "cached"
	assert.Equal(t, "cached", h.model.View())

	h.model.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	assert.True(t, h.model.dirty)
	assert.NotEqual(t, "cached", h.model.View())
	assert.NotEmpty(t, first)
}
