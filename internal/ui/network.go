package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/Dicklesworthstone/sysdash/internal/model"
	"github.com/Dicklesworthstone/sysdash/internal/sampler"
)

// networkPanel shows cumulative totals and throughput derived from
// consecutive totals.
type networkPanel struct {
	snap    *model.NetworkSnapshot
	sampled time.Time
	maxGap  time.Duration
	rx      *series // bytes/s
	tx      *series
}

// newNetworkPanel derives no rate across a gap longer than maxGap (the tab
// was not on screen); the sample only becomes the new baseline.
func newNetworkPanel(historySize int, maxGap time.Duration) *networkPanel {
	return &networkPanel{
		maxGap: maxGap,
		rx:     newSeries(historySize),
		tx:     newSeries(historySize),
	}
}

func (p *networkPanel) apply(u sampler.Update) error {
	var snap model.NetworkSnapshot
	if err := model.Decode(u.Payload, &snap); err != nil {
		return err
	}
	if gap := u.Time.Sub(p.sampled); p.snap != nil && gap > 0 && gap <= p.maxGap {
		elapsed := gap.Seconds()
		p.rx.push(float64(counterDelta(p.snap.BytesReceived, snap.BytesReceived)) / elapsed)
		p.tx.push(float64(counterDelta(p.snap.BytesTransmitted, snap.BytesTransmitted)) / elapsed)
	}
	p.snap = &snap
	p.sampled = u.Time
	return nil
}

// counterDelta treats a counter that went backwards as reset.
func counterDelta(prev, cur uint64) uint64 {
	if cur < prev {
		return 0
	}
	return cur - prev
}

func (p *networkPanel) view(width, height int) string {
	if p.snap == nil {
		return subtleStyle.Render("Waiting for first sample…")
	}
	n := p.snap

	totals := card("Totals", fmt.Sprintf(
		"Interfaces:      %d\nReceived:        %s\nTransmitted:     %s\nPackets in/out:  %s / %s\nErrors in/out:   %s / %s",
		n.Interfaces,
		FormatBytes(n.BytesReceived), FormatBytes(n.BytesTransmitted),
		FormatCount(n.PacketsReceived), FormatCount(n.PacketsTransmitted),
		FormatCount(n.ErrorsReceived), FormatCount(n.ErrorsTransmitted)))

	chartWidth := width - 20
	if chartWidth < 10 {
		chartWidth = 10
	}
	rxNow, _ := p.rx.latest()
	txNow, _ := p.tx.latest()
	rates := card("Throughput", fmt.Sprintf("RX %-12s %s\nTX %-12s %s",
		FormatRate(rxNow), sparkline(p.rx.all(), chartWidth, false),
		FormatRate(txNow), sparkline(p.tx.all(), chartWidth, false)))

	return lipgloss.JoinVertical(lipgloss.Left, totals, rates)
}
