package ui

import (
	"fmt"
	"strings"

	"github.com/Dicklesworthstone/sysdash/internal/model"
	"github.com/Dicklesworthstone/sysdash/internal/sampler"
)

// diskPanel lists every mounted filesystem, busiest first.
type diskPanel struct {
	info *model.DiskInfo
}

func newDiskPanel() *diskPanel { return &diskPanel{} }

func (p *diskPanel) apply(u sampler.Update) error {
	var info model.DiskInfo
	if err := model.Decode(u.Payload, &info); err != nil {
		return err
	}
	p.info = &info
	return nil
}

func (p *diskPanel) view(width, height int) string {
	if p.info == nil {
		return subtleStyle.Render("Waiting for first sample…")
	}
	if len(p.info.Disks) == 0 {
		return card("Disks", subtleStyle.Render("no disks"))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%-20s %-8s %-30s %10s %10s %10s %10s\n",
		"mount", "fs", "used", "total", "free", "read", "written")
	for _, d := range p.info.Disks {
		fmt.Fprintf(&b, "%-20s %-8s %s %10s %10s %10s %10s\n",
			truncate(d.Mount, 20), truncate(d.FileSystem, 8), gaugeBar(d.UsedPercent(), 20),
			FormatBytes(d.Total), FormatBytes(d.Available),
			FormatBytes(d.BytesRead), FormatBytes(d.BytesWritten))
	}
	return card("Disks", strings.TrimRight(b.String(), "\n"))
}
