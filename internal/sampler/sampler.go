package sampler

import (
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"

	"github.com/Dicklesworthstone/sysdash/internal/model"
)

// Source produces one snapshot per metric category on demand. Failed
// platform queries never surface as errors: the affected fields are left
// zero or absent so the dashboard keeps rendering.
//
// Source is not safe for concurrent use; the Poller serialises access.
type Source struct {
	probe Probe

	// I/O counters seen when the source was created, per device.
	diskBase map[string]ioBaseline
}

type ioBaseline struct {
	read    uint64
	written uint64
}

func NewSource(probe Probe) *Source {
	s := &Source{
		probe:    probe,
		diskBase: make(map[string]ioBaseline),
	}
	if counters, err := probe.DiskIOCounters(); err == nil {
		for name, c := range counters {
			s.diskBase[name] = ioBaseline{read: c.ReadBytes, written: c.WriteBytes}
		}
	}
	return s
}

// Snapshot dispatches to the refresh operation matching c.
func (s *Source) Snapshot(c PollingContext) any {
	switch c {
	case ContextCPUAndMemory:
		return s.RefreshCPUAndMemory()
	case ContextProcesses:
		return s.RefreshProcesses()
	case ContextDisks:
		return s.RefreshDisks()
	case ContextNetwork:
		return s.RefreshNetwork()
	default:
		return s.RefreshOverview()
	}
}

// RefreshCPU samples processor facts and aggregate usage only.
func (s *Source) RefreshCPU() model.CPUSnapshot {
	infos, _ := s.probe.CPUInfo()
	clocks, _ := s.probe.CPUClocks()
	temps, _ := s.probe.Temperatures()
	return s.cpuSnapshot(infos, clocks, temps)
}

func (s *Source) cpuSnapshot(infos []cpu.InfoStat, clocks []float64, temps []host.TemperatureStat) model.CPUSnapshot {
	count, freq := averageFrequency(infos, clocks)
	snap := model.CPUSnapshot{
		CoreCount:   count,
		Frequency:   freq,
		Temperature: packageTemperature(temps),
	}
	if len(infos) > 0 {
		snap.Name = strings.TrimSpace(infos[0].ModelName)
	}
	if pct, err := s.probe.CPUPercent(false); err == nil && len(pct) > 0 {
		snap.Usage = clampPercent(pct[0])
	}
	return snap
}

// RefreshCPUAndMemory samples CPU, per-core readings and memory together.
func (s *Source) RefreshCPUAndMemory() model.CPUMemoryUpdate {
	infos, _ := s.probe.CPUInfo()
	clocks, _ := s.probe.CPUClocks()
	temps, _ := s.probe.Temperatures()
	cpuSnap := s.cpuSnapshot(infos, clocks, temps)

	perCore, _ := s.probe.CPUPercent(true)
	freqs := coreFrequencies(infos, clocks, len(perCore))
	coreTemps := coreTemperatures(temps, infos, len(perCore))
	cores := make([]model.CPUCore, len(perCore))
	for i, pct := range perCore {
		cores[i] = model.CPUCore{
			Usage:       clampPercent(pct),
			Frequency:   freqs[i],
			Temperature: coreTemps[i],
		}
	}

	return model.CPUMemoryUpdate{
		Name:        cpuSnap.Name,
		CoreCount:   cpuSnap.CoreCount,
		Usage:       cpuSnap.Usage,
		Frequency:   cpuSnap.Frequency,
		Temperature: cpuSnap.Temperature,
		Cores:       cores,
		Memory:      s.RefreshMemory(),
	}
}

// RefreshMemory samples physical memory and swap.
func (s *Source) RefreshMemory() model.MemorySnapshot {
	var snap model.MemorySnapshot
	if vm, err := s.probe.VirtualMemory(); err == nil && vm != nil {
		snap.Total = vm.Total
		snap.Used = vm.Used
		snap.Available = vm.Available
	}
	if sw, err := s.probe.SwapMemory(); err == nil && sw != nil {
		snap.SwapTotal = sw.Total
		snap.SwapUsed = sw.Used
		snap.SwapAvailable = sw.Free
	}
	return snap
}

// RefreshDisks samples every mounted filesystem, busiest first.
func (s *Source) RefreshDisks() model.DiskInfo {
	parts, err := s.probe.Partitions()
	if err != nil {
		return model.DiskInfo{}
	}
	counters, _ := s.probe.DiskIOCounters()

	disks := make([]model.DiskEntry, 0, len(parts))
	for _, p := range parts {
		u, err := s.probe.DiskUsage(p.Mountpoint)
		if err != nil || u == nil || u.Total == 0 {
			continue
		}
		entry := model.DiskEntry{
			Total:      u.Total,
			Available:  u.Free,
			FileSystem: p.Fstype,
			Mount:      p.Mountpoint,
		}
		if u.Free < u.Total {
			entry.Used = u.Total - u.Free
		}
		if name, c, ok := lookupIOCounters(counters, p.Device); ok {
			entry.BytesRead, entry.BytesWritten = s.sinceStart(name, c)
		}
		disks = append(disks, entry)
	}

	sort.SliceStable(disks, func(i, j int) bool { return disks[i].Used > disks[j].Used })
	return model.DiskInfo{Disks: disks}
}

// sinceStart returns I/O since the device was first seen. A counter that went
// backwards (driver reload, device swap) restarts the baseline.
func (s *Source) sinceStart(name string, c disk.IOCountersStat) (read, written uint64) {
	base, ok := s.diskBase[name]
	if !ok || c.ReadBytes < base.read || c.WriteBytes < base.written {
		base = ioBaseline{read: c.ReadBytes, written: c.WriteBytes}
		s.diskBase[name] = base
	}
	return c.ReadBytes - base.read, c.WriteBytes - base.written
}

// RefreshNetwork sums counters over all interfaces.
func (s *Source) RefreshNetwork() model.NetworkSnapshot {
	counters, err := s.probe.NetIOCounters()
	if err != nil {
		return model.NetworkSnapshot{}
	}
	snap := model.NetworkSnapshot{Interfaces: len(counters)}
	for _, c := range counters {
		snap.BytesReceived += c.BytesRecv
		snap.BytesTransmitted += c.BytesSent
		snap.PacketsReceived += c.PacketsRecv
		snap.PacketsTransmitted += c.PacketsSent
		snap.ErrorsReceived += c.Errin
		snap.ErrorsTransmitted += c.Errout
	}
	return snap
}

// RefreshSystem samples host facts. Each fact falls back on its own;
// HostName is nil whenever the host name lookup fails.
func (s *Source) RefreshSystem() model.SystemSnapshot {
	var snap model.SystemSnapshot
	if name, err := s.probe.HostName(); err == nil {
		snap.HostName = model.StringPtr(name)
	}
	if kernel, err := s.probe.KernelVersion(); err == nil {
		snap.KernelVersion = kernel
	}
	if uptime, err := s.probe.Uptime(); err == nil {
		snap.Uptime = uptime
	}
	if avg, err := s.probe.LoadAvg(); err == nil && avg != nil {
		snap.Load1 = avg.Load1
		snap.Load5 = avg.Load5
		snap.Load15 = avg.Load15
	}
	return snap
}

// RefreshProcesses samples every process, ordered by CPU usage.
func (s *Source) RefreshProcesses() model.ProcessList {
	samples, err := s.probe.Processes()
	if err != nil {
		return model.ProcessList{}
	}
	procs := make([]model.ProcessEntry, len(samples))
	for i, p := range samples {
		procs[i] = model.ProcessEntry{
			PID:           p.PID,
			Name:          model.StringPtr(p.Name),
			Memory:        p.Memory,
			VirtualMemory: p.VirtualMemory,
			CPUUsage:      p.CPUUsage,
			CPUTime:       p.CPUTime,
			User:          model.StringPtr(p.User),
			RunTime:       p.RunTime,
			Command:       model.StringPtr(p.Exe),
		}
	}
	sort.SliceStable(procs, func(i, j int) bool {
		if procs[i].CPUUsage != procs[j].CPUUsage {
			return procs[i].CPUUsage > procs[j].CPUUsage
		}
		return procs[i].PID < procs[j].PID
	})
	return model.ProcessList{Processes: procs}
}

// RefreshOverview samples every category for the overview tab.
func (s *Source) RefreshOverview() model.OverviewSnapshot {
	return model.OverviewSnapshot{
		CPU:     s.RefreshCPU(),
		System:  s.RefreshSystem(),
		Memory:  s.RefreshMemory(),
		Disks:   s.RefreshDisks(),
		Network: s.RefreshNetwork(),
	}
}

// averageFrequency returns the core count and the truncated mean MHz.
// Linux reports one InfoStat per logical CPU; macOS and Windows report a
// single entry for the package with Cores set. Current clocks win over the
// InfoStat MHz, which is the maximum clock on Linux.
func averageFrequency(infos []cpu.InfoStat, clocks []float64) (count int, mhz uint64) {
	switch len(infos) {
	case 0:
		return 0, 0
	case 1:
		count = int(infos[0].Cores)
		if count < 1 {
			count = 1
		}
	default:
		count = len(infos)
	}

	if len(clocks) == 0 {
		clocks = make([]float64, len(infos))
		for i, info := range infos {
			clocks[i] = info.Mhz
		}
	}
	var sum uint64
	for _, c := range clocks {
		sum += uint64(c)
	}
	return count, sum / uint64(len(clocks))
}

func coreFrequencies(infos []cpu.InfoStat, clocks []float64, n int) []uint64 {
	freqs := make([]uint64, n)
	for i := range freqs {
		switch {
		case i < len(clocks):
			freqs[i] = uint64(clocks[i])
		case i < len(infos) && len(infos) > 1:
			freqs[i] = uint64(infos[i].Mhz)
		case len(infos) > 0:
			freqs[i] = uint64(infos[0].Mhz)
		}
	}
	return freqs
}

// packageTemperature picks the sensor that best represents the whole CPU.
func packageTemperature(temps []host.TemperatureStat) *float64 {
	for _, key := range []string{"package", "tctl", "tdie", "cpu", "k10temp"} {
		for _, t := range temps {
			if strings.Contains(strings.ToLower(t.SensorKey), key) && t.Temperature > 0 {
				return model.Float64Ptr(t.Temperature)
			}
		}
	}
	return nil
}

// coreTemperatures maps sensors such as "coretemp_core_3" or
// "coretemp_core3_input" to logical CPUs. The sensor number is a physical
// core ID, so it is matched against InfoStat.CoreID: hyperthread siblings
// share a reading and gaps in the numbering are skipped. Cores without a
// sensor stay nil.
func coreTemperatures(temps []host.TemperatureStat, infos []cpu.InfoStat, n int) []*float64 {
	out := make([]*float64, n)
	logical := make(map[int][]int)
	for i, info := range infos {
		if i >= n {
			break
		}
		if id, err := strconv.Atoi(strings.TrimSpace(info.CoreID)); err == nil {
			logical[id] = append(logical[id], i)
		}
	}
	for _, t := range temps {
		id, ok := coreIndex(t.SensorKey)
		if !ok || t.Temperature <= 0 {
			continue
		}
		for _, i := range logical[id] {
			out[i] = model.Float64Ptr(t.Temperature)
		}
	}
	return out
}

func coreIndex(key string) (int, bool) {
	key = strings.ToLower(key)
	i := strings.LastIndex(key, "core")
	if i < 0 {
		return 0, false
	}
	rest := strings.TrimLeft(key[i+len("core"):], "_")
	end := 0
	for end < len(rest) && rest[end] >= '0' && rest[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}
	idx, err := strconv.Atoi(rest[:end])
	if err != nil {
		return 0, false
	}
	return idx, true
}

// lookupIOCounters matches a partition device such as /dev/nvme0n1p2 to the
// key used by the I/O counters map.
func lookupIOCounters(counters map[string]disk.IOCountersStat, device string) (string, disk.IOCountersStat, bool) {
	for _, name := range []string{device, strings.TrimPrefix(device, "/dev/"), filepath.Base(device)} {
		if c, ok := counters[name]; ok {
			return name, c, true
		}
	}
	return "", disk.IOCountersStat{}, false
}

func clampPercent(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
