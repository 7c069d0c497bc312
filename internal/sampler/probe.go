package sampler

import (
	"os"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/load"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/net"
	"github.com/shirou/gopsutil/v3/process"
)

// Probe is the boundary to the OS metrics library. Every call refreshes and
// reads in one step; implementations may keep library state between calls.
type Probe interface {
	// CPUInfo describes each CPU. Mhz is the maximum clock on Linux; use
	// CPUClocks for the current one.
	CPUInfo() ([]cpu.InfoStat, error)
	// CPUClocks returns the current MHz of each logical CPU.
	CPUClocks() ([]float64, error)
	// CPUPercent returns usage since the previous call, aggregate or per core.
	CPUPercent(perCore bool) ([]float64, error)
	Temperatures() ([]host.TemperatureStat, error)
	VirtualMemory() (*mem.VirtualMemoryStat, error)
	SwapMemory() (*mem.SwapMemoryStat, error)
	Partitions() ([]disk.PartitionStat, error)
	DiskUsage(path string) (*disk.UsageStat, error)
	DiskIOCounters() (map[string]disk.IOCountersStat, error)
	NetIOCounters() ([]net.IOCountersStat, error)
	HostName() (string, error)
	KernelVersion() (string, error)
	Uptime() (uint64, error)
	LoadAvg() (*load.AvgStat, error)
	Processes() ([]ProcessSample, error)
}

// ProcessSample is one process as read from the library. Empty strings mean
// the lookup failed.
type ProcessSample struct {
	PID           int32
	Name          string
	Memory        uint64
	VirtualMemory uint64
	CPUUsage      float64
	CPUTime       uint64
	User          string
	RunTime       uint64
	Exe           string
}

// psProbe reads metrics through gopsutil. Process handles are kept between
// calls so CPU percentages are measured over the poll interval rather than
// over the process lifetime.
type psProbe struct {
	procs map[int32]*process.Process
	now   func() time.Time
}

// NewProbe returns the gopsutil-backed Probe for the local host.
func NewProbe() Probe {
	return &psProbe{
		procs: make(map[int32]*process.Process),
		now:   time.Now,
	}
}

func (p *psProbe) CPUInfo() ([]cpu.InfoStat, error) { return cpu.Info() }

func (p *psProbe) CPUClocks() ([]float64, error) { return currentClocks() }

func (p *psProbe) CPUPercent(perCore bool) ([]float64, error) { return cpu.Percent(0, perCore) }

func (p *psProbe) Temperatures() ([]host.TemperatureStat, error) {
	temps, err := host.SensorsTemperatures()
	// Some sensors fail while others succeed; partial readings are still useful.
	if len(temps) > 0 {
		return temps, nil
	}
	return nil, err
}

func (p *psProbe) VirtualMemory() (*mem.VirtualMemoryStat, error) { return mem.VirtualMemory() }

func (p *psProbe) SwapMemory() (*mem.SwapMemoryStat, error) { return mem.SwapMemory() }

func (p *psProbe) Partitions() ([]disk.PartitionStat, error) { return disk.Partitions(false) }

func (p *psProbe) DiskUsage(path string) (*disk.UsageStat, error) { return disk.Usage(path) }

func (p *psProbe) DiskIOCounters() (map[string]disk.IOCountersStat, error) {
	return disk.IOCounters()
}

func (p *psProbe) NetIOCounters() ([]net.IOCountersStat, error) { return net.IOCounters(true) }

// Host facts are read one by one: host.Info fails as a whole when any
// part of it does.
func (p *psProbe) HostName() (string, error) { return os.Hostname() }

func (p *psProbe) KernelVersion() (string, error) { return host.KernelVersion() }

func (p *psProbe) Uptime() (uint64, error) { return host.Uptime() }

func (p *psProbe) LoadAvg() (*load.AvgStat, error) { return load.Avg() }

func (p *psProbe) Processes() ([]ProcessSample, error) {
	procs, err := process.Processes()
	if err != nil {
		return nil, err
	}

	now := p.now()
	live := make(map[int32]*process.Process, len(procs))
	out := make([]ProcessSample, 0, len(procs))
	for _, proc := range procs {
		if prev, ok := p.procs[proc.Pid]; ok && sameProcess(prev, proc) {
			proc = prev
		}
		live[proc.Pid] = proc

		s := ProcessSample{PID: proc.Pid}
		s.Name, _ = proc.Name()
		if mi, err := proc.MemoryInfo(); err == nil && mi != nil {
			s.Memory = mi.RSS
			s.VirtualMemory = mi.VMS
		}
		s.CPUUsage, _ = proc.Percent(0)
		if t, err := proc.Times(); err == nil && t != nil {
			s.CPUTime = uint64(t.User + t.System)
		}
		s.User, _ = proc.Username()
		if ct, err := proc.CreateTime(); err == nil && ct > 0 {
			if run := now.Sub(time.UnixMilli(ct)); run > 0 {
				s.RunTime = uint64(run.Seconds())
			}
		}
		s.Exe, _ = proc.Exe()
		out = append(out, s)
	}
	p.procs = live
	return out, nil
}

// sameProcess guards against PID reuse between two polls.
func sameProcess(a, b *process.Process) bool {
	ca, errA := a.CreateTime()
	cb, errB := b.CreateTime()
	return errA == nil && errB == nil && ca == cb
}
