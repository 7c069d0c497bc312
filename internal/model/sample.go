package model

// NotAvailable is rendered in place of values the platform could not provide.
const NotAvailable = "N/A"

// CPUSnapshot aggregates processor facts and instantaneous usage.
type CPUSnapshot struct {
	Name        string   `json:"name" yaml:"name"`
	Frequency   uint64   `json:"frequency" yaml:"frequency"` // MHz, mean across cores
	CoreCount   int      `json:"core_count" yaml:"core_count"`
	Usage       float64  `json:"usage" yaml:"usage"` // percent 0-100
	Temperature *float64 `json:"temperature,omitempty" yaml:"temperature,omitempty"`
}

// CPUCore is a single logical core reading.
type CPUCore struct {
	Usage       float64  `json:"usage" yaml:"usage"`
	Frequency   uint64   `json:"frequency" yaml:"frequency"`
	Temperature *float64 `json:"temperature,omitempty" yaml:"temperature,omitempty"`
}

// MemorySnapshot captures RAM and swap usage in bytes.
type MemorySnapshot struct {
	Total         uint64 `json:"total" yaml:"total"`
	Used          uint64 `json:"used" yaml:"used"`
	Available     uint64 `json:"available" yaml:"available"`
	SwapTotal     uint64 `json:"swap_total" yaml:"swap_total"`
	SwapUsed      uint64 `json:"swap_used" yaml:"swap_used"`
	SwapAvailable uint64 `json:"swap_available" yaml:"swap_available"`
}

// UsedPercent is Used relative to Total, 0 when Total is unknown.
func (m MemorySnapshot) UsedPercent() float64 { return Percent(m.Used, m.Total) }

// SwapPercent is SwapUsed relative to SwapTotal, 0 when there is no swap.
func (m MemorySnapshot) SwapPercent() float64 { return Percent(m.SwapUsed, m.SwapTotal) }

// DiskEntry is one mounted filesystem. BytesRead and BytesWritten count
// from the moment the sampler first saw the device.
type DiskEntry struct {
	Total        uint64 `json:"total" yaml:"total"`
	Used         uint64 `json:"used" yaml:"used"`
	Available    uint64 `json:"available" yaml:"available"`
	FileSystem   string `json:"file_system" yaml:"file_system"`
	Mount        string `json:"mount" yaml:"mount"`
	BytesRead    uint64 `json:"bytes_read" yaml:"bytes_read"`
	BytesWritten uint64 `json:"bytes_written" yaml:"bytes_written"`
}

// UsedPercent is Used relative to Total, 0 for zero-sized filesystems.
func (d DiskEntry) UsedPercent() float64 { return Percent(d.Used, d.Total) }

// DiskInfo lists disks ordered by used bytes, busiest first.
type DiskInfo struct {
	Disks []DiskEntry `json:"disks" yaml:"disks"`
}

// Top returns at most n disks from the head of the list.
func (d DiskInfo) Top(n int) []DiskEntry {
	if n < 0 || n >= len(d.Disks) {
		return d.Disks
	}
	return d.Disks[:n]
}

// NetworkSnapshot sums counters over every interface.
type NetworkSnapshot struct {
	Interfaces         int    `json:"interfaces" yaml:"interfaces"`
	BytesReceived      uint64 `json:"bytes_received" yaml:"bytes_received"`
	BytesTransmitted   uint64 `json:"bytes_transmitted" yaml:"bytes_transmitted"`
	PacketsReceived    uint64 `json:"packets_received" yaml:"packets_received"`
	PacketsTransmitted uint64 `json:"packets_transmitted" yaml:"packets_transmitted"`
	ErrorsReceived     uint64 `json:"errors_received" yaml:"errors_received"`
	ErrorsTransmitted  uint64 `json:"errors_transmitted" yaml:"errors_transmitted"`
}

// ProcessEntry is a row of the process table. Nil text fields mean the
// platform refused or failed the lookup.
type ProcessEntry struct {
	PID           int32   `json:"pid" yaml:"pid"`
	Name          *string `json:"name,omitempty" yaml:"name,omitempty"`
	Memory        uint64  `json:"memory" yaml:"memory"`
	VirtualMemory uint64  `json:"virtual_memory" yaml:"virtual_memory"`
	CPUUsage      float64 `json:"cpu_usage" yaml:"cpu_usage"`
	CPUTime       uint64  `json:"cpu_time" yaml:"cpu_time"` // seconds
	User          *string `json:"user,omitempty" yaml:"user,omitempty"`
	RunTime       uint64  `json:"run_time" yaml:"run_time"` // seconds
	Command       *string `json:"command,omitempty" yaml:"command,omitempty"`
}

// ProcessList is ordered by CPU usage, highest first.
type ProcessList struct {
	Processes []ProcessEntry `json:"processes" yaml:"processes"`
}

// SystemSnapshot holds host facts.
type SystemSnapshot struct {
	HostName      *string `json:"host_name,omitempty" yaml:"host_name,omitempty"`
	KernelVersion string  `json:"kernel_version" yaml:"kernel_version"`
	Uptime        uint64  `json:"uptime" yaml:"uptime"` // seconds
	Load1         float64 `json:"load_one_minute" yaml:"load_one_minute"`
	Load5         float64 `json:"load_five_minutes" yaml:"load_five_minutes"`
	Load15        float64 `json:"load_fifteen_minutes" yaml:"load_fifteen_minutes"`
}

// DisplayHostName returns the host name or NotAvailable.
func (s SystemSnapshot) DisplayHostName() string { return OrNA(s.HostName) }

// OverviewSnapshot is the payload of the default dashboard tab.
type OverviewSnapshot struct {
	CPU     CPUSnapshot     `json:"cpu" yaml:"cpu"`
	System  SystemSnapshot  `json:"system" yaml:"system"`
	Memory  MemorySnapshot  `json:"memory" yaml:"memory"`
	Disks   DiskInfo        `json:"disks" yaml:"disks"`
	Network NetworkSnapshot `json:"network" yaml:"network"`
}

// CPUMemoryUpdate is the payload of the CPU & memory tab.
type CPUMemoryUpdate struct {
	Name        string         `json:"name" yaml:"name"`
	CoreCount   int            `json:"core_count" yaml:"core_count"`
	Usage       float64        `json:"usage" yaml:"usage"`
	Frequency   uint64         `json:"frequency" yaml:"frequency"`
	Temperature *float64       `json:"temperature,omitempty" yaml:"temperature,omitempty"`
	Cores       []CPUCore      `json:"cores" yaml:"cores"`
	Memory      MemorySnapshot `json:"memory" yaml:"memory"`
}

// Percent returns used/total as 0-100. Platforms occasionally report
// used > total, so the result is clamped.
func Percent(used, total uint64) float64 {
	if total == 0 {
		return 0
	}
	p := float64(used) * 100 / float64(total)
	if p > 100 {
		return 100
	}
	return p
}

// OrNA dereferences s or returns NotAvailable.
func OrNA(s *string) string {
	if s == nil {
		return NotAvailable
	}
	return *s
}

// StringPtr returns nil for the empty string.
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Float64Ptr returns a pointer to f.
func Float64Ptr(f float64) *float64 { return &f }
