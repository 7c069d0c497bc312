package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleOverview(temp *float64) OverviewSnapshot {
	return OverviewSnapshot{
		CPU: CPUSnapshot{
			Name:        "AMD Ryzen 7 5800X",
			Frequency:   3800,
			CoreCount:   16,
			Usage:       12.5,
			Temperature: temp,
		},
		System: SystemSnapshot{
			HostName:      StringPtr("workstation"),
			KernelVersion: "6.8.0-45-generic",
			Uptime:        86400,
			Load1:         0.42,
			Load5:         0.37,
			Load15:        0.31,
		},
		Memory: MemorySnapshot{
			Total: 32 << 30, Used: 12 << 30, Available: 20 << 30,
			SwapTotal: 2 << 30, SwapUsed: 0, SwapAvailable: 2 << 30,
		},
		Disks: DiskInfo{Disks: []DiskEntry{
			{Total: 1000, Used: 600, Available: 400, FileSystem: "ext4", Mount: "/", BytesRead: 10, BytesWritten: 20},
			{Total: 500, Used: 100, Available: 400, FileSystem: "vfat", Mount: "/boot/efi"},
		}},
		Network: NetworkSnapshot{
			Interfaces: 3, BytesReceived: 123456, BytesTransmitted: 654321,
			PacketsReceived: 1000, PacketsTransmitted: 900, ErrorsReceived: 1, ErrorsTransmitted: 2,
		},
	}
}

func TestCodec_OverviewRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		temp *float64
	}{
		{"temperature present", Float64Ptr(54.5)},
		{"temperature absent", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := sampleOverview(tt.temp)

			data, err := Encode(in)
			require.NoError(t, err)

			var out OverviewSnapshot
			require.NoError(t, Decode(data, &out))
			assert.Equal(t, in, out)
		})
	}
}

func TestCodec_TemperatureAbsentIsOmitted(t *testing.T) {
	data, err := Encode(CPUSnapshot{Name: "cpu"})
	require.NoError(t, err)
	assert.NotContains(t, string(data), "temperature")

	data, err = Encode(CPUSnapshot{Name: "cpu", Temperature: Float64Ptr(0)})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"temperature":0`)
}

func TestCodec_CPUMemoryRoundTrip(t *testing.T) {
	in := CPUMemoryUpdate{
		Name:        "Apple M2",
		CoreCount:   2,
		Usage:       33.3,
		Frequency:   3200,
		Temperature: nil,
		Cores: []CPUCore{
			{Usage: 10, Frequency: 3200, Temperature: Float64Ptr(41)},
			{Usage: 56.6, Frequency: 3200},
		},
		Memory: MemorySnapshot{Total: 100, Used: 40, Available: 60},
	}

	data, err := Encode(in)
	require.NoError(t, err)

	var out CPUMemoryUpdate
	require.NoError(t, Decode(data, &out))
	assert.Equal(t, in, out)
}

func TestCodec_ProcessListRoundTrip(t *testing.T) {
	in := ProcessList{Processes: []ProcessEntry{
		{PID: 1, Name: StringPtr("systemd"), Memory: 1 << 20, VirtualMemory: 4 << 20, CPUUsage: 0.1,
			CPUTime: 12, User: StringPtr("root"), RunTime: 3600, Command: StringPtr("/usr/lib/systemd/systemd")},
		{PID: 4242, CPUUsage: 99.9},
	}}

	data, err := Encode(in)
	require.NoError(t, err)

	var out ProcessList
	require.NoError(t, Decode(data, &out))
	assert.Equal(t, in, out)
	assert.Nil(t, out.Processes[1].User)
}

func TestCodec_DecodeMalformed(t *testing.T) {
	var out OverviewSnapshot
	err := Decode([]byte(`{"cpu": {"name": 7`), &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode")
}

func TestCodec_YAMLRoundTrip(t *testing.T) {
	in := sampleOverview(Float64Ptr(60))

	data, err := EncodeYAML(in)
	require.NoError(t, err)
	assert.Contains(t, string(data), "host_name: workstation")

	var out OverviewSnapshot
	require.NoError(t, yaml.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}
