package sampler

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
)

var errNoCurrentClock = errors.New("current cpu clock not available")

// currentClocks returns the current MHz of each logical CPU. On Linux
// cpu.Info reports cpuinfo_max_freq, so the live clock is read from
// cpufreq, falling back to the "cpu MHz" lines of /proc/cpuinfo.
func currentClocks() ([]float64, error) {
	if runtime.GOOS != "linux" {
		return nil, errNoCurrentClock
	}
	if mhz, err := scalingCurFreq(hostPath("HOST_SYS", "/sys")); err == nil {
		return mhz, nil
	}
	return cpuinfoMHz(hostPath("HOST_PROC", "/proc"))
}

// hostPath honours the same root overrides as gopsutil.
func hostPath(env, def string) string {
	if v := os.Getenv(env); v != "" {
		return v
	}
	return def
}

// scalingCurFreq reads cpuN/cpufreq/scaling_cur_freq (kHz) for cpu0, cpu1...
// until the next cpu directory is missing.
func scalingCurFreq(sysRoot string) ([]float64, error) {
	var out []float64
	for i := 0; ; i++ {
		dir := filepath.Join(sysRoot, "devices", "system", "cpu", fmt.Sprintf("cpu%d", i))
		if _, err := os.Stat(dir); err != nil {
			break
		}
		raw, err := os.ReadFile(filepath.Join(dir, "cpufreq", "scaling_cur_freq"))
		if err != nil {
			return nil, err
		}
		khz, err := strconv.ParseFloat(strings.TrimSpace(string(raw)), 64)
		if err != nil {
			return nil, fmt.Errorf("cpu%d scaling_cur_freq: %w", i, err)
		}
		out = append(out, khz/1000)
	}
	if len(out) == 0 {
		return nil, errNoCurrentClock
	}
	return out, nil
}

// cpuinfoMHz collects the "cpu MHz" line of every processor block.
func cpuinfoMHz(procRoot string) ([]float64, error) {
	f, err := os.Open(filepath.Join(procRoot, "cpuinfo"))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []float64
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		key, value, ok := strings.Cut(scanner.Text(), ":")
		if !ok || strings.TrimSpace(key) != "cpu MHz" {
			continue
		}
		mhz, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return nil, fmt.Errorf("cpuinfo: %w", err)
		}
		out = append(out, mhz)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, errNoCurrentClock
	}
	return out, nil
}
