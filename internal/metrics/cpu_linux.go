//go:build linux

package metrics

import "github.com/shirou/gopsutil/v3/cpu"

// newCounterSource returns the /proc/stat jiffy-delta source. Idle time
// includes iowait, matching how top classifies it.
func newCounterSource() CounterSource {
	return &deltaSource{read: readProcStat}
}

func readProcStat() (cpuCounters, bool) {
	times, err := cpu.Times(false)
	if err != nil || len(times) == 0 {
		return cpuCounters{}, false
	}
	t := times[0]
	idle := t.Idle + t.Iowait
	busy := t.User + t.Nice + t.System + t.Irq + t.Softirq + t.Steal
	return cpuCounters{idle: idle, total: idle + busy}, true
}
