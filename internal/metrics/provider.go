package metrics

import (
	"fmt"

	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/process"
)

const gib = 1024 * 1024 * 1024

// SystemProvider samples real OS counters via gopsutil.
type SystemProvider struct {
	cpu       CounterSource
	last      HardwareStats
	procCache map[int32]*process.Process
}

func (p *SystemProvider) Init() error {
	p.cpu = newCounterSource()
	// Prime the delta state so the first tick has a baseline.
	p.cpu.Usage()
	p.procCache = make(map[int32]*process.Process)
	return nil
}

func (p *SystemProvider) Hardware() HardwareStats {
	stats := p.last
	stats.CPULoadPercent = p.cpu.Usage()
	// Used memory is total minus available; a failed read keeps the
	// previous RAM values.
	if vm, err := mem.VirtualMemory(); err == nil {
		stats.RAMTotalGB = float64(vm.Total) / gib
		stats.RAMUsedGB = float64(vm.Total-vm.Available) / gib
	}
	p.last = stats
	return stats
}

func (p *SystemProvider) Processes() []ProcessInfo {
	pids, err := process.Pids()
	if err != nil {
		return []ProcessInfo{}
	}

	// New cache for next iteration to drop exited processes.
	newCache := make(map[int32]*process.Process, len(pids))
	procs := make([]ProcessInfo, 0, len(pids))

	for _, pid := range pids {
		proc, ok := p.procCache[pid]
		if !ok {
			var err error
			proc, err = process.NewProcess(pid)
			if err != nil {
				continue
			}
		}
		newCache[pid] = proc

		name, err := proc.Name()
		if err != nil || name == "" {
			name = "unknown"
		}
		procs = append(procs, ProcessInfo{PID: pid, Name: name})
	}

	p.procCache = newCache
	return procs
}

func (p *SystemProvider) Terminate(pid int32) error {
	proc, err := process.NewProcess(pid)
	if err != nil {
		return fmt.Errorf("find process %d: %w", pid, err)
	}
	// Graceful termination request (SIGTERM on POSIX), not a forced kill.
	if err := proc.Terminate(); err != nil {
		return fmt.Errorf("terminate %d: %w", pid, err)
	}
	return nil
}

func (p *SystemProvider) Shutdown() {}
