package metrics

import (
	"fmt"
	"math/rand"
)

// MockProvider simulates hardware and process data for demos and tests.
type MockProvider struct {
	last  HardwareStats
	procs []ProcessInfo
}

func (m *MockProvider) Init() error {
	m.last = HardwareStats{
		RAMTotalGB: 32,
		RAMUsedGB:  12,
	}
	cmds := []string{"chrome", "code", "go", "kworker", "bash", "systemd"}
	m.procs = make([]ProcessInfo, 50)
	for i := range m.procs {
		m.procs[i] = ProcessInfo{
			PID:  int32(1000 + i),
			Name: cmds[i%len(cmds)],
		}
	}
	return nil
}

func (m *MockProvider) Hardware() HardwareStats {
	m.last.CPULoadPercent = 20 + rand.Float64()*30
	m.last.RAMUsedGB = 10 + rand.Float64()*4
	return m.last
}

func (m *MockProvider) Processes() []ProcessInfo {
	out := make([]ProcessInfo, len(m.procs))
	copy(out, m.procs)
	return out
}

func (m *MockProvider) Terminate(pid int32) error {
	for i, p := range m.procs {
		if p.PID == pid {
			m.procs = append(m.procs[:i], m.procs[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("no such process: %d", pid)
}

func (m *MockProvider) Shutdown() {}
