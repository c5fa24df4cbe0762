package metrics

// HardwareStats holds the point-in-time hardware reading shown on the HUD.
type HardwareStats struct {
	CPULoadPercent float64 // 0-100
	RAMUsedGB      float64 // GiB
	RAMTotalGB     float64 // GiB
}

// ProcessInfo represents a system process.
type ProcessInfo struct {
	PID  int32
	Name string
}

// Provider defines the interface for sampling hardware and enumerating
// processes. Hardware and Processes are called from a single goroutine,
// once per tick; neither is safe for concurrent use with itself.
type Provider interface {
	Init() error
	// Hardware returns the current CPU/RAM reading. On an OS read failure
	// the affected fields keep the values of the previous reading.
	Hardware() HardwareStats
	// Processes re-enumerates all processes. Returns an empty slice on
	// enumeration failure, never an error.
	Processes() []ProcessInfo
	// Terminate sends a graceful termination request to pid. The returned
	// error describes the OS-level failure (no such process, permission
	// denied, ...).
	Terminate(pid int32) error
	Shutdown()
}
