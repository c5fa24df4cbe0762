//go:build darwin

package metrics

import (
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/load"
)

// newCounterSource returns the load-average source: 1-minute load
// normalized by logical core count, clamped to 100.
func newCounterSource() CounterSource {
	return &loadAvgSource{}
}

type loadAvgSource struct {
	ncpu int
}

func (s *loadAvgSource) Usage() float64 {
	avg, err := load.Avg()
	if err != nil {
		return 0
	}
	if s.ncpu <= 0 {
		n, err := cpu.Counts(true)
		if err != nil || n <= 0 {
			n = 1
		}
		s.ncpu = n
	}
	usage := avg.Load1 / float64(s.ncpu) * 100
	if usage < 0 {
		return 0
	}
	if usage > 100 {
		return 100
	}
	return usage
}
