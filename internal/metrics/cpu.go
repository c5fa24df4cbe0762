package metrics

// CounterSource computes a point-in-time CPU load percentage from OS
// counters. Implementations keep whatever delta state they need between
// calls; Usage is never called concurrently with itself.
type CounterSource interface {
	Usage() float64
}

// cpuCounters is one cumulative CPU-time reading in whatever unit the OS
// reports (jiffies on Linux, 100ns intervals on Windows). Both fields are
// monotonically increasing.
type cpuCounters struct {
	idle  float64
	total float64
}

// usageBetween converts two cumulative readings into a busy percentage,
// clamped to [0,100]. A zero or negative total delta yields 0, never NaN.
func usageBetween(prev, cur cpuCounters) float64 {
	totalDelta := cur.total - prev.total
	if totalDelta <= 0 {
		return 0
	}
	idleDelta := cur.idle - prev.idle
	usage := 100 * (totalDelta - idleDelta) / totalDelta
	if usage < 0 {
		return 0
	}
	if usage > 100 {
		return 100
	}
	return usage
}

// deltaSource implements CounterSource for counters-based platforms. It
// keeps the previous reading and reports usage over the interval since the
// last call. The first call records a baseline and reports 0.
type deltaSource struct {
	read   func() (cpuCounters, bool)
	prev   cpuCounters
	primed bool
}

func (s *deltaSource) Usage() float64 {
	cur, ok := s.read()
	if !ok {
		return 0
	}
	if !s.primed {
		s.prev = cur
		s.primed = true
		return 0
	}
	usage := usageBetween(s.prev, cur)
	s.prev = cur
	return usage
}
