// Package monitor owns the shared HUD state: the latest hardware reading
// and its rolling CPU history, the process snapshot, and the weather
// reading maintained by a background fetch worker. The three regions are
// guarded independently so a slow weather fetch never blocks a hardware or
// process read.
package monitor

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/Komil-goat/Futuristic-HUD/internal/metrics"
	"github.com/Komil-goat/Futuristic-HUD/internal/weather"
)

// MaxHistory bounds the rolling CPU history.
const MaxHistory = 256

// Options configure a Monitor.
type Options struct {
	// Coordinates passed to the weather fetcher.
	Latitude  float64
	Longitude float64
	// History overrides the CPU history capacity; MaxHistory when <= 0.
	History int
}

// Monitor aggregates the state shared between the tick caller, the weather
// worker and the presentation loop. Tick must be called from a single
// goroutine; all accessors are safe for concurrent use and return copies.
type Monitor struct {
	provider metrics.Provider
	fetcher  weather.Fetcher
	opts     Options

	hwMu       sync.Mutex
	hw         metrics.HardwareStats
	cpuHistory []float64

	procMu sync.Mutex
	procs  []metrics.ProcessInfo

	weatherMu sync.Mutex
	reading   *weather.Reading

	loading   atomic.Bool
	requestCh chan struct{}
	stopCh    chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

// New starts the weather worker and returns the monitor. The caller owns
// the provider's lifecycle; Close only stops the worker.
func New(provider metrics.Provider, fetcher weather.Fetcher, opts Options) *Monitor {
	if opts.History <= 0 {
		opts.History = MaxHistory
	}
	m := &Monitor{
		provider:   provider,
		fetcher:    fetcher,
		opts:       opts,
		cpuHistory: make([]float64, 0, opts.History),
		requestCh:  make(chan struct{}, 1),
		stopCh:     make(chan struct{}),
	}
	m.wg.Add(1)
	go m.weatherWorker()
	return m
}

// Tick resamples hardware and processes on the caller's goroutine.
func (m *Monitor) Tick() {
	hw := m.provider.Hardware()
	m.hwMu.Lock()
	m.hw = hw
	if len(m.cpuHistory) >= m.opts.History {
		m.cpuHistory = m.cpuHistory[1:]
	}
	m.cpuHistory = append(m.cpuHistory, hw.CPULoadPercent)
	m.hwMu.Unlock()

	procs := m.provider.Processes()
	m.procMu.Lock()
	m.procs = procs
	m.procMu.Unlock()
}

// Hardware returns the latest hardware reading.
func (m *Monitor) Hardware() metrics.HardwareStats {
	m.hwMu.Lock()
	defer m.hwMu.Unlock()
	return m.hw
}

// CPUHistory returns a copy of the rolling CPU history, oldest first.
func (m *Monitor) CPUHistory() []float64 {
	m.hwMu.Lock()
	defer m.hwMu.Unlock()
	out := make([]float64, len(m.cpuHistory))
	copy(out, m.cpuHistory)
	return out
}

// Processes returns the cached snapshot, restricted to entries whose
// lowercased name or decimal pid contains the filter substring. An empty
// filter matches everything.
func (m *Monitor) Processes(filter string) []metrics.ProcessInfo {
	filter = strings.ToLower(filter)

	m.procMu.Lock()
	defer m.procMu.Unlock()
	result := make([]metrics.ProcessInfo, 0, len(m.procs))
	for _, p := range m.procs {
		if filter == "" ||
			strings.Contains(strings.ToLower(p.Name), filter) ||
			strings.Contains(strconv.Itoa(int(p.PID)), filter) {
			result = append(result, p)
		}
	}
	return result
}

// TerminateProcess sends a graceful termination request to pid. The
// process snapshot is not updated until the next Tick, so a terminated
// process may appear once more.
func (m *Monitor) TerminateProcess(pid int32) error {
	return m.provider.Terminate(pid)
}

// Weather returns the latest reading, or ok=false when none is held
// (never fetched, or the last fetch failed).
func (m *Monitor) Weather() (weather.Reading, bool) {
	m.weatherMu.Lock()
	defer m.weatherMu.Unlock()
	if m.reading == nil {
		return weather.Reading{}, false
	}
	return *m.reading, true
}

// WeatherLoading reports whether a fetch is in flight or queued.
func (m *Monitor) WeatherLoading() bool {
	return m.loading.Load()
}

// RequestWeatherRefresh asks the worker for one fetch. Requests arriving
// while a fetch is in flight coalesce into it: only the caller that flips
// the loading flag enqueues work.
func (m *Monitor) RequestWeatherRefresh() {
	if !m.loading.CompareAndSwap(false, true) {
		return
	}
	select {
	case <-m.stopCh:
		m.loading.Store(false)
		return
	default:
	}
	// Buffered(1); the flag guarantees at most one outstanding request.
	select {
	case m.requestCh <- struct{}{}:
	default:
	}
}

// Close stops the worker and blocks until it has exited. An in-flight
// fetch completes and its result is stored; no further fetch starts.
func (m *Monitor) Close() {
	m.closeOnce.Do(func() {
		close(m.stopCh)
	})
	m.wg.Wait()
}

func (m *Monitor) weatherWorker() {
	defer m.wg.Done()
	for {
		select {
		case <-m.stopCh:
			return
		case <-m.requestCh:
			// A request raced with shutdown; don't start the fetch.
			select {
			case <-m.stopCh:
				m.loading.Store(false)
				return
			default:
			}
			m.fetchWeather()
			m.loading.Store(false)
		}
	}
}

func (m *Monitor) fetchWeather() {
	reading, err := m.fetcher.Fetch(context.Background(), m.opts.Latitude, m.opts.Longitude)

	m.weatherMu.Lock()
	defer m.weatherMu.Unlock()
	if err != nil {
		// A failed fetch drops any previous reading rather than going stale.
		m.reading = nil
		return
	}
	m.reading = &reading
}
