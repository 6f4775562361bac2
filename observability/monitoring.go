package observability

import (
	"context"
	"log/slog"
	"runtime"
	"sync"
	"sync/atomic"
	"time"
)

// Outcome classifies how a request was answered.
type Outcome int

const (
	Delegated Outcome = iota
	Partial
	Unsatisfiable
	Malformed
	ServerError
)

// MonitoringStats is a point-in-time view of the served traffic.
type MonitoringStats struct {
	// Delegated counts requests the range logic passed on untouched: no
	// Range header, missing entries, directories. Downgraded malformed
	// ranges are only counted in MalformedRanges.
	Delegated        uint64  `json:"delegated"`
	PartialResponses uint64  `json:"partial_responses"`
	Unsatisfiable    uint64  `json:"unsatisfiable"`
	MalformedRanges  uint64  `json:"malformed_ranges"`
	ServerErrors     uint64  `json:"server_errors"`
	BytesServed      uint64  `json:"bytes_served"`
	ThroughputMbs    float64 `json:"throughput_mbs"` // MB/s over the last tick

	AllocMemMb uint64 `json:"alloc_mem_mb"`
	NumGC      uint32 `json:"num_gc"`

	WorkerRestarts map[string]uint64 `json:"worker_restarts"`
}

// MonitoringManager aggregates request outcomes. Counters are atomic and can
// be fed from any request goroutine.
type MonitoringManager struct {
	log         *slog.Logger
	mu          sync.Mutex
	latestStats MonitoringStats

	delegated     uint64
	partial       uint64
	unsatisfiable uint64
	malformed     uint64
	serverErrors  uint64
	bytesServed   uint64
	windowBytes   uint64
	lastCheck     time.Time
	restarts      map[string]uint64 // guarded by mu
}

func NewMonitoringManager(log *slog.Logger) *MonitoringManager {
	return &MonitoringManager{
		log:       log,
		lastCheck: time.Now(),
		restarts:  make(map[string]uint64),
	}
}

func (mm *MonitoringManager) Record(outcome Outcome) {
	switch outcome {
	case Delegated:
		atomic.AddUint64(&mm.delegated, 1)
	case Partial:
		atomic.AddUint64(&mm.partial, 1)
	case Unsatisfiable:
		atomic.AddUint64(&mm.unsatisfiable, 1)
	case Malformed:
		atomic.AddUint64(&mm.malformed, 1)
	case ServerError:
		atomic.AddUint64(&mm.serverErrors, 1)
	}
}

// IncrBytesServed adds body bytes written to clients
func (mm *MonitoringManager) IncrBytesServed(n uint64) {
	atomic.AddUint64(&mm.bytesServed, n)
	atomic.AddUint64(&mm.windowBytes, n)
}

// RecordRestart counts a supervised worker being restarted after a failure.
func (mm *MonitoringManager) RecordRestart(worker string) {
	mm.mu.Lock()
	defer mm.mu.Unlock()
	mm.restarts[worker]++
}

// Listen refreshes the snapshot every interval until ctx is done.
func (mm *MonitoringManager) Listen(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			mm.log.Debug("Monitoring manager stopped")
			return
		case <-ticker.C:
			mm.updateStats()
		}
	}
}

func (mm *MonitoringManager) updateStats() {
	mm.mu.Lock()
	defer mm.mu.Unlock()

	now := time.Now()
	duration := now.Sub(mm.lastCheck).Seconds()
	if duration > 0 {
		window := atomic.SwapUint64(&mm.windowBytes, 0)
		mm.latestStats.ThroughputMbs = (float64(window) / 1024 / 1024) / duration
	}
	mm.lastCheck = now

	mm.loadCounters()

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	mm.latestStats.AllocMemMb = m.Alloc / 1024 / 1024
	mm.latestStats.NumGC = m.NumGC
}

func (mm *MonitoringManager) loadCounters() {
	mm.latestStats.Delegated = atomic.LoadUint64(&mm.delegated)
	mm.latestStats.PartialResponses = atomic.LoadUint64(&mm.partial)
	mm.latestStats.Unsatisfiable = atomic.LoadUint64(&mm.unsatisfiable)
	mm.latestStats.MalformedRanges = atomic.LoadUint64(&mm.malformed)
	mm.latestStats.ServerErrors = atomic.LoadUint64(&mm.serverErrors)
	mm.latestStats.BytesServed = atomic.LoadUint64(&mm.bytesServed)

	restarts := make(map[string]uint64, len(mm.restarts))
	for name, n := range mm.restarts {
		restarts[name] = n
	}
	mm.latestStats.WorkerRestarts = restarts
}

// GetLatest returns the last snapshot with up to date counters.
// Throughput and memory figures are only refreshed by Listen.
func (mm *MonitoringManager) GetLatest() MonitoringStats {
	mm.mu.Lock()
	defer mm.mu.Unlock()
	mm.loadCounters()
	return mm.latestStats
}
