package observability

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMonitoringManager_Record(t *testing.T) {
	req := require.New(t)
	mm := NewMonitoringManager(slog.New(slog.NewTextHandler(io.Discard, nil)))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			mm.Record(Partial)
			mm.IncrBytesServed(100)
		}()
	}
	wg.Wait()
	mm.Record(Delegated)
	mm.Record(Unsatisfiable)
	mm.Record(Malformed)
	mm.Record(ServerError)

	stats := mm.GetLatest()
	req.Equal(uint64(50), stats.PartialResponses)
	req.Equal(uint64(1), stats.Delegated)
	req.Equal(uint64(1), stats.Unsatisfiable)
	req.Equal(uint64(1), stats.MalformedRanges)
	req.Equal(uint64(1), stats.ServerErrors)
	req.Equal(uint64(5000), stats.BytesServed)
}

func TestMonitoringManager_Throughput(t *testing.T) {
	req := require.New(t)
	mm := NewMonitoringManager(slog.New(slog.NewTextHandler(io.Discard, nil)))
	mm.lastCheck = time.Now().Add(-time.Second)
	mm.IncrBytesServed(2 * 1024 * 1024)

	mm.updateStats()

	stats := mm.GetLatest()
	req.InDelta(2.0, stats.ThroughputMbs, 0.1)
	req.Equal(uint64(2*1024*1024), stats.BytesServed)

	// The window is reset after each tick
	mm.lastCheck = time.Now().Add(-time.Second)
	mm.updateStats()
	req.Zero(mm.GetLatest().ThroughputMbs)
}

func TestMonitoringManager_ListenStopsOnCancel(t *testing.T) {
	mm := NewMonitoringManager(slog.New(slog.NewTextHandler(io.Discard, nil)))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		mm.Listen(ctx, 10*time.Millisecond)
		close(done)
	}()

	time.Sleep(30 * time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		require.Fail(t, "Listen did not return after cancellation")
	}
}

func TestMonitoringManager_RecordRestart(t *testing.T) {
	req := require.New(t)
	mm := NewMonitoringManager(slog.New(slog.NewTextHandler(io.Discard, nil)))

	mm.RecordRestart("HeartbeatWorker")
	mm.RecordRestart("HeartbeatWorker")
	mm.RecordRestart("TelemetryWorker")

	stats := mm.GetLatest()
	req.Equal(map[string]uint64{"HeartbeatWorker": 2, "TelemetryWorker": 1}, stats.WorkerRestarts)

	// The snapshot is a copy
	stats.WorkerRestarts["HeartbeatWorker"] = 99
	req.Equal(uint64(2), mm.GetLatest().WorkerRestarts["HeartbeatWorker"])
}
