package workers

import (
	"context"
	"log/slog"
	"os"
	"range-server/observability"
	"time"

	"github.com/shirou/gopsutil/process"
)

// SelfStats is what the process costs the host right now.
type SelfStats struct {
	RSS        uint64
	CPUPercent float64
	OpenFDs    int32 // -1 when the platform can't tell
}

// HeartbeatWorker periodically logs process resources next to the traffic
// counters. A growing OpenFDs under steady load points to leaked file handles.
type HeartbeatWorker struct {
	log        *slog.Logger
	monitoring *observability.MonitoringManager
	interval   time.Duration
}

func NewHeartbeatWorker(log *slog.Logger, monitoring *observability.MonitoringManager, interval time.Duration) *HeartbeatWorker {
	return &HeartbeatWorker{
		log:        log,
		monitoring: monitoring,
		interval:   interval,
	}
}

func (w *HeartbeatWorker) Run(ctx context.Context) error {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			self, err := collectSelfStats(p)
			if err != nil {
				w.log.Error("Failed to collect self stats", "err", err)
				continue
			}
			traffic := w.monitoring.GetLatest()
			w.log.Info("Heartbeat",
				"rss_bytes", self.RSS,
				"cpu_percent", self.CPUPercent,
				"open_fds", self.OpenFDs,
				"partial", traffic.PartialResponses,
				"delegated", traffic.Delegated,
				"unsatisfiable", traffic.Unsatisfiable,
				"malformed", traffic.MalformedRanges,
				"server_errors", traffic.ServerErrors,
				"bytes_served", traffic.BytesServed,
				"throughput_mbs", traffic.ThroughputMbs,
				"worker_restarts", traffic.WorkerRestarts,
			)
		}
	}
}

func collectSelfStats(p *process.Process) (SelfStats, error) {
	memInfo, err := p.MemoryInfo()
	if err != nil {
		return SelfStats{}, err
	}

	cpuPercent, err := p.CPUPercent()
	if err != nil {
		return SelfStats{}, err
	}

	fds, err := p.NumFDs()
	if err != nil {
		fds = -1
	}
	return SelfStats{RSS: memInfo.RSS, CPUPercent: cpuPercent, OpenFDs: fds}, nil
}
