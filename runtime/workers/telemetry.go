package workers

import (
	"context"
	"range-server/observability"
	"time"
)

// TelemetryWorker keeps the monitoring snapshot fresh.
type TelemetryWorker struct {
	monitoring     *observability.MonitoringManager
	metricInterval time.Duration
}

func NewTelemetryWorker(monitoring *observability.MonitoringManager, metricInterval time.Duration) *TelemetryWorker {
	return &TelemetryWorker{
		monitoring:     monitoring,
		metricInterval: metricInterval,
	}
}

func (w TelemetryWorker) Run(ctx context.Context) error {
	w.monitoring.Listen(ctx, w.metricInterval)
	return ctx.Err()
}
