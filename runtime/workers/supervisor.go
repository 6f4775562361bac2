package workers

import (
	"context"
	"fmt"
	"log/slog"
	"range-server/contract"
	"range-server/errors"
	"range-server/observability"
	"sync"
	"time"
)

const (
	minRestartBackoff = 200 * time.Millisecond
	maxRestartBackoff = 30 * time.Second
)

// Supervisor keeps the background workers alive for as long as the server
// runs. A worker that fails or panics is restarted with an exponential
// backoff and the restart is counted in the monitoring snapshot.
type Supervisor struct {
	log        *slog.Logger
	monitoring *observability.MonitoringManager
	workers    []contract.Worker
	minBackoff time.Duration
	maxBackoff time.Duration
}

func NewSupervisor(log *slog.Logger, monitoring *observability.MonitoringManager) *Supervisor {
	return &Supervisor{
		log:        log,
		monitoring: monitoring,
		minBackoff: minRestartBackoff,
		maxBackoff: maxRestartBackoff,
	}
}

func (s *Supervisor) Add(worker ...contract.Worker) contract.ISupervisor {
	s.workers = append(s.workers, worker...)
	return s
}

// Run blocks until ctx is done and every worker returned.
func (s *Supervisor) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range s.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.keepAlive(ctx, worker)
		}()
	}
	wg.Wait()
}

func (s *Supervisor) keepAlive(ctx context.Context, worker contract.Worker) {
	name := contract.GetWorkerName(worker)
	backoff := s.minBackoff

	for {
		err := runGuarded(ctx, worker)
		switch {
		case ctx.Err() != nil:
			s.log.Info("Worker stopped", "name", name)
			return
		case err == nil:
			s.log.Info("Worker finished", "name", name)
			return
		}

		s.monitoring.RecordRestart(name)
		s.log.Warn("Worker crashed, restarting", "name", name, "error", err, "backoff", backoff)
		select {
		case <-ctx.Done():
			return
		case <-time.After(backoff):
		}
		backoff = min(backoff*2, s.maxBackoff)
	}
}

// runGuarded turns a panic into errors.ErrWorkerPanic.
func runGuarded(ctx context.Context, worker contract.Worker) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", errors.ErrWorkerPanic, r)
		}
	}()
	return worker.Run(ctx)
}
