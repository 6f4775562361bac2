package main

import (
	"context"
	"range-server/contract"
)

// startWorkers runs the supervisor in the background. The returned function
// cancels the workers and waits until the supervisor returned.
func startWorkers(ctx context.Context, sup contract.ISupervisor, workers ...contract.Worker) func() {
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	sup.Add(workers...)
	go func() {
		defer close(done)
		sup.Run(ctx)
	}()

	return func() {
		cancel()
		<-done
	}
}
