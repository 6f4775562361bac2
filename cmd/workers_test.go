package main

import (
	"context"
	"range-server/mocks"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestStartWorkers(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sup := mocks.NewMockISupervisor(ctrl)
	first := mocks.NewMockWorker(ctrl)
	second := mocks.NewMockWorker(ctrl)

	// Given a supervisor blocking until its context is canceled
	running := make(chan struct{})
	sup.EXPECT().Add(first, second).Return(sup).Times(1)
	sup.EXPECT().Run(gomock.Any()).Do(func(ctx context.Context) {
		close(running)
		<-ctx.Done()
	}).Times(1)

	stop := startWorkers(context.Background(), sup, first, second)

	select {
	case <-running:
	case <-time.After(time.Second):
		req.Fail("Supervisor was not started")
	}

	// When stopping, then the call waits for the supervisor to return
	stopped := make(chan struct{})
	go func() {
		stop()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-time.After(time.Second):
		req.Fail("stop did not return")
	}
}
