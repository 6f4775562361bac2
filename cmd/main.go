package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"range-server/infrastructure/http/server"
	"range-server/internal"
	"range-server/observability"
	"range-server/runtime/workers"
	"range-server/storage"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

// Exit codes to provide meaningful status to the operating system or service manager.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

const shutdownTimeout = 5 * time.Second

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Server terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run wires every component and owns the server lifecycle, so deferred
// cleanups execute before the process exits.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return exitConfig, err
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Served tree
	root := storage.ResolveRoot(config.Directory)
	disk := storage.NewDisk(log, root)

	// 3. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 4. Background workers
	monitoring := observability.NewMonitoringManager(log)
	stopWorkers := startWorkers(ctx, workers.NewSupervisor(log, monitoring),
		workers.NewTelemetryWorker(monitoring, config.MetricInterval),
		workers.NewHeartbeatWorker(log, monitoring, config.HeartbeatInterval),
	)
	defer stopWorkers()

	// 5. HTTP server
	address := config.Address()
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to listen on %s: %w", address, err)
	}

	httpServer := server.NewHTTPServer(log, address, disk, monitoring)
	printBanner(os.Stdout, config, root)

	errChan := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "address", address, "root", root, "at", time.Now().UTC())
		if err := httpServer.Serve(listener); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// 6. Wait for Stop or Error
	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
	case err := <-errChan:
		return exitRuntime, err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Warn("Forcing server close", "error", err)
		_ = httpServer.Close()
	}
	log.Info("Program stopped cleanly")

	return exitOK, nil
}
