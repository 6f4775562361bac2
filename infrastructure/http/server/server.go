package server

import (
	stdlog "log"
	"log/slog"
	"net/http"
	"range-server/contract"
	"range-server/observability"
)

// NewHTTPServer wires the range handler behind the access log on every path.
// No timeouts are set, a stalled client holds only its own goroutine.
func NewHTTPServer(log *slog.Logger, address string, fs contract.FileSystem, monitoring *observability.MonitoringManager) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/", WithAccessLog(log, monitoring, NewRangeHandler(log, fs, monitoring)))

	return &http.Server{
		Addr:     address,
		Handler:  mux,
		ErrorLog: stdlog.New(&serverLogWriter{logger: log}, "", 0),
	}
}
