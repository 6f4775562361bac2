package server

import (
	"log/slog"
	"strings"
)

// serverLogWriter redirects the net/http internal error log (TLS handshake
// noise, panics in handlers, accept errors) to the application's slog.Logger.
type serverLogWriter struct {
	logger *slog.Logger
}

func (w *serverLogWriter) Write(p []byte) (n int, err error) {
	if len(p) == 0 {
		return 0, nil
	}
	msg := strings.TrimRight(string(p), "\n")
	w.logger.Warn(msg, "component", "http.Server")
	return len(p), nil
}
