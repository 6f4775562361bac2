package server

import (
	"io"
	"log/slog"
	"net/http"
	"range-server/observability"
	"time"

	"github.com/google/uuid"
)

const HeaderRequestID = "X-Request-Id"

// statusRecorder keeps track of what was sent to the client.
type statusRecorder struct {
	http.ResponseWriter
	status  int
	written int64
}

func (s *statusRecorder) WriteHeader(code int) {
	if s.status == 0 {
		s.status = code
	}
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Write(b []byte) (int, error) {
	if s.status == 0 {
		s.status = http.StatusOK
	}
	n, err := s.ResponseWriter.Write(b)
	s.written += int64(n)
	return n, err
}

// ReadFrom keeps the underlying writer's ReaderFrom (sendfile) reachable
// through the wrapper.
func (s *statusRecorder) ReadFrom(src io.Reader) (int64, error) {
	if s.status == 0 {
		s.status = http.StatusOK
	}
	n, err := io.Copy(s.ResponseWriter, src)
	s.written += n
	return n, err
}

func (s *statusRecorder) Unwrap() http.ResponseWriter {
	return s.ResponseWriter
}

// WithAccessLog tags every response with a request id and logs its outcome.
func WithAccessLog(log *slog.Logger, monitoring *observability.MonitoringManager, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := uuid.NewString()
		w.Header().Set(HeaderRequestID, requestID)

		rec := &statusRecorder{ResponseWriter: w}
		next.ServeHTTP(rec, r)

		if rec.status == 0 {
			rec.status = http.StatusOK
		}
		monitoring.IncrBytesServed(uint64(rec.written))

		log.Info("Request served",
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"range", r.Header.Get(HeaderRange),
			"status", rec.status,
			"bytes", rec.written,
			"duration", time.Since(start),
		)
	})
}
