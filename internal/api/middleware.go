package api

import (
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"fuel-custody-service/internal/platform/obs"
)

// recordingWriter captures the status code and body size a handler
// actually sent, so access logs reflect what the client received.
type recordingWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *recordingWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *recordingWriter) Write(b []byte) (int, error) {
	// Handlers that skip WriteHeader send an implicit 200.
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// loggingMiddleware tags each request with a short id and emits one
// access-log line with method, path, outcome and duration. The id
// links the access line to per-operation timing logs.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		reqID := uuid.NewString()[:8]
		rw := &recordingWriter{ResponseWriter: w}

		next.ServeHTTP(rw, r.WithContext(obs.WithRequestID(r.Context(), reqID)))

		log.Printf("req_id=%s method=%s path=%s status=%d bytes=%d dur=%dms",
			reqID, r.Method, r.URL.RequestURI(), rw.status, rw.bytes,
			time.Since(start).Milliseconds(),
		)
	})
}
