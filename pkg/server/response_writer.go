package server

import "net/http"

// responseWriter wraps http.ResponseWriter so middleware can observe the
// status code after the handler runs. It also swallows duplicate
// WriteHeader calls, keeping a late error path from tripping over headers
// a handler already sent.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
}

// WriteHeader records and forwards the status code. Only the first call
// takes effect.
func (rw *responseWriter) WriteHeader(statusCode int) {
	if rw.written {
		return
	}
	rw.statusCode = statusCode
	rw.ResponseWriter.WriteHeader(statusCode)
	rw.written = true
}

// Write sends body bytes, committing a 200 status first when the handler
// never called WriteHeader.
func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

// Status reports the committed status code.
func (rw *responseWriter) Status() int {
	return rw.statusCode
}
