package server

// contextKey keys server-scoped request values; a private type so other
// packages cannot collide with these entries.
type contextKey string

const (
	// contextKeyRequestID carries the request id set by requestIDMiddleware.
	contextKeyRequestID contextKey = "requestID"
	// contextKeyAPIVersion carries the negotiated API version.
	contextKeyAPIVersion contextKey = "apiVersion"
)
