package response

import "net/http"

// RequestIDFromRequest extracts the request id from HTTP headers; the
// request-id middleware writes the same header key.
func RequestIDFromRequest(r *http.Request) string {
	if v := r.Header.Get("X-Request-Id"); v != "" {
		return v
	}
	return r.Header.Get("X-Request-ID")
}
