package middleware

import "net/http"

// NewMaxBodySizeHandler limits request bodies to limit bytes.
//
// A request whose Content-Length already exceeds the limit is rejected with
// 413 before the next handler runs. Otherwise the body is wrapped in
// http.MaxBytesReader, so a streaming body fails on read once it passes the
// limit and the JSON decoder surfaces that as a bad request.
func NewMaxBodySizeHandler(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > limit {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusRequestEntityTooLarge)
				_, _ = w.Write([]byte(`{"error":{"code":"payload_too_large","message":"request body too large"}}` + "\n"))
				return
			}
			r.Body = http.MaxBytesReader(w, r.Body, limit)
			next.ServeHTTP(w, r)
		})
	}
}
