package middleware

import (
	"io"
	"net/http"
)

// DefaultMaxRequestBodyBytes is plenty for the JSON bodies of the API (a set, an exercise, settings).
const DefaultMaxRequestBodyBytes = 1 << 20

// LimitAndDrainRequest caps the request body at maxBodyBytes, reads past the cap fail,
// and drains and closes whatever the handler left unread so the connection can be reused.
func LimitAndDrainRequest(maxBodyBytes int64) func(next http.Handler) http.Handler {
	if maxBodyBytes <= 0 {
		maxBodyBytes = DefaultMaxRequestBodyBytes
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body == nil {
				next.ServeHTTP(w, r)
				return
			}

			r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
			next.ServeHTTP(w, r)
			_, _ = io.Copy(io.Discard, r.Body)
			_ = r.Body.Close()
		})
	}
}
