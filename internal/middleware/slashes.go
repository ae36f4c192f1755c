package middleware

import (
	"net/http"
	"strings"
)

// StripSlashes removes a single trailing slash from the request path before
// routing. The original frontend calls every endpoint with a trailing slash.
func StripSlashes(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if p := r.URL.Path; len(p) > 1 && strings.HasSuffix(p, "/") {
			r.URL.Path = strings.TrimSuffix(p, "/")
		}
		next.ServeHTTP(w, r)
	})
}
