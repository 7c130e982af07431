package middleware

import (
	"net/http"

	"github.com/angelmondragon/mentormatch-backend/pkg/sentry"
)

// Sentry binds a per-request hub so error responses and panics can be reported.
func Sentry(reporter *sentry.Reporter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if !reporter.Enabled() {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(reporter.Bind(r.Context())))
		})
	}
}
