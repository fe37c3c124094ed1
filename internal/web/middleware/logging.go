// Package middleware provides HTTP middleware for the web server.
package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/JonMunkholm/dashboard/internal/logging"
	"github.com/go-chi/chi/v5/middleware"
)

// Logger writes one structured line per request, tagged with chi's request
// ID. 5xx responses log at error level, 4xx at warn, and HTMX partial
// requests are marked so page loads and swaps can be told apart.
func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		level := slog.LevelInfo
		switch {
		case status >= http.StatusInternalServerError:
			level = slog.LevelError
		case status >= http.StatusBadRequest:
			level = slog.LevelWarn
		}

		// RemoteAddr was already rewritten by TrustedRealIP for trusted proxies.
		logging.FromContext(r.Context()).Log(r.Context(), level, "request",
			"method", r.Method,
			"path", r.URL.Path,
			"query", r.URL.RawQuery,
			"status", status,
			"bytes", ww.BytesWritten(),
			"duration_ms", time.Since(start).Milliseconds(),
			"htmx", r.Header.Get("HX-Request") == "true",
			"ip", r.RemoteAddr,
		)
	})
}
