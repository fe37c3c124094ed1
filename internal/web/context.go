package web

import (
	"context"
	"log/slog"
	"net"
	"net/http"

	"github.com/JonMunkholm/dashboard/internal/core"
	"github.com/JonMunkholm/dashboard/internal/logging"
)

// WithRequestMetadata adds IP and User-Agent to context for mutation logging.
func WithRequestMetadata(ctx context.Context, r *http.Request) context.Context {
	ctx = core.ContextWithIPAddress(ctx, clientIP(r))
	ctx = core.ContextWithUserAgent(ctx, r.UserAgent())
	return ctx
}

// clientIP is the request's remote host without the port.
func clientIP(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}

func logFor(r *http.Request) *slog.Logger {
	return logging.FromContext(r.Context())
}
