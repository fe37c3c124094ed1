package core

import "context"

type contextKey string

const (
	ctxKeyIPAddress contextKey = "actor_ip"
	ctxKeyUserAgent contextKey = "actor_ua"
)

// ContextWithIPAddress adds the client IP to context for mutation logging.
func ContextWithIPAddress(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, ctxKeyIPAddress, ip)
}

// ContextWithUserAgent adds the User-Agent to context for mutation logging.
func ContextWithUserAgent(ctx context.Context, ua string) context.Context {
	return context.WithValue(ctx, ctxKeyUserAgent, ua)
}

// IPAddressFromContext extracts the client IP from context.
func IPAddressFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(ctxKeyIPAddress).(string); ok {
		return v
	}
	return ""
}

// UserAgentFromContext extracts the User-Agent from context.
func UserAgentFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(ctxKeyUserAgent).(string); ok {
		return v
	}
	return ""
}

// actorArgs returns slog attributes describing who triggered a mutation.
func actorArgs(ctx context.Context) []any {
	var args []any
	if ip := IPAddressFromContext(ctx); ip != "" {
		args = append(args, "ip", ip)
	}
	if ua := UserAgentFromContext(ctx); ua != "" {
		args = append(args, "user_agent", ua)
	}
	return args
}
