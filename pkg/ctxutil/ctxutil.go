package ctxutil

import "context"

type ctxKey string

const (
	requestIDKey ctxKey = "request_id"
	routeKey     ctxKey = "route"
)

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// WithRoute stores a mutable route label holder in the context. Handlers
// deeper in the chain fill it in with SetRoute.
func WithRoute(ctx context.Context) context.Context {
	return context.WithValue(ctx, routeKey, new(string))
}

// SetRoute records the matched route pattern, if a holder is present.
func SetRoute(ctx context.Context, pattern string) {
	if p, ok := ctx.Value(routeKey).(*string); ok {
		*p = pattern
	}
}

// RouteFromCtx returns the recorded route pattern or "".
func RouteFromCtx(ctx context.Context) string {
	if p, ok := ctx.Value(routeKey).(*string); ok {
		return *p
	}
	return ""
}
