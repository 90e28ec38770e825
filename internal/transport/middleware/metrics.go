package middleware

import (
	"net/http"
	"time"

	"github.com/fixure/fixure-backend/pkg/ctxutil"
)

type httpObserver interface {
	ObserveHTTP(method, route string, status int, elapsed time.Duration)
}

// Metrics returns middleware that reports every request to obs, labelled by
// the route pattern the router recorded. Unrouted requests are labelled
// "unmatched" to keep label cardinality bounded.
func Metrics(obs httpObserver) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := ctxutil.WithRoute(r.Context())
			sw := wrapStatus(w)

			next.ServeHTTP(sw, r.WithContext(ctx))

			route := ctxutil.RouteFromCtx(ctx)
			if route == "" {
				route = "unmatched"
			}
			obs.ObserveHTTP(r.Method, route, sw.status, time.Since(start))
		})
	}
}
