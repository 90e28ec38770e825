package middleware

import (
	"log/slog"
	"net/http"

	"github.com/fixure/fixure-backend/internal/config"
)

// Middleware is a function that wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain combines middleware into one. Chain(mw1, mw2)(h) is mw1(mw2(h)),
// so mw1 runs first. Nil entries are skipped.
func Chain(mws ...Middleware) Middleware {
	return func(final http.Handler) http.Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			if mws[i] != nil {
				final = mws[i](final)
			}
		}
		return final
	}
}

// Server is the stack every API request passes through, outermost first:
// request id, metrics, access log, panic recovery and CORS. Recovery sits
// inside Metrics and Logger so a recovered panic is counted and logged as
// a 500 carrying the request id.
func Server(log *slog.Logger, obs httpObserver, cors config.CORSConfig) Middleware {
	return Chain(
		RequestID(),
		Metrics(obs),
		Logger(log),
		Recovery(log),
		CORS(cors),
	)
}
