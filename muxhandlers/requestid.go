package muxhandlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/vitalvas/routekit/mux"
)

const defaultRequestIDHeader = "X-Request-ID"

type requestIDKey struct{}

// RequestIDFromContext returns the ID stored by RequestIDMiddleware, or ""
// when the request never passed through it.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// RequestIDConfig configures RequestIDMiddleware.
type RequestIDConfig struct {
	// HeaderName is the request and response header carrying the ID.
	// Defaults to "X-Request-ID".
	HeaderName string

	// GenerateFunc creates the ID. Defaults to GenerateUUIDv4.
	GenerateFunc func(r *http.Request) string

	// TrustIncoming keeps an ID already present on the incoming request.
	TrustIncoming bool

	// RouteHeader, when set, names a response header that receives the
	// name of the matched route, so a client can correlate an ID with
	// the route that served it.
	RouteHeader string

	// Logger, when set, receives a debug entry tying the ID to the
	// matched route, its pattern and captures.
	Logger logrus.FieldLogger
}

// RequestIDMiddleware returns a middleware that tags every request with an
// ID. The ID is set on the request header, the response header and the
// request context. Because router middleware runs after matching, the ID
// can be tied to the matched route.
func RequestIDMiddleware(cfg RequestIDConfig) mux.MiddlewareFunc {
	header := cfg.HeaderName
	if header == "" {
		header = defaultRequestIDHeader
	}

	generate := cfg.GenerateFunc
	if generate == nil {
		generate = GenerateUUIDv4
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := ""
			if cfg.TrustIncoming {
				id = r.Header.Get(header)
			}
			if id == "" {
				id = generate(r)
			}

			if id != "" {
				r.Header.Set(header, id)
				w.Header().Set(header, id)
				r = r.WithContext(context.WithValue(r.Context(), requestIDKey{}, id))
			}

			if cfg.RouteHeader != "" {
				if route := mux.CurrentRoute(r); route != nil && route.GetName() != "" {
					w.Header().Set(cfg.RouteHeader, route.GetName())
				}
			}

			if cfg.Logger != nil {
				cfg.Logger.WithFields(routeFields(r)).Debug("muxhandlers: request id assigned")
			}

			next.ServeHTTP(w, r)
		})
	}
}

// GenerateUUIDv4 returns a random UUID (RFC 9562, section 5.4).
func GenerateUUIDv4(_ *http.Request) string {
	return uuid.New().String()
}

// GenerateUUIDv7 returns a time-ordered UUID (RFC 9562, section 5.7).
func GenerateUUIDv7(_ *http.Request) string {
	return uuid.Must(uuid.NewV7()).String()
}
