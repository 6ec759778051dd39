package mux

import (
	"net/http"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/vitalvas/routekit/routespec"
)

// Router registers routes to be matched and dispatches a handler.
//
// It implements the http.Handler interface, so it can be registered to serve
// requests:
//
//	r := mux.NewRouter()
//	r.HandleFunc("/users/:id", handler)
//	http.ListenAndServe(":8080", r)
type Router struct {
	// NotFoundHandler is called when no route matches.
	// If nil, http.NotFoundHandler() is used.
	// Corresponds to 404 Not Found per RFC 7231 Section 6.5.4.
	NotFoundHandler http.Handler

	// MethodNotAllowedHandler is called when a route matches the path
	// but not the method. If nil, a default 405 handler is used.
	// Per RFC 7231 Section 6.5.5, the Allow header is always set before
	// this handler is invoked.
	MethodNotAllowedHandler http.Handler

	// Logger receives a debug entry for every dispatched request. It is
	// silent when nil.
	Logger logrus.FieldLogger

	routes      []*Route
	namedRoutes map[string]*Route
	middlewares []MiddlewareFunc

	// handlerCache caches the middleware-wrapped handler per route
	// to avoid re-wrapping on every request.
	handlerCache sync.Map // map[*Route]http.Handler

	skipClean bool
}

// NewRouter returns a new router instance.
func NewRouter() *Router {
	return &Router{
		namedRoutes: make(map[string]*Route),
	}
}

// ServeHTTP dispatches the handler registered in the matched route.
// Implements http.Handler per RFC 7230 Section 3.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	// Normalize the request path per RFC 3986 Section 5.2.4
	// (removing dot segments) unless SkipClean is enabled.
	if !r.skipClean {
		if cleaned := cleanPath(req.URL.Path); cleaned != req.URL.Path {
			u := *req.URL
			u.Path = cleaned
			u.RawPath = ""
			req = req.Clone(req.Context())
			req.URL = &u
		}
	}

	var match RouteMatch
	var handler http.Handler

	if r.Match(req, &match) {
		handler = match.Handler
		if handler == nil {
			handler = http.NotFoundHandler()
		}
		req = setRouteContext(req, match.Route, match.Vars)
	} else if match.MatchErr == ErrMethodMismatch {
		// RFC 7231 Section 6.5.5: the origin server MUST generate an
		// Allow header field in a 405 response.
		w.Header().Set("Allow", strings.Join(allowedMethods(r, req), ", "))
		handler = r.MethodNotAllowedHandler
		if handler == nil {
			handler = methodNotAllowedHandler()
		}
	} else {
		handler = r.NotFoundHandler
		if handler == nil {
			handler = http.NotFoundHandler()
		}
	}

	if r.Logger != nil {
		entry := r.Logger.WithFields(logrus.Fields{
			"method": req.Method,
			"path":   req.URL.Path,
		})
		if match.Route != nil {
			entry = entry.WithField("route", match.Route.GetName())
		}
		if match.MatchErr != nil {
			entry = entry.WithError(match.MatchErr)
		}
		entry.Debug("mux: dispatch")
	}

	handler.ServeHTTP(w, req)
}

// Match attempts to match the given request against the router's routes
// in registration order. Distinguishes between 404 Not Found
// (RFC 7231 Section 6.5.4) and 405 Method Not Allowed
// (RFC 7231 Section 6.5.5) by tracking method mismatches across routes.
func (r *Router) Match(req *http.Request, match *RouteMatch) bool {
	var methodNotAllowed bool
	for _, route := range r.routes {
		if route.Match(req, match) {
			if match.Handler != nil && len(r.middlewares) > 0 {
				if cached, ok := r.handlerCache.Load(match.Route); ok {
					match.Handler = cached.(http.Handler)
				} else {
					wrapped := r.applyMiddleware(match.Handler)
					r.handlerCache.Store(match.Route, wrapped)
					match.Handler = wrapped
				}
			}
			return true
		}
		if match.MatchErr == ErrMethodMismatch {
			methodNotAllowed = true
		}
	}

	if methodNotAllowed {
		match.MatchErr = ErrMethodMismatch
		return false
	}

	match.MatchErr = ErrNotFound
	return false
}

// SkipClean defines the path cleaning behavior for new routes.
// When true, the path will not be cleaned (path.Clean will not be called).
func (r *Router) SkipClean(value bool) *Router {
	r.skipClean = value
	return r
}

// --- Route factory methods ---

// NewRoute creates an empty route for configuration.
func (r *Router) NewRoute() *Route {
	route := &Route{namedRoutes: r.namedRoutes}
	r.routes = append(r.routes, route)
	return route
}

// Handle registers a new route with a pattern for the URL path and handler.
func (r *Router) Handle(pattern string, handler http.Handler) *Route {
	return r.NewRoute().Path(pattern).Handler(handler)
}

// HandleFunc registers a new route with a pattern for the URL path and
// handler function.
func (r *Router) HandleFunc(pattern string, f func(http.ResponseWriter, *http.Request)) *Route {
	return r.NewRoute().Path(pattern).HandlerFunc(f)
}

// Path registers a new route with a pattern for the URL path.
func (r *Router) Path(pattern string) *Route {
	return r.NewRoute().Path(pattern)
}

// Methods registers a new route with a matcher for HTTP methods.
func (r *Router) Methods(methods ...string) *Route {
	return r.NewRoute().Methods(methods...)
}

// Name registers a new route with the given name.
func (r *Router) Name(name string) *Route {
	return r.NewRoute().Name(name)
}

// Get returns a route registered with the given name.
func (r *Router) Get(name string) *Route {
	return r.namedRoutes[name]
}

// URLPath renders the path of the named route with params.
func (r *Router) URLPath(name string, params routespec.Params) (string, error) {
	route := r.Get(name)
	if route == nil {
		return "", ErrNotFound
	}
	u, err := route.URLPath(params)
	if err != nil {
		return "", err
	}
	return u.String(), nil
}

// Walk calls walkFn for each route in registration order. It stops at the
// first error and returns it.
func (r *Router) Walk(walkFn WalkFunc) error {
	for _, route := range r.routes {
		if err := walkFn(route, r); err != nil {
			return err
		}
	}
	return nil
}

// applyMiddleware wraps the handler with all registered middleware.
func (r *Router) applyMiddleware(handler http.Handler) http.Handler {
	for i := len(r.middlewares) - 1; i >= 0; i-- {
		handler = r.middlewares[i].Middleware(handler)
	}
	return handler
}

// Use appends a MiddlewareFunc to the chain. Middleware is applied to
// matched handlers only.
func (r *Router) Use(mwf ...MiddlewareFunc) {
	r.middlewares = append(r.middlewares, mwf...)
}
