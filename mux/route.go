package mux

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/vitalvas/routekit/routespec"
)

// Route stores information to match a request and build URLs.
type Route struct {
	handler     http.Handler
	spec        *routespec.RouteSpec
	methods     []string
	name        string
	err         error
	namedRoutes map[string]*Route

	staticCtxOnce sync.Once
	staticCtx     *routeContext
}

// Match matches this route against the request. The request path is
// matched in its escaped form together with the raw query, so captures
// are decoded exactly once.
func (r *Route) Match(req *http.Request, match *RouteMatch) bool {
	if r.err != nil {
		return false
	}

	var captures routespec.Captures
	if r.spec != nil {
		var ok bool
		if captures, ok = r.spec.Match(matchTarget(req.URL)); !ok {
			return false
		}
	}

	if len(r.methods) > 0 && !matchInArray(r.methods, req.Method) {
		match.MatchErr = ErrMethodMismatch
		return false
	}

	match.Route = r
	match.Handler = r.handler
	match.Vars = captures
	match.MatchErr = nil

	return true
}

// matchTarget returns the escaped path of u followed by its raw query, if
// any.
func matchTarget(u *url.URL) string {
	p := u.EscapedPath()
	if u.RawQuery != "" {
		return p + "?" + u.RawQuery
	}
	return p
}

// Handler sets a handler for the route.
func (r *Route) Handler(handler http.Handler) *Route {
	if r.err == nil {
		r.handler = handler
	}
	return r
}

// HandlerFunc sets a handler function for the route.
func (r *Route) HandlerFunc(f func(http.ResponseWriter, *http.Request)) *Route {
	return r.Handler(http.HandlerFunc(f))
}

// GetHandler returns the handler for the route, if any.
func (r *Route) GetHandler() http.Handler {
	return r.handler
}

// Name sets the name for the route, used to build URLs.
// Returns an error if the name was already used.
func (r *Route) Name(name string) *Route {
	if r.name != "" {
		r.err = fmt.Errorf("mux: route already has name %q, can't set %q", r.name, name)
		return r
	}
	if r.err == nil {
		r.name = name
		if r.namedRoutes != nil {
			r.namedRoutes[name] = r
		}
	}
	return r
}

// GetName returns the name for the route, if any.
func (r *Route) GetName() string {
	return r.name
}

// Path sets the route pattern matched against the request path, such as
// "/users/:id" or "/files/*path". A malformed pattern is recorded on the
// route and reported by GetError.
func (r *Route) Path(pattern string) *Route {
	if r.err != nil {
		return r
	}
	spec, err := routespec.New(pattern)
	if err != nil {
		r.err = fmt.Errorf("mux: %w", err)
		return r
	}
	r.spec = spec
	return r
}

// Spec sets an already parsed route pattern.
func (r *Route) Spec(spec *routespec.RouteSpec) *Route {
	if r.err == nil {
		r.spec = spec
	}
	return r
}

// Methods adds a method matcher to the route. Methods are matched against
// the request method token defined in RFC 7231 Section 4.
// Calling Methods multiple times replaces the previous method list.
func (r *Route) Methods(methods ...string) *Route {
	upper := make([]string, len(methods))
	for i, m := range methods {
		upper[i] = strings.ToUpper(m)
	}
	r.methods = upper
	return r
}

// --- URL Building ---

// URLPath renders the route pattern with params into a URL path.
// Returns ErrMissingParams if a parameter required outside of an optional
// group is missing.
func (r *Route) URLPath(params routespec.Params) (*url.URL, error) {
	if r.err != nil {
		return nil, r.err
	}
	if r.spec == nil {
		return nil, errors.New("mux: route doesn't have a path")
	}
	path, ok := r.spec.Reverse(params)
	if !ok {
		return nil, fmt.Errorf("mux: route %q with pattern %q: %w", r.name, r.spec.Pattern(), ErrMissingParams)
	}
	return url.Parse(path)
}

// --- Inspection ---

// GetPathTemplate returns the pattern of the route, if defined.
func (r *Route) GetPathTemplate() (string, error) {
	if r.err != nil {
		return "", r.err
	}
	if r.spec == nil {
		return "", errors.New("mux: route doesn't have a path")
	}
	return r.spec.Pattern(), nil
}

// GetPathRegexp returns the compiled regexp for the route path, if defined.
func (r *Route) GetPathRegexp() (string, error) {
	if r.err != nil {
		return "", r.err
	}
	if r.spec == nil {
		return "", errors.New("mux: route doesn't have a path")
	}
	m, err := r.spec.Matcher()
	if err != nil {
		return "", err
	}
	return m.String(), nil
}

// GetMethods returns the methods the route matches against.
func (r *Route) GetMethods() ([]string, error) {
	if r.err != nil {
		return nil, r.err
	}
	if len(r.methods) == 0 {
		return nil, errors.New("mux: route doesn't have methods")
	}
	return append([]string(nil), r.methods...), nil
}

// GetVarNames returns the capture names of the route pattern.
func (r *Route) GetVarNames() ([]string, error) {
	if r.err != nil {
		return nil, r.err
	}
	if r.spec == nil {
		return nil, nil
	}
	return r.spec.Names(), nil
}

// GetError returns any error that was set on the route.
func (r *Route) GetError() error {
	return r.err
}
