package routetable

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"net/http"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vitalvas/routekit/mux"
	"github.com/vitalvas/routekit/routespec"
)

var (
	// ErrUnknownRoute is returned when no route has the requested name.
	ErrUnknownRoute = errors.New("routetable: unknown route")

	// ErrMissingParams is returned by Reverse when a required parameter
	// is missing.
	ErrMissingParams = errors.New("routetable: missing route parameters")

	// ErrMissingHandler is returned by Mount when a route has no handler.
	ErrMissingHandler = errors.New("routetable: missing handler")
)

// Route is a validated entry of a Table.
type Route struct {
	Name     string
	Methods  Methods
	Spec     *routespec.RouteSpec
	Defaults routespec.Params
}

// Table is an ordered, validated set of named routes. It is immutable and
// safe for concurrent use.
type Table struct {
	routes []*Route
	byName map[string]*Route
}

// New validates cfg and builds a table. Every pattern is parsed up front,
// so a malformed table fails here and not on the first request.
func New(cfg Config) (*Table, error) {
	t := &Table{
		routes: make([]*Route, 0, len(cfg.Routes)),
		byName: make(map[string]*Route, len(cfg.Routes)),
	}

	for i, rc := range cfg.Routes {
		if rc.Name == "" {
			return nil, fmt.Errorf("routetable: %s: name is required", rc.where(i))
		}
		if _, ok := t.byName[rc.Name]; ok {
			return nil, fmt.Errorf("routetable: %s: duplicated route name", rc.where(i))
		}

		spec, err := routespec.New(rc.Pattern)
		if err != nil {
			return nil, fmt.Errorf("routetable: %s: %w", rc.where(i), err)
		}

		route := &Route{
			Name:     rc.Name,
			Methods:  rc.Methods,
			Spec:     spec,
			Defaults: routespec.Params(rc.Defaults),
		}
		t.routes = append(t.routes, route)
		t.byName[rc.Name] = route
	}

	return t, nil
}

// Load decodes a YAML route table from r and validates it. Unknown keys
// are rejected.
func Load(r io.Reader) (*Table, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var cfg Config
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("routetable: decode: %w", err)
	}

	return New(cfg)
}

// LoadFile reads and validates the YAML route table at path.
func LoadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("routetable: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// Routes returns the routes in declaration order.
func (t *Table) Routes() []*Route {
	return append([]*Route(nil), t.routes...)
}

// Route returns the route with the given name.
func (t *Table) Route(name string) (*Route, bool) {
	r, ok := t.byName[name]
	return r, ok
}

// Match returns the first route, in declaration order, whose pattern
// matches path, together with its captures. It reports false when no
// route matches.
func (t *Table) Match(path string) (*Route, routespec.Captures, bool) {
	return t.MatchMethod("", path)
}

// MatchMethod is like Match but skips routes that do not allow method.
// An empty method matches every route.
func (t *Table) MatchMethod(method, path string) (*Route, routespec.Captures, bool) {
	for _, r := range t.routes {
		if method != "" && !r.Methods.Contains(method) {
			continue
		}
		if captures, ok := r.Spec.Match(path); ok {
			return r, captures, true
		}
	}
	return nil, nil, false
}

// Reverse renders the path of the named route. Parameters missing from
// params, or given as "", are taken from the route defaults.
func (t *Table) Reverse(name string, params routespec.Params) (string, error) {
	r, ok := t.byName[name]
	if !ok {
		return "", fmt.Errorf("%w %q", ErrUnknownRoute, name)
	}

	merged := params
	if len(r.Defaults) > 0 {
		merged = maps.Clone(r.Defaults)
		for k, v := range params {
			if v != "" {
				merged[k] = v
			}
		}
	}

	path, ok := r.Spec.Reverse(merged)
	if !ok {
		return "", fmt.Errorf("%w: route %q with pattern %q", ErrMissingParams, name, r.Spec.Pattern())
	}
	return path, nil
}

// Mount registers every route of the table on router, in declaration
// order, with the handler of the same name.
func (t *Table) Mount(router *mux.Router, handlers map[string]http.Handler) error {
	for _, r := range t.routes {
		h, ok := handlers[r.Name]
		if !ok {
			return fmt.Errorf("%w for route %q", ErrMissingHandler, r.Name)
		}

		route := router.NewRoute().Spec(r.Spec).Name(r.Name).Handler(h)
		if len(r.Methods) > 0 {
			route.Methods(r.Methods...)
		}
		if err := route.GetError(); err != nil {
			return fmt.Errorf("routetable: route %q: %w", r.Name, err)
		}
	}
	return nil
}
