package mux

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vitalvas/routekit/routespec"
)

func TestRoutePath(t *testing.T) {
	t.Run("valid pattern", func(t *testing.T) {
		r := NewRouter()
		route := r.Path("/users/:id(/*rest)")
		require.NoError(t, route.GetError())

		tpl, err := route.GetPathTemplate()
		require.NoError(t, err)
		assert.Equal(t, "/users/:id(/*rest)", tpl)

		names, err := route.GetVarNames()
		require.NoError(t, err)
		assert.Equal(t, []string{"id", "rest"}, names)

		re, err := route.GetPathRegexp()
		require.NoError(t, err)
		assert.Equal(t, `(?s)^/users/([^/?]+)(?:/([^?]*?))?(?:\?.*)?$`, re)
	})

	t.Run("malformed pattern is recorded", func(t *testing.T) {
		r := NewRouter()
		route := r.Path("/users/(:id")
		err := route.GetError()
		require.Error(t, err)
		assert.ErrorIs(t, err, routespec.ErrUnclosedGroup)
		assert.Contains(t, err.Error(), "mux: ")

		_, err = route.GetPathTemplate()
		assert.Error(t, err)
		assert.False(t, route.Match(httptest.NewRequest(http.MethodGet, "/users/1", nil), &RouteMatch{}))
	})

	t.Run("route without path", func(t *testing.T) {
		route := NewRouter().NewRoute()
		_, err := route.GetPathTemplate()
		assert.Error(t, err)
		_, err = route.GetPathRegexp()
		assert.Error(t, err)
		_, err = route.URLPath(nil)
		assert.Error(t, err)

		names, err := route.GetVarNames()
		require.NoError(t, err)
		assert.Nil(t, names)
	})

	t.Run("route without path matches any path", func(t *testing.T) {
		route := NewRouter().Methods(http.MethodGet)
		assert.True(t, route.Match(httptest.NewRequest(http.MethodGet, "/anything/at/all", nil), &RouteMatch{}))
	})

	t.Run("parsed spec", func(t *testing.T) {
		route := NewRouter().NewRoute().Spec(routespec.MustNew("/p/:x"))
		var m RouteMatch
		require.True(t, route.Match(httptest.NewRequest(http.MethodGet, "/p/1", nil), &m))
		assert.Equal(t, "1", m.Vars["x"])
	})
}

func TestRouteMethods(t *testing.T) {
	t.Run("uppercases methods", func(t *testing.T) {
		route := NewRouter().Path("/x").Methods("get", "post")
		methods, err := route.GetMethods()
		require.NoError(t, err)
		assert.Equal(t, []string{"GET", "POST"}, methods)
	})

	t.Run("replaces previous methods", func(t *testing.T) {
		route := NewRouter().Path("/x").Methods("GET").Methods("PUT")
		methods, err := route.GetMethods()
		require.NoError(t, err)
		assert.Equal(t, []string{"PUT"}, methods)
	})

	t.Run("does not alias the argument", func(t *testing.T) {
		in := []string{"get"}
		NewRouter().Path("/x").Methods(in...)
		assert.Equal(t, []string{"get"}, in)
	})

	t.Run("no methods", func(t *testing.T) {
		_, err := NewRouter().Path("/x").GetMethods()
		assert.Error(t, err)
	})
}

func TestRouteName(t *testing.T) {
	t.Run("registers named route", func(t *testing.T) {
		r := NewRouter()
		route := r.Path("/x").Name("x")
		assert.Equal(t, "x", route.GetName())
		assert.Same(t, route, r.Get("x"))
	})

	t.Run("renaming fails", func(t *testing.T) {
		route := NewRouter().Path("/x").Name("x").Name("y")
		assert.Error(t, route.GetError())
		assert.Equal(t, "x", route.GetName())
	})
}

func TestRouteURLPath(t *testing.T) {
	tests := []struct {
		name     string
		pattern  string
		params   routespec.Params
		expected string
		err      error
	}{
		{name: "param", pattern: "/users/:id", params: routespec.Params{"id": "7"}, expected: "/users/7"},
		{name: "splat", pattern: "/files/*path", params: routespec.Params{"path": "a/b.txt"}, expected: "/files/a/b.txt"},
		{name: "optional absent", pattern: "/posts(/:id)", expected: "/posts"},
		{name: "missing", pattern: "/users/:id", err: ErrMissingParams},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			route := NewRouter().Path(tt.pattern)
			u, err := route.URLPath(tt.params)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, u.String())
		})
	}
}

func TestRouteHandler(t *testing.T) {
	h := http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {})
	route := NewRouter().Handle("/x", h)
	assert.NotNil(t, route.GetHandler())

	t.Run("handler ignored after error", func(t *testing.T) {
		route := NewRouter().Path("/(").Handler(h)
		assert.Nil(t, route.GetHandler())
	})
}
