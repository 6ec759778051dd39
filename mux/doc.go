// Package mux implements a request router and dispatcher that matches
// incoming HTTP requests against route patterns.
//
// The package implements routing semantics based on:
//   - RFC 9110 (HTTP Semantics, successor to RFC 7231)
//   - RFC 3986 (URIs)
//
// Route patterns use the routespec syntax:
//
//	/users/:id          named parameter, one path segment
//	/files/*path        catch-all up to the query string
//	/posts(/:id)        optional group
//
// # Router
//
// Create a new router and register handlers:
//
//	r := mux.NewRouter()
//	r.HandleFunc("/articles/:category/:id", ArticleHandler).Methods(http.MethodGet)
//	r.HandleFunc("/static/*path", StaticHandler)
//	http.Handle("/", r)
//
// Routes are tried in registration order; the first route whose pattern
// and methods match wins. When a pattern matches but no route accepts the
// method, the router answers 405 with an Allow header.
//
// # Path Variables
//
// Captures are percent-decoded and stored in the request context:
//
//	vars := mux.Vars(r)
//	category := vars["category"]
//
// Names inside an optional group that was absent from the path are not
// present in the map; use VarGet to tell them apart from empty values.
//
// # Building URLs
//
// Named routes render paths from parameter maps:
//
//	r.HandleFunc("/posts(/:id)", handler).Name("post")
//	u, err := r.Get("post").URLPath(routespec.Params{"id": "5"})
//	// u.String() == "/posts/5"
//
// A missing parameter inside an optional group drops the group. A missing
// parameter anywhere else yields ErrMissingParams.
//
// # Middleware
//
// Middleware registered with Use wraps the handler of the matched route:
//
//	r.Use(func(next http.Handler) http.Handler {
//		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
//			next.ServeHTTP(w, req)
//		})
//	})
//
// # Logging
//
// Set Router.Logger to a logrus.FieldLogger to get a debug entry for
// every dispatched request.
package mux
