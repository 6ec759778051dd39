package mux

import (
	"net/http"
	"sort"
	"strings"
)

// CORSMethodMiddleware automatically sets the Access-Control-Allow-Methods
// response header (Fetch Standard, CORS protocol) on requests to allow all
// methods that are registered for routes whose pattern matches the request.
func CORSMethodMiddleware(r *Router) MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			allMethods, err := getAllMethodsForRoute(r, req)
			if err == nil {
				w.Header().Set("Access-Control-Allow-Methods", strings.Join(allMethods, ","))
			}
			next.ServeHTTP(w, req)
		})
	}
}

// getAllMethodsForRoute returns all HTTP methods registered for routes
// matching the given request's path.
func getAllMethodsForRoute(router *Router, req *http.Request) ([]string, error) {
	seen := make(map[string]bool)
	target := matchTarget(req.URL)

	for _, route := range router.routes {
		methods, err := route.GetMethods()
		if err != nil {
			continue
		}
		if route.spec != nil {
			if _, ok := route.spec.Match(target); !ok {
				continue
			}
		}
		for _, m := range methods {
			seen[m] = true
		}
	}

	if len(seen) == 0 {
		return nil, ErrNotFound
	}

	allMethods := make([]string, 0, len(seen))
	for m := range seen {
		allMethods = append(allMethods, m)
	}
	sort.Strings(allMethods)

	return allMethods, nil
}
