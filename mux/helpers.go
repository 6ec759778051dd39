package mux

import (
	"net/http"
	"path"
)

// cleanPath returns the canonical path for p, eliminating . and .. elements
// per RFC 3986 Section 5.2.4 (remove dot segments).
func cleanPath(p string) string {
	if p == "" {
		return "/"
	}
	if p[0] != '/' {
		p = "/" + p
	}
	np := path.Clean(p)
	// path.Clean removes trailing slash except for root;
	// put the trailing slash back if necessary.
	if p[len(p)-1] == '/' && np != "/" {
		np += "/"
	}
	return np
}

// matchInArray returns true if the given string value is in the array.
func matchInArray(arr []string, value string) bool {
	for _, v := range arr {
		if v == value {
			return true
		}
	}
	return false
}

// allowedMethods returns the HTTP methods that match the request path
// but not the request method. Used to populate the Allow header field
// required by RFC 7231 Section 6.5.5 on 405 responses.
// The returned slice is sorted alphabetically.
func allowedMethods(router *Router, req *http.Request) []string {
	all, err := getAllMethodsForRoute(router, req)
	if err != nil {
		return nil
	}
	allowed := make([]string, 0, len(all))
	for _, m := range all {
		if m != req.Method {
			allowed = append(allowed, m)
		}
	}
	return allowed
}

// methodNotAllowed replies to the request with an HTTP 405 method not allowed.
// RFC 7231 Section 6.5.5: the Allow header is set by the caller (Router.ServeHTTP)
// before this handler is invoked.
func methodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusMethodNotAllowed)
}

// methodNotAllowedHandler returns a HandlerFunc that replies with 405.
func methodNotAllowedHandler() http.Handler {
	return http.HandlerFunc(methodNotAllowed)
}
