package routespec

import (
	"regexp"
	"sync"
)

// regexpCache caches compiled regular expressions by source. Patterns with
// the same shape (such as "/users/:id" and "/users/:uid") lower to the same
// source and share one *regexp.Regexp.
var regexpCache sync.Map

// compileRegexp returns a cached *regexp.Regexp for the given source,
// compiling and caching it on first use.
func compileRegexp(source string) (*regexp.Regexp, error) {
	if v, ok := regexpCache.Load(source); ok {
		return v.(*regexp.Regexp), nil
	}

	re, err := regexp.Compile(source)
	if err != nil {
		return nil, err
	}

	actual, _ := regexpCache.LoadOrStore(source, re)

	return actual.(*regexp.Regexp), nil
}

// specCache holds RouteSpecs built by Cached, keyed by pattern.
var specCache sync.Map

// Cached returns the RouteSpec for pattern, parsing it on first use only.
// It suits callers that render links in a hot loop from pattern strings.
// Patterns that fail to parse are not cached.
func Cached(pattern string) (*RouteSpec, error) {
	if v, ok := specCache.Load(pattern); ok {
		return v.(*RouteSpec), nil
	}

	spec, err := New(pattern)
	if err != nil {
		return nil, err
	}

	actual, _ := specCache.LoadOrStore(pattern, spec)

	return actual.(*RouteSpec), nil
}
