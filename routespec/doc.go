// Package routespec parses URL route patterns and interprets them in both
// directions: matching a concrete path to extract named captures, and
// reversing a pattern with a set of parameters into a concrete path.
//
// # Pattern syntax
//
//	/users/:id          named parameter, one path segment
//	/files/*path        splat, any remainder of the path up to "?"
//	/posts(/:id)        optional group
//	/a.b+c              anything else is literal text
//
// Parameter and splat names consist of ASCII letters, digits and "_".
// Groups may nest and may contain several expressions:
//
//	/archive(/:year(/:month))
//
// # Matching
//
//	spec := routespec.MustNew("/users/:id")
//	captures, ok := spec.Match("/users/42?tab=posts")
//	// captures["id"] == "42", ok == true
//
// Patterns are anchored: "/users/:id" does not match "/users/42/edit".
// A query string after the path is always accepted and ignored. Captured
// values are percent-decoded. Names inside an optional group that did not
// take part in the match are absent from the result.
//
// # Reversing
//
//	path, ok := routespec.MustNew("/posts(/:id)").Reverse(routespec.Params{"id": "5"})
//	// path == "/posts/5", ok == true
//
// A missing parameter inside an optional group drops the group; a missing
// parameter anywhere else makes Reverse report false. The rendered path is
// percent-encoded as a whole, so reserved characters like "/" in a splat
// value are kept.
//
// # Errors
//
// Malformed patterns are rejected by New with a *ParseError whose Err is
// one of ErrUnclosedGroup, ErrUnexpectedClose, ErrMissingName or
// ErrDuplicateName. A path that does not match and a pattern that cannot
// be rendered are ordinary results, reported through the boolean return
// value.
//
// # Interpreters
//
// The AST is a closed set of six node types. Match, Reverse, Format and
// Dump are independent interpreters implementing Visitor; a new
// interpreter must implement a method for every node kind.
//
// RouteSpec values are immutable and may be shared between goroutines.
package routespec
