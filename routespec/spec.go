package routespec

import "sync"

// RouteSpec is a parsed route pattern. It is immutable and safe for
// concurrent use; the matcher is compiled on the first call to Match.
type RouteSpec struct {
	pattern string
	root    *Root
	names   []string

	matcherOnce sync.Once
	matcher     *Matcher
	matcherErr  error
}

// New parses pattern. A malformed pattern yields a *ParseError.
func New(pattern string) (*RouteSpec, error) {
	root, err := Parse(pattern)
	if err != nil {
		return nil, err
	}

	return &RouteSpec{
		pattern: pattern,
		root:    root,
		names:   Names(root),
	}, nil
}

// MustNew is like New but panics if the pattern cannot be parsed. It is
// meant for route tables declared as package-level variables.
func MustNew(pattern string) *RouteSpec {
	s, err := New(pattern)
	if err != nil {
		panic(err)
	}
	return s
}

// Pattern returns the pattern the spec was built from.
func (s *RouteSpec) Pattern() string {
	return s.pattern
}

// AST returns the root of the parsed pattern. Callers must not modify it.
func (s *RouteSpec) AST() *Root {
	return s.root
}

// Names returns the capture names of the pattern in order of appearance.
func (s *RouteSpec) Names() []string {
	return append([]string(nil), s.names...)
}

// String returns the canonical pattern text.
func (s *RouteSpec) String() string {
	return Format(s.root)
}

// Matcher returns the compiled matcher of the pattern.
func (s *RouteSpec) Matcher() (*Matcher, error) {
	s.matcherOnce.Do(func() {
		s.matcher, s.matcherErr = Compile(s.root)
	})
	return s.matcher, s.matcherErr
}

// Match matches path, which may include a query string, against the
// pattern and returns the decoded captures. It reports false if the path
// does not match.
func (s *RouteSpec) Match(path string) (Captures, bool) {
	m, err := s.Matcher()
	if err != nil {
		return nil, false
	}
	return m.Match(path)
}

// Reverse renders a path from the pattern and params. It reports false if
// a parameter required outside of an optional group is missing.
func (s *RouteSpec) Reverse(params Params) (string, bool) {
	return Render(s.root, params)
}
