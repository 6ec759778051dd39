package routespec

import "regexp"

const (
	// splatPattern matches any run of characters up to the query string,
	// as few as possible.
	splatPattern = `([^?]*?)`
	// paramPattern matches a single non-empty path segment.
	paramPattern = `([^/?]+)`
	// queryTail accepts either the end of input or a query string. It
	// takes the place of a (?=\?|$) lookahead, which RE2 lacks.
	queryTail = `(?:\?.*)?$`
)

// Captures maps capture names to the decoded values extracted by Match.
type Captures map[string]string

// Matcher is a compiled pattern. It is immutable and safe for concurrent
// use.
type Matcher struct {
	// regexp is anchored at both ends.
	regexp *regexp.Regexp
	// names are the capture names in group order: names[i] belongs to
	// submatch i+1.
	names []string
}

// fragment is the result of lowering one node: a piece of regexp source
// and the capture names of the groups it opens, in order.
type fragment struct {
	source string
	names  []string
}

// matchCompiler lowers an AST to regexp source. It needs no context.
type matchCompiler struct{}

var _ Visitor[struct{}, fragment] = matchCompiler{}

func (c matchCompiler) visit(n Node) fragment {
	return Visit[struct{}, fragment](c, n, struct{}{})
}

func (c matchCompiler) VisitRoot(n *Root, _ struct{}) fragment {
	body := c.visit(n.Body)
	return fragment{
		source: "(?s)^" + body.source + queryTail,
		names:  body.names,
	}
}

func (c matchCompiler) VisitConcat(n *Concat, _ struct{}) fragment {
	left, right := c.visit(n.Left), c.visit(n.Right)

	names := make([]string, 0, len(left.names)+len(right.names))
	names = append(names, left.names...)
	names = append(names, right.names...)

	return fragment{source: left.source + right.source, names: names}
}

func (matchCompiler) VisitLiteral(n *Literal, _ struct{}) fragment {
	return fragment{source: regexp.QuoteMeta(n.Value)}
}

func (matchCompiler) VisitSplat(n *Splat, _ struct{}) fragment {
	return fragment{source: splatPattern, names: []string{n.Name}}
}

func (matchCompiler) VisitParam(n *Param, _ struct{}) fragment {
	return fragment{source: paramPattern, names: []string{n.Name}}
}

func (c matchCompiler) VisitOptional(n *Optional, _ struct{}) fragment {
	body := c.visit(n.Body)
	return fragment{source: "(?:" + body.source + ")?", names: body.names}
}

// Compile lowers a parsed pattern into a Matcher.
func Compile(root *Root) (*Matcher, error) {
	f := matchCompiler{}.visit(root)

	re, err := compileRegexp(f.source)
	if err != nil {
		return nil, err
	}

	return &Matcher{regexp: re, names: f.names}, nil
}

// Match matches path, which may carry a query string, against the pattern.
// It reports false when the path does not match. Groups inside an optional
// part that did not take part in the match leave their name unset.
func (m *Matcher) Match(path string) (Captures, bool) {
	idx := m.regexp.FindStringSubmatchIndex(path)
	if idx == nil {
		return nil, false
	}

	captures := make(Captures, len(m.names))
	for i, name := range m.names {
		start, end := idx[2*i+2], idx[2*i+3]
		if start < 0 {
			continue
		}
		captures[name] = decodeComponent(path[start:end])
	}

	return captures, true
}

// String returns the source of the compiled regexp.
func (m *Matcher) String() string {
	return m.regexp.String()
}

// Names returns the capture names in group order.
func (m *Matcher) Names() []string {
	return append([]string(nil), m.names...)
}
