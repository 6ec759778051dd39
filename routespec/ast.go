package routespec

// NodeKind identifies the variant of an AST node.
type NodeKind uint8

const (
	// KindRoot is the top of every parsed pattern.
	KindRoot NodeKind = iota
	// KindConcat joins two sub-patterns in sequence.
	KindConcat
	// KindLiteral is text matched and rendered verbatim.
	KindLiteral
	// KindSplat is a named capture that may span "/".
	KindSplat
	// KindParam is a named capture of one path segment.
	KindParam
	// KindOptional is a parenthesized group that may be absent.
	KindOptional
)

var kindNames = [...]string{
	KindRoot:     "Root",
	KindConcat:   "Concat",
	KindLiteral:  "Literal",
	KindSplat:    "Splat",
	KindParam:    "Param",
	KindOptional: "Optional",
}

// String returns the name of the kind, such as "Param".
func (k NodeKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "NodeKind(?)"
}

// Node is a node of a parsed route pattern. The set of implementations is
// closed: only the six node types declared in this package satisfy it.
// Nodes carry no behavior; interpreters walk them through Visit.
type Node interface {
	Kind() NodeKind
	node()
}

// Root is the top of every parsed pattern.
type Root struct {
	Body Node
}

// Concat joins two nodes in sequence. Longer sequences nest to the left.
type Concat struct {
	Left  Node
	Right Node
}

// Literal is text that must appear verbatim in a path.
type Literal struct {
	Value string
}

// Splat captures any remainder of the path, slashes included, up to the
// query string.
type Splat struct {
	Name string
}

// Param captures exactly one path segment.
type Param struct {
	Name string
}

// Optional marks a group that may be absent from a path.
type Optional struct {
	Body Node
}

func (*Root) Kind() NodeKind     { return KindRoot }
func (*Concat) Kind() NodeKind   { return KindConcat }
func (*Literal) Kind() NodeKind  { return KindLiteral }
func (*Splat) Kind() NodeKind    { return KindSplat }
func (*Param) Kind() NodeKind    { return KindParam }
func (*Optional) Kind() NodeKind { return KindOptional }

func (*Root) node()     {}
func (*Concat) node()   {}
func (*Literal) node()  {}
func (*Splat) node()    {}
func (*Param) node()    {}
func (*Optional) node() {}
