package routespec

// Params maps capture names to the values substituted by Reverse.
type Params map[string]string

// rendering is the outcome of rendering one node: either a piece of path
// or a failure caused by a missing parameter.
type rendering struct {
	path string
	ok   bool
}

var failed = rendering{}

func rendered(path string) rendering {
	return rendering{path: path, ok: true}
}

// reverser renders a path from an AST. The parameters travel as the
// visitor context.
type reverser struct{}

var _ Visitor[Params, rendering] = reverser{}

func (r reverser) visit(n Node, params Params) rendering {
	return Visit[Params, rendering](r, n, params)
}

func (r reverser) VisitRoot(n *Root, params Params) rendering {
	body := r.visit(n.Body, params)
	if !body.ok {
		return failed
	}
	return rendered(encodeURI(body.path))
}

func (r reverser) VisitConcat(n *Concat, params Params) rendering {
	left := r.visit(n.Left, params)
	if !left.ok {
		return failed
	}
	right := r.visit(n.Right, params)
	if !right.ok {
		return failed
	}
	return rendered(left.path + right.path)
}

func (reverser) VisitLiteral(n *Literal, _ Params) rendering {
	return rendered(decodeURI(n.Value))
}

func (reverser) VisitSplat(n *Splat, params Params) rendering {
	return lookup(params, n.Name)
}

func (reverser) VisitParam(n *Param, params Params) rendering {
	return lookup(params, n.Name)
}

// VisitOptional absorbs a failure of its body: a group that cannot be
// rendered is left out.
func (r reverser) VisitOptional(n *Optional, params Params) rendering {
	if body := r.visit(n.Body, params); body.ok {
		return body
	}
	return rendered("")
}

// lookup treats an empty value as missing.
func lookup(params Params, name string) rendering {
	if v := params[name]; v != "" {
		return rendered(v)
	}
	return failed
}

// Render renders a path from a parsed pattern. It reports false when a
// parameter outside every optional group is missing.
func Render(root *Root, params Params) (string, bool) {
	res := reverser{}.visit(root, params)
	return res.path, res.ok
}
