package routespec

// Visitor is an interpreter over the route AST. C is the context passed
// down the tree and R the result produced for each node.
//
// A type satisfies Visitor only if it handles every node kind, so an
// interpreter cannot silently skip a variant.
type Visitor[C, R any] interface {
	VisitRoot(n *Root, ctx C) R
	VisitConcat(n *Concat, ctx C) R
	VisitLiteral(n *Literal, ctx C) R
	VisitSplat(n *Splat, ctx C) R
	VisitParam(n *Param, ctx C) R
	VisitOptional(n *Optional, ctx C) R
}

// Visit dispatches n to the handler of v for its kind.
func Visit[C, R any](v Visitor[C, R], n Node, ctx C) R {
	switch n := n.(type) {
	case *Root:
		return v.VisitRoot(n, ctx)
	case *Concat:
		return v.VisitConcat(n, ctx)
	case *Literal:
		return v.VisitLiteral(n, ctx)
	case *Splat:
		return v.VisitSplat(n, ctx)
	case *Param:
		return v.VisitParam(n, ctx)
	case *Optional:
		return v.VisitOptional(n, ctx)
	}
	// Node is sealed; only a nil node reaches this point.
	panic("routespec: visit of nil node")
}

// Walk traverses the tree rooted at n in depth-first order, calling fn for
// each node. If fn returns false, the children of that node are skipped.
func Walk(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}

	switch n := n.(type) {
	case *Root:
		Walk(n.Body, fn)
	case *Concat:
		Walk(n.Left, fn)
		Walk(n.Right, fn)
	case *Optional:
		Walk(n.Body, fn)
	case *Literal, *Splat, *Param:
		// leaves
	}
}

// Names returns the capture names of the tree in pattern order.
func Names(n Node) []string {
	var names []string
	Walk(n, func(n Node) bool {
		switch n := n.(type) {
		case *Splat:
			names = append(names, n.Name)
		case *Param:
			names = append(names, n.Name)
		}
		return true
	})
	return names
}
