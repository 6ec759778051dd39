package routespec

import (
	"fmt"
	"strings"
)

// printer renders an AST back to pattern text. For trees built by Parse,
// parsing the output yields an equal tree.
type printer struct{}

var (
	_ Visitor[*strings.Builder, struct{}] = printer{}
	_ Visitor[int, struct{}]              = treeDumper{}
)

func (p printer) VisitRoot(n *Root, b *strings.Builder) struct{} {
	return Visit[*strings.Builder, struct{}](p, n.Body, b)
}

func (p printer) VisitConcat(n *Concat, b *strings.Builder) struct{} {
	Visit[*strings.Builder, struct{}](p, n.Left, b)
	return Visit[*strings.Builder, struct{}](p, n.Right, b)
}

func (printer) VisitLiteral(n *Literal, b *strings.Builder) struct{} {
	b.WriteString(n.Value)
	return struct{}{}
}

func (printer) VisitSplat(n *Splat, b *strings.Builder) struct{} {
	b.WriteString("*" + n.Name)
	return struct{}{}
}

func (printer) VisitParam(n *Param, b *strings.Builder) struct{} {
	b.WriteString(":" + n.Name)
	return struct{}{}
}

func (p printer) VisitOptional(n *Optional, b *strings.Builder) struct{} {
	b.WriteByte('(')
	Visit[*strings.Builder, struct{}](p, n.Body, b)
	b.WriteByte(')')
	return struct{}{}
}

// Format returns the pattern text of a tree.
func Format(n Node) string {
	var b strings.Builder
	Visit[*strings.Builder, struct{}](printer{}, n, &b)
	return b.String()
}

// treeDumper renders an indented outline of an AST, one node per line.
// The context is the nesting depth.
type treeDumper struct {
	b *strings.Builder
}

func (d treeDumper) line(depth int, format string, args ...any) {
	d.b.WriteString(strings.Repeat("  ", depth))
	fmt.Fprintf(d.b, format, args...)
	d.b.WriteByte('\n')
}

func (d treeDumper) VisitRoot(n *Root, depth int) struct{} {
	d.line(depth, "Root")
	return Visit[int, struct{}](d, n.Body, depth+1)
}

func (d treeDumper) VisitConcat(n *Concat, depth int) struct{} {
	d.line(depth, "Concat")
	Visit[int, struct{}](d, n.Left, depth+1)
	return Visit[int, struct{}](d, n.Right, depth+1)
}

func (d treeDumper) VisitLiteral(n *Literal, depth int) struct{} {
	d.line(depth, "Literal %q", n.Value)
	return struct{}{}
}

func (d treeDumper) VisitSplat(n *Splat, depth int) struct{} {
	d.line(depth, "Splat %s", n.Name)
	return struct{}{}
}

func (d treeDumper) VisitParam(n *Param, depth int) struct{} {
	d.line(depth, "Param %s", n.Name)
	return struct{}{}
}

func (d treeDumper) VisitOptional(n *Optional, depth int) struct{} {
	d.line(depth, "Optional")
	return Visit[int, struct{}](d, n.Body, depth+1)
}

// Dump returns an indented outline of a tree, one node per line.
func Dump(n Node) string {
	var b strings.Builder
	Visit[int, struct{}](treeDumper{b: &b}, n, 0)
	return b.String()
}
