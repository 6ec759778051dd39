package routespec

import "fmt"

// parser is a recursive-descent parser over the token stream of a single
// pattern.
type parser struct {
	pattern string
	tokens  []token
	pos     int
	// names records the offset of every capture name seen so far.
	names map[string]int
}

// Parse parses a route pattern into its AST.
func Parse(pattern string) (*Root, error) {
	tokens, err := tokenize(pattern)
	if err != nil {
		return nil, err
	}

	p := &parser{pattern: pattern, tokens: tokens, names: make(map[string]int)}

	body, err := p.parseExpressions()
	if err != nil {
		return nil, err
	}

	if tok := p.peek(); tok.typ != tokenEnd {
		// The only token that stops parseExpressions early is ")".
		return nil, p.errorAt(tok, ErrUnexpectedClose, "")
	}

	return &Root{Body: body}, nil
}

func (p *parser) peek() token {
	return p.tokens[p.pos]
}

func (p *parser) next() token {
	tok := p.tokens[p.pos]
	if tok.typ != tokenEnd {
		p.pos++
	}
	return tok
}

// parseExpressions consumes expressions until ")" or the end of input and
// folds them into a left-leaning Concat chain.
func (p *parser) parseExpressions() (Node, error) {
	var acc Node

	for {
		tok := p.peek()
		if tok.typ == tokenEnd || tok.typ == tokenClose {
			break
		}

		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}

		if acc == nil {
			acc = expr
		} else {
			acc = &Concat{Left: acc, Right: expr}
		}
	}

	if acc == nil {
		return &Literal{Value: ""}, nil
	}

	return acc, nil
}

func (p *parser) parseExpression() (Node, error) {
	tok := p.next()

	switch tok.typ {
	case tokenLiteral:
		return &Literal{Value: tok.value}, nil
	case tokenSplat:
		if err := p.declare(tok); err != nil {
			return nil, err
		}
		return &Splat{Name: tok.value}, nil
	case tokenParam:
		if err := p.declare(tok); err != nil {
			return nil, err
		}
		return &Param{Name: tok.value}, nil
	case tokenOpen:
		body, err := p.parseExpressions()
		if err != nil {
			return nil, err
		}
		if p.next().typ != tokenClose {
			return nil, p.errorAt(tok, ErrUnclosedGroup, "")
		}
		return &Optional{Body: body}, nil
	default:
		return nil, p.errorAt(tok, ErrUnexpectedClose, "")
	}
}

func (p *parser) errorAt(tok token, err error, detail string) error {
	return &ParseError{
		Pattern: p.pattern,
		Offset:  tok.offset,
		Detail:  detail,
		Err:     err,
	}
}

// declare records a capture name. A repeated name is rejected because the
// match result would depend on which occurrence is written last.
func (p *parser) declare(tok token) error {
	if first, ok := p.names[tok.value]; ok {
		return p.errorAt(tok, ErrDuplicateName, fmt.Sprintf("%q first used at offset %d", tok.value, first))
	}
	p.names[tok.value] = tok.offset
	return nil
}
