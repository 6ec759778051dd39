package routespec

import "unicode/utf8"

// tokenType classifies a lexeme of a route pattern.
type tokenType uint8

const (
	// tokenLiteral is a run of literal characters or a single fallback
	// character with no syntactic meaning.
	tokenLiteral tokenType = iota
	// tokenSplat is "*" followed by a name.
	tokenSplat
	// tokenParam is ":" followed by a name.
	tokenParam
	// tokenOpen is "(".
	tokenOpen
	// tokenClose is ")".
	tokenClose
	// tokenEnd marks the end of the pattern.
	tokenEnd
)

type token struct {
	typ tokenType
	// value holds the literal text or the capture name without its sigil.
	value string
	// offset is the byte offset of the token in the pattern.
	offset int
}

func isWordByte(c byte) bool {
	return c == '_' ||
		('0' <= c && c <= '9') ||
		('a' <= c && c <= 'z') ||
		('A' <= c && c <= 'Z')
}

func isLiteralByte(c byte) bool {
	return isWordByte(c) || c == '%' || c == '-' || c == '~' || c == '\n'
}

// tokenize splits a pattern into tokens. It only fails for a "*" or ":"
// that is not followed by a name; every other character is some token.
func tokenize(pattern string) ([]token, error) {
	var tokens []token

	for i := 0; i < len(pattern); {
		switch c := pattern[i]; {
		case c == '(':
			tokens = append(tokens, token{typ: tokenOpen, value: "(", offset: i})
			i++
		case c == ')':
			tokens = append(tokens, token{typ: tokenClose, value: ")", offset: i})
			i++
		case c == '*' || c == ':':
			end := i + 1
			for end < len(pattern) && isWordByte(pattern[end]) {
				end++
			}
			if end == i+1 {
				return nil, &ParseError{
					Pattern: pattern,
					Offset:  i,
					Detail:  "expected a name after " + string(c),
					Err:     ErrMissingName,
				}
			}
			typ := tokenParam
			if c == '*' {
				typ = tokenSplat
			}
			tokens = append(tokens, token{typ: typ, value: pattern[i+1 : end], offset: i})
			i = end
		case isLiteralByte(c):
			end := i + 1
			for end < len(pattern) && isLiteralByte(pattern[end]) {
				end++
			}
			tokens = append(tokens, token{typ: tokenLiteral, value: pattern[i:end], offset: i})
			i = end
		default:
			_, size := utf8.DecodeRuneInString(pattern[i:])
			tokens = append(tokens, token{typ: tokenLiteral, value: pattern[i : i+size], offset: i})
			i += size
		}
	}

	return append(tokens, token{typ: tokenEnd, offset: len(pattern)}), nil
}
