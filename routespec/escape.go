package routespec

import (
	"net/url"
	"strings"
	"unicode/utf8"
)

const upperhex = "0123456789ABCDEF"

// uriReserved are the characters whose escapes decodeURI leaves in place.
const uriReserved = ";/?:@&=+$,#"

// shouldKeepURI reports whether encodeURI leaves c unescaped.
func shouldKeepURI(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	return strings.IndexByte(uriReserved, c) >= 0 || strings.IndexByte("-_.!~*'()", c) >= 0
}

// encodeURI percent-encodes every byte of s that is not allowed to appear
// literally in a URI. Reserved delimiters such as "/" and "?" and the
// unreserved marks are kept, so a whole path can be encoded at once.
func encodeURI(s string) string {
	n := 0
	for i := 0; i < len(s); i++ {
		if !shouldKeepURI(s[i]) {
			n++
		}
	}
	if n == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 2*n)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if shouldKeepURI(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&15])
	}
	return b.String()
}

func unhex(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// decodeURI is the inverse of encodeURI: it decodes percent escapes
// except those that stand for reserved delimiters, which stay escaped so
// that an encoded "/" is not turned into a path separator. Malformed
// input is returned unchanged.
func decodeURI(s string) string {
	if strings.IndexByte(s, '%') < 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '%' {
			b.WriteByte(c)
			continue
		}
		if i+2 >= len(s) {
			return s
		}
		hi, ok1 := unhex(s[i+1])
		lo, ok2 := unhex(s[i+2])
		if !ok1 || !ok2 {
			return s
		}
		if v := hi<<4 | lo; v < utf8.RuneSelf && strings.IndexByte(uriReserved, v) >= 0 {
			b.WriteString(s[i : i+3])
		} else {
			b.WriteByte(v)
		}
		i += 2
	}

	out := b.String()
	if !utf8.ValidString(out) {
		return s
	}
	return out
}

// decodeComponent decodes every percent escape in a captured value.
// Values that are not valid escapes are returned unchanged.
func decodeComponent(s string) string {
	if strings.IndexByte(s, '%') < 0 {
		return s
	}
	if v, err := url.PathUnescape(s); err == nil {
		return v
	}
	return s
}
