package selector

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// unescape decodes CSS escape sequences (`\41 `, `\"`, line continuations).
func unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' {
			sb.WriteByte(c)
			continue
		}
		i++
		if i >= len(s) {
			// lone backslash at the end of input
			sb.WriteRune(utf8.RuneError)
			break
		}
		if s[i] == '\n' {
			continue
		}
		if s[i] == '\r' {
			if i+1 < len(s) && s[i+1] == '\n' {
				i++
			}
			continue
		}
		if isHex(s[i]) {
			j, cp := i, rune(0)
			for ; j < len(s) && j-i < 6 && isHex(s[j]); j++ {
				cp = cp<<4 | hexValue(s[j])
			}
			if j < len(s) && isWhitespace(s[j]) {
				j++
			}
			if cp == 0 || cp > utf8.MaxRune || (0xD800 <= cp && cp <= 0xDFFF) {
				cp = utf8.RuneError
			}
			sb.WriteRune(cp)
			i = j - 1
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		sb.WriteRune(r)
		i += size - 1
	}
	return sb.String()
}

// unquote strips quotes from a string token and decodes escapes.
func unquote(s string) string {
	if len(s) == 0 {
		return s
	}
	q := s[0]
	if q != '"' && q != '\'' {
		return unescape(s)
	}
	s = s[1:]
	if len(s) > 0 && s[len(s)-1] == q {
		s = s[:len(s)-1]
	}
	return unescape(s)
}

// escapeIdent returns s usable as a CSS identifier.
func escapeIdent(s string, allowWildcard bool) string {
	if allowWildcard && s == Wildcard {
		return s
	}
	var sb strings.Builder
	for i, r := range s {
		switch {
		case r == '-' || r == '_' || r >= 0x80 ||
			('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z'):
			sb.WriteRune(r)
		case '0' <= r && r <= '9':
			if i == 0 || (i == 1 && s[0] == '-') {
				fmt.Fprintf(&sb, `\%x `, r)
			} else {
				sb.WriteRune(r)
			}
		default:
			sb.WriteByte('\\')
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// escapeString returns s usable inside CSS double quotes.
func escapeString(s string) string {
	if !strings.ContainsAny(s, "\"\\\n") {
		return s
	}
	var sb strings.Builder
	for _, r := range s {
		switch r {
		case '"', '\\':
			sb.WriteByte('\\')
			sb.WriteRune(r)
		case '\n':
			sb.WriteString(`\a `)
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

func isHex(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

func hexValue(c byte) rune {
	switch {
	case '0' <= c && c <= '9':
		return rune(c - '0')
	case 'a' <= c && c <= 'f':
		return rune(c-'a') + 10
	default:
		return rune(c-'A') + 10
	}
}

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}
