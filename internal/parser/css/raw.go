package css

// maskBraceValues returns a copy of src in which every custom property
// value written as a {...} block is overwritten with 'x' bytes, keeping
// newlines. tree-sitter-css reads `--x: {a: b}` as a nested rule and
// drops the rest of the enclosing block; the masked value parses as a
// plain value instead. Offsets are unchanged, so node text is read from
// the original src.
func maskBraceValues(src []byte) []byte {
	var masked []byte
	last := byte(0) // last significant byte outside strings and comments

	for i := 0; i < len(src); {
		switch c := src[i]; {
		case c == '/' && i+1 < len(src) && src[i+1] == '*':
			i = skipComment(src, i)
			continue
		case c == '"' || c == '\'':
			i = skipString(src, i)
			last = c
			continue
		case isSpace(c):
			i++
			continue
		case c == '-' && (last == '{' || last == ';' || last == '}') && i+1 < len(src) && src[i+1] == '-':
			if start, end, ok := braceValue(src, i); ok {
				if masked == nil {
					masked = append([]byte(nil), src...)
				}
				for j := start; j < end; j++ {
					if masked[j] != '\n' {
						masked[j] = 'x'
					}
				}
				i = end
				last = 'x'
				continue
			}
		}
		last = src[i]
		i++
	}

	if masked == nil {
		return src
	}
	return masked
}

// braceValue reports the span of a {...} value for the custom property
// declaration starting at i
func braceValue(src []byte, i int) (start, end int, ok bool) {
	i = skipName(src, i)
	i = skipSpace(src, i)
	if i >= len(src) || src[i] != ':' {
		return 0, 0, false
	}
	i = skipSpace(src, i+1)
	if i >= len(src) || src[i] != '{' {
		return 0, 0, false
	}

	start = i
	depth := 0
	for i < len(src) {
		switch c := src[i]; {
		case c == '/' && i+1 < len(src) && src[i+1] == '*':
			i = skipComment(src, i)
			continue
		case c == '"' || c == '\'':
			i = skipString(src, i)
			continue
		case c == '{':
			depth++
		case c == '}':
			depth--
			if depth == 0 {
				return start, i + 1, true
			}
		}
		i++
	}
	return 0, 0, false
}

// skipName skips an identifier, including escapes such as `\:`
func skipName(src []byte, i int) int {
	for i < len(src) {
		c := src[i]
		switch {
		case c == '\\' && i+1 < len(src):
			i += 2
		case c == '-' || c == '_' || c >= 0x80 ||
			'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9':
			i++
		default:
			return i
		}
	}
	return i
}

func skipSpace(src []byte, i int) int {
	for i < len(src) && isSpace(src[i]) {
		i++
	}
	return i
}

// skipComment returns the index after the comment starting at i
func skipComment(src []byte, i int) int {
	for j := i + 2; j+1 < len(src); j++ {
		if src[j] == '*' && src[j+1] == '/' {
			return j + 2
		}
	}
	return len(src)
}

// skipString returns the index after the quoted string starting at i
func skipString(src []byte, i int) int {
	quote := src[i]
	for j := i + 1; j < len(src); j++ {
		switch src[j] {
		case '\\':
			j++
		case quote, '\n':
			return j + 1
		}
	}
	return len(src)
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

// unescapedIndex returns the index of the first c in s not escaped by a
// backslash, or -1
func unescapedIndex(s string, c byte) int {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case c:
			return i
		}
	}
	return -1
}
