package lexer

import "strings"

// tryIdentifier is the identifier matcher (spec §4.2).
func (l *Lexer) tryIdentifier() (int, error) {
	if len(l.chunk) == 0 || !isIdentStartByte(l.chunk[0]) {
		return 0, nil
	}
	name, consumed, hasColon, colonLen := matchIdentifier(l.chunk)
	if consumed == 0 {
		return 0, nil
	}
	start := l.here()
	nameEnd := offsetPos(start, l.chunk, consumed)

	if err := l.classifyIdentifier(name, Span{First: start, Last: lastCol(nameEnd)}); err != nil {
		return 0, err
	}

	total := consumed
	if hasColon {
		colonStart := offsetPos(start, l.chunk, consumed)
		total = consumed + colonLen
		colonEnd := offsetPos(start, l.chunk, total)
		l.emit(Tag(":"), ":", Span{First: colonStart, Last: lastCol(colonEnd)})
	}
	return total, nil
}

// lastCol converts an "end" position (one past the last consumed byte)
// into the inclusive last-column position spec §3 spans use.
func lastCol(p Pos) Pos {
	if p.Column > 0 {
		return Pos{Line: p.Line, Column: p.Column - 1}
	}
	return p
}

// tryComment matches herecomments (###...###) and line comments (#...),
// in that order so a herecomment's opening ### is never mistaken for a
// line comment (spec §4.5).
func (l *Lexer) tryComment() (int, error) {
	if len(l.chunk) == 0 || l.chunk[0] != '#' {
		return 0, nil
	}
	if m := herecommentRe.FindString(l.chunk); m != "" {
		body := m[3 : len(m)-3]
		if strings.Contains(body, "*/") {
			return 0, errAt(l.here(), "block comment contains unescaped */")
		}
		body = reindentHerecomment(body, l.indent)
		start := l.here()
		end := offsetPos(start, l.chunk, len(m))
		l.emit(HERECOMMENT, body, Span{First: start, Last: lastCol(end)})
		return len(m), nil
	}
	m := lineCommentRe.FindString(l.chunk)
	return len(m), nil
}

// tryWhitespace consumes inline spaces/tabs, not newlines, and flags the
// preceding token as Spaced (spec §3 side-flags).
func (l *Lexer) tryWhitespace() (int, error) {
	i := 0
	for i < len(l.chunk) && (l.chunk[i] == ' ' || l.chunk[i] == '\t') {
		i++
	}
	if i > 0 {
		if t := l.tail(); t != nil {
			t.Spaced = true
		}
	}
	return i, nil
}

// tryHeredoc matches triple-quoted string blocks, de-indenting the body
// and routing through interpolation when double-quoted (spec §4.5).
func (l *Lexer) tryHeredoc() (int, error) {
	start := l.here()
	if m := heredocDoubleRe.FindString(l.chunk); m != "" {
		body := dedentHeredoc(m[3 : len(m)-3])
		if strings.Contains(body, "#{") {
			bodyStart := offsetPos(start, l.chunk, 3)
			tokens, err := l.interpolateString(body, bodyStart, `"`)
			if err != nil {
				return 0, err
			}
			l.tokens = append(l.tokens, tokens...)
			return len(m), nil
		}
		if err := checkOctalEscapes(body); err != nil {
			return 0, err
		}
		end := offsetPos(start, l.chunk, len(m))
		l.emit(STRING, `"""`+body+`"""`, Span{First: start, Last: lastCol(end)})
		return len(m), nil
	}
	if m := heredocSingleRe.FindString(l.chunk); m != "" {
		body := dedentHeredoc(m[3 : len(m)-3])
		end := offsetPos(start, l.chunk, len(m))
		l.emit(STRING, `'''`+body+`'''`, Span{First: start, Last: lastCol(end)})
		return len(m), nil
	}
	return 0, nil
}

// tryString matches single- and double-quoted strings, the latter
// spawning the interpolation sublexer when it contains `#{` (spec §4.4).
func (l *Lexer) tryString() (int, error) {
	if len(l.chunk) == 0 {
		return 0, nil
	}
	start := l.here()
	switch l.chunk[0] {
	case '\'':
		m := singleStringRe.FindString(l.chunk)
		if m == "" {
			return 0, errAt(start, "missing '\\'', unterminated string literal")
		}
		body := m[1 : len(m)-1]
		if err := checkOctalEscapes(body); err != nil {
			return 0, err
		}
		end := offsetPos(start, l.chunk, len(m))
		l.emit(STRING, "'"+escapeLines(body)+"'", Span{First: start, Last: lastCol(end)})
		return len(m), nil
	case '"':
		n, err := balancedString(l.chunk[1:], '"')
		if err != nil {
			return 0, errAt(start, "missing '\"', unterminated string literal")
		}
		total := 1 + n
		body := l.chunk[1 : total-1]
		if strings.Contains(body, "#{") {
			bodyStart := offsetPos(start, l.chunk, 1)
			tokens, ierr := l.interpolateString(body, bodyStart, `"`)
			if ierr != nil {
				return 0, ierr
			}
			l.tokens = append(l.tokens, tokens...)
			return total, nil
		}
		if err := checkOctalEscapes(body); err != nil {
			return 0, err
		}
		end := offsetPos(start, l.chunk, total)
		l.emit(STRING, `"`+escapeLines(body)+`"`, Span{First: start, Last: lastCol(end)})
		return total, nil
	}
	return 0, nil
}

// tryNumber matches numeric literals, normalizing legacy octal/binary
// prefixes to canonical hex (spec §4.3).
func (l *Lexer) tryNumber() (int, error) {
	if len(l.chunk) == 0 || !(l.chunk[0] >= '0' && l.chunk[0] <= '9' || (l.chunk[0] == '.' && len(l.chunk) > 1 && l.chunk[1] >= '0' && l.chunk[1] <= '9')) {
		return 0, nil
	}
	start := l.here()
	if upperRadixRe.MatchString(l.chunk) {
		return 0, errAt(start, "radix prefix must be lowercase")
	}
	m := numberRe.FindString(l.chunk)
	if m == "" {
		return 0, nil
	}
	isHex := len(m) > 1 && (m[1] == 'x' || m[1] == 'X')
	if !isHex && upperExpRe.MatchString(m) {
		return 0, errAt(start, "exponent marker must be lowercase 'e'")
	}
	value := m
	switch {
	case len(m) > 1 && (m[1] == 'o' || m[1] == 'O'):
		n, err := parseRadix(m[2:], 8)
		if err != nil {
			return 0, errAt(start, "invalid octal literal")
		}
		value = "0x" + toHex(n)
	case len(m) > 1 && (m[1] == 'b' || m[1] == 'B'):
		n, err := parseRadix(m[2:], 2)
		if err != nil {
			return 0, errAt(start, "invalid binary literal")
		}
		value = "0x" + toHex(n)
	default:
		if brokenOctalRe.MatchString(m) {
			return 0, errAt(start, "octal digit out of range in decimal literal with a leading zero")
		}
		if legacyOctalRe.MatchString(m) {
			return 0, errAt(start, "octal literals must be prefixed with '0o'")
		}
	}
	end := offsetPos(start, l.chunk, len(m))
	l.emit(NUMBER, value, Span{First: start, Last: lastCol(end)})
	return len(m), nil
}

func parseRadix(digits string, base int) (int64, error) {
	var n int64
	for i := 0; i < len(digits); i++ {
		d := int64(digits[i] - '0')
		if d < 0 || d >= int64(base) {
			return 0, errAt(Pos{}, "digit out of range")
		}
		n = n*int64(base) + d
	}
	return n, nil
}

const hexDigits = "0123456789abcdef"

func toHex(n int64) string {
	if n == 0 {
		return "0"
	}
	var buf []byte
	for n > 0 {
		buf = append([]byte{hexDigits[n%16]}, buf...)
		n /= 16
	}
	return string(buf)
}

// tryEmbeddedJS matches a backtick-delimited raw JavaScript literal.
func (l *Lexer) tryEmbeddedJS() (int, error) {
	if len(l.chunk) == 0 || l.chunk[0] != '`' {
		return 0, nil
	}
	start := l.here()
	idx := strings.IndexByte(l.chunk[1:], '`')
	if idx < 0 {
		return 0, errAt(start, "missing '`', unterminated embedded JavaScript")
	}
	total := idx + 2
	end := offsetPos(start, l.chunk, total)
	l.emit(JS, l.chunk[:total], Span{First: start, Last: lastCol(end)})
	return total, nil
}
