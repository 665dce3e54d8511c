package lexer

import "strings"

// Regex matcher (spec §4.6): disambiguates a leading '/' between division
// and a regex literal by looking back at the previous token, then handles
// both the inline `/.../flags` form and the heregex `///.../flags` block
// form (the latter stripping insignificant whitespace/comments and, when
// interpolated, rewriting to a `RegExp(...)` call the way the string
// matcher rewrites interpolated strings to a concatenation).

// regexAllowed reports whether a '/' at the current position can start a
// regex literal, per the NOT_REGEX / notRegexUnspaced lookback sets.
func (l *Lexer) regexAllowed() bool {
	prev := l.tailTag()
	if notRegex[prev] {
		return false
	}
	if notRegexUnspaced[prev] && !l.tailSpaced() {
		return false
	}
	return true
}

// tryRegex matches a heregex or inline regex literal (spec §4.6).
func (l *Lexer) tryRegex() (int, error) {
	if len(l.chunk) == 0 || l.chunk[0] != '/' {
		return 0, nil
	}
	if !l.regexAllowed() {
		return 0, nil
	}
	start := l.here()

	if m := heregexRe.FindStringSubmatch(l.chunk); m != nil {
		full, body, flags := m[0], m[1], m[2]
		stripped := heregexOmitRe.ReplaceAllString(body, "")
		if strings.Contains(stripped, "#{") {
			tokens, err := l.interpolateHeregex(stripped, flags, start, len(full))
			if err != nil {
				return 0, err
			}
			l.tokens = append(l.tokens, tokens...)
			return len(full), nil
		}
		end := offsetPos(start, l.chunk, len(full))
		l.emit(REGEX, "/"+stripped+"/"+flags, Span{First: start, Last: lastCol(end)})
		return len(full), nil
	}

	if m := inlineRegexRe.FindString(l.chunk); m != "" {
		if m == "//" {
			// Empty regex rejected; falls through to the floor-division
			// operator in the literal matcher (spec §4.6).
			return 0, nil
		}
		body := m[1 : strings.LastIndexByte(m, '/')]
		if strings.Contains(body, "#{") {
			flags := m[strings.LastIndexByte(m, '/')+1:]
			tokens, err := l.interpolateHeregex(body, flags, start, len(m))
			if err != nil {
				return 0, err
			}
			l.tokens = append(l.tokens, tokens...)
			return len(m), nil
		}
		end := offsetPos(start, l.chunk, len(m))
		l.emit(REGEX, m, Span{First: start, Last: lastCol(end)})
		return len(m), nil
	}
	return 0, nil
}

// interpolateHeregex expands an interpolated regex body into a
// `RegExp("..." + expr + "...", "flags")` call token sequence (spec
// §4.6), reusing the string interpolation machinery for the pattern body.
func (l *Lexer) interpolateHeregex(body, flags string, start Pos, totalLen int) ([]Token, error) {
	bodyStart := offsetPos(start, l.chunk, 1)
	strTokens, err := l.interpolateString(body, bodyStart, `"`)
	if err != nil {
		return nil, err
	}
	end := offsetPos(start, l.chunk, totalLen)
	var out []Token
	out = append(out, tok(IDENTIFIER, "RegExp", Span{First: start, Last: start}))
	out = append(out, tok(CALLSTART, "(", Span{First: start, Last: start}))
	out = append(out, strTokens...)
	if flags != "" {
		out = append(out, tok(Tag(","), ",", Span{First: end, Last: end}))
		out = append(out, tok(STRING, `"`+flags+`"`, Span{First: end, Last: end}))
	}
	closeTok := tok(CALLEND, ")", Span{First: end, Last: end})
	out = append(out, closeTok)
	return out, nil
}
