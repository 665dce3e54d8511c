package lexer

// Pair matcher (spec §4.10). Tracks open/close of (){}[] and synthetic
// INDENT (via the "OUTDENT" sentinel pushed onto ends) so that premature
// closers auto-close outstanding indentation instead of producing a
// confusing parse error.

var inverse = map[string]string{
	"(": ")", "{": "}", "[": "]",
}

// pushEnd records the expected closer for an opening token.
func (l *Lexer) pushEnd(open string) {
	if closer, ok := inverse[open]; ok {
		l.ends = append(l.ends, closer)
	}
}

// pair closes the outstanding end expectation for tag, auto-closing any
// outstanding INDENT first if the closer doesn't match (spec §4.10).
func (l *Lexer) pair(tag string) error {
	if len(l.ends) == 0 {
		return errAt(l.here(), "unmatched %q", tag)
	}
	top := l.ends[len(l.ends)-1]
	if top != tag {
		if top != "OUTDENT" {
			return errAt(l.here(), "unmatched %q", tag)
		}
		lastIndent := 0
		if len(l.indents) > 0 {
			lastIndent = l.indents[len(l.indents)-1]
		}
		if err := l.outdentToken(lastIndent, true, 0); err != nil {
			return err
		}
		return l.pair(tag)
	}
	l.ends = l.ends[:len(l.ends)-1]
	return nil
}
