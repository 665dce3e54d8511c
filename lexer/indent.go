package lexer

import (
	"regexp"
	"strconv"
	"strings"
)

// Indentation engine (spec §4.8). Newline-delimited whitespace runs are
// turned into INDENT/OUTDENT/TERMINATOR tokens via an indent-debt/outdent-
// debt accounting scheme the spec itself flags as subtle (§9 open
// question); this is a direct transcription of the algorithm spec.md
// gives, not a re-derivation.

// properContinuerRe and dotContinuerRe match a next line that begins with
// a continuer keeping the statement unfinished: a comma, a '.' not
// followed by another '.' or a digit, '::', or '?.'.
var properContinuerRe = regexp.MustCompile(`^(?:,|::|\?\.)`)
var dotContinuerRe = regexp.MustCompile(`^\.[^.\d]`)

func startsWithContinuer(s string) bool {
	if properContinuerRe.MatchString(s) {
		return true
	}
	// '.' alone at end of chunk also continues (nothing follows to
	// disqualify it).
	if len(s) > 0 && s[0] == '.' {
		if len(s) == 1 {
			return true
		}
		return dotContinuerRe.MatchString(s)
	}
	return false
}

// unfinished reports whether the current line is a continuation of the
// previous one (spec §4.8). l.chunk still starts with the newline run, so
// the continuer check looks past that whitespace at the next line's text.
func (l *Lexer) unfinished() bool {
	if startsWithContinuer(strings.TrimLeft(l.chunk, " \t\n")) {
		return true
	}
	return unfinishedLineTags[l.tailTag()]
}

// tryLineToken attempts the indentation matcher at the current position.
// It returns consumed == 0 when the chunk does not start with a newline
// run at all, signalling the dispatcher to try the next matcher.
func (l *Lexer) tryLineToken() (int, error) {
	m := multidentRe.FindString(l.chunk)
	if m == "" {
		return 0, nil
	}
	l.seenFor = false
	if t := l.tail(); t != nil {
		t.NewLine = true
	}

	size := 0
	if idx := lastNewline(m); idx >= 0 {
		size = len(m) - idx - 1
	}

	noNewlines := l.unfinished()

	switch {
	case size-l.indebt == l.indent:
		if noNewlines {
			l.suppressNewlines()
		} else {
			l.newlineToken()
		}
	case size > l.indent:
		if noNewlines {
			l.indebt = size - l.indent
			l.suppressNewlines()
		} else if len(l.tokens) == 0 {
			l.baseIndent = size
			l.indent = size
		} else {
			delta := size - l.indent + l.outdebt
			l.emit(INDENT, strconv.Itoa(delta), Span{First: l.here(), Last: l.here()})
			l.indents = append(l.indents, delta)
			l.ends = append(l.ends, "OUTDENT")
			l.outdebt = 0
			l.indebt = 0
			l.indent = size
		}
	case size < l.baseIndent:
		return 0, errAt(l.here(), "missing indentation")
	default:
		l.indebt = 0
		if err := l.outdentToken(l.indent-size, noNewlines, len(m)); err != nil {
			return 0, err
		}
	}
	return len(m), nil
}

func lastNewline(s string) int {
	idx := -1
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			idx = i
		}
	}
	return idx
}

// suppressNewlines pops a trailing line-continuation backslash token, if
// present (spec §4.8).
func (l *Lexer) suppressNewlines() {
	l.popTailIf(Tag(`\`))
}

// newlineToken emits a TERMINATOR unless the tail is already one (spec
// §4.8 case 1), after popping trailing ';' tokens.
func (l *Lexer) newlineToken() {
	for {
		if _, ok := l.popTailIf(Tag(";")); !ok {
			break
		}
	}
	if l.tailTag() != TERMINATOR {
		l.emit(TERMINATOR, "\n", Span{First: l.here(), Last: l.here()})
	}
}

// outdentToken pops the indent stack down by moveOut columns, emitting
// OUTDENT tokens (and a trailing TERMINATOR) as it goes (spec §4.8).
func (l *Lexer) outdentToken(moveOut int, noNewlines bool, outLen int) error {
	decreased := l.indent - moveOut
	popped := false

	for moveOut > 0 {
		if len(l.indents) == 0 {
			moveOut = 0
			break
		}
		lastIndent := l.indents[len(l.indents)-1]
		switch {
		case lastIndent == l.outdebt:
			moveOut -= l.outdebt
			l.outdebt = 0
		case lastIndent < l.outdebt:
			l.outdebt -= lastIndent
			moveOut -= lastIndent
		default:
			l.indents = l.indents[:len(l.indents)-1]
			popped = true
			dent := lastIndent + l.outdebt
			if outLen > 0 && outLen < len(l.chunk) && isIndentableCloser(l.chunk[outLen]) {
				decreased -= dent - moveOut
				moveOut = dent
			}
			l.outdebt = 0
			if err := l.pair("OUTDENT"); err != nil {
				return err
			}
			l.emit(OUTDENT, strconv.Itoa(moveOut), Span{First: l.here(), Last: l.here()})
			moveOut -= dent
		}
	}
	if popped {
		l.outdebt -= moveOut
	}
	for {
		if _, ok := l.popTailIf(Tag(";")); !ok {
			break
		}
	}
	if l.tailTag() != TERMINATOR && !noNewlines {
		l.emit(TERMINATOR, "\n", Span{First: l.here(), Last: l.here()})
	}
	l.indent = decreased
	return nil
}

func isIndentableCloser(b byte) bool {
	return b == ')' || b == '}' || b == ']'
}

// closeIndentation runs at EOF to unwind any still-open indents (spec
// §4.1).
func (l *Lexer) closeIndentation() error {
	return l.outdentToken(l.indent, false, 0)
}
