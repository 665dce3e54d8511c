package lexer

import (
	"regexp"
	"unicode/utf8"

	"github.com/smasher164/xid"
)

// Anchored pattern matchers (spec §2.2). Each is tried in the fixed
// precedence order the dispatcher (dispatch.go) enforces; every pattern
// here except heregexOmitRe (which is applied across a whole heregex body)
// is anchored to the start of the remaining chunk.
//
// Identifier classification does not use a regexp at all: like the
// teacher's own scanIdentifier (sqlparser/scanner.go and the pgsql/mssql
// variants), it walks runes testing xid.Start/xid.Continue, which is the
// idiomatic Unicode-aware replacement for a hand-rolled -￿
// range table.
var (
	numberRe = regexp.MustCompile(`^(?:0[bB][01]+|0[oO][0-7]+|0[xX][0-9a-fA-F]+|\d*\.?\d+(?:[eE][+-]?\d+)?)`)

	// These catch malformed numeric literals so tryNumber can report the
	// specific error kind (spec §4.3).
	upperRadixRe   = regexp.MustCompile(`^0[BOX]`)
	upperExpRe     = regexp.MustCompile(`^\d*\.?\d+E`)
	legacyOctalRe  = regexp.MustCompile(`^0\d+`)
	brokenOctalRe  = regexp.MustCompile(`^0[0-9]*[89][0-9]*`)

	singleStringRe = regexp.MustCompile(`^'[^\\']*(?:\\.[^\\']*)*'`)

	heredocDoubleRe = regexp.MustCompile(`^"""[\s\S]*?"""`)
	heredocSingleRe = regexp.MustCompile(`^'''[\s\S]*?'''`)
	herecommentRe   = regexp.MustCompile(`^###[\s\S]*?###`)
	lineCommentRe   = regexp.MustCompile(`^#[^\n]*`)

	heregexRe      = regexp.MustCompile(`^/{3}([\s\S]*?)/{3}([imgy]{0,4})`)
	inlineRegexRe  = regexp.MustCompile(`^/(?:[^/\\\n\[]|\\.|\[(?:[^\]\\\n]|\\.)*\])*/([imgy]{0,4})`)
	heregexOmitRe  = regexp.MustCompile(`\s+(?:#[^\n]*)?`)

	multidentRe = regexp.MustCompile(`^(?:\n[ \t]*)+`)

	operatorRe = regexp.MustCompile(`^(?:` +
		`>>>=|\*\*=|//=|%%=|>>>|` +
		`->|=>|` +
		`\?\.{2}|\.{3}|\.{2}|` +
		`\+\+|--|::|` +
		`&&=|\|\|=|` +
		`<<=|>>=|` +
		`<<|>>|` +
		`<=|>=|==|!=|&&|\|\||` +
		`\?\.|\?::|` +
		`\*\*|//|%%|` +
		`[-+*/%&|^=!<>?:]=?` +
		`)`)
)

// matchIdentifier consumes a glint identifier starting at chunk[0] (a
// caller must already know chunk[0] is an identifier-start rune) and
// reports how many bytes were consumed, plus whether a trailing
// single-colon (object-key marker) was seen and how many bytes it and any
// preceding spacing occupied.
func matchIdentifier(chunk string) (name string, consumed int, colon bool, colonLen int) {
	i := 0
	for i < len(chunk) {
		r, w := utf8.DecodeRuneInString(chunk[i:])
		ok := xid.Continue(r) || r == '_' || r == '$'
		if i == 0 {
			ok = xid.Start(r) || r == '_' || r == '$'
		}
		if !ok {
			break
		}
		i += w
	}
	if i == 0 {
		return "", 0, false, 0
	}
	name = chunk[:i]
	consumed = i
	j := i
	for j < len(chunk) && (chunk[j] == ' ' || chunk[j] == '\t') {
		j++
	}
	if j < len(chunk) && chunk[j] == ':' && !(j+1 < len(chunk) && chunk[j+1] == ':') {
		colon = true
		colonLen = j + 1 - i
	}
	return name, consumed, colon, colonLen
}

// isIdentStartByte is a fast pre-check used by the dispatcher before
// paying for full rune decoding.
func isIdentStartByte(b byte) bool {
	if b < utf8.RuneSelf {
		return xid.Start(rune(b)) || b == '_' || b == '$'
	}
	return true // multi-byte sequence, defer to matchIdentifier's full decode
}
