// Package lexer tokenizes glint source into a tagged token stream for the
// grammar to consume. It owns indentation accounting, string/regex/
// heredoc scanning with recursive interpolation, contextual
// reclassification of raw matches, and location tracking — the whole
// "core" described by the language specification; the grammar and the
// Rewriter are external collaborators this package only calls out to.
package lexer

import (
	"strings"

	"github.com/gofrs/uuid"
	"github.com/sirupsen/logrus"
)

// Options configures a single Tokenize call (spec §6 external interface).
type Options struct {
	Line     int // starting line, for nested/interpolation lexing
	Column   int // starting column, for nested/interpolation lexing
	Literate bool
	// Rewrite, when nil, defaults to true (pass the stream through
	// Rewriter). Explicitly false skips the Rewriter entirely.
	Rewrite  *bool
	Rewriter Rewriter
	Logger   *logrus.Logger
}

func (o Options) rewrite() bool {
	return o.Rewrite == nil || *o.Rewrite
}

// Lexer holds all per-call state (spec §3). A Lexer is single-use: one
// instance per Tokenize invocation, including nested interpolation
// lexers, which get their own disjoint instance (spec §5).
type Lexer struct {
	opts Options

	chunk string // remaining-to-scan suffix of the cleaned source

	tokens []Token

	indent     int
	baseIndent int
	indebt     int
	outdebt    int
	indents    []int
	ends       []string

	chunkLine   int
	chunkColumn int

	seenFor bool

	log       *logrus.Entry
	sessionID string
	depth     int
}

func newLexer(opts Options, depth int, parentSession string) *Lexer {
	l := &Lexer{
		opts:        opts,
		indents:     nil,
		ends:        nil,
		chunkLine:   opts.Line,
		chunkColumn: opts.Column,
		depth:       depth,
	}
	if opts.Logger != nil {
		sid := parentSession
		if sid == "" {
			if id, err := uuid.NewV4(); err == nil {
				sid = id.String()
			}
		}
		l.sessionID = sid
		l.log = opts.Logger.WithFields(logrus.Fields{
			"session": l.sessionID,
			"depth":   depth,
		})
	}
	return l
}

// Tokenize lexes source into a token stream per spec §4.1/§6. It is the
// sole public entry point for top-level lexing; nested interpolation
// lexing goes through the unexported tokenizeNested so it can share the
// parent's session id for log correlation without re-running `clean`.
func Tokenize(source string, opts Options) ([]Token, error) {
	l := newLexer(opts, 0, "")
	if l.log != nil {
		l.log.Debug("tokenize: start")
	}
	return l.run(source)
}

func tokenizeNested(source string, opts Options, parent *Lexer) ([]Token, error) {
	l := newLexer(opts, parent.depth+1, parent.sessionID)
	return l.runChunk(source)
}

func (l *Lexer) run(source string) ([]Token, error) {
	source = clean(source, l)
	if l.opts.Literate {
		source = StripLiterate(source)
	}
	tokens, err := l.runChunk(source)
	if err != nil {
		return nil, err
	}
	if l.opts.rewrite() {
		rw := l.opts.Rewriter
		if rw == nil {
			rw = IdentityRewriter{}
		}
		tokens, err = rw.Rewrite(tokens)
		if err != nil {
			return nil, err
		}
	}
	return tokens, nil
}

// runChunk drives the scan loop proper, shared by top-level and nested
// lexing (spec §4.1).
func (l *Lexer) runChunk(source string) ([]Token, error) {
	l.chunk = source
	for len(l.chunk) > 0 {
		consumed, err := l.step()
		if err != nil {
			return nil, err
		}
		if consumed == 0 {
			// Guaranteed fallback already handles any stray byte; this
			// only triggers if every matcher returned 0 on a non-empty
			// chunk, which the literal matcher forbids by construction.
			return nil, errAt(l.here(), "internal error: no matcher advanced the scan position")
		}
		l.advance(consumed)
	}
	if err := l.closeIndentation(); err != nil {
		return nil, err
	}
	if len(l.ends) > 0 {
		return nil, errAt(l.here(), "missing %s", l.ends[len(l.ends)-1])
	}
	return l.tokens, nil
}

// here reports the current scan position.
func (l *Lexer) here() Pos {
	return Pos{Line: l.chunkLine, Column: l.chunkColumn}
}

// advance moves the scan cursor forward by n bytes of l.chunk, updating
// (chunkLine, chunkColumn) by walking the consumed prefix (spec §4.1:
// "update (chunkLine, chunkColumn) by walking the consumed prefix
// counting newlines and trailing-line length").
func (l *Lexer) advance(n int) {
	prefix := l.chunk[:n]
	if idx := strings.LastIndexByte(prefix, '\n'); idx >= 0 {
		l.chunkLine += strings.Count(prefix, "\n")
		l.chunkColumn = len(prefix) - idx - 1
	} else {
		l.chunkColumn += len(prefix)
	}
	l.chunk = l.chunk[n:]
}

// clean applies the source-text normalization spec §4.1 requires before
// scanning begins: strip an optional BOM, delete carriage returns, trim
// trailing spaces per line, and (if the source starts with whitespace)
// prepend a synthetic newline while decrementing chunkLine so error
// columns stay correct.
func clean(source string, l *Lexer) string {
	source = strings.TrimPrefix(source, "﻿")
	source = strings.ReplaceAll(source, "\r", "")

	lines := strings.Split(source, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	source = strings.Join(lines, "\n")

	if len(source) > 0 && (source[0] == ' ' || source[0] == '\t') {
		source = "\n" + source
		l.chunkLine--
	}
	return source
}
