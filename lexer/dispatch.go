package lexer

// step tries each matcher in the fixed precedence order spec §4.1
// mandates, returning the first one that consumes input. The literal/
// operator matcher is the guaranteed fallback: it always advances at least
// one byte on a non-empty chunk, so the loop in runChunk can never stall.
func (l *Lexer) step() (int, error) {
	matchers := []func() (int, error){
		l.tryIdentifier,
		l.tryComment,
		l.tryWhitespace,
		l.tryLineToken,
		l.tryHeredoc,
		l.tryString,
		l.tryNumber,
		l.tryRegex,
		l.tryEmbeddedJS,
	}
	for _, m := range matchers {
		n, err := m()
		if err != nil {
			return 0, err
		}
		if n > 0 {
			return n, nil
		}
	}
	return l.tryOperatorOrLiteral()
}
