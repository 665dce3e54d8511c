package lexer

import (
	"bytes"
	"fmt"
	"text/tabwriter"

	"github.com/alecthomas/repr"
)

// Dump renders a token stream as an aligned table for debugging and
// golden-file comparisons, in the same tabwriter-plus-repr style the
// teacher's query dumper uses.
func Dump(tokens []Token) string {
	var out bytes.Buffer
	writer := tabwriter.NewWriter(&out, 0, 0, 2, ' ', 0)
	for _, t := range tokens {
		fmt.Fprintf(writer, "%d:%d\t%s\t%s\n", t.Span.First.Line, t.Span.First.Column, t.Tag, repr.String(t.Value))
	}
	writer.Flush()
	return out.String()
}
