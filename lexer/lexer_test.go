package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tags extracts the tag sequence from a token stream, for compact
// assertions against expected shapes (mirrors the teacher's
// scanner_test.go "assert just the shape" style).
func tags(tokens []Token) []Tag {
	out := make([]Tag, len(tokens))
	for i, t := range tokens {
		out[i] = t.Tag
	}
	return out
}

func TestTokenizeNumbers(t *testing.T) {
	test := func(input string, expected Tag, expectedValue string) func(*testing.T) {
		return func(t *testing.T) {
			tokens, err := Tokenize(input, Options{})
			require.NoError(t, err)
			require.NotEmpty(t, tokens)
			assert.Equal(t, expected, tokens[0].Tag)
			assert.Equal(t, expectedValue, tokens[0].Value)
		}
	}

	t.Run("decimal", test("123", NUMBER, "123"))
	t.Run("float", test("3.14", NUMBER, "3.14"))
	t.Run("hex", test("0xFF", NUMBER, "0xFF"))
	t.Run("binary normalized to hex", test("0b101", NUMBER, "0x5"))
	t.Run("octal normalized to hex", test("0o17", NUMBER, "0xf"))
	t.Run("exponent", test("1e10", NUMBER, "1e10"))

	t.Run("legacy octal rejected", func(t *testing.T) {
		_, err := Tokenize("0755", Options{})
		assert.Error(t, err)
	})
	t.Run("uppercase radix prefix rejected", func(t *testing.T) {
		_, err := Tokenize("0XFF", Options{})
		assert.Error(t, err)
	})
	t.Run("uppercase exponent rejected", func(t *testing.T) {
		_, err := Tokenize("1E10", Options{})
		assert.Error(t, err)
	})
}

func TestTokenizeAliases(t *testing.T) {
	test := func(input string, expected Tag, expectedValue string) func(*testing.T) {
		return func(t *testing.T) {
			tokens, err := Tokenize(input, Options{})
			require.NoError(t, err)
			require.NotEmpty(t, tokens)
			assert.Equal(t, expected, tokens[0].Tag)
			assert.Equal(t, expectedValue, tokens[0].Value)
		}
	}

	t.Run("and", test("and", LOGIC, "&&"))
	t.Run("or", test("or", LOGIC, "||"))
	t.Run("is", test("is", COMPARE, "=="))
	t.Run("isnt", test("isnt", COMPARE, "!="))
	t.Run("not", test("not", UNARY, "!"))
	t.Run("yes", test("yes", BOOL, "true"))
	t.Run("on", test("on", BOOL, "true"))
	t.Run("no", test("no", BOOL, "false"))
	t.Run("off", test("off", BOOL, "false"))
}

func TestTokenizeKeywords(t *testing.T) {
	tokens, err := Tokenize("if x then y else z", Options{})
	require.NoError(t, err)
	got := tags(tokens)
	assert.Contains(t, got, IF)
	assert.Contains(t, got, THEN)
	assert.Contains(t, got, ELSE)
}

func TestForInOf(t *testing.T) {
	t.Run("for in", func(t *testing.T) {
		tokens, err := Tokenize("for x in y\n  z", Options{})
		require.NoError(t, err)
		assert.Contains(t, tags(tokens), FORIN)
	})
	t.Run("for of", func(t *testing.T) {
		tokens, err := Tokenize("for k of y\n  z", Options{})
		require.NoError(t, err)
		assert.Contains(t, tags(tokens), FOROF)
	})
	t.Run("for own in", func(t *testing.T) {
		tokens, err := Tokenize("for own k in y\n  z", Options{})
		require.NoError(t, err)
		got := tags(tokens)
		assert.Contains(t, got, OWN)
		assert.Contains(t, got, FORIN)
	})
	t.Run("bare in outside for is relation", func(t *testing.T) {
		tokens, err := Tokenize("x in y", Options{})
		require.NoError(t, err)
		assert.Contains(t, tags(tokens), RELATION)
		assert.NotContains(t, tags(tokens), FORIN)
	})
}

func TestIndentation(t *testing.T) {
	tokens, err := Tokenize("if x\n  y\n  z\nw", Options{})
	require.NoError(t, err)
	got := tags(tokens)
	assert.Contains(t, got, INDENT)
	assert.Contains(t, got, OUTDENT)
	assert.Contains(t, got, TERMINATOR)
}

func TestCallAndIndexStart(t *testing.T) {
	t.Run("call start unspaced after identifier", func(t *testing.T) {
		tokens, err := Tokenize("foo(x)", Options{})
		require.NoError(t, err)
		assert.Equal(t, CALLSTART, tokens[1].Tag)
	})
	t.Run("plain paren when spaced", func(t *testing.T) {
		tokens, err := Tokenize("foo (x)", Options{})
		require.NoError(t, err)
		assert.Equal(t, Tag("("), tokens[1].Tag)
	})
	t.Run("index start unspaced after identifier", func(t *testing.T) {
		tokens, err := Tokenize("foo[0]", Options{})
		require.NoError(t, err)
		assert.Equal(t, INDEXSTART, tokens[1].Tag)
	})
}

func TestFuncExistAndIndexSoak(t *testing.T) {
	t.Run("func exist", func(t *testing.T) {
		tokens, err := Tokenize("foo?()", Options{})
		require.NoError(t, err)
		assert.Contains(t, tags(tokens), FUNCEXIST)
	})
	t.Run("index soak", func(t *testing.T) {
		tokens, err := Tokenize("foo?[0]", Options{})
		require.NoError(t, err)
		assert.Contains(t, tags(tokens), INDEXSOAK)
	})
}

func TestParamStartEnd(t *testing.T) {
	tokens, err := Tokenize("(x, y) -> x + y", Options{})
	require.NoError(t, err)
	got := tags(tokens)
	assert.Contains(t, got, PARAMSTART)
	assert.Contains(t, got, PARAMEND)
	assert.Contains(t, got, CODE)
}

func TestStringInterpolation(t *testing.T) {
	tokens, err := Tokenize(`"hello #{name}!"`, Options{})
	require.NoError(t, err)
	got := tags(tokens)
	assert.Equal(t, Tag("("), got[0])
	assert.Contains(t, got, STRING)
	assert.Contains(t, got, IDENTIFIER)
	assert.True(t, tokens[len(tokens)-2].StringEnd || tokens[len(tokens)-1].StringEnd)
}

func TestStringNoInterpolationIsSingleToken(t *testing.T) {
	tokens, err := Tokenize(`"hello world"`, Options{})
	require.NoError(t, err)
	require.NotEmpty(t, tokens)
	assert.Equal(t, STRING, tokens[0].Tag)
	assert.Equal(t, `"hello world"`, tokens[0].Value)
}

func TestSingleQuoteStringNoInterpolation(t *testing.T) {
	tokens, err := Tokenize(`'hello #{name}'`, Options{})
	require.NoError(t, err)
	require.NotEmpty(t, tokens)
	assert.Equal(t, STRING, tokens[0].Tag)
}

func TestUnterminatedStringErrors(t *testing.T) {
	_, err := Tokenize(`"hello`, Options{})
	assert.Error(t, err)
}

func TestRegexVsDivision(t *testing.T) {
	t.Run("division after number", func(t *testing.T) {
		tokens, err := Tokenize("a = 10 / 2", Options{})
		require.NoError(t, err)
		assert.Contains(t, tags(tokens), MATH)
		assert.NotContains(t, tags(tokens), REGEX)
	})
	t.Run("regex at start of expression", func(t *testing.T) {
		tokens, err := Tokenize("x = /foo/", Options{})
		require.NoError(t, err)
		assert.Contains(t, tags(tokens), REGEX)
	})
	t.Run("empty regex falls through to floor division", func(t *testing.T) {
		tokens, err := Tokenize("x = a // b", Options{})
		require.NoError(t, err)
		assert.Contains(t, tags(tokens), MATH)
	})
}

func TestHeregex(t *testing.T) {
	tokens, err := Tokenize("x = ///\n  foo # comment\n  bar\n///g", Options{})
	require.NoError(t, err)
	assert.Contains(t, tags(tokens), REGEX)
}

func TestHeredoc(t *testing.T) {
	tokens, err := Tokenize("x = \"\"\"\n  hello\n  world\n\"\"\"", Options{})
	require.NoError(t, err)
	assert.Contains(t, tags(tokens), STRING)
}

func TestHerecomment(t *testing.T) {
	tokens, err := Tokenize("###\nsome docs\n###\nx = 1", Options{})
	require.NoError(t, err)
	assert.Contains(t, tags(tokens), HERECOMMENT)
}

func TestLineComment(t *testing.T) {
	tokens, err := Tokenize("x = 1 # trailing comment", Options{})
	require.NoError(t, err)
	got := tags(tokens)
	assert.NotContains(t, got, HERECOMMENT)
	// line comments carry no token at all
	assert.Equal(t, []Tag{IDENTIFIER, Tag("="), NUMBER, TERMINATOR}, got)
}

func TestCompoundAssign(t *testing.T) {
	tokens, err := Tokenize("x ||= y", Options{})
	require.NoError(t, err)
	assert.Contains(t, tags(tokens), COMPOUNDASSIGN)
}

func TestNegatedRelation(t *testing.T) {
	tokens, err := Tokenize("x !in y", Options{})
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(tokens), 3)
	assert.Equal(t, RELATION, tokens[1].Tag)
	assert.Equal(t, "!in", tokens[1].Value)
}

func TestEmbeddedJS(t *testing.T) {
	tokens, err := Tokenize("`var x = 1;`", Options{})
	require.NoError(t, err)
	require.NotEmpty(t, tokens)
	assert.Equal(t, JS, tokens[0].Tag)
}

func TestReservedWordInPropertyPosition(t *testing.T) {
	tokens, err := Tokenize("x.class", Options{})
	require.NoError(t, err)
	var found *Token
	for i := range tokens {
		if tokens[i].Value == "class" {
			found = &tokens[i]
		}
	}
	require.NotNil(t, found)
	assert.Equal(t, IDENTIFIER, found.Tag)
}

func TestReservedWordMisuseErrors(t *testing.T) {
	t.Run("bare keyword-like reserved word", func(t *testing.T) {
		_, err := Tokenize("function", Options{})
		assert.Error(t, err)
	})
	t.Run("reserved word as assignment target", func(t *testing.T) {
		_, err := Tokenize("var = 1", Options{})
		assert.Error(t, err)
	})
	t.Run("other reserved words", func(t *testing.T) {
		for _, word := range []string{"with", "void", "const", "enum", "native"} {
			_, err := Tokenize(word, Options{})
			assert.Errorf(t, err, "expected %q to be rejected outside property position", word)
		}
	})
}

func TestReservedWordInAssignmentIsLegalInPropertyPosition(t *testing.T) {
	tokens, err := Tokenize("obj.function = 1", Options{})
	require.NoError(t, err)
	got := tags(tokens)
	assert.Contains(t, got, IDENTIFIER)
	assert.Contains(t, got, Tag("="))

	var found *Token
	for i := range tokens {
		if tokens[i].Value == "function" {
			found = &tokens[i]
		}
	}
	require.NotNil(t, found)
	assert.True(t, found.Reserved)
}

func TestNotInMerge(t *testing.T) {
	tokens, err := Tokenize("x not in y", Options{})
	require.NoError(t, err)
	var found *Token
	for i := range tokens {
		if tokens[i].Tag == RELATION {
			found = &tokens[i]
		}
	}
	require.NotNil(t, found)
	assert.Equal(t, "!in", found.Value)
	require.NotNil(t, found.Origin)
	assert.Equal(t, "!", found.Origin.Value)
	assert.NotContains(t, tags(tokens), UNARY)
}

func TestLogicCompoundAssignFold(t *testing.T) {
	tokens, err := Tokenize("x or= y", Options{})
	require.NoError(t, err)
	var found *Token
	for i := range tokens {
		if tokens[i].Tag == COMPOUNDASSIGN {
			found = &tokens[i]
		}
	}
	require.NotNil(t, found)
	assert.Equal(t, "||=", found.Value)
	require.NotNil(t, found.Origin)
	assert.Equal(t, "||", found.Origin.Value)
	assert.NotContains(t, tags(tokens), LOGIC)
}

func TestReservedWordsExported(t *testing.T) {
	words := ReservedWords()
	assert.Contains(t, words, "if")
	assert.Contains(t, words, "class")

	strict := StrictReservedWords()
	assert.Contains(t, strict, "implements")
}

func TestIdentityRewriterIsNoOp(t *testing.T) {
	tokens, err := Tokenize("x = 1", Options{})
	require.NoError(t, err)
	rewritten, err := IdentityRewriter{}.Rewrite(tokens)
	require.NoError(t, err)
	assert.Equal(t, tokens, rewritten)
}

func TestStripLiterate(t *testing.T) {
	out := StripLiterate("prose line\n\n    x = 1\n")
	assert.Equal(t, "# prose line\n\nx = 1\n", out)

	tokens, err := Tokenize("prose line\n\n    x = 1\n", Options{Literate: true})
	require.NoError(t, err)
	assert.Contains(t, tags(tokens), IDENTIFIER)
}

func TestSixLinesSample(t *testing.T) {
	src := "square = (x) -> x * x\nresult = square 4\nif result > 10\n  console.log \"big: #{result}\"\nelse\n  console.log \"small\"\n"
	tokens, err := Tokenize(src, Options{})
	require.NoError(t, err)
	require.NotEmpty(t, tokens)
	got := tags(tokens)
	assert.Contains(t, got, PARAMSTART)
	assert.Contains(t, got, CODE)
	assert.Contains(t, got, IF)
	assert.Contains(t, got, INDENT)
	assert.Contains(t, got, OUTDENT)
}
