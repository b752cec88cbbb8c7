package lexer_test

import (
	"testing"

	"github.com/ianzepp/faber/lexer"
	"github.com/ianzepp/faber/token"
	"github.com/stretchr/testify/require"
)

func kinds(tokens []token.Token) []token.Kind {
	out := make([]token.Kind, len(tokens))
	for i, t := range tokens {
		out[i] = t.Kind
	}
	return out
}

func TestScanKeywordsAndIdent(t *testing.T) {
	l, err := lexer.New("", "fixum numerus count")
	require.NoError(t, err)

	tokens := lexer.Prepare(l.Tokens())
	require.Equal(t, []token.Kind{token.KEYWORD, token.KEYWORD, token.IDENT, token.EOF}, kinds(tokens))
	require.Equal(t, "count", tokens[2].Lexeme)
}

func TestScanStringEscapes(t *testing.T) {
	l, err := lexer.New("", `"line1\nline2\x41é"`)
	require.NoError(t, err)

	tok := l.Scan()
	require.Equal(t, token.STRING, tok.Kind)
	require.Equal(t, "line1\nline2Aé", tok.Lexeme)
}

func TestScanTripleQuotedStringIsRaw(t *testing.T) {
	l, err := lexer.New("", "\"\"\"\nline1\n\\n not an escape\n\"\"\"")
	require.NoError(t, err)

	tok := l.Scan()
	require.Equal(t, token.STRING, tok.Kind)
	require.Equal(t, "line1\n\\n not an escape", tok.Lexeme)
}

func TestScanUnterminatedStringIsError(t *testing.T) {
	l, err := lexer.New("", `"no closing quote`)
	require.NoError(t, err)

	tok := l.Scan()
	require.Equal(t, token.ERROR, tok.Kind)
}

func TestScanNumberWithUnderscoreSeparator(t *testing.T) {
	l, err := lexer.New("", "1_000.25")
	require.NoError(t, err)

	tok := l.Scan()
	require.Equal(t, token.NUMBER, tok.Kind)
	require.Equal(t, "1_000.25", tok.Lexeme)
}

func TestScanOperatorsLongestPrefixFirst(t *testing.T) {
	l, err := lexer.New("", "=== == = ?? -> ..")
	require.NoError(t, err)

	tokens := lexer.Prepare(l.Tokens())
	var lexemes []string
	for _, tok := range tokens {
		if tok.Kind == token.OPERATOR {
			lexemes = append(lexemes, tok.Lexeme)
		}
	}
	require.Equal(t, []string{"===", "==", "=", "??", "->", ".."}, lexemes)
}

func TestDotIsPunctuatorWhenNotFollowedByDot(t *testing.T) {
	l, err := lexer.New("", "a.b")
	require.NoError(t, err)

	tokens := lexer.Prepare(l.Tokens())
	require.Equal(t, token.PUNCT, tokens[1].Kind)
	require.Equal(t, ".", tokens[1].Lexeme)
}

func TestScanLineCommentStopsAtNewline(t *testing.T) {
	l, err := lexer.New("", "# a comment\nfixum")
	require.NoError(t, err)

	tokens := l.Tokens()
	require.Equal(t, token.COMMENT, tokens[0].Kind)
	require.Equal(t, token.NEWLINE, tokens[1].Kind)
	require.Equal(t, token.KEYWORD, tokens[2].Kind)
}

func TestIllegalCharacterReportsPosition(t *testing.T) {
	l, err := lexer.New("", "fixum $x")
	require.NoError(t, err)

	tokens := l.Tokens()
	last := tokens[len(tokens)-1]
	require.Equal(t, token.ERROR, last.Kind)
	require.Equal(t, 1, last.Position.Line)
	require.Equal(t, 7, last.Position.Column)
}

func TestNewRejectsEmptyInput(t *testing.T) {
	_, err := lexer.New("", "")
	require.Error(t, err)
}
