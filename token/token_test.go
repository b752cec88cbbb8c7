package token_test

import (
	"testing"

	"github.com/ianzepp/faber/token"
	"github.com/stretchr/testify/require"
)

func TestPositionString(t *testing.T) {
	p := token.Position{Line: 3, Column: 7, Offset: 40}
	require.Equal(t, "3:7", p.String())
}

func TestNewPositionStartsAtOne(t *testing.T) {
	p := token.NewPosition()
	require.Equal(t, 1, p.Line)
	require.Equal(t, 1, p.Column)
	require.Equal(t, 0, p.Offset)
}

func TestKindOfRecognizesKeywords(t *testing.T) {
	require.Equal(t, token.KEYWORD, token.KindOf("functio"))
	require.Equal(t, token.KEYWORD, token.KindOf("discerne"))
	require.Equal(t, token.IDENT, token.KindOf("count"))
	require.Equal(t, token.IDENT, token.KindOf("Functio"))
}

func TestIsLiteralChar(t *testing.T) {
	require.True(t, token.IsLiteralChar('a'))
	require.True(t, token.IsLiteralChar('_'))
	require.True(t, token.IsLiteralChar('9'))
	require.False(t, token.IsLiteralChar(' '))
	require.False(t, token.IsLiteralChar('+'))
}

func TestNewIllegalToken(t *testing.T) {
	tok := token.NewIllegalToken('$', token.Position{Line: 1, Column: 5})
	require.Equal(t, token.ERROR, tok.Kind)
	require.Contains(t, tok.Lexeme, "unexpected character '$'")
}

func TestTokenPredicates(t *testing.T) {
	kw := token.NewToken(token.KEYWORD, "redde", token.NewPosition())
	require.True(t, kw.IsKeyword("redde"))
	require.False(t, kw.IsKeyword("iace"))

	op := token.NewToken(token.OPERATOR, "==", token.NewPosition())
	require.True(t, op.IsOperator("=="))
}
