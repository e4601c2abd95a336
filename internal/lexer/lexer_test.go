package lexer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isilang/isic/internal/lexer"
	"github.com/isilang/isic/internal/token"
)

func allTokens(src string) []token.Token {
	l := lexer.New(src)
	var toks []token.Token
	for {
		tok := l.NextToken()
		toks = append(toks, tok)
		if tok.Type == token.EOF {
			return toks
		}
	}
}

func TestLexerKeywordsAndPunctuation(t *testing.T) {
	toks := allTokens("programa declare x : int := 1 . fimprog .")
	types := make([]token.TokenType, len(toks))
	for i, tok := range toks {
		types[i] = tok.Type
	}
	assert.Equal(t, []token.TokenType{
		token.PROGRAMA, token.DECLARE, token.IDENT, token.COLON, token.IDENT,
		token.ASSIGN, token.INT, token.DOT, token.FIMPROG, token.DOT, token.EOF,
	}, types)
}

func TestLexerTwoCharOperators(t *testing.T) {
	cases := map[string]token.TokenType{
		":=": token.ASSIGN, "==": token.EQ, "!=": token.NOT_EQ,
		"<=": token.LTE, ">=": token.GTE, "&&": token.AND, "||": token.OR,
	}
	for src, want := range cases {
		toks := allTokens(src)
		require.Len(t, toks, 2)
		assert.Equal(t, want, toks[0].Type, "lexing %q", src)
	}
}

func TestLexerFloatUsesCommaSeparator(t *testing.T) {
	toks := allTokens("3,14")
	require.Len(t, toks, 2)
	assert.Equal(t, token.FLOAT, toks[0].Type)
	assert.InDelta(t, float32(3.14), toks[0].Literal.(float32), 0.0001)
}

func TestLexerIntegerOverflowIsIllegal(t *testing.T) {
	toks := allTokens("99999999999999999999")
	require.Len(t, toks, 2)
	assert.Equal(t, token.ILLEGAL, toks[0].Type)
}

func TestLexerStringLiteral(t *testing.T) {
	toks := allTokens(`"ola mundo"`)
	require.Len(t, toks, 2)
	assert.Equal(t, token.STRING, toks[0].Type)
	assert.Equal(t, "ola mundo", toks[0].Literal)
}

func TestLexerEmptyStringIsIllegal(t *testing.T) {
	toks := allTokens(`""`)
	require.Len(t, toks, 2)
	assert.Equal(t, token.ILLEGAL, toks[0].Type)
}

func TestLexerUnterminatedStringIsIllegal(t *testing.T) {
	toks := allTokens(`"abc`)
	require.Len(t, toks, 2)
	assert.Equal(t, token.ILLEGAL, toks[0].Type)
}

func TestLexerIdentifierIsNotKeyword(t *testing.T) {
	toks := allTokens("programavel")
	require.Len(t, toks, 2)
	assert.Equal(t, token.IDENT, toks[0].Type)
}

func TestLexerTracksByteOffsets(t *testing.T) {
	toks := allTokens("ab cd")
	require.Len(t, toks, 3)
	assert.Equal(t, 0, toks[0].Start)
	assert.Equal(t, 2, toks[0].End)
	assert.Equal(t, 3, toks[1].Start)
	assert.Equal(t, 5, toks[1].End)
}
