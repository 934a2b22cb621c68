package jsn

import (
	"testing"

	"github.com/rohanthewiz/assert"
)

func scan(t *testing.T, input string) []Token {
	t.Helper()
	lx := &lexer{input: input}

	var tokens []Token
	for lx.pos < len(input) {
		token, err := lx.next()
		if err != nil {
			t.Fatalf("unexpected lex error: %v", err)
		}
		tokens = append(tokens, token)
	}
	return tokens
}

func TestScanKinds(t *testing.T) {
	tokens := scan(t, `{ "a": [null, true, false, 12, 3.5] }`)

	kinds := []Kind{
		KindLeftBrace, KindString, KindColon, KindLeftBracket,
		KindNull, KindComma, KindTrue, KindComma, KindFalse, KindComma,
		KindInteger, KindComma, KindFloat, KindRightBracket, KindRightBrace,
	}

	assert.Equal(t, len(tokens), len(kinds))
	for i, kind := range kinds {
		assert.Equal(t, tokens[i].Kind, kind)
	}
}

func TestScanBlanksSkipped(t *testing.T) {
	tokens := scan(t, " \t [ \t ]")

	assert.Equal(t, len(tokens), 2)
	assert.Equal(t, tokens[0].Kind, KindLeftBracket)
	assert.Equal(t, tokens[1].Kind, KindRightBracket)
}

func TestScanStringText(t *testing.T) {
	tokens := scan(t, `"hello world"`)

	assert.Equal(t, len(tokens), 1)
	assert.Equal(t, tokens[0].Kind, KindString)
	assert.Equal(t, tokens[0].Text, "hello world")
	assert.Equal(t, tokens[0].Offset, 0)
}

func TestScanNumbers(t *testing.T) {
	tokens := scan(t, "123 145.4 .5 7.")

	assert.Equal(t, len(tokens), 4)
	assert.Equal(t, tokens[0].Kind, KindInteger)
	assert.Equal(t, tokens[0].Text, "123")
	assert.Equal(t, tokens[1].Kind, KindFloat)
	assert.Equal(t, tokens[1].Text, "145.4")
	assert.Equal(t, tokens[2].Kind, KindFloat)
	assert.Equal(t, tokens[2].Text, ".5")
	assert.Equal(t, tokens[3].Kind, KindFloat)
	assert.Equal(t, tokens[3].Text, "7.")
}

// Known boundary: the float rule permits empty digits on both sides, so a
// bare dot lexes as a Float. The lexer does not judge its numeric value.
func TestScanBareDotIsFloat(t *testing.T) {
	tokens := scan(t, ".")

	assert.Equal(t, len(tokens), 1)
	assert.Equal(t, tokens[0].Kind, KindFloat)
	assert.Equal(t, tokens[0].Text, ".")
}

func TestScanOffsets(t *testing.T) {
	tokens := scan(t, ` "a" : 1`)

	assert.Equal(t, tokens[0].Offset, 1)
	assert.Equal(t, tokens[1].Offset, 5)
	assert.Equal(t, tokens[2].Offset, 7)
}

func TestScanNoRuleMatches(t *testing.T) {
	lx := &lexer{input: "[@]"}

	token, err := lx.next()
	assert.Nil(t, err)
	assert.Equal(t, token.Kind, KindLeftBracket)

	_, err = lx.next()
	lexErr, ok := err.(*LexError)
	assert.Equal(t, ok, true)
	assert.Equal(t, lexErr.Offset, 1)
}

func TestScanEndOfInput(t *testing.T) {
	lx := &lexer{input: "{"}

	_, err := lx.next()
	assert.Nil(t, err)

	_, err = lx.next()
	lexErr, ok := err.(*LexError)
	assert.Equal(t, ok, true)
	assert.Equal(t, lexErr.Offset, 1)
}
