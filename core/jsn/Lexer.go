package jsn

import "strings"

// lexer scans a JSON text into tokens on demand. It holds no state beyond
// the scan position, so independent inputs can be lexed concurrently.
//
// Deliberate limitations, kept as-is: strings have no escape sequences (a
// quote always terminates), numbers have no sign and no exponent, and the
// float rule accepts an empty integer or fractional part, so a bare "." is
// lexically a Float.
type lexer struct {
	input string
	pos   int
}

// next returns the next non-blank token. When no rule matches at the
// current offset, including at end of input, it returns a LexError naming
// the offset.
func (lx *lexer) next() (Token, error) {
	for {
		start := lx.pos
		kind, text, length := matchAt(lx.input, lx.pos)

		if length == 0 {
			return Token{}, &LexError{Offset: start}
		}
		lx.pos += length

		if kind == kindBlank {
			continue
		}
		return Token{Kind: kind, Text: text, Offset: start}, nil
	}
}

// matchAt is ordered alternation over the per-kind lexical rules: each rule
// is tried at pos in Kind declaration order and the first match wins. It
// returns the winning kind, the token text and the number of bytes
// consumed; a zero length means no rule matched.
func matchAt(input string, pos int) (Kind, string, int) {
	if n := matchWord(input, pos, "null"); n > 0 {
		return KindNull, "null", n
	}
	if n := matchWord(input, pos, "true"); n > 0 {
		return KindTrue, "true", n
	}
	if n := matchWord(input, pos, "false"); n > 0 {
		return KindFalse, "false", n
	}
	if n := matchFloat(input, pos); n > 0 {
		return KindFloat, input[pos : pos+n], n
	}
	if n := matchDigits(input, pos); n > 0 {
		return KindInteger, input[pos : pos+n], n
	}
	if text, n := matchString(input, pos); n > 0 {
		return KindString, text, n
	}
	if n := matchSingle(input, pos, '{'); n > 0 {
		return KindLeftBrace, "{", n
	}
	if n := matchSingle(input, pos, '}'); n > 0 {
		return KindRightBrace, "}", n
	}
	if n := matchSingle(input, pos, '['); n > 0 {
		return KindLeftBracket, "[", n
	}
	if n := matchSingle(input, pos, ']'); n > 0 {
		return KindRightBracket, "]", n
	}
	if n := matchSingle(input, pos, ':'); n > 0 {
		return KindColon, ":", n
	}
	if n := matchSingle(input, pos, ','); n > 0 {
		return KindComma, ",", n
	}
	if n := matchBlank(input, pos); n > 0 {
		return kindBlank, "", n
	}

	return 0, "", 0
}

func matchWord(input string, pos int, word string) int {
	if strings.HasPrefix(input[pos:], word) {
		return len(word)
	}
	return 0
}

func matchSingle(input string, pos int, c byte) int {
	if pos < len(input) && input[pos] == c {
		return 1
	}
	return 0
}

// matchDigits matches [0-9]+.
func matchDigits(input string, pos int) int {
	i := pos
	for i < len(input) && input[i] >= '0' && input[i] <= '9' {
		i++
	}
	return i - pos
}

// matchFloat matches [0-9]*\.[0-9]* — the dot is required, the digits on
// either side are not.
func matchFloat(input string, pos int) int {
	i := pos + matchDigits(input, pos)
	if i >= len(input) || input[i] != '.' {
		return 0
	}
	i++
	i += matchDigits(input, i)
	return i - pos
}

// matchString matches "([^"]*)" and returns the content between the quotes.
func matchString(input string, pos int) (string, int) {
	if pos >= len(input) || input[pos] != '"' {
		return "", 0
	}
	end := strings.IndexByte(input[pos+1:], '"')
	if end < 0 {
		return "", 0
	}
	return input[pos+1 : pos+1+end], end + 2
}

// matchBlank matches a run of spaces and tabs.
func matchBlank(input string, pos int) int {
	i := pos
	for i < len(input) && (input[i] == ' ' || input[i] == '\t') {
		i++
	}
	return i - pos
}
