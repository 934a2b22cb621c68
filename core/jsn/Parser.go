package jsn

import (
	"strconv"

	"github.com/rohanthewiz/serr"
)

// Parse parses a JSON text into a value tree of Object, Array and scalar
// values. The grammar's start symbol accepts only an object or an array; a
// bare scalar at the top level is a ParseError. On failure the returned
// ParseError carries the full input text for diagnostic context.
func Parse(input string) (any, error) {
	lx := &lexer{input: input}

	value, err := parse(lx)
	if err != nil {
		if parseErr, ok := err.(*ParseError); ok {
			parseErr.Input = input
		}
		return nil, err
	}
	return value, nil
}

func parse(lx *lexer) (any, error) {
	token, err := lx.next()
	if err != nil {
		return nil, err
	}

	switch token.Kind {
	case KindLeftBrace:
		return parseObject(lx)
	case KindLeftBracket:
		return parseArray(lx)
	default:
		return nil, token.errorExpected(KindLeftBrace, KindLeftBracket)
	}
}

// parseValue converts a single token into a value, recursing into nested
// containers. String text is used verbatim — no unescaping.
func parseValue(token Token, lx *lexer) (any, error) {
	switch token.Kind {
	case KindNull:
		return nil, nil
	case KindFalse:
		return false, nil
	case KindTrue:
		return true, nil
	case KindInteger:
		n, err := strconv.Atoi(token.Text)
		if err != nil {
			return nil, serr.Wrap(err, "bad integer literal at "+strconv.Itoa(token.Offset))
		}
		return n, nil
	case KindFloat:
		f, err := strconv.ParseFloat(token.Text, 64)
		if err != nil {
			// a bare "." lexes as a Float but has no numeric value
			return nil, serr.Wrap(err, "bad float literal at "+strconv.Itoa(token.Offset))
		}
		return f, nil
	case KindString:
		return token.Text, nil
	case KindLeftBrace:
		return parseObject(lx)
	case KindLeftBracket:
		return parseArray(lx)
	default:
		return nil, token.errorExpected(KindNull, KindFalse, KindTrue,
			KindInteger, KindFloat, KindString, KindLeftBrace, KindLeftBracket)
	}
}

// parseObject parses the members after an opening brace. The returned
// Object preserves key insertion order; it is only returned once fully
// populated.
func parseObject(lx *lexer) (Object, error) {
	object := Object{}

	token, err := lx.next()
	if err != nil {
		return nil, err
	}
	if token.is(KindRightBrace) {
		return object, nil
	}

	for {
		key, err := token.expect(KindString)
		if err != nil {
			return nil, err
		}

		colon, err := lx.next()
		if err != nil {
			return nil, err
		}
		if _, err = colon.expect(KindColon); err != nil {
			return nil, err
		}

		token, err = lx.next()
		if err != nil {
			return nil, err
		}
		value, err := parseValue(token, lx)
		if err != nil {
			return nil, err
		}
		object.Set(key, value)

		token, err = lx.next()
		if err != nil {
			return nil, err
		}
		if token.is(KindRightBrace) {
			return object, nil
		}
		if _, err = token.expect(KindComma); err != nil {
			return nil, err
		}

		token, err = lx.next()
		if err != nil {
			return nil, err
		}
	}
}

// parseArray parses the elements after an opening bracket.
func parseArray(lx *lexer) (Array, error) {
	array := Array{}

	token, err := lx.next()
	if err != nil {
		return nil, err
	}
	if token.is(KindRightBracket) {
		return array, nil
	}

	for {
		value, err := parseValue(token, lx)
		if err != nil {
			return nil, err
		}
		array = append(array, value)

		token, err = lx.next()
		if err != nil {
			return nil, err
		}
		if token.is(KindRightBracket) {
			return array, nil
		}
		if _, err = token.expect(KindComma); err != nil {
			return nil, err
		}

		token, err = lx.next()
		if err != nil {
			return nil, err
		}
	}
}
