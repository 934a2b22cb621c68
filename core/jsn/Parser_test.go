package jsn_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/forax/jexpress/core/jsn"
	"github.com/rohanthewiz/assert"
)

func TestParseEmptyObject(t *testing.T) {
	for _, input := range []string{"{}", "{ }"} {
		value, err := jsn.Parse(input)
		assert.Nil(t, err)

		object, ok := value.(jsn.Object)
		assert.Equal(t, ok, true)
		assert.Equal(t, len(object), 0)
	}
}

func TestParseEmptyArray(t *testing.T) {
	for _, input := range []string{"[]", "[ ]"} {
		value, err := jsn.Parse(input)
		assert.Nil(t, err)

		array, ok := value.(jsn.Array)
		assert.Equal(t, ok, true)
		assert.Equal(t, len(array), 0)
	}
}

func TestParseObject(t *testing.T) {
	value, err := jsn.Parse(`{ "key2": false, "key3": true, "key4": 123, "key5": 145.4, "key6": "string" }`)
	assert.Nil(t, err)

	object := value.(jsn.Object)
	assert.Equal(t, len(object), 5)

	// key order is insertion order
	assert.Equal(t, object[0].Key, "key2")
	assert.Equal(t, object[4].Key, "key6")

	v, found := object.Get("key2")
	assert.Equal(t, found, true)
	assert.Equal(t, v.(bool), false)

	v, _ = object.Get("key4")
	assert.Equal(t, v.(int), 123)

	v, _ = object.Get("key5")
	assert.Equal(t, v.(float64), 145.4)

	v, _ = object.Get("key6")
	assert.Equal(t, v.(string), "string")
}

func TestParseObjectWithNull(t *testing.T) {
	value, err := jsn.Parse(`{ "foo": null }`)
	assert.Nil(t, err)

	object := value.(jsn.Object)
	assert.Equal(t, len(object), 1)

	v, found := object.Get("foo")
	assert.Equal(t, found, true)
	assert.Nil(t, v)
}

func TestParseArray(t *testing.T) {
	value, err := jsn.Parse(`[ false, true, 123, 145.4, "string" ]`)
	assert.Nil(t, err)

	array := value.(jsn.Array)
	assert.Equal(t, len(array), 5)
	assert.Equal(t, array[0].(bool), false)
	assert.Equal(t, array[1].(bool), true)

	// integer and float stay distinct numeric types
	assert.Equal(t, array[2].(int), 123)
	assert.Equal(t, array[3].(float64), 145.4)
	assert.Equal(t, array[4].(string), "string")
}

func TestParseArrayWithNull(t *testing.T) {
	value, err := jsn.Parse("[ 13.4, null ]")
	assert.Nil(t, err)

	array := value.(jsn.Array)
	assert.Equal(t, len(array), 2)
	assert.Equal(t, array[0].(float64), 13.4)
	assert.Nil(t, array[1])
}

func TestParseNested(t *testing.T) {
	value, err := jsn.Parse(`{ "list": [1, 2], "inner": { "a": "b" } }`)
	assert.Nil(t, err)

	object := value.(jsn.Object)

	list, _ := object.Get("list")
	assert.Equal(t, len(list.(jsn.Array)), 2)

	inner, _ := object.Get("inner")
	v, _ := inner.(jsn.Object).Get("a")
	assert.Equal(t, v.(string), "b")
}

// The start symbol accepts only an object or an array, so a bare scalar at
// the top level is rejected.
func TestParseBareScalarRejected(t *testing.T) {
	for _, input := range []string{"true", "123", `"x"`, "null"} {
		_, err := jsn.Parse(input)

		var parseErr *jsn.ParseError
		assert.Equal(t, errors.As(err, &parseErr), true)
		assert.Equal(t, len(parseErr.Expected), 2)
		assert.Equal(t, parseErr.Expected[0], jsn.KindLeftBrace)
		assert.Equal(t, parseErr.Expected[1], jsn.KindLeftBracket)
	}
}

func TestParseErrorNamesExpectedSet(t *testing.T) {
	_, err := jsn.Parse(`{ "a" 1 }`)

	var parseErr *jsn.ParseError
	assert.Equal(t, errors.As(err, &parseErr), true)
	assert.Equal(t, parseErr.Got, jsn.KindInteger)
	assert.Equal(t, parseErr.Expected[0], jsn.KindColon)
	assert.Equal(t, parseErr.Offset, 6)
}

func TestParseErrorCarriesInput(t *testing.T) {
	input := `{ "a": }`
	_, err := jsn.Parse(input)

	var parseErr *jsn.ParseError
	assert.Equal(t, errors.As(err, &parseErr), true)
	assert.Equal(t, parseErr.Input, input)
	assert.Equal(t, strings.Contains(parseErr.Error(), "while parsing "+input), true)
}

func TestParseTruncatedInput(t *testing.T) {
	_, err := jsn.Parse(`{ "a": 1`)

	var lexErr *jsn.LexError
	assert.Equal(t, errors.As(err, &lexErr), true)
	assert.Equal(t, lexErr.Offset, 8)
}

func TestParseUnrecognizedByte(t *testing.T) {
	_, err := jsn.Parse("[1; 2]")

	var lexErr *jsn.LexError
	assert.Equal(t, errors.As(err, &lexErr), true)
	assert.Equal(t, lexErr.Offset, 2)
}

// Known boundary: a bare "." lexes as a Float but has no numeric value, so
// the parser surfaces the conversion failure instead of inventing a number.
func TestParseBareDot(t *testing.T) {
	_, err := jsn.Parse("[.]")
	if err == nil {
		t.Fatal("expected an error for a bare dot")
	}
}

func TestParseDuplicateKeyReplaces(t *testing.T) {
	value, err := jsn.Parse(`{ "a": 1, "a": 2 }`)
	assert.Nil(t, err)

	object := value.(jsn.Object)
	assert.Equal(t, len(object), 1)

	v, _ := object.Get("a")
	assert.Equal(t, v.(int), 2)
}
