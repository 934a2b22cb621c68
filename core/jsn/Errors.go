package jsn

import (
	"fmt"
	"strings"
)

// LexError reports that no lexical rule matched at the given byte offset.
type LexError struct {
	Offset int
}

func (e *LexError) Error() string {
	return fmt.Sprintf("no token recognized at %d", e.Offset)
}

// ParseError reports an unexpected token: the set of kinds that would have
// been acceptable, the kind actually observed, and where. Input is the full
// source text; it is filled in by the top-level Parse for diagnostic
// context and left empty by the internal productions.
type ParseError struct {
	Expected []Kind
	Got      Kind
	Offset   int
	Input    string
}

func (e *ParseError) Error() string {
	names := make([]string, len(e.Expected))
	for i, kind := range e.Expected {
		names[i] = kind.String()
	}

	msg := fmt.Sprintf("expect %s but recognized %s at %d",
		strings.Join(names, ", "), e.Got, e.Offset)
	if e.Input != "" {
		msg += "\n while parsing " + e.Input
	}
	return msg
}

// UnsupportedValueError reports a value whose runtime shape the serializer
// cannot classify.
type UnsupportedValueError struct {
	Value any
}

func (e *UnsupportedValueError) Error() string {
	return fmt.Sprintf("unknown json value %v (%T)", e.Value, e.Value)
}
