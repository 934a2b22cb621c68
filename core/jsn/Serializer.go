package jsn

import (
	"strconv"
	"strings"
)

// Serialize converts a value into JSON text. Dispatch is by runtime shape,
// in this precedence: Valuer (the value converts itself), ordered sequence
// (Array or []any), key-ordered mapping (Object), Record (fixed named
// fields in declaration order), then scalar. Any other shape is an
// UnsupportedValueError.
//
// The formatting is a contract, not cosmetics: one space after each ":" and
// each "," and nowhere else, so output round-trips byte for byte. Strings
// are emitted without escaping, mirroring the parser's lack of unescaping.
func Serialize(value any) (string, error) {
	switch v := value.(type) {
	case Valuer:
		return Serialize(v.JSONValue())
	case Array:
		return serializeArray(v)
	case []any:
		return serializeArray(v)
	case Object:
		return serializeObject(v)
	case Record:
		return serializeObject(v.Fields())
	default:
		return serializeItem(value)
	}
}

// serializeItem renders a scalar inline, or falls back to Serialize for a
// nested container shape.
func serializeItem(value any) (string, error) {
	switch v := value.(type) {
	case nil:
		return "null", nil
	case bool:
		return strconv.FormatBool(v), nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case float64:
		return formatFloat(v), nil
	case string:
		return "\"" + v + "\"", nil
	case Valuer, Array, []any, Object, Record:
		return Serialize(v)
	default:
		return "", &UnsupportedValueError{Value: value}
	}
}

func serializeArray(items []any) (string, error) {
	rendered := make([]string, len(items))
	for i, item := range items {
		s, err := serializeItem(item)
		if err != nil {
			return "", err
		}
		rendered[i] = s
	}
	return "[" + strings.Join(rendered, ", ") + "]", nil
}

func serializeObject(members []Member) (string, error) {
	rendered := make([]string, len(members))
	for i, m := range members {
		s, err := serializeItem(m.Value)
		if err != nil {
			return "", err
		}
		rendered[i] = "\"" + m.Key + "\": " + s
	}
	return "{" + strings.Join(rendered, ", ") + "}", nil
}

// formatFloat keeps a decimal point in the output so a re-parse yields a
// float again rather than an integer.
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
