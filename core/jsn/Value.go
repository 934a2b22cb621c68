package jsn

// The value tree produced by Parse and consumed by Serialize is built from
// a small closed set of shapes: nil, bool, int, float64, string, Array and
// Object. Anything else must come in through the Valuer or Record
// capabilities below.

// Member is a single key/value entry of an Object.
type Member struct {
	Key   string
	Value any
}

// Object is an ordered collection of members. Key order is insertion order
// and is preserved through parse and re-serialize.
type Object []Member

// Get returns the value stored under key.
func (o Object) Get(key string) (any, bool) {
	for _, m := range o {
		if m.Key == key {
			return m.Value, true
		}
	}
	return nil, false
}

// Set replaces the value under key if present, otherwise appends a new
// member, keeping first-insertion order.
func (o *Object) Set(key string, value any) {
	for i, m := range *o {
		if m.Key == key {
			(*o)[i].Value = value
			return
		}
	}
	*o = append(*o, Member{Key: key, Value: value})
}

// Keys returns the member keys in order.
func (o Object) Keys() []string {
	keys := make([]string, len(o))
	for i, m := range o {
		keys[i] = m.Key
	}
	return keys
}

// Array is an ordered sequence of values.
type Array []any

// Valuer is the serializer's extension point: a type that knows its own
// JSON value form converts itself into the closed value shapes above.
type Valuer interface {
	JSONValue() any
}

// Record is a structured value with a fixed, named set of fields. Fields
// returns them in declaration order; the serializer renders a Record as an
// object keyed by field name. This replaces reflective field access — the
// producer enumerates its own fields.
type Record interface {
	Fields() []Member
}
