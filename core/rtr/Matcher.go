package rtr

import "strings"

// segment is one "/"-delimited component of a compiled pattern.
// A segment is either a literal that must equal the request component at the
// same index, or a named parameter that binds whatever is there.
type segment struct {
	literal string
	param   string
}

// Matcher is a compiled route pattern. Compile once at registration time,
// then call Match for every request. A Matcher is immutable and safe for
// concurrent use.
type Matcher struct {
	pattern  string
	segments []segment
}

// Compile splits the pattern on "/" and precomputes, per segment, either a
// literal equality check or a parameter binding. Segments starting with ":"
// are parameters; everything else is a literal.
//
// A pattern of "/" or "" compiles to zero or one empty leading segment, so it
// matches every request path (all paths start with an empty leading
// component once split on "/").
func Compile(pattern string) Matcher {
	parts := SplitPath(pattern)
	segments := make([]segment, 0, len(parts))

	for _, part := range parts {
		if strings.HasPrefix(part, ":") {
			segments = append(segments, segment{param: part[1:]})
		} else {
			segments = append(segments, segment{literal: part})
		}
	}

	return Matcher{pattern: pattern, segments: segments}
}

// Pattern returns the pattern string the Matcher was compiled from.
func (m Matcher) Pattern() string {
	return m.pattern
}

// Match evaluates the compiled pattern against the split request path.
// The request must have at least as many components as the pattern; extra
// trailing components are tolerated and ignored. Every literal segment must
// equal the component at its index. On success the captured parameters are
// returned in pattern order; on failure ok is false. Match never errors.
func (m Matcher) Match(components []string) (params []Parameter, ok bool) {
	if len(components) < len(m.segments) {
		return nil, false
	}

	for i, seg := range m.segments {
		if seg.param == "" && seg.literal != components[i] {
			return nil, false
		}
	}

	for i, seg := range m.segments {
		if seg.param != "" {
			params = append(params, Parameter{Key: seg.param, Value: components[i]})
		}
	}

	return params, true
}

// SplitPath splits a path or pattern on "/" with trailing empty components
// removed, so "/foo" and "/foo/" both yield ["", "foo"]. An empty string
// yields a single empty component. Compilation and request matching must
// split identically or literal checks would misalign.
func SplitPath(s string) []string {
	parts := strings.Split(s, "/")

	end := len(parts)
	for end > 1 && parts[end-1] == "" {
		end--
	}

	return parts[:end]
}
