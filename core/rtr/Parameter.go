package rtr

// Parameter is a key/value pair captured from a dynamic route segment.
// A pattern of /user/:id matched against /user/123 yields {Key: "id", Value: "123"}.
// Parameters are kept as an ordered slice in pattern order.
type Parameter struct {
	Key   string
	Value string
}
