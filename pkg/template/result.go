package template

// Result is a compiled tagged template: static fragments interleaved with
// dynamic values. It is the explicit marker type for precompiled fragments;
// a *Result appearing as a dynamic value is spliced, not escaped.
type Result struct {
	// Strings are the literal HTML fragments, always one longer than Values.
	Strings []string

	// Values are the dynamic bindings, each anchored immediately after the
	// fragment at the same index.
	Values []any
}

// Html constructs a Result from a fragment list and a value list, exactly
// as if the fragments and values had been written as the literal and
// interpolated segments of a single tagged template literal.
//
// Html does not validate the length contract; the Renderer checks it when
// the Result is consumed.
func Html(strings []string, values []any) *Result {
	return &Result{Strings: strings, Values: values}
}
