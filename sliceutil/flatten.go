// Package sliceutil provides helpers over dynamically typed slices.
package sliceutil

// Flatten flattens nested lists to arbitrary depth. Elements that are not
// themselves []any pass through unchanged, so mixed lists of values and
// sublists flatten correctly.
func Flatten(list []any) []any {
	flat := make([]any, 0, len(list))
	for _, item := range list {
		if sub, ok := item.([]any); ok {
			flat = append(flat, Flatten(sub)...)
			continue
		}
		flat = append(flat, item)
	}
	return flat
}
