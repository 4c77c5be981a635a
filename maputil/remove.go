// Package maputil provides helpers over dynamically typed maps.
package maputil

// RemoveNil returns a copy of m with nil-valued keys dropped. Only the top
// level is filtered; nested maps pass through untouched.
func RemoveNil(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		if v == nil {
			continue
		}
		out[k] = v
	}
	return out
}
