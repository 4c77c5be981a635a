package config

import "strings"

func ResolveString(def string, values ...*string) string {
	result := def
	for _, v := range values {
		if v != nil {
			result = *v
		}
	}
	return result
}

func ResolveInt(def int, values ...*int) int {
	result := def
	for _, v := range values {
		if v != nil {
			result = *v
		}
	}
	return result
}

func ResolveBool(def bool, values ...*bool) bool {
	result := def
	for _, v := range values {
		if v != nil {
			result = *v
		}
	}
	return result
}

// ResolveAndTrim resolves like ResolveString and trims the final value.
func ResolveAndTrim(def string, values ...*string) string {
	return strings.TrimSpace(ResolveString(def, values...))
}
