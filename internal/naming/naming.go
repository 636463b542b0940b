// Package naming converts identifiers between application-side camelCase and
// SQL snake_case. The conversion is purely textual: uppercase letters are the
// only word-boundary heuristic.
package naming

import (
	"strings"
	"time"
)

// CamelToSnake replaces every uppercase ASCII letter with an underscore
// followed by its lowercase form. Strings with no uppercase letters pass
// through unchanged. A leading capital gains a leading underscore; there is
// no word-boundary logic beyond the per-letter rule.
func CamelToSnake(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 4)
	for _, r := range s {
		if r >= 'A' && r <= 'Z' {
			b.WriteByte('_')
			b.WriteRune(r - 'A' + 'a')
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// SnakeToCamel replaces every underscore immediately followed by a lowercase
// ASCII letter with the uppercase form of that letter. It inverts CamelToSnake
// on strings of lowercase letters, digits, and single underscores; leading,
// trailing, or doubled underscores and uppercase-after-underscore input do not
// round-trip.
func SnakeToCamel(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '_' && i+1 < len(s) && s[i+1] >= 'a' && s[i+1] <= 'z' {
			b.WriteByte(s[i+1] - 'a' + 'A')
			i++
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// CamelToSnakeKeys returns a new map with every key converted via
// CamelToSnake. Values that are themselves map[string]any are converted
// recursively. time.Time values are opaque leaves and are copied as-is.
// Slice values are copied by reference with no conversion inside their
// elements; that is a deliberate scope limit, not an oversight.
func CamelToSnakeKeys(m map[string]any) map[string]any {
	return convertKeys(m, CamelToSnake)
}

// SnakeToCamelKeys is the snake_case to camelCase counterpart of
// CamelToSnakeKeys, with the same recursion rules.
func SnakeToCamelKeys(m map[string]any) map[string]any {
	return convertKeys(m, SnakeToCamel)
}

func convertKeys(m map[string]any, convert func(string) string) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[convert(k)] = convertValue(v, convert)
	}
	return out
}

// convertValue dispatches on the value's declared shape: opaque time leaf,
// nested mapping, or anything else (scalars and sequences) copied untouched.
func convertValue(v any, convert func(string) string) any {
	switch val := v.(type) {
	case time.Time, *time.Time:
		return val
	case map[string]any:
		return convertKeys(val, convert)
	default:
		return v
	}
}
