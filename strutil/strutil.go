// Package strutil provides string helpers and identifier predicates for the
// toolkit.
package strutil

import (
	"strconv"
	"strings"
	"unicode"
)

// Alnum replaces every non-alphanumeric character in s with alt. When single
// is true, consecutive replacements collapse into one. When trim is true, a
// leading and trailing alt are removed.
func Alnum(s, alt string, trim, single bool) string {
	var sb strings.Builder
	prev := ""
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
			prev = string(r)
			continue
		}
		if !single || prev != alt {
			sb.WriteString(alt)
		}
		prev = alt
	}

	result := sb.String()
	if trim {
		result = strings.TrimPrefix(result, alt)
		result = strings.TrimSuffix(result, alt)
	}
	return result
}

// MutualPrefix reports whether either string starts with the other.
func MutualPrefix(a, b string) bool {
	if len(a) < len(b) {
		return strings.HasPrefix(b, a)
	}
	return strings.HasPrefix(a, b)
}

// ParseIntOrFloat parses s as an int64, falling back to float64 when the
// value is not integral.
func ParseIntOrFloat(s string) (any, error) {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i, nil
	}
	return strconv.ParseFloat(s, 64)
}
