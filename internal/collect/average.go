package collect

import (
	"database/sql"
	"strconv"
	"strings"
)

// ParseAverage converts the text of an average column to float64.
//
// It behaves like a best-effort text to float conversion: absent values
// and text without a leading number yield 0, and trailing garbage after
// a valid number is ignored ("9.5 pts" -> 9.5).
func ParseAverage(value sql.NullString) float64 {
	if !value.Valid {
		return 0
	}

	prefix := numericPrefix(strings.TrimLeft(value.String, " \t\n\v\f\r"))
	if prefix == "" {
		return 0
	}

	// Out of range values come back as ±Inf, like strtod.
	f, _ := strconv.ParseFloat(prefix, 64)
	return f
}

// numericPrefix returns the longest prefix of s that looks like a decimal
// floating point number: [+-]digits[.digits][(e|E)[+-]digits].
func numericPrefix(s string) string {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}

	intDigits := countDigits(s[i:])
	i += intDigits

	fracDigits := 0
	if i < len(s) && s[i] == '.' {
		fracDigits = countDigits(s[i+1:])
		if intDigits > 0 || fracDigits > 0 {
			i += 1 + fracDigits
		}
	}

	if intDigits == 0 && fracDigits == 0 {
		return ""
	}

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if expDigits := countDigits(s[j:]); expDigits > 0 {
			i = j + expDigits
		}
	}

	return s[:i]
}

func countDigits(s string) int {
	n := 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	return n
}
