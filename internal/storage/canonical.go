package storage

import (
	"math"
	"strconv"
	"strings"
)

// Canonicalize renders the kept cells of one column the way a typed dataframe
// loader would print them back as text:
//
//   - all integers and no missing cells: decimal integers ("01" -> "1")
//   - all numeric: shortest float repr with a trailing ".0" for integral values
//     ("1" -> "1.0", "2.50" -> "2.5"); a missing cell forces this path since an
//     integer column with holes is stored as floats
//   - all boolean literals: "True" / "False"
//   - anything else: the raw cell text
//
// An empty column is returned as is.
func Canonicalize(values []string, hadMissing bool) []string {
	if len(values) == 0 {
		return values
	}

	if !hadMissing {
		if out, ok := mapAll(values, canonicalInt); ok {
			return out
		}
	}
	if out, ok := mapAll(values, canonicalFloat); ok {
		return out
	}
	if out, ok := mapAll(values, canonicalBool); ok {
		return out
	}
	return values
}

func mapAll(values []string, fn func(string) (string, bool)) ([]string, bool) {
	out := make([]string, len(values))
	for i, v := range values {
		c, ok := fn(v)
		if !ok {
			return nil, false
		}
		out[i] = c
	}
	return out, true
}

func canonicalInt(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if !isDecimalInt(s) {
		return "", false
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return strconv.FormatInt(i, 10), true
	}
	if u, err := strconv.ParseUint(strings.TrimPrefix(s, "+"), 10, 64); err == nil {
		return strconv.FormatUint(u, 10), true
	}
	return "", false
}

func canonicalFloat(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if !isDecimalFloat(s) {
		return "", false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) {
		return "", false
	}
	return FormatFloatRepr(f), true
}

func canonicalBool(s string) (string, bool) {
	switch strings.TrimSpace(s) {
	case "True", "TRUE", "true":
		return "True", true
	case "False", "FALSE", "false":
		return "False", true
	}
	return "", false
}

// FormatFloatRepr formats f as the shortest round-tripping decimal. Positional
// notation is used for 1e-4 <= |f| < 1e16 (always with a fractional part),
// scientific notation with a two-digit minimum exponent otherwise.
func FormatFloatRepr(f float64) string {
	if f == 0 {
		if math.Signbit(f) {
			return "-0.0"
		}
		return "0.0"
	}

	sci := strconv.FormatFloat(f, 'e', -1, 64)
	exp, _ := strconv.Atoi(sci[strings.IndexByte(sci, 'e')+1:])
	if exp < -4 || exp >= 16 {
		return sci
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// isDecimalInt accepts an optional sign followed by ASCII digits.
func isDecimalInt(s string) bool {
	s = strings.TrimLeft(s, "+-")
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// isDecimalFloat accepts [sign] digits [. digits] [e [sign] digits] with at
// least one mantissa digit. Hex floats, underscores, inf and nan are rejected.
func isDecimalFloat(s string) bool {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
			digits++
		}
	}
	if digits == 0 {
		return false
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		expDigits := 0
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
			expDigits++
		}
		if expDigits == 0 {
			return false
		}
	}
	return i == len(s)
}
