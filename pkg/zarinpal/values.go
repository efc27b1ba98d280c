package zarinpal

import (
	"fmt"
	"math"
)

// parseLeadingInt reads an optionally signed run of leading decimal digits,
// ignoring surrounding whitespace and trailing garbage ("103abc" is 103).
// It returns 0 when s has no leading digits and saturates at math.MaxInt
// (or -math.MaxInt) instead of overflowing.
func parseLeadingInt(s string) int {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n' || s[i] == '\r') {
		i++
	}
	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}
	n := 0
	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		d := int(s[i] - '0')
		if n > (math.MaxInt-d)/10 {
			n = math.MaxInt
			break
		}
		n = n*10 + d
	}
	if neg {
		return -n
	}
	return n
}

func stringField(m map[string]any, key string) string {
	switch v := m[key].(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

func intField(m map[string]any, key string) int {
	switch v := m[key].(type) {
	case float64:
		return clampInt(v)
	case string:
		return parseLeadingInt(v)
	default:
		return 0
	}
}

// clampInt truncates v toward zero, saturating at the int range. NaN is 0.
func clampInt(v float64) int {
	switch {
	case math.IsNaN(v):
		return 0
	case v >= math.MaxInt:
		return math.MaxInt
	case v <= math.MinInt:
		return math.MinInt
	default:
		return int(v)
	}
}
