// Package phone normalizes phone numbers into an E.164-like form.
package phone

import "strings"

// Normalize strips every non-digit character and prefixes a country code.
// Ten digits are assumed to be a US number. Inputs that fit no known shape
// are returned unchanged so the caller can surface them as-is.
func Normalize(raw string) string {
	digits := digitsOnly(raw)

	switch {
	case len(digits) == 10:
		return "+1" + digits
	case len(digits) == 11 && strings.HasPrefix(digits, "1"):
		return "+" + digits
	case len(digits) > 11:
		return "+" + digits
	default:
		return raw
	}
}

// IsDemoNumber reports whether a number belongs to the reserved 555 demo
// range. Messages to these numbers are logged instead of dispatched.
func IsDemoNumber(raw string) bool {
	digits := digitsOnly(raw)
	return strings.HasPrefix(digits, "555") || strings.HasPrefix(digits, "1555")
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
