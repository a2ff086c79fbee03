package validation

import "github.com/tdapi/go-sdk/pkg/core"

const (
	dateLen     = len("YYYY-MM-DD")
	dateTimeLen = len("YYYY-MM-DDTHH:MM:SSZ")
)

// IsValidISO8601DateTime reports whether s is shaped like YYYY-MM-DD or
// YYYY-MM-DDTHH:MM:SSZ. The 'T' and 'Z' designators may be lowercase.
func IsValidISO8601DateTime(s string) bool {
	if len(s) != dateLen && len(s) != dateTimeLen {
		return false
	}

	pos := 0
	if !allDigits(s, &pos, 4) || !expect(s, &pos, '-') ||
		!allDigits(s, &pos, 2) || !expect(s, &pos, '-') ||
		!allDigits(s, &pos, 2) {
		return false
	}
	if pos == len(s) {
		return true
	}

	return expectFold(s, &pos, 'T') &&
		allDigits(s, &pos, 2) && expect(s, &pos, ':') &&
		allDigits(s, &pos, 2) && expect(s, &pos, ':') &&
		allDigits(s, &pos, 2) &&
		expectFold(s, &pos, 'Z')
}

// ValidateDateTime wraps IsValidISO8601DateTime in a *core.ValidationError
// naming the offending field.
func ValidateDateTime(field, value string) error {
	if IsValidISO8601DateTime(value) {
		return nil
	}
	return &core.ValidationError{
		Field: field,
		Value: value,
		Err:   core.ErrInvalidDateTime,
	}
}

// allDigits checks the n bytes at *pos and always advances *pos by n, so a
// cursor must not be reused after a failed check. Callers guarantee n bytes
// remain.
func allDigits(s string, pos *int, n int) bool {
	start := *pos
	*pos += n
	for _, c := range []byte(s[start:*pos]) {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func expect(s string, pos *int, want byte) bool {
	c := s[*pos]
	*pos++
	return c == want
}

// expectFold matches an uppercase ASCII designator case-insensitively.
func expectFold(s string, pos *int, upper byte) bool {
	c := s[*pos]
	*pos++
	return c == upper || c == upper+('a'-'A')
}
