package helpers

import "strings"

// NullableString turns an optional string into a pointer suitable for a
// nullable column. Empty or whitespace-only input becomes NULL.
func NullableString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// SearchPattern wraps a trimmed keyword for an ILIKE substring match.
// Returns "" when the keyword is empty after trimming.
func SearchPattern(keyword string) string {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return ""
	}
	return "%" + keyword + "%"
}

// RoundRating rounds an average rating to one decimal place.
func RoundRating(avg float64) float64 {
	if avg >= 0 {
		return float64(int64(avg*10+0.5)) / 10
	}
	return float64(int64(avg*10-0.5)) / 10
}
