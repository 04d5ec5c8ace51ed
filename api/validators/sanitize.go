package validators

import "strings"

// SanitizeString trims surrounding whitespace and caps the value at maxLen
// runes. A maxLen of zero disables the cap. Used for free-text fields like
// display names before they hit the service layer.
func SanitizeString(input string, maxLen int) string {
	trimmed := strings.TrimSpace(input)
	if maxLen <= 0 {
		return trimmed
	}
	runes := []rune(trimmed)
	if len(runes) > maxLen {
		return string(runes[:maxLen])
	}
	return trimmed
}
