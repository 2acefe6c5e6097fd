package chat

import "unicode"

// containsArabic reports whether s carries at least one Arabic codepoint.
// Drives text direction on the client, nothing else.
func containsArabic(s string) bool {
	for _, r := range s {
		if unicode.Is(unicode.Arabic, r) {
			return true
		}
	}
	return false
}
