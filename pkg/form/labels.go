package form

import (
	"regexp"
	"strings"
	"unicode"
)

var wordSeparators = regexp.MustCompile(`[_\-\s]+`)

// Labelize derives a human-friendly label from a field name, splitting on
// separators and camelCase boundaries: "authorEmail" becomes
// "Author Email".
func Labelize(name string) string {
	if name == "" {
		return ""
	}
	var segments []string
	for _, word := range wordSeparators.Split(name, -1) {
		for _, part := range splitCamel(word) {
			if part == "" {
				continue
			}
			lower := strings.ToLower(part)
			segments = append(segments, strings.ToUpper(lower[:1])+lower[1:])
		}
	}
	return strings.Join(segments, " ")
}

func splitCamel(word string) []string {
	if word == "" {
		return nil
	}
	var parts []string
	runes := []rune(word)
	start := 0
	for i := 1; i < len(runes); i++ {
		prev, cur := runes[i-1], runes[i]
		boundary := (unicode.IsLower(prev) && unicode.IsUpper(cur)) ||
			(unicode.IsLetter(prev) && unicode.IsDigit(cur)) ||
			(unicode.IsDigit(prev) && unicode.IsLetter(cur))
		if boundary {
			parts = append(parts, string(runes[start:i]))
			start = i
		}
	}
	parts = append(parts, string(runes[start:]))
	return parts
}
