package doc

import (
	"strings"
	"unicode"
)

// FormatTitle turns a machine key like "daily_tasks" or "camelCaseKey" into a
// display title ("Daily Tasks", "Camel Case Key"). One-way transform; the
// result is for display only and is never parsed back.
func FormatTitle(key string) string {
	var spaced strings.Builder
	for i, r := range key {
		switch {
		case r == '_':
			spaced.WriteRune(' ')
		case unicode.IsUpper(r) && i > 0:
			spaced.WriteRune(' ')
			spaced.WriteRune(r)
		default:
			spaced.WriteRune(r)
		}
	}

	words := strings.Fields(spaced.String())
	for i, w := range words {
		runes := []rune(w)
		head := strings.ToUpper(string(runes[0]))
		tail := strings.ToLower(string(runes[1:]))
		words[i] = head + tail
	}
	return strings.Join(words, " ")
}
