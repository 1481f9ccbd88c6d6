package prompt

import "strings"

// junkPhrases are UI instruction fragments that show up when users paste
// text copied out of editor screenshots. They are stripped case-insensitively
// before composition.
var junkPhrases = []string{
	"click the flag", "toggle button", "make private", "generated by",
	"image generator", "secure to create", "confidential", "review flagged content",
	"unsuitable images", "peace of mind", "community is safe", "pixlr", "app",
	"interface", "screenshot", "button", "menu",
}

// Sanitize removes junk phrases and collapses whitespace. It can return an
// empty string when the input was nothing but junk; callers fall back to
// the raw input in that case.
func Sanitize(input string) string {
	cleaned := input
	for _, phrase := range junkPhrases {
		cleaned = removeFold(cleaned, phrase)
	}
	return strings.Join(strings.Fields(cleaned), " ")
}

// removeFold deletes every case-insensitive occurrence of phrase from s.
func removeFold(s, phrase string) string {
	lowerPhrase := strings.ToLower(phrase)
	for {
		idx := strings.Index(strings.ToLower(s), lowerPhrase)
		if idx < 0 {
			return s
		}
		s = s[:idx] + s[idx+len(phrase):]
	}
}
