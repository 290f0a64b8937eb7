package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// MaxMessageRunes caps how much of a chat message is classified.
const MaxMessageRunes = 500

var (
	controlChars = regexp.MustCompile(`[\x00-\x08\x0B\x0C\x0E-\x1F\x7F]`)
	spaces       = regexp.MustCompile(`\s+`)
)

// Sanitizer cleans incoming chat messages before classification
type Sanitizer struct {
	maxRunes int
}

// NewSanitizer creates a sanitizer with the default length cap
func NewSanitizer() *Sanitizer {
	return &Sanitizer{maxRunes: MaxMessageRunes}
}

// SanitizeMessage removes control characters, collapses whitespace and cuts
// the message to the rune cap.
func (s *Sanitizer) SanitizeMessage(msg string) string {
	if !utf8.ValidString(msg) {
		msg = strings.ToValidUTF8(msg, "")
	}
	sanitized := controlChars.ReplaceAllString(msg, "")
	sanitized = spaces.ReplaceAllString(sanitized, " ")
	sanitized = strings.TrimSpace(sanitized)

	// Limit length
	if utf8.RuneCountInString(sanitized) > s.maxRunes {
		runes := []rune(sanitized)
		sanitized = strings.TrimSpace(string(runes[:s.maxRunes]))
	}
	return sanitized
}
