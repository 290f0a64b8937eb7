package validation

import (
	"errors"
	"fmt"
	"unicode"
	"unicode/utf8"
)

var (
	ErrEmptyMessage   = errors.New("message is empty")
	ErrMessageTooLong = errors.New("message is too long")
)

// maxRawBytes rejects payloads far beyond anything a chat client sends.
const maxRawBytes = 16 * 1024

// ValidateMessage checks a raw message before sanitizing. Over-long but sane
// messages are accepted and cut by the sanitizer.
func ValidateMessage(msg string) error {
	if len(msg) > maxRawBytes {
		return fmt.Errorf("%w: %d bytes", ErrMessageTooLong, len(msg))
	}
	for _, r := range msg {
		if r == utf8.RuneError || unicode.IsSpace(r) || unicode.IsControl(r) {
			continue
		}
		return nil
	}
	return ErrEmptyMessage
}
