package services

import (
	"encoding/json"
	"strings"
	"unicode"
	"unicode/utf16"
)

// MaxMessageLength is the longest accepted chat message, in UTF-16 code
// units, the way browsers and JavaScript clients count characters.
const MaxMessageLength = 2000

const (
	msgMessageRequired = "Message is required and must be a non-empty string."
	msgMessageTooLong  = "Message is too long. Maximum 2000 characters."
)

// ValidateMessage checks the raw "message" value of a chat request and returns
// it unmodified. Length is measured on the untrimmed string.
func ValidateMessage(raw json.RawMessage) (string, error) {
	if len(raw) == 0 {
		return "", &ValidationError{Message: msgMessageRequired}
	}

	var message string
	if err := json.Unmarshal(raw, &message); err != nil {
		return "", &ValidationError{Message: msgMessageRequired}
	}

	if strings.TrimFunc(message, isBlank) == "" {
		return "", &ValidationError{Message: msgMessageRequired}
	}

	if utf16Len(message) > MaxMessageLength {
		return "", &ValidationError{Message: msgMessageTooLong}
	}

	return message, nil
}

// isBlank also treats the byte order mark as whitespace.
func isBlank(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}

func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}
