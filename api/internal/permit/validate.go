package permit

import (
	"errors"
	"strings"
	"unicode/utf8"
)

const maxReasonRunes = 50

var (
	ErrEmptyReason   = errors.New("reason is empty")
	ErrReasonTooLong = errors.New("reason is too long")

	// ErrMissingAPIKey is a deployment problem, checked before any model call.
	ErrMissingAPIKey = errors.New("GEMINI_API_KEY is empty")
)

// ValidateReason trims the applicant's text and bounds it to 1..50 characters.
// Lengths are counted in runes since input is typically Japanese.
func ValidateReason(raw string) (string, error) {
	reason := strings.TrimSpace(raw)
	if reason == "" {
		return "", ErrEmptyReason
	}
	if utf8.RuneCountInString(reason) > maxReasonRunes {
		return "", ErrReasonTooLong
	}
	return reason, nil
}
