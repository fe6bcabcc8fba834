package models

import (
	"regexp"
	"strings"
	"time"
)

const (
	// PhoneDigits is the exact length a phone number must have.
	PhoneDigits = 10

	// DateLayout is the canonical DD.MM.YYYY birthday format.
	DateLayout = "02.01.2006"
)

var (
	phonePattern = regexp.MustCompile(`^\d{10}$`)
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

// ValidPhone reports whether raw is exactly ten digits.
func ValidPhone(raw string) bool {
	return phonePattern.MatchString(raw)
}

// ValidEmail reports whether raw looks like an email address.
func ValidEmail(raw string) bool {
	return emailPattern.MatchString(raw)
}

// ValidAddress reports whether raw is non-blank.
func ValidAddress(raw string) bool {
	return strings.TrimSpace(raw) != ""
}

// NewPhone validates raw as a phone number and returns it unchanged.
func NewPhone(raw string) (string, error) {
	if !ValidPhone(raw) {
		return "", NewInvalidFormatError("Phone number must be exactly 10 digits.")
	}
	return raw, nil
}

// NewEmail validates raw as an email address and returns it trimmed and
// lowercased.
func NewEmail(raw string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(raw))
	if !ValidEmail(email) {
		return "", NewInvalidFormatError("Invalid email format.")
	}
	return email, nil
}

// NewAddress validates raw as an address and returns it trimmed.
func NewAddress(raw string) (string, error) {
	address := strings.TrimSpace(raw)
	if address == "" {
		return "", NewInvalidFormatError("Address cannot be empty.")
	}
	return address, nil
}

// ParseBirthday parses a DD.MM.YYYY date. Out-of-range components such
// as 31.02 are rejected, not rolled over.
func ParseBirthday(raw string) (time.Time, error) {
	parsed, err := time.Parse(DateLayout, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, NewInvalidFormatError("Invalid date format. Use DD.MM.YYYY")
	}
	return parsed, nil
}

// FormatDate renders a date in the canonical DD.MM.YYYY form.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// NormalizeTag trims, lowercases and strips any leading '#' runes from
// a raw tag. A blank result means the tag should be ignored.
func NormalizeTag(raw string) string {
	return strings.TrimLeft(strings.ToLower(strings.TrimSpace(raw)), "#")
}
