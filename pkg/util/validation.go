package util

import (
	"fmt"
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// MaxEmailLength per RFC 5321.
const MaxEmailLength = 254

// NormalizeEmail lowercases and trims an address and validates its shape.
// Route params carry emails, so this runs at every handler boundary.
func NormalizeEmail(value string) (string, error) {
	value = strings.TrimSpace(strings.ToLower(value))
	if value == "" {
		return "", fmt.Errorf("email cannot be empty")
	}
	if len(value) > MaxEmailLength {
		return "", fmt.Errorf("email must be no more than %d characters", MaxEmailLength)
	}
	if !emailRegex.MatchString(value) {
		return "", fmt.Errorf("invalid email format")
	}
	return value, nil
}

// IsValidEmail checks an address without returning an error.
func IsValidEmail(value string) bool {
	_, err := NormalizeEmail(value)
	return err == nil
}
