// Package contact provides pure validation helpers for contractor contact
// details. This is part of the platform layer and contains no business logic.
package contact

import (
	"regexp"
	"strings"
)

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	phonePattern = regexp.MustCompile(`^\+?[0-9]{10,15}$`)
)

// ValidateEmail reports whether s looks like a deliverable address
// (local-part@domain.tld with a 2+ letter TLD). No network check is performed.
func ValidateEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// ValidatePhone reports whether s is a plausible phone number: after stripping
// whitespace, dashes, parentheses and dots it must be an optional leading +
// followed by 10 to 15 digits.
func ValidatePhone(s string) bool {
	return phonePattern.MatchString(stripPhoneFormatting(s))
}

// CleanZip strips non-digit characters from s and returns the result when it
// is a 5-digit or 9-digit (ZIP+4) code. The second return value is false for
// anything else.
func CleanZip(s string) (string, bool) {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	cleaned := b.String()
	if len(cleaned) != 5 && len(cleaned) != 9 {
		return "", false
	}
	return cleaned, true
}

func stripPhoneFormatting(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '(', ')', '.', '\t':
			return -1
		}
		return r
	}, s)
}
