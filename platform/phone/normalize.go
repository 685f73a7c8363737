// Package phone provides phone number utilities.
// This is part of the platform layer and contains no business logic.
package phone

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

const defaultCountryCode = "+1"

const defaultRegion = "US"

// NormalizeE164 formats a phone number to E.164. If parsing fails, it returns the trimmed input.
func NormalizeE164(input string) string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return trimmed
	}

	number, err := phonenumbers.Parse(trimmed, defaultRegion)
	if err != nil {
		return trimmed
	}

	if !phonenumbers.IsValidNumber(number) {
		return trimmed
	}

	return phonenumbers.Format(number, phonenumbers.E164)
}

// ForDialing produces a dialable number for outbound SMS and voice traffic.
// Formatting characters are stripped and a default country code is prepended
// when the number carries no + prefix. Numbers that parse for the default
// region are upgraded to their canonical E.164 form.
func ForDialing(input string) string {
	stripped := stripFormatting(input)
	if stripped == "" {
		return stripped
	}

	if !strings.HasPrefix(stripped, "+") {
		stripped = defaultCountryCode + stripped
	}

	if normalized := NormalizeE164(stripped); normalized != "" {
		return normalized
	}
	return stripped
}

func stripFormatting(input string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '(', ')', '.', '\t':
			return -1
		}
		return r
	}, strings.TrimSpace(input))
}
