package validator

import "regexp"

var (
	nonDigitRegex = regexp.MustCompile(`\D`)

	// Two-digit area code without a leading zero, optional mobile 9, eight digits.
	brPhoneRegex = regexp.MustCompile(`^[1-9]{2}9?[0-9]{8}$`)
)

// PhoneDigits returns s with every non-digit removed.
func PhoneDigits(s string) string {
	return nonDigitRegex.ReplaceAllString(s, "")
}

// IsPhone reports whether s is a Brazilian landline or mobile number once
// punctuation is removed, e.g. "(11) 98765-4321".
func IsPhone(s string) bool {
	return brPhoneRegex.MatchString(PhoneDigits(s))
}
