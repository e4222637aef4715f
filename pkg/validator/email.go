package validator

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// maxEmailLength is the RFC 5321 path limit.
const maxEmailLength = 254

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// emailForbiddenChars blocks header and markup injection through the address.
const emailForbiddenChars = `<>"'%;()&`

// IsEmail reports whether s looks like a deliverable address: at most 254
// characters, none of < > " ' % ; ( ) &, and the shape local@domain.tld with
// no whitespace or extra @.
func IsEmail(s string) bool {
	if s == "" || utf8.RuneCountInString(s) > maxEmailLength {
		return false
	}
	if strings.ContainsAny(s, emailForbiddenChars) {
		return false
	}
	return emailRegex.MatchString(s)
}
