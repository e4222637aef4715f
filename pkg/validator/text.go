package validator

import (
	"fmt"
	"regexp"
	"unicode/utf8"
)

// Tab, LF and CR are allowed in free text; other control characters are not.
var textControlRegex = regexp.MustCompile(`[\x00-\x08\x0B\x0C\x0E-\x1F\x7F]`)

// Default bounds used by Text when none are given.
const (
	DefaultTextMaxLength = 1000
	DefaultTextMinLength = 0
)

// TextResult is the outcome of CheckText. Error is empty when Valid is true.
type TextResult struct {
	Valid bool
	Error string
}

// CheckText validates free text against a length range and rejects control
// characters other than tab, line feed and carriage return.
func CheckText(s string, maxLength, minLength int) TextResult {
	n := utf8.RuneCountInString(s)
	if n < minLength {
		return TextResult{Error: fmt.Sprintf("minimum of %d characters", minLength)}
	}
	if n > maxLength {
		return TextResult{Error: fmt.Sprintf("maximum of %d characters", maxLength)}
	}
	if textControlRegex.MatchString(s) {
		return TextResult{Error: "invalid characters detected"}
	}
	return TextResult{Valid: true}
}
