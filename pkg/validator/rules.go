package validator

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Required fails when value is empty after trimming whitespace.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:             field,
			Message:           "field is required",
			TranslationKey:    "validation.required",
			TranslationValues: map[string]any{"field": field},
		},
	}
}

func MinLen(field, value string, min int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) >= min
		},
		Error: ValidationError{
			Field:             field,
			Message:           fmt.Sprintf("must be at least %d characters long", min),
			TranslationKey:    "validation.min_length",
			TranslationValues: map[string]any{"field": field, "min": min},
		},
	}
}

func MaxLen(field, value string, max int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) <= max
		},
		Error: ValidationError{
			Field:             field,
			Message:           fmt.Sprintf("must be at most %d characters long", max),
			TranslationKey:    "validation.max_length",
			TranslationValues: map[string]any{"field": field, "max": max},
		},
	}
}

func Email(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsEmail(value)
		},
		Error: ValidationError{
			Field:             field,
			Message:           "must be a valid email address",
			TranslationKey:    "validation.email",
			TranslationValues: map[string]any{"field": field},
		},
	}
}

func Phone(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsPhone(value)
		},
		Error: ValidationError{
			Field:             field,
			Message:           "must be a valid phone number",
			TranslationKey:    "validation.phone",
			TranslationValues: map[string]any{"field": field},
		},
	}
}

// Matches fails when value does not match re. An empty message falls back to
// "invalid format".
func Matches(field, value string, re *regexp.Regexp, message string) Rule {
	if message == "" {
		message = "invalid format"
	}
	return Rule{
		Check: func() bool {
			return re.MatchString(value)
		},
		Error: ValidationError{
			Field:             field,
			Message:           message,
			TranslationKey:    "validation.pattern",
			TranslationValues: map[string]any{"field": field, "pattern": re.String()},
		},
	}
}
