package sanitizer

import "strings"

// SanitizeSQL strips quotes, semicolons, backslashes, comment markers and the
// xp_/sp_ procedure prefixes, then trims the result.
//
// This is a denylist and offers no real protection against SQL injection.
// Queries must use bound parameters regardless of what this returns.
func SanitizeSQL(s string) string {
	s = sqlMetaRegex.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "--", "")
	s = strings.ReplaceAll(s, "/*", "")
	s = strings.ReplaceAll(s, "*/", "")
	s = sqlExtendedProcRegex.ReplaceAllString(s, "")
	s = sqlStoredProcRegex.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}
