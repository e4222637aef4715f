package validator

import (
	"slices"
	"strings"
)

// IsAllowedRedirect reports whether target is one of the allowed local paths.
// Only exact matches pass; absolute and protocol-relative URLs never do, even
// if listed.
func IsAllowedRedirect(target string, allowed []string) bool {
	if target == "" || !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") {
		return false
	}
	if strings.ContainsAny(target, "\\\r\n") {
		return false
	}
	return slices.Contains(allowed, target)
}
