package validator

import (
	"net/url"
	"slices"
	"strconv"
	"strings"
)

// blockedSchemes can execute code or embed documents when followed.
var blockedSchemes = []string{"javascript", "data", "vbscript"}

// hostSchemes are parsed as hierarchical URLs and must name a host.
var hostSchemes = []string{"http", "https", "ws", "wss", "ftp"}

// IsURL reports whether s is an absolute URL. With requireHTTPS only the
// https scheme is accepted. javascript:, data: and vbscript: URLs are always
// rejected.
//
// Surrounding whitespace is ignored and host schemes may omit or repeat the
// slashes after the colon ("https:example.com"), as browsers allow. Ports
// above 65535 are rejected.
func IsURL(s string, requireHTTPS bool) bool {
	s = strings.TrimFunc(s, func(r rune) bool { return r <= ' ' })
	if s == "" {
		return false
	}

	if scheme, rest, ok := strings.Cut(s, ":"); ok && slices.Contains(hostSchemes, strings.ToLower(scheme)) {
		s = scheme + "://" + strings.TrimLeft(rest, `/\`)
	}

	u, err := url.Parse(s)
	if err != nil || u.Scheme == "" {
		return false
	}

	// url.Parse lowercases the scheme.
	if slices.Contains(hostSchemes, u.Scheme) && u.Hostname() == "" {
		return false
	}
	if port := u.Port(); port != "" {
		if n, err := strconv.Atoi(port); err != nil || n > 65535 {
			return false
		}
	}
	if requireHTTPS && u.Scheme != "https" {
		return false
	}
	return !slices.Contains(blockedSchemes, u.Scheme)
}
