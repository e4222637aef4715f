package clientip

import (
	"net"
	"net/http"
	"strings"
)

// DefaultHeaders are checked in order before RemoteAddr.
var DefaultHeaders = []string{
	"CF-Connecting-IP",
	"X-Forwarded-For",
	"X-Real-IP",
}

// Resolver extracts a client IP from a fixed list of headers.
type Resolver struct {
	headers []string
}

// NewResolver returns a Resolver over headers. With no headers only
// RemoteAddr is used.
func NewResolver(headers ...string) *Resolver {
	return &Resolver{headers: append([]string(nil), headers...)}
}

var defaultResolver = NewResolver(DefaultHeaders...)

// GetIP returns the client IP using DefaultHeaders.
func GetIP(r *http.Request) string {
	return defaultResolver.IP(r)
}

// IP returns the normalized client address or "" when none is valid.
// Comma-separated headers (X-Forwarded-For) yield their first valid entry.
func (res *Resolver) IP(r *http.Request) string {
	for _, h := range res.headers {
		value := r.Header.Get(h)
		if value == "" {
			continue
		}
		for part := range strings.SplitSeq(value, ",") {
			if ip := parseIP(part); ip != "" {
				return ip
			}
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return parseIP(r.RemoteAddr)
	}
	return parseIP(host)
}

func parseIP(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	ip := net.ParseIP(s)
	if ip == nil {
		return ""
	}
	return ip.String()
}
