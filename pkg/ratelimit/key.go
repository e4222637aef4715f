package ratelimit

import (
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strings"

	"github.com/dmitrymomot/formguard/pkg/clientip"
)

// maxKeyLength is the maximum allowed length for a rate limit key
// to prevent excessively long storage keys in backends like Redis.
const maxKeyLength = 64

// KeyFunc extracts a unique identifier from an HTTP request for rate limiting.
type KeyFunc func(*http.Request) string

// IPKey keys requests by client address.
func IPKey(r *http.Request) string {
	if ip := clientip.GetIPFromContext(r.Context()); ip != "" {
		return ip
	}
	return clientip.GetIP(r)
}

// FormValueKey keys requests by a submitted form field, lowercased and
// trimmed. Requests without the field produce an empty key.
func FormValueKey(field string) KeyFunc {
	return func(r *http.Request) string {
		return strings.ToLower(strings.TrimSpace(r.PostFormValue(field)))
	}
}

// HeaderKey keys requests by a header value.
func HeaderKey(name string) KeyFunc {
	return func(r *http.Request) string {
		return r.Header.Get(name)
	}
}

// Fallback returns the first non-empty key produced by keyFuncs.
func Fallback(keyFuncs ...KeyFunc) KeyFunc {
	return func(r *http.Request) string {
		for _, fn := range keyFuncs {
			if key := fn(r); key != "" {
				return key
			}
		}
		return ""
	}
}

// Static keys every request with the same value.
func Static(key string) KeyFunc {
	return func(*http.Request) string {
		return key
	}
}

// ShortenKey returns key unchanged when it fits in 64 bytes and otherwise
// the first 128 bits of its SHA-256 as 32 hex chars, so client controlled
// keys cannot grow store keys without bound.
func ShortenKey(key string) string {
	if len(key) <= maxKeyLength {
		return key
	}
	hash := sha256.Sum256([]byte(key))
	return hex.EncodeToString(hash[:16])
}

// Composite combines multiple key extraction functions into a single key,
// shortened with ShortenKey.
func Composite(keyFuncs ...KeyFunc) KeyFunc {
	return func(r *http.Request) string {
		parts := make([]string, 0, len(keyFuncs))
		for _, fn := range keyFuncs {
			if key := fn(r); key != "" {
				parts = append(parts, key)
			}
		}

		if len(parts) == 0 {
			return ""
		}

		if len(parts) == 1 {
			return ShortenKey(parts[0])
		}
		return ShortenKey(strings.Join(parts, ":"))
	}
}
