package sanitizer

import (
	"strconv"
	"unicode/utf16"
)

// SimpleHash returns a short, non-cryptographic fingerprint of s.
//
// The hash multiplies by 31 over UTF-16 code units with 32-bit wrap-around
// and renders the absolute value in base 36. It is meant for cheap equality
// checks (for example deduplicating submissions) and must never be used where
// collision or preimage resistance matters.
func SimpleHash(s string) string {
	var h int32
	for _, unit := range utf16.Encode([]rune(s)) {
		h = h*31 + int32(unit)
	}
	n := int64(h)
	if n < 0 {
		n = -n
	}
	return strconv.FormatInt(n, 36)
}
