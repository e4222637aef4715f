package sanitizer

import "strings"

// htmlEscaper escapes the characters that can open or close markup. The
// replacer makes a single pass, so entities it emits are not escaped again.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#x27;",
	"/", "&#x2F;",
)

var (
	sanitizePlain = Compose(
		StripDangerousElements,
		StripEventHandlers,
		StripTags,
		EscapeHTML,
		StripControlChars,
		strings.TrimSpace,
	)

	sanitizeFormatted = Compose(
		StripDangerousElements,
		StripEventHandlers,
		EscapeHTML,
		StripControlChars,
		strings.TrimSpace,
	)
)

// Sanitize cleans untrusted text for display.
//
// It removes script, iframe, object and embed elements together with their
// content, removes quoted inline event handlers, optionally removes every
// other tag, escapes & < > " ' and /, strips control characters and trims the
// result. The order is significant: escaping before tag removal would leave
// the tag patterns nothing to match.
//
// With allowBasicFormatting set, tags other than the dangerous elements are
// kept but still escaped, so they render as text.
func Sanitize(input string, allowBasicFormatting bool) string {
	if allowBasicFormatting {
		return sanitizeFormatted(input)
	}
	return sanitizePlain(input)
}

// SanitizeValue sanitizes v when it is a string and returns an empty string
// for any other type.
func SanitizeValue(v any, allowBasicFormatting bool) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return Sanitize(s, allowBasicFormatting)
}

// StripDangerousElements removes <script>, <iframe>, <object> and <embed>
// elements including their content. Matching is case-insensitive and ends at
// the first closing tag of the same name. An element that is never closed is
// left untouched.
func StripDangerousElements(s string) string {
	s = scriptElementRegex.ReplaceAllString(s, "")
	s = iframeElementRegex.ReplaceAllString(s, "")
	s = objectElementRegex.ReplaceAllString(s, "")
	return embedElementRegex.ReplaceAllString(s, "")
}

// StripEventHandlers removes quoted on* attributes such as onclick="...".
func StripEventHandlers(s string) string {
	return eventHandlerRegex.ReplaceAllString(s, "")
}

// StripTags removes every <...> sequence.
func StripTags(s string) string {
	return htmlTagRegex.ReplaceAllString(s, "")
}

// EscapeHTML replaces & < > " ' and / with HTML entities.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// StripControlChars removes characters 0x00-0x1F and 0x7F, including tabs
// and line breaks.
func StripControlChars(s string) string {
	return controlCharRegex.ReplaceAllString(s, "")
}
