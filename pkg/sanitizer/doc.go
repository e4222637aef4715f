// Package sanitizer cleans untrusted form input before it is stored, echoed
// back or handed to another system.
//
// The central helper is Sanitize, a fixed pipeline that removes executable
// markup, neutralises the remaining HTML special characters and strips control
// characters:
//
//	safe := sanitizer.Sanitize(`<b onclick="x()">John</b> <script>alert(1)</script>`, false)
//	// safe == "John"
//
// Every stage of the pipeline is exported on its own (StripDangerousElements,
// StripEventHandlers, StripTags, EscapeHTML, StripControlChars) and the Apply
// and Compose helpers can be used to assemble custom chains.
//
// # Limitations
//
// The helpers are regular-expression based, not an HTML parser. They reproduce
// a fixed set of substitutions and make no claim of being a complete XSS
// defense. SanitizeSQL is a plain denylist: it removes quotes, comment markers
// and a few procedure prefixes but is no replacement for parameterized queries.
//
// Sanitize is idempotent only for text that contains none of the escaped
// characters. Escaped output is escaped again on a second pass ("&amp;"
// becomes "&amp;amp;"), and nested constructs such as
// "<<script>script>alert(1)</script>/script>" reassemble a closing tag after
// the inner element is removed.
//
// # Error handling
//
// None of the helpers returns an error. Inputs that cannot be handled (for
// example a non-string value passed to SanitizeValue) produce an empty string.
//
// All functions are stateless and safe for concurrent use.
package sanitizer
