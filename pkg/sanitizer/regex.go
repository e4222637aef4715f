package sanitizer

import "regexp"

// Pre-compiled patterns shared by the sanitization pipeline.
var (
	// Executable elements, matched from the opening tag to the first closing tag.
	scriptElementRegex = regexp.MustCompile(`(?is)<script\b.*?</script>`)
	iframeElementRegex = regexp.MustCompile(`(?is)<iframe\b.*?</iframe>`)
	objectElementRegex = regexp.MustCompile(`(?is)<object\b.*?</object>`)
	embedElementRegex  = regexp.MustCompile(`(?is)<embed\b.*?</embed>`)

	// Quoted inline event handlers such as onclick="..." or onload='...'.
	eventHandlerRegex = regexp.MustCompile(`(?i)on\w+\s*=\s*["'][^"']*["']`)

	// Any remaining tag.
	htmlTagRegex = regexp.MustCompile(`<[^>]+>`)

	// C0 control characters and DEL.
	controlCharRegex = regexp.MustCompile(`[\x00-\x1F\x7F]`)

	// SQL metacharacters and comment markers.
	sqlMetaRegex         = regexp.MustCompile(`['";\\]`)
	sqlExtendedProcRegex = regexp.MustCompile(`(?i)xp_`)
	sqlStoredProcRegex   = regexp.MustCompile(`(?i)sp_`)
)
