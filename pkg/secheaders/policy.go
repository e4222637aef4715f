package secheaders

import "strings"

// Policy is a Content-Security-Policy. Empty source lists are omitted.
type Policy struct {
	DefaultSrc              []string
	ScriptSrc               []string
	StyleSrc                []string
	FontSrc                 []string
	ImgSrc                  []string
	ConnectSrc              []string
	FrameSrc                []string
	ObjectSrc               []string
	BaseURI                 []string
	FormAction              []string
	FrameAncestors          []string
	UpgradeInsecureRequests bool
}

// DefaultPolicy returns the policy of the landing page.
func DefaultPolicy() Policy {
	return Policy{
		DefaultSrc:              []string{"'self'"},
		ScriptSrc:               []string{"'self'", "'unsafe-inline'", "https://fonts.googleapis.com"},
		StyleSrc:                []string{"'self'", "'unsafe-inline'", "https://fonts.googleapis.com"},
		FontSrc:                 []string{"'self'", "https://fonts.gstatic.com"},
		ImgSrc:                  []string{"'self'", "data:", "https:"},
		ConnectSrc:              []string{"'self'"},
		FrameSrc:                []string{"'none'"},
		ObjectSrc:               []string{"'none'"},
		BaseURI:                 []string{"'self'"},
		FormAction:              []string{"'self'"},
		UpgradeInsecureRequests: true,
	}
}

// String renders the policy with directives in a fixed order.
func (p Policy) String() string {
	directives := []struct {
		name    string
		sources []string
	}{
		{"default-src", p.DefaultSrc},
		{"script-src", p.ScriptSrc},
		{"style-src", p.StyleSrc},
		{"font-src", p.FontSrc},
		{"img-src", p.ImgSrc},
		{"connect-src", p.ConnectSrc},
		{"frame-src", p.FrameSrc},
		{"object-src", p.ObjectSrc},
		{"base-uri", p.BaseURI},
		{"form-action", p.FormAction},
		{"frame-ancestors", p.FrameAncestors},
	}

	parts := make([]string, 0, len(directives)+1)
	for _, d := range directives {
		if len(d.sources) == 0 {
			continue
		}
		parts = append(parts, d.name+" "+strings.Join(d.sources, " "))
	}
	if p.UpgradeInsecureRequests {
		parts = append(parts, "upgrade-insecure-requests")
	}
	return strings.Join(parts, "; ")
}
