package detect

import (
	"regexp"
	"slices"
)

// Detector matches values against a fixed list of patterns.
// It is safe for concurrent use.
type Detector struct {
	patterns []*regexp.Regexp
}

// New returns a Detector over patterns. Nil entries are skipped and the slice
// is copied, so later changes by the caller have no effect.
func New(patterns ...*regexp.Regexp) *Detector {
	d := &Detector{patterns: make([]*regexp.Regexp, 0, len(patterns))}
	for _, p := range patterns {
		if p != nil {
			d.patterns = append(d.patterns, p)
		}
	}
	return d
}

// Match reports whether any pattern matches s.
func (d *Detector) Match(s string) bool {
	if s == "" {
		return false
	}
	for _, p := range d.patterns {
		if p.MatchString(s) {
			return true
		}
	}
	return false
}

// Matches returns the source of every pattern that matches s, in pattern
// order. The result is nil when nothing matches.
func (d *Detector) Matches(s string) []string {
	if s == "" {
		return nil
	}
	var hits []string
	for _, p := range d.patterns {
		if p.MatchString(s) {
			hits = append(hits, p.String())
		}
	}
	return hits
}

// Any reports whether any of values matches.
func (d *Detector) Any(values ...string) bool {
	return slices.ContainsFunc(values, d.Match)
}

// Patterns returns the sources of the configured patterns.
func (d *Detector) Patterns() []string {
	out := make([]string, len(d.patterns))
	for i, p := range d.patterns {
		out[i] = p.String()
	}
	return out
}

var defaultXSS = New(XSSPatterns()...)

// DetectXSS reports whether s contains a common script injection marker.
func DetectXSS(s string) bool {
	return defaultXSS.Match(s)
}
