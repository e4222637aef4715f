package detect

import "regexp"

var xssSources = []string{
	`(?i)<script`,
	`(?i)javascript:`,
	`(?i)on\w+\s*=`,
	`(?i)<iframe`,
	`(?i)<object`,
	`(?i)<embed`,
	`(?i)expression\s*\(`,
	`(?i)vbscript:`,
	`(?i)data:text/html`,
}

var attackSources = []string{
	`(?i)union.*select`,
	`(?i)drop.*table`,
	`(?i)insert.*into`,
	`(?i)delete.*from`,
	`(?i)exec.*\(`,
	`(?i)script.*alert`,
	`(?i)<iframe`,
	`(?i)javascript:`,
}

// XSSPatterns returns the case-insensitive markers of script injection.
// Each call returns newly compiled expressions.
func XSSPatterns() []*regexp.Regexp {
	return compile(xssSources)
}

// AttackPatterns returns markers of SQL and script injection used to block
// obviously hostile submissions.
func AttackPatterns() []*regexp.Regexp {
	return compile(attackSources)
}

func compile(sources []string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(sources))
	for i, src := range sources {
		out[i] = regexp.MustCompile(src)
	}
	return out
}
