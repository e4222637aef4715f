// Package detect flags input that looks like an injection attempt.
//
// A Detector holds an immutable list of regular expressions and reports
// whether any of them matches a value. Two pattern sets are provided:
// XSSPatterns, the markers checked before a form submission is accepted, and
// AttackPatterns, a broader list that also covers common SQL keywords.
//
//	d := detect.New(detect.XSSPatterns()...)
//	if d.Any(name, message) {
//	    // reject
//	}
//
// DetectXSS is a shortcut over a package-level detector built from
// XSSPatterns.
//
// Detection is a heuristic. The patterns are easy to evade and produce false
// positives on ordinary prose ("money = 10"); a match is a reason to reject
// a submission, never evidence that a value without a match is safe.
package detect
