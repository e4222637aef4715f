// Package validator checks single form values: e-mail addresses, Brazilian
// phone numbers, URLs, free text and redirect targets.
//
// Each check comes in two shapes. The Is*/Check* functions return a plain
// result and are what the form engine calls:
//
//	if !validator.IsEmail(value) {
//	    // reject
//	}
//
// The Rule constructors wrap the same checks into declarative rules whose
// failures carry a field name, a message and a translation key, and which are
// evaluated together with Apply:
//
//	err := validator.Apply(
//	    validator.Required("name", name),
//	    validator.Email("email", email),
//	    validator.Phone("phone", phone),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    // verrs.Get("email")
//	}
//
// # Error handling
//
// Malformed input never produces a Go error or a panic. Boolean checks return
// false, CheckText returns a TextResult with Valid set to false, and URL parse
// failures are converted to false internally. ValidationErrors implements the
// error interface only so that several field failures can travel through a
// single error return.
//
// # Lengths
//
// Lengths are counted in Unicode code points, not bytes. Browser form
// scripts count UTF-16 code units instead, so a character outside the Basic
// Multilingual Plane (most emoji) counts once here and twice there. Limits
// are therefore slightly more permissive for such text.
package validator
