// Package form validates a whole submission against an ordered rule set.
//
// A RuleSet lists the accepted fields in the order they are checked. For every
// field the Engine fetches the raw value (missing values are empty), sanitizes
// it with sanitizer.Sanitize and then applies the field's rule: required,
// type (e-mail or phone), minimum and maximum length and an optional pattern.
// The first failing check records a message for that field and the remaining
// checks are skipped. Fields that pass are copied into Result.Data; fields that
// are not part of the rule set are ignored.
//
// Length limits count Unicode code points of the sanitized value, as the
// validator package does. Escaping makes a value longer: "<" counts as the
// four characters of "&lt;".
//
//	engine := form.NewEngine()
//	res := engine.Validate(r.PostForm, form.DefaultContactRules())
//	if !res.Valid {
//	    // res.Errors["email"] == "Invalid email"
//	}
//
// # Messages
//
// Messages are printed through golang.org/x/text/message. English is the
// default; Brazilian Portuguese is bundled. Use Localize with the tag returned
// by MatchLanguage to print in the visitor's language.
//
// # Rule files
//
// LoadRules reads a YAML mapping of field name to rule. The YAML key order is
// the validation order:
//
//	name:
//	  required: true
//	  minLength: 2
//	  maxLength: 100
//	  label: Name
//	email:
//	  required: true
//	  type: email
//
// Patterns use RE2 syntax (package regexp), which has no lookaround.
package form
