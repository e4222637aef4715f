package form

import "github.com/dmitrymomot/formguard/pkg/validator"

// Result is the outcome of one Validate call. Data holds sanitized values of
// the fields that passed; Errors holds one message per failed field.
type Result struct {
	Valid  bool
	Data   map[string]string
	Errors map[string]string

	failures validator.ValidationErrors
}

// Err returns nil for a valid result, otherwise validator.ValidationErrors in
// rule set order.
func (r *Result) Err() error {
	if r.Valid || len(r.failures) == 0 {
		return nil
	}
	return r.failures
}

// FieldResult is the outcome of validating a single field.
type FieldResult struct {
	Name  string
	Value string
	Valid bool
	Error string
}
