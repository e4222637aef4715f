package form

import (
	"fmt"
	"regexp"
)

// FieldRule describes the checks for one field. Zero lengths mean no bound.
type FieldRule struct {
	Required     bool
	Type         Kind
	MinLength    int
	MaxLength    int
	Pattern      *regexp.Regexp
	PatternError string
	Label        string
}

// Field binds a rule to a field name.
type Field struct {
	Name string
	Rule FieldRule
}

// RuleSet is an ordered list of fields. Validation follows slice order.
type RuleSet []Field

// Lookup returns the rule for name.
func (rs RuleSet) Lookup(name string) (FieldRule, bool) {
	for _, f := range rs {
		if f.Name == name {
			return f.Rule, true
		}
	}
	return FieldRule{}, false
}

// Only returns the fields named in names, keeping the rule set order.
func (rs RuleSet) Only(names ...string) RuleSet {
	want := make(map[string]struct{}, len(names))
	for _, n := range names {
		want[n] = struct{}{}
	}

	out := make(RuleSet, 0, len(names))
	for _, f := range rs {
		if _, ok := want[f.Name]; ok {
			out = append(out, f)
		}
	}
	return out
}

func (rs RuleSet) Names() []string {
	names := make([]string, len(rs))
	for i, f := range rs {
		names[i] = f.Name
	}
	return names
}

// Validate reports structural problems: empty or duplicate names and negative
// length bounds.
func (rs RuleSet) Validate() error {
	seen := make(map[string]struct{}, len(rs))
	for i, f := range rs {
		if f.Name == "" {
			return fmt.Errorf("%w: position %d", ErrEmptyFieldName, i)
		}
		if _, ok := seen[f.Name]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateField, f.Name)
		}
		seen[f.Name] = struct{}{}
		if f.Rule.MinLength < 0 || f.Rule.MaxLength < 0 {
			return fmt.Errorf("%w: %s", ErrNegativeLength, f.Name)
		}
	}
	return nil
}

// DefaultContactRules returns the rules of the landing page contact form.
func DefaultContactRules() RuleSet {
	return RuleSet{
		{Name: "name", Rule: FieldRule{Required: true, MinLength: 2, MaxLength: 100, Label: "Name"}},
		{Name: "email", Rule: FieldRule{Required: true, Type: KindEmail, MaxLength: 254, Label: "Email"}},
		{Name: "phone", Rule: FieldRule{Required: true, Type: KindPhone, Label: "Phone"}},
		{Name: "company", Rule: FieldRule{MaxLength: 200, Label: "Company"}},
		{Name: "message", Rule: FieldRule{MaxLength: 2000, Label: "Message"}},
	}
}
