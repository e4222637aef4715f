package form

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/dmitrymomot/formguard/pkg/sanitizer"
	"github.com/dmitrymomot/formguard/pkg/validator"
)

// Engine validates submissions. It holds no per-call state and is safe for
// concurrent use.
type Engine struct {
	tag     language.Tag
	printer *message.Printer
}

// Option configures an Engine.
type Option func(*Engine)

// WithLanguage selects the language messages are printed in.
func WithLanguage(tag language.Tag) Option {
	return func(e *Engine) {
		e.tag = tag
	}
}

// NewEngine returns an Engine printing English messages unless WithLanguage
// says otherwise.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{tag: SupportedLanguages[0]}
	for _, opt := range opts {
		opt(e)
	}
	e.printer = newPrinter(e.tag)
	return e
}

// Localize returns an Engine printing in tag. e itself is not modified.
func (e *Engine) Localize(tag language.Tag) *Engine {
	if tag == e.tag {
		return e
	}
	return NewEngine(WithLanguage(tag))
}

func (e *Engine) Language() language.Tag {
	return e.tag
}

// Validate checks values against rules in rule set order.
func (e *Engine) Validate(values Values, rules RuleSet) *Result {
	res := &Result{
		Valid:  true,
		Data:   make(map[string]string, len(rules)),
		Errors: make(map[string]string),
	}

	for _, f := range rules {
		raw := ""
		if values != nil {
			raw = values.Get(f.Name)
		}

		fr, failure := e.validateField(f.Name, raw, f.Rule)
		if failure != nil {
			res.Valid = false
			res.Errors[f.Name] = fr.Error
			res.failures.Add(*failure)
			continue
		}
		res.Data[f.Name] = fr.Value
	}

	return res
}

// ValidateField sanitizes value and applies rule to it. The first failing
// check decides the message.
func (e *Engine) ValidateField(name, value string, rule FieldRule) FieldResult {
	fr, _ := e.validateField(name, value, rule)
	return fr
}

func (e *Engine) validateField(name, value string, rule FieldRule) (FieldResult, *validator.ValidationError) {
	sanitized := sanitizer.Sanitize(value, false)
	fr := FieldResult{Name: name, Value: sanitized}

	failure := e.check(name, sanitized, rule)
	if failure != nil {
		fr.Error = failure.Message
		return fr, failure
	}
	fr.Valid = true
	return fr, nil
}

func (e *Engine) check(name, value string, rule FieldRule) *validator.ValidationError {
	for _, r := range fieldRules(name, value, rule) {
		if r.Check() {
			continue
		}
		failure := r.Error
		failure.Message = e.localize(failure, rule)
		return &failure
	}
	return nil
}

// fieldRules lists the checks of rule in evaluation order. Type and pattern
// checks skip empty values; an optional empty field still fails a minimum
// length.
func fieldRules(name, value string, rule FieldRule) []validator.Rule {
	var rules []validator.Rule
	if rule.Required {
		rules = append(rules, validator.Required(name, value))
	}
	if value != "" {
		switch rule.Type {
		case KindEmail:
			rules = append(rules, validator.Email(name, value))
		case KindPhone:
			rules = append(rules, validator.Phone(name, value))
		}
	}
	if rule.MinLength > 0 {
		rules = append(rules, validator.MinLen(name, value, rule.MinLength))
	}
	if rule.MaxLength > 0 {
		rules = append(rules, validator.MaxLen(name, value, rule.MaxLength))
	}
	if rule.Pattern != nil && value != "" {
		rules = append(rules, validator.Matches(name, value, rule.Pattern, rule.PatternError))
	}
	return rules
}

func (e *Engine) localize(failure validator.ValidationError, rule FieldRule) string {
	switch failure.TranslationKey {
	case "validation.required":
		label := rule.Label
		if label == "" {
			label = failure.Field
		}
		return e.printer.Sprintf(msgRequired, translateLabel(e.printer, label))
	case "validation.email":
		return e.printer.Sprintf(msgEmail)
	case "validation.phone":
		return e.printer.Sprintf(msgPhone)
	case "validation.min_length":
		return e.printer.Sprintf(msgMinLength, rule.MinLength)
	case "validation.max_length":
		return e.printer.Sprintf(msgMaxLength, rule.MaxLength)
	case "validation.pattern":
		if rule.PatternError != "" {
			return rule.PatternError
		}
		return e.printer.Sprintf(msgPattern)
	}
	return failure.Message
}
