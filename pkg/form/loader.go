package form

import (
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

type fieldRuleYAML struct {
	Required     bool   `yaml:"required"`
	Type         string `yaml:"type"`
	MinLength    int    `yaml:"minLength"`
	MaxLength    int    `yaml:"maxLength"`
	Pattern      string `yaml:"pattern"`
	PatternError string `yaml:"patternError"`
	Label        string `yaml:"label"`
}

// LoadRules decodes a YAML mapping of field name to rule. The mapping order is
// kept as the validation order.
func LoadRules(r io.Reader) (RuleSet, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return RuleSet{}, nil
		}
		return nil, errors.Join(ErrInvalidRules, err)
	}

	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: expected a mapping of field names, got line %d", ErrInvalidRules, root.Line)
	}

	rules := make(RuleSet, 0, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, val := root.Content[i], root.Content[i+1]

		var raw fieldRuleYAML
		if err := val.Decode(&raw); err != nil {
			return nil, errors.Join(fmt.Errorf("%w: field %q", ErrInvalidRules, key.Value), err)
		}

		rule, err := raw.toRule()
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", key.Value, err)
		}
		rules = append(rules, Field{Name: key.Value, Rule: rule})
	}

	if err := rules.Validate(); err != nil {
		return nil, errors.Join(ErrInvalidRules, err)
	}
	return rules, nil
}

// LoadRulesFile reads rules from a YAML file.
func LoadRulesFile(path string) (RuleSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}
	defer f.Close()

	return LoadRules(f)
}

func (y fieldRuleYAML) toRule() (FieldRule, error) {
	kind, err := ParseKind(y.Type)
	if err != nil {
		return FieldRule{}, err
	}

	rule := FieldRule{
		Required:     y.Required,
		Type:         kind,
		MinLength:    y.MinLength,
		MaxLength:    y.MaxLength,
		PatternError: y.PatternError,
		Label:        y.Label,
	}
	if y.Pattern != "" {
		re, err := regexp.Compile(y.Pattern)
		if err != nil {
			return FieldRule{}, errors.Join(ErrInvalidPattern, err)
		}
		rule.Pattern = re
	}
	return rule, nil
}
