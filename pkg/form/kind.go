package form

import (
	"fmt"
	"strings"
)

// Kind selects the format check applied to a field.
type Kind uint8

const (
	KindNone Kind = iota
	KindEmail
	KindPhone
)

func (k Kind) String() string {
	switch k {
	case KindEmail:
		return "email"
	case KindPhone:
		return "phone"
	default:
		return "none"
	}
}

// ParseKind accepts "", "none", "email" and "phone", case-insensitively.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return KindNone, nil
	case "email":
		return KindEmail, nil
	case "phone":
		return KindPhone, nil
	default:
		return KindNone, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
