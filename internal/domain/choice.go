package domain

import "fmt"

// Choice pairs the canonical code of an enumerated value with its
// human-readable label. Choice lists are used to build selection inputs.
type Choice struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

// Enum is implemented by every enumerated vocabulary type.
type Enum interface {
	~string
	IsValid() bool
	Label() string
}

// ChoicesOf builds a choice list from values in declaration order.
func ChoicesOf[E Enum](values ...E) []Choice {
	out := make([]Choice, len(values))
	for i, v := range values {
		out[i] = Choice{Code: string(v), Label: v.Label()}
	}
	return out
}

// ParseChoice converts a code to E, failing with ErrInvalidChoice for codes
// outside the enumerated set.
func ParseChoice[E Enum](code string) (E, error) {
	v := E(code)
	if !v.IsValid() {
		var zero E
		return zero, InvalidChoice(v)
	}
	return v, nil
}

// InvalidChoice returns an error wrapping ErrInvalidChoice for v.
func InvalidChoice[E ~string](v E) error {
	return fmt.Errorf("%w: %q", ErrInvalidChoice, string(v))
}

// ParseOptionalChoice is ParseChoice for filter values, where the empty code
// means "no restriction" and parses to the zero value.
func ParseOptionalChoice[E Enum](code string) (E, error) {
	if code == "" {
		var zero E
		return zero, nil
	}
	return ParseChoice[E](code)
}
