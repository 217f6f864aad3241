package dto

import "strconv"

// Property is the immutable descriptor produced for every attribute
// assignment. Raw keeps the input exactly as given; Value is what the
// container stores. Today the two are identical, coercion hooks may diverge
// them later.
type Property struct {
	Name  string
	Type  string
	Raw   any
	Value any
}

// PropertyOption configures optional descriptor metadata.
type PropertyOption func(*Property)

// WithPropertyType tags the descriptor with a type hint.
func WithPropertyType(tag string) PropertyOption {
	return func(p *Property) {
		p.Type = tag
	}
}

// NewProperty validates name and builds a descriptor for value. Empty and
// numeric names fail with ErrInvalidKey; any value shape is accepted.
func NewProperty(name string, value any, opts ...PropertyOption) (Property, error) {
	if err := validateKey(name); err != nil {
		return Property{}, err
	}
	property := Property{
		Name:  name,
		Raw:   value,
		Value: value,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&property)
		}
	}
	return property, nil
}

// validateKey rejects empty names and names that parse as pure numbers,
// guarding against positional keys leaking in as attribute names.
func validateKey(name string) error {
	if name == "" {
		return attributeError(name, ErrInvalidKey)
	}
	if isNumericKey(name) {
		return attributeError(name, ErrInvalidKey)
	}
	return nil
}

func isNumericKey(name string) bool {
	if _, err := strconv.ParseInt(name, 10, 64); err == nil {
		return true
	}
	if _, err := strconv.ParseFloat(name, 64); err == nil {
		return true
	}
	return false
}
