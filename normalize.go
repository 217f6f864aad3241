package dto

import (
	"fmt"
	"iter"

	"github.com/goliatone/go-dto/internal/hydrate"
)

// normalizeSource flattens an arbitrary source into a name to value map.
// Numeric-keyed entries are silently dropped; a result with no entries or an
// unsupported shape fails with ErrInvalidArgument.
func normalizeSource(source any) (map[string]any, error) {
	attrs, err := flattenSource(source)
	if err != nil {
		return nil, err
	}
	if len(attrs) == 0 {
		return nil, fmt.Errorf("%w: non-empty attributes must be provided", ErrInvalidArgument)
	}
	return attrs, nil
}

func flattenSource(source any) (map[string]any, error) {
	switch typed := source.(type) {
	case nil:
		return nil, fmt.Errorf("%w: source data is nil", ErrInvalidArgument)
	case map[string]any:
		return dropNumericKeys(typed), nil
	case map[string]string:
		out := make(map[string]any, len(typed))
		for name, value := range typed {
			if isNumericKey(name) {
				continue
			}
			out[name] = value
		}
		return out, nil
	case map[any]any:
		out := make(map[string]any, len(typed))
		for key, value := range typed {
			name, ok := key.(string)
			if !ok || isNumericKey(name) {
				continue
			}
			out[name] = value
		}
		return out, nil
	case iter.Seq2[string, any]:
		out := map[string]any{}
		for name, value := range typed {
			if isNumericKey(name) {
				continue
			}
			out[name] = value
		}
		return out, nil
	case Container:
		return typed.mount().All(), nil
	default:
		attrs, err := hydrate.Flatten(source)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
		}
		return dropNumericKeys(attrs), nil
	}
}

func dropNumericKeys(attrs map[string]any) map[string]any {
	out := make(map[string]any, len(attrs))
	for name, value := range attrs {
		if name == "" || isNumericKey(name) {
			continue
		}
		out[name] = value
	}
	return out
}
