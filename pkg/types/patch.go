package types

import "fmt"

// Patch is a partial update applied over an existing record: each key is a
// field name in its JSON spelling, each value the replacement. A key that is
// absent leaves the field untouched, which is how a nullable field like
// folderId distinguishes "unset" from "set to null".
type Patch map[string]any

// Has reports whether the patch touches the given field.
func (p Patch) Has(field string) bool {
	_, ok := p[field]
	return ok
}

// patchString extracts a string value from a patch entry.
func patchString(field string, v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: field %q wants string, got %T", ErrValidation, field, v)
	}
	return s, nil
}

// patchBool extracts a bool value from a patch entry.
func patchBool(field string, v any) (bool, error) {
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("%w: field %q wants bool, got %T", ErrValidation, field, v)
	}
	return b, nil
}

// patchNullableString extracts a nullable string value from a patch entry.
// Accepts nil, string, and *string (nil pointer meaning null).
func patchNullableString(field string, v any) (*string, error) {
	switch s := v.(type) {
	case nil:
		return nil, nil
	case string:
		return &s, nil
	case *string:
		return s, nil
	default:
		return nil, fmt.Errorf("%w: field %q wants string or null, got %T", ErrValidation, field, v)
	}
}

// patchMillis extracts an epoch-milliseconds value from a patch entry.
// JSON decoding yields float64, native callers pass int or int64.
func patchMillis(field string, v any) (int64, error) {
	switch n := v.(type) {
	case int64:
		return n, nil
	case int:
		return int64(n), nil
	case float64:
		return int64(n), nil
	default:
		return 0, fmt.Errorf("%w: field %q wants epoch millis, got %T", ErrValidation, field, v)
	}
}
