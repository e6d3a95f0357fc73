package editor

import (
	"fmt"
	"strconv"
	"strings"
)

// asString coerces a field value to a string.
func asString(v any) (string, error) {
	switch t := v.(type) {
	case string:
		return t, nil
	case nil:
		return "", nil
	default:
		return "", fmt.Errorf("expected string, got %T", v)
	}
}

// asBool coerces a field value to a bool. Strings are parsed with strconv.ParseBool.
func asBool(v any) (bool, error) {
	switch t := v.(type) {
	case bool:
		return t, nil
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(t))
		if err != nil {
			return false, fmt.Errorf("expected boolean, got %q", t)
		}
		return b, nil
	default:
		return false, fmt.Errorf("expected boolean, got %T", v)
	}
}

// asList coerces a field value to a string list. A plain string is split
// the same way project technologies are.
func asList(v any) ([]string, error) {
	switch t := v.(type) {
	case []string:
		out := make([]string, len(t))
		copy(out, t)
		return out, nil
	case []any:
		out := make([]string, 0, len(t))
		for _, item := range t {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("expected list of strings, got element %T", item)
			}
			out = append(out, s)
		}
		return out, nil
	case string:
		return ParseTechnologies(t), nil
	default:
		return nil, fmt.Errorf("expected list of strings, got %T", v)
	}
}
