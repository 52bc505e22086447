package core

// Parameter values arrive either from the deterministic interpreter (typed Go
// values) or from an external NLU reply (everything numeric as float64). The
// helpers below coerce both shapes.

// IntParam returns an integer parameter if present
func IntParam(params map[string]any, key string) (int, bool) {
	v, ok := params[key]
	if !ok || v == nil {
		return 0, false
	}
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	case float32:
		return int(n), true
	}
	return 0, false
}

// StringParam returns a non-empty string parameter if present
func StringParam(params map[string]any, key string) (string, bool) {
	v, ok := params[key]
	if !ok || v == nil {
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

// StringSliceParam returns a string-slice parameter if present, accepting
// both []string and the []any produced by JSON decoding
func StringSliceParam(params map[string]any, key string) ([]string, bool) {
	v, ok := params[key]
	if !ok || v == nil {
		return nil, false
	}
	switch s := v.(type) {
	case []string:
		return s, true
	case []any:
		out := make([]string, 0, len(s))
		for _, item := range s {
			str, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, str)
		}
		return out, true
	}
	return nil, false
}

// MapParam returns a nested map parameter if present
func MapParam(params map[string]any, key string) (map[string]any, bool) {
	v, ok := params[key]
	if !ok || v == nil {
		return nil, false
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, false
	}
	return m, true
}

// BoolParam returns a boolean parameter if present
func BoolParam(params map[string]any, key string) (bool, bool) {
	v, ok := params[key]
	if !ok || v == nil {
		return false, false
	}
	b, ok := v.(bool)
	return b, ok
}
