package model

import "maps"

// Framework is an opaque documentation block (financial models, go-to-market approach).
// Title and Description are lifted out for listing; everything else stays in Body untouched.
type Framework struct {
	Key         string         `json:"key"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Body        map[string]any `json:"body"`
}

// Clone returns a deep copy of the framework including nested maps and lists
func (f *Framework) Clone() *Framework {
	if f == nil {
		return nil
	}
	copied := *f
	if f.Body != nil {
		copied.Body, _ = cloneAny(f.Body).(map[string]any)
	}
	return &copied
}

func cloneAny(v any) any {
	switch val := v.(type) {
	case map[string]any:
		m := maps.Clone(val)
		for k, item := range m {
			m[k] = cloneAny(item)
		}
		return m
	case []any:
		s := make([]any, len(val))
		for i, item := range val {
			s[i] = cloneAny(item)
		}
		return s
	default:
		return val
	}
}
