// Package resource implements the generic record engine shared by every
// record kind: list with filter/search/sort/pagination, CRUD, and
// sensitive-field masking. Kinds differ only by their Config.
package resource

// Record is one stored entity. Field names map to JSON keys; values are
// whatever json.Unmarshal produces (strings, float64, []any, nested maps).
type Record map[string]any

// ID returns the record id, or "" when unset.
func (r Record) ID() string {
	id, _ := r["id"].(string)
	return id
}

// Clone returns a deep copy. Masking and merging work on clones so the
// caller's view never aliases stored state.
func (r Record) Clone() Record {
	if r == nil {
		return nil
	}
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = cloneValue(item)
		}
		return out
	case Record:
		return map[string]any(val.Clone())
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = cloneValue(item)
		}
		return out
	case []string:
		out := make([]string, len(val))
		copy(out, val)
		return out
	default:
		return v
	}
}
