package domain

import (
	"fmt"
	"sort"
)

// ValidateMessages checks a decoded locale file against the schema keys.
//
// The file must contain exactly the schema's keys. Missing keys are reported
// in schema order and extra keys sorted, both in full. Once the key sets
// match, every value must be a string. On success the values are returned as
// a string map with the same keys.
func ValidateMessages(file string, values map[string]any, keys []string) (map[string]string, error) {
	schemaSet := make(map[string]struct{}, len(keys))
	missing := []string{}
	for _, key := range keys {
		schemaSet[key] = struct{}{}
		if _, ok := values[key]; !ok {
			missing = append(missing, key)
		}
	}
	extra := []string{}
	for key := range values {
		if _, ok := schemaSet[key]; !ok {
			extra = append(extra, key)
		}
	}
	sort.Strings(extra)
	if len(missing) > 0 || len(extra) > 0 {
		return nil, &KeyMismatchError{File: file, Missing: missing, Extra: extra}
	}

	out := make(map[string]string, len(keys))
	for _, key := range keys {
		s, ok := values[key].(string)
		if !ok {
			return nil, &ValueTypeError{File: file, Key: key, Got: describeValue(values[key])}
		}
		out[key] = s
	}
	return out, nil
}

func describeValue(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "a boolean"
	case float64, float32, int, int64, uint64:
		return "a number"
	case map[string]any:
		return "an object"
	case []any:
		return "an array"
	default:
		return fmt.Sprintf("%T", v)
	}
}
