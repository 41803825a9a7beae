package ir

// Keyed is the generic key-to-value form every IR component serializes to
// and tolerantly deserializes from. It is the wire contract at both
// boundaries of the IR: the analyzer hands over keyed data recovered from
// a cache, and the emitter folds keyed data into the final document.
type Keyed map[string]any

// asKeyed reports whether v is a keyed container, unifying the Keyed
// named type with the plain map shape produced by generic decoders.
func asKeyed(v any) (Keyed, bool) {
	switch m := v.(type) {
	case Keyed:
		return m, true
	case map[string]any:
		return m, true
	}

	return nil, false
}

// stringField returns the string stored under key, or def when the key is
// missing or holds a non-string value.
func stringField(data Keyed, key, def string) string {
	if s, ok := data[key].(string); ok {
		return s
	}

	return def
}

// boolField returns the bool stored under key, or def when the key is
// missing or holds a non-bool value.
func boolField(data Keyed, key string, def bool) bool {
	if b, ok := data[key].(bool); ok {
		return b
	}

	return def
}

// stringSliceField returns the ordered string list stored under key.
// Generic decoders produce []any; entries that are not strings are
// skipped. Returns nil when the key is missing, malformed, or empty.
func stringSliceField(data Keyed, key string) []string {
	switch v := data[key].(type) {
	case []string:
		if len(v) == 0 {
			return nil
		}
		out := make([]string, len(v))
		copy(out, v)
		return out

	case []any:
		var out []string
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}

	return nil
}

// anySliceField returns the ordered literal list stored under key,
// normalized to []any. Returns nil when the key is missing, malformed,
// or empty.
func anySliceField(data Keyed, key string) []any {
	switch v := data[key].(type) {
	case []any:
		if len(v) == 0 {
			return nil
		}
		out := make([]any, len(v))
		copy(out, v)
		return out

	case []string:
		if len(v) == 0 {
			return nil
		}
		out := make([]any, len(v))
		for i, s := range v {
			out[i] = s
		}
		return out

	case []int:
		if len(v) == 0 {
			return nil
		}
		out := make([]any, len(v))
		for i, n := range v {
			out[i] = n
		}
		return out
	}

	return nil
}
