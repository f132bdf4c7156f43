package valuestore

// CopyValue returns a deep copy of the container types produced by the
// answers decoders (maps and slices). Scalars are returned as-is.
func CopyValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return CopySection(val)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = CopyValue(item)
		}
		return out
	case []string:
		return append([]string(nil), val...)
	case map[string]string:
		out := make(map[string]string, len(val))
		for k, item := range val {
			out[k] = item
		}
		return out
	default:
		return v
	}
}

// CopySection deep-copies one namespace's entries.
func CopySection(section map[string]any) map[string]any {
	out := make(map[string]any, len(section))
	for k, v := range section {
		out[k] = CopyValue(v)
	}
	return out
}
