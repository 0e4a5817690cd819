package loader

import (
	"golang.org/x/text/unicode/norm"

	"github.com/goplotly/graphref/schema"
)

// Normalize returns a copy of doc with every string, keys included,
// normalized to NFC. The schema is served as UTF-8 but composed and
// decomposed forms of the same character must compare equal once the
// document is used for lookups.
func Normalize(doc schema.Document) schema.Document {
	normalized, _ := normalizeValue(map[string]any(doc)).(map[string]any)
	return schema.Document(normalized)
}

func normalizeValue(value any) any {
	switch v := value.(type) {
	case string:
		return norm.NFC.String(v)
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, child := range v {
			out[norm.NFC.String(key)] = normalizeValue(child)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, child := range v {
			out[i] = normalizeValue(child)
		}
		return out
	default:
		return v
	}
}
