package loader

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/goplotly/graphref/schema"
)

const (
	// "café" with a decomposed e + combining acute accent, and its
	// NFC form.
	decomposed = "café"
	composed   = "café"
)

func TestNormalize(t *testing.T) {
	doc := schema.Document{
		decomposed: map[string]any{
			"description": decomposed,
			"values":      []any{decomposed, 1.0, true},
		},
		"plain": "ascii stays",
	}

	out := Normalize(doc)

	node, ok := out[composed].(map[string]any)
	assert.True(t, ok, "keys must be normalized")
	assert.Equal(t, composed, node["description"])

	values, ok := node["values"].([]any)
	assert.True(t, ok)
	assert.Equal(t, composed, values[0])
	assert.Equal(t, 1.0, values[1])
	assert.Equal(t, true, values[2])

	assert.Equal(t, "ascii stays", out["plain"])
}

func TestNormalizeDoesNotMutateInput(t *testing.T) {
	doc := schema.Document{
		"a": map[string]any{"b": decomposed},
	}

	_ = Normalize(doc)

	inner := doc["a"].(map[string]any)
	assert.Equal(t, decomposed, inner["b"], "input document must be left alone")
}

func TestNormalizeEmpty(t *testing.T) {
	out := Normalize(schema.Document{})
	assert.NotNil(t, out)
	assert.Empty(t, out)
}
