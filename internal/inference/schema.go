package inference

import (
	"bytes"
	"encoding/json"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// BuildOCRResponseSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map describing the recognition sidecar response. We validate every
// response against it before trusting block confidences.
func BuildOCRResponseSchema() map[string]any {
	block := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"text": map[string]any{"type": "string"},
			"bbox": map[string]any{
				"type":     "array",
				"items":    map[string]any{"type": "number"},
				"minItems": 4,
				"maxItems": 4,
			},
			"confidence": map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0},
		},
		"required": []string{"text", "confidence"},
	}
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"blocks":   map[string]any{"type": "array", "items": block},
			"language": map[string]any{"type": "string"},
		},
		"required": []string{"blocks"},
	}
}

// BuildFaceResponseSchema describes the face sidecar response. dims pins the
// embedding length so a truncated vector is rejected instead of indexed.
func BuildFaceResponseSchema(dims int) map[string]any {
	face := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"box": map[string]any{
				"type":     "array",
				"items":    map[string]any{"type": "number"},
				"minItems": 4,
				"maxItems": 4,
			},
			"confidence": map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0},
			"embedding": map[string]any{
				"type":     "array",
				"items":    map[string]any{"type": "number"},
				"minItems": dims,
				"maxItems": dims,
			},
			"pose": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"yaw":   map[string]any{"type": "number"},
					"pitch": map[string]any{"type": "number"},
					"roll":  map[string]any{"type": "number"},
				},
			},
		},
		"required": []string{"box", "confidence", "embedding"},
	}
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"faces": map[string]any{"type": "array", "items": face},
		},
		"required": []string{"faces"},
	}
}

// MustCompileSchema compiles a schema map under name. Call at startup; a
// malformed built-in schema is a programming error.
func MustCompileSchema(name string, schema map[string]any) *jsonschema.Schema {
	bs, err := json.Marshal(schema)
	if err != nil {
		panic(err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource(name, bytes.NewReader(bs)); err != nil {
		panic(err)
	}
	sch, err := c.Compile(name)
	if err != nil {
		panic(err)
	}
	return sch
}
