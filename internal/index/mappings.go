package index

import "github.com/scanworks/scanvault/internal/face"

// faceIndexMapping is the face-collection schema: one entry per face record,
// embedding as a dense vector scored with script_score at query time.
func faceIndexMapping() map[string]any {
	return map[string]any{
		"settings": map[string]any{
			"number_of_shards":   2,
			"number_of_replicas": 1,
		},
		"mappings": map[string]any{
			"properties": map[string]any{
				"face_id":     map[string]any{"type": "keyword"},
				"document_id": map[string]any{"type": "integer"},
				"embedding": map[string]any{
					"type": "dense_vector",
					"dims": face.EmbeddingDims,
				},
				"quality_score": map[string]any{"type": "float"},
				"indexed_at":    map[string]any{"type": "date"},
			},
		},
	}
}

// documentIndexMapping is the text-collection schema. Free text goes through
// a multilingual analyzer; zone text is matched verbatim; the document
// number stays a keyword for exact hits.
func documentIndexMapping() map[string]any {
	return map[string]any{
		"settings": map[string]any{
			"number_of_shards":   2,
			"number_of_replicas": 1,
			"analysis": map[string]any{
				"analyzer": map[string]any{
					"multilingual": map[string]any{
						"type":      "custom",
						"tokenizer": "standard",
						"filter":    []string{"lowercase", "russian_stop", "english_stop"},
					},
				},
				"filter": map[string]any{
					"russian_stop": map[string]any{
						"type":      "stop",
						"stopwords": "_russian_",
					},
					"english_stop": map[string]any{
						"type":      "stop",
						"stopwords": "_english_",
					},
				},
			},
		},
		"mappings": map[string]any{
			"properties": map[string]any{
				"document_id": map[string]any{"type": "integer"},
				"full_text": map[string]any{
					"type":     "text",
					"analyzer": "multilingual",
				},
				"mrz_text": map[string]any{
					"type":     "text",
					"analyzer": "keyword",
				},
				"document_number": map[string]any{"type": "keyword"},
				"surname":         map[string]any{"type": "text"},
				"given_names":     map[string]any{"type": "text"},
				"indexed_at":      map[string]any{"type": "date"},
			},
		},
	}
}
