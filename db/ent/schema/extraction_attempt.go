package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/scanworks/scanvault/internal/entity"
)

type ExtractionAttempt struct{ ent.Schema }

func (ExtractionAttempt) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "extraction_attempts"},
	}
}

func (ExtractionAttempt) Fields() []ent.Field {
	return []ent.Field{
		// explicit FK
		field.Int("document_id"),
		field.Int("attempt_number").Positive(),
		field.Bool("succeeded").Default(false),
		field.String("full_text").Optional().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		// typed block list, not a loose blob
		field.JSON("blocks", []entity.TextBlock{}).Optional(),
		field.String("language").Optional(),
		field.Float32("confidence").Default(0),
		field.String("engine").NotEmpty(),
		field.Int64("elapsed_ms").NonNegative(),
		field.Time("created_at").Default(time.Now),
	}
}

func (ExtractionAttempt) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("document", Document.Type).
			Ref("attempts").
			Field("document_id").
			Unique().
			Required(),
	}
}

func (ExtractionAttempt) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("document_id", "attempt_number").Unique(),
	}
}
