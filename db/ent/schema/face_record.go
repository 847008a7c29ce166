package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

type FaceRecord struct{ ent.Schema }

func (FaceRecord) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "face_records"},
	}
}

func (FaceRecord) Fields() []ent.Field {
	return []ent.Field{
		// explicit FK
		field.Int("document_id"),
		field.Int("page_number").Default(1).Positive(),
		field.Int("box_x"),
		field.Int("box_y"),
		field.Int("box_w").NonNegative(),
		field.Int("box_h").NonNegative(),
		field.Float32("confidence"),
		field.Float32("quality"),
		// correlates to the embedding stored in the external index;
		// empty when the embedding was a sentinel and nothing was indexed
		field.String("index_id").Optional(),
		field.Time("detected_at").Default(time.Now),
	}
}

func (FaceRecord) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("document", Document.Type).
			Ref("faces").
			Field("document_id").
			Unique().
			Required(),
	}
}

func (FaceRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("document_id"),
	}
}
