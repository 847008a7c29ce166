package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/scanworks/scanvault/db/ent/schema/utils"
)

type StructuredFields struct{ ent.Schema }

func (StructuredFields) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "structured_fields"},
	}
}

func (StructuredFields) Fields() []ent.Field {
	return []ent.Field{
		// explicit FK; at most one row per document
		field.Int("document_id").Unique(),
		field.String("format").NotEmpty().
			Validate(utils.EnumValidator("A", "B", "C")),
		field.String("document_type").Optional(),
		field.String("country_code").Optional(),
		field.String("surname").Optional(),
		field.String("given_names").Optional(),
		field.String("document_number").Optional(),
		field.String("nationality").Optional(),
		field.String("birth_date").Optional(),
		field.String("sex").Optional(),
		field.String("expiry_date").Optional(),
		field.String("personal_number").Optional(),
		field.Bool("checksum_valid").Default(false),
		// the source lines the fields were derived from
		field.JSON("raw_lines", []string{}).Optional(),
		field.Time("created_at").Default(time.Now),
	}
}

func (StructuredFields) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("document", Document.Type).
			Ref("fields").
			Field("document_id").
			Unique().
			Required(),
	}
}

func (StructuredFields) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("document_number"),
		index.Fields("surname"),
	}
}
