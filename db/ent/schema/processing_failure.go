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

	"github.com/scanworks/scanvault/constants"
	"github.com/scanworks/scanvault/db/ent/schema/utils"
)

type ProcessingFailure struct{ ent.Schema }

func (ProcessingFailure) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "processing_failures"},
	}
}

func (ProcessingFailure) Fields() []ent.Field {
	return []ent.Field{
		// explicit FK
		field.Int("document_id"),
		field.String("category").NotEmpty().
			Validate(utils.EnumValidator(constants.FailureCategories...)),
		field.Int("attempt_number").Default(0).NonNegative(),
		field.String("message").
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Time("occurred_at").Default(time.Now),
	}
}

func (ProcessingFailure) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("document", Document.Type).
			Ref("failures").
			Field("document_id").
			Unique().
			Required(),
	}
}

func (ProcessingFailure) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("document_id", "occurred_at"),
	}
}
