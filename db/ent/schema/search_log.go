package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/scanworks/scanvault/db/ent/schema/utils"
)

// SearchLog is the append-only audit trail for search invocations.
// It has no document edge: a search is not owned by any document.
type SearchLog struct{ ent.Schema }

func (SearchLog) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "search_logs"},
	}
}

func (SearchLog) Fields() []ent.Field {
	return []ent.Field{
		field.String("search_type").NotEmpty().
			Validate(utils.EnumValidator("face", "text")),
		field.String("query_hash").NotEmpty(),
		field.String("scope").Optional(),
		field.Float32("threshold").Optional(),
		field.Int("result_count").Default(0).NonNegative(),
		field.Int64("elapsed_ms").NonNegative(),
		field.Time("executed_at").Default(time.Now),
	}
}

func (SearchLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("search_type", "executed_at"),
	}
}
