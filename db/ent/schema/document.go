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

type Document struct {
	ent.Schema
}

func (Document) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "documents"},
	}
}

func (Document) Fields() []ent.Field {
	return []ent.Field{
		field.Bytes("content_hash").NotEmpty().
			SchemaType(map[string]string{dialect.Postgres: "bytea"}),
		field.String("source_path").NotEmpty(),
		field.String("filename").NotEmpty(),
		field.String("file_kind").NotEmpty().
			Validate(utils.EnumValidator(constants.FileKinds...)),
		field.Int64("file_size").NonNegative(),
		field.Time("uploaded_at").Default(time.Now),
		field.String("processing_status").
			Default(string(constants.StatusPending)).
			Validate(utils.EnumValidator(constants.ProcessingStatuses...)),
		field.Int("version_number").Default(1).Positive(),
		// lineage pointer for superseding reprocess runs
		field.Int("parent_document_id").Optional().Nillable(),
		field.Int("page_count").Default(0).NonNegative(),
		field.Bool("has_structured_fields").Default(false),
	}
}

func (Document) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE document -> MANY attempts/faces/failures
		edge.To("attempts", ExtractionAttempt.Type),
		edge.To("faces", FaceRecord.Type),
		edge.To("failures", ProcessingFailure.Type),
		// ONE document -> AT MOST ONE structured field set
		edge.To("fields", StructuredFields.Type).Unique(),
		// reprocessing lineage
		edge.To("revisions", Document.Type).
			From("parent").
			Field("parent_document_id").
			Unique(),
	}
}

func (Document) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("content_hash").Unique(),
		index.Fields("processing_status", "uploaded_at"),
	}
}
