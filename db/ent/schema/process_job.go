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

	"github.com/google/uuid"
	"github.com/yeonjae-dev/ocrean/constants"
	"github.com/yeonjae-dev/ocrean/db/ent/schema/utils"
)

type ProcessJob struct{ ent.Schema }

func (ProcessJob) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "process_jobs"},
	}
}

func (ProcessJob) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK
		field.UUID("document_id", uuid.UUID{}),
		field.String("format").NotEmpty().
			Validate(utils.EnumValidator(constants.PDF, constants.IMAGE)),
		field.Time("started_at").Default(time.Now),
		field.Time("finished_at").Optional().Nillable(),
		field.String("status").Optional().Nillable(),
		field.String("error_message").Optional().Nillable(),
		field.String("ocr_text").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("ocr_method").Optional().Nillable(),
		field.String("language").Optional().Nillable(),
		field.Int("pages").Optional().Nillable(),
		field.Float32("confidence").Optional().Nillable(),
		field.Int("sentence_count").Optional().Nillable(),
	}
}

func (ProcessJob) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("document", Document.Type).
			Ref("jobs").
			Field("document_id").
			Unique().
			Required(),
	}
}

func (ProcessJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("document_id", "status", "started_at"),
		index.Fields("document_id"),
	}
}
