package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Response records that a user answered a question by selecting one of
// its options. Re-answers of the same question by the same user are
// allowed only at distinct timestamps.
type Response struct {
	ent.Schema
}

func (Response) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty().
			Immutable().
			Comment("Profile id of the answering learner"),
		field.Time("answered_at").
			Default(time.Now).
			Immutable().
			Comment("UTC wall-clock time of the answer"),
	}
}

func (Response) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("question", Question.Type).
			Unique().
			Required(),
		edge.To("option", ChoiceOption.Type).
			Unique().
			Required(),
		edge.From("test_set", TestSet.Type).
			Ref("responses").
			Unique(),
	}
}

func (Response) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "answered_at").
			Edges("question").
			Unique(),
	}
}
