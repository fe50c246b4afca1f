package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ChoiceOption is a single choice belonging to exactly one question. The
// name avoids entc's predeclared "Option" identifier. The unique
// (question, value) index is the storage-level second line of defense
// behind the in-memory AddOptions validation: a duplicate distractor can
// never be persisted even if a plugin slips one past.
type ChoiceOption struct {
	ent.Schema
}

func (ChoiceOption) Fields() []ent.Field {
	return []ent.Field{
		field.String("value").
			NotEmpty().
			Immutable().
			Comment("Display value of the option"),
		field.Bool("is_correct").
			Default(false).
			Immutable().
			Comment("Whether this option is the correct answer"),
	}
}

func (ChoiceOption) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("question", Question.Type).
			Ref("options").
			Unique().
			Required(),
	}
}

func (ChoiceOption) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("value").
			Edges("question").
			Unique(),
	}
}
