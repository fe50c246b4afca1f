package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Question is a stored multiple-choice question about a single pivot.
// Rows are immutable after creation except for their options edge, and
// option rows live and die with their question.
type Question struct {
	ent.Schema
}

func (Question) Fields() []ent.Field {
	return []ent.Field{
		field.String("pivot").
			NotEmpty().
			Immutable().
			Comment("The kanji or word being tested"),
		field.String("pivot_kind").
			NotEmpty().
			Immutable().
			Comment("k (kanji) or w (word)"),
		field.String("question_type").
			NotEmpty().
			Immutable().
			Comment("rp, gp, pg or pr"),
		field.String("plugin").
			NotEmpty().
			Immutable().
			Comment("Name of the factory that produced the question"),
		field.String("stimulus").
			NotEmpty().
			Immutable().
			Comment("The prompt shown to the learner"),
	}
}

func (Question) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("options", ChoiceOption.Type).
			Annotations(entsql.Annotation{OnDelete: entsql.Cascade}),
		edge.From("test_sets", TestSet.Type).
			Ref("questions"),
	}
}

func (Question) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("pivot"),
		index.Fields("question_type"),
	}
}
