package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TestSet is one drill session: a fixed random seed plus the membership
// lists of its questions and responses. The seed is written before any
// question is generated so even a partially-built set replays in a stable
// order, and it never changes afterwards.
type TestSet struct {
	ent.Schema
}

func (TestSet) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty().
			Immutable().
			Comment("Profile id of the learner the set was built for"),
		field.Int64("random_seed").
			Immutable().
			Comment("Sole source of the set's reproducible ordering"),
		field.Int("shuffle_version").
			Default(1).
			Immutable().
			Comment("Version of the shuffle algorithm the set was built under"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (TestSet) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("questions", Question.Type),
		edge.To("responses", Response.Type),
	}
}

func (TestSet) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("created_at"),
	}
}
