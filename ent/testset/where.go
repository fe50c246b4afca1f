// Code generated by ent, DO NOT EDIT.

package testset

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/ayasuda/kanjidrill/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.TestSet {
	return predicate.TestSet(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.TestSet {
	return predicate.TestSet(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.TestSet {
	return predicate.TestSet(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.TestSet {
	return predicate.TestSet(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.TestSet {
	return predicate.TestSet(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.TestSet {
	return predicate.TestSet(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.TestSet {
	return predicate.TestSet(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.TestSet {
	return predicate.TestSet(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.TestSet {
	return predicate.TestSet(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.TestSet {
	return predicate.TestSet(sql.FieldEQ(FieldUserID, v))
}

// RandomSeed applies equality check predicate on the "random_seed" field. It's identical to RandomSeedEQ.
func RandomSeed(v int64) predicate.TestSet {
	return predicate.TestSet(sql.FieldEQ(FieldRandomSeed, v))
}

// ShuffleVersion applies equality check predicate on the "shuffle_version" field. It's identical to ShuffleVersionEQ.
func ShuffleVersion(v int) predicate.TestSet {
	return predicate.TestSet(sql.FieldEQ(FieldShuffleVersion, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TestSet {
	return predicate.TestSet(sql.FieldEQ(FieldCreatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.TestSet {
	return predicate.TestSet(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.TestSet {
	return predicate.TestSet(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.TestSet {
	return predicate.TestSet(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.TestSet {
	return predicate.TestSet(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.TestSet {
	return predicate.TestSet(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.TestSet {
	return predicate.TestSet(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.TestSet {
	return predicate.TestSet(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.TestSet {
	return predicate.TestSet(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.TestSet {
	return predicate.TestSet(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.TestSet {
	return predicate.TestSet(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.TestSet {
	return predicate.TestSet(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.TestSet {
	return predicate.TestSet(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.TestSet {
	return predicate.TestSet(sql.FieldContainsFold(FieldUserID, v))
}

// RandomSeedEQ applies the EQ predicate on the "random_seed" field.
func RandomSeedEQ(v int64) predicate.TestSet {
	return predicate.TestSet(sql.FieldEQ(FieldRandomSeed, v))
}

// RandomSeedNEQ applies the NEQ predicate on the "random_seed" field.
func RandomSeedNEQ(v int64) predicate.TestSet {
	return predicate.TestSet(sql.FieldNEQ(FieldRandomSeed, v))
}

// RandomSeedIn applies the In predicate on the "random_seed" field.
func RandomSeedIn(vs ...int64) predicate.TestSet {
	return predicate.TestSet(sql.FieldIn(FieldRandomSeed, vs...))
}

// RandomSeedNotIn applies the NotIn predicate on the "random_seed" field.
func RandomSeedNotIn(vs ...int64) predicate.TestSet {
	return predicate.TestSet(sql.FieldNotIn(FieldRandomSeed, vs...))
}

// RandomSeedGT applies the GT predicate on the "random_seed" field.
func RandomSeedGT(v int64) predicate.TestSet {
	return predicate.TestSet(sql.FieldGT(FieldRandomSeed, v))
}

// RandomSeedGTE applies the GTE predicate on the "random_seed" field.
func RandomSeedGTE(v int64) predicate.TestSet {
	return predicate.TestSet(sql.FieldGTE(FieldRandomSeed, v))
}

// RandomSeedLT applies the LT predicate on the "random_seed" field.
func RandomSeedLT(v int64) predicate.TestSet {
	return predicate.TestSet(sql.FieldLT(FieldRandomSeed, v))
}

// RandomSeedLTE applies the LTE predicate on the "random_seed" field.
func RandomSeedLTE(v int64) predicate.TestSet {
	return predicate.TestSet(sql.FieldLTE(FieldRandomSeed, v))
}

// ShuffleVersionEQ applies the EQ predicate on the "shuffle_version" field.
func ShuffleVersionEQ(v int) predicate.TestSet {
	return predicate.TestSet(sql.FieldEQ(FieldShuffleVersion, v))
}

// ShuffleVersionNEQ applies the NEQ predicate on the "shuffle_version" field.
func ShuffleVersionNEQ(v int) predicate.TestSet {
	return predicate.TestSet(sql.FieldNEQ(FieldShuffleVersion, v))
}

// ShuffleVersionIn applies the In predicate on the "shuffle_version" field.
func ShuffleVersionIn(vs ...int) predicate.TestSet {
	return predicate.TestSet(sql.FieldIn(FieldShuffleVersion, vs...))
}

// ShuffleVersionNotIn applies the NotIn predicate on the "shuffle_version" field.
func ShuffleVersionNotIn(vs ...int) predicate.TestSet {
	return predicate.TestSet(sql.FieldNotIn(FieldShuffleVersion, vs...))
}

// ShuffleVersionGT applies the GT predicate on the "shuffle_version" field.
func ShuffleVersionGT(v int) predicate.TestSet {
	return predicate.TestSet(sql.FieldGT(FieldShuffleVersion, v))
}

// ShuffleVersionGTE applies the GTE predicate on the "shuffle_version" field.
func ShuffleVersionGTE(v int) predicate.TestSet {
	return predicate.TestSet(sql.FieldGTE(FieldShuffleVersion, v))
}

// ShuffleVersionLT applies the LT predicate on the "shuffle_version" field.
func ShuffleVersionLT(v int) predicate.TestSet {
	return predicate.TestSet(sql.FieldLT(FieldShuffleVersion, v))
}

// ShuffleVersionLTE applies the LTE predicate on the "shuffle_version" field.
func ShuffleVersionLTE(v int) predicate.TestSet {
	return predicate.TestSet(sql.FieldLTE(FieldShuffleVersion, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TestSet {
	return predicate.TestSet(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TestSet {
	return predicate.TestSet(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TestSet {
	return predicate.TestSet(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TestSet {
	return predicate.TestSet(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TestSet {
	return predicate.TestSet(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TestSet {
	return predicate.TestSet(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TestSet {
	return predicate.TestSet(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TestSet {
	return predicate.TestSet(sql.FieldLTE(FieldCreatedAt, v))
}

// HasQuestions applies the HasEdge predicate on the "questions" edge.
func HasQuestions() predicate.TestSet {
	return predicate.TestSet(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2M, false, QuestionsTable, QuestionsPrimaryKey...),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasQuestionsWith applies the HasEdge predicate on the "questions" edge with a given conditions (other predicates).
func HasQuestionsWith(preds ...predicate.Question) predicate.TestSet {
	return predicate.TestSet(func(s *sql.Selector) {
		step := newQuestionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasResponses applies the HasEdge predicate on the "responses" edge.
func HasResponses() predicate.TestSet {
	return predicate.TestSet(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ResponsesTable, ResponsesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasResponsesWith applies the HasEdge predicate on the "responses" edge with a given conditions (other predicates).
func HasResponsesWith(preds ...predicate.Response) predicate.TestSet {
	return predicate.TestSet(func(s *sql.Selector) {
		step := newResponsesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TestSet) predicate.TestSet {
	return predicate.TestSet(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TestSet) predicate.TestSet {
	return predicate.TestSet(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TestSet) predicate.TestSet {
	return predicate.TestSet(sql.NotPredicates(p))
}
