// Code generated by ent, DO NOT EDIT.

package question

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/ayasuda/kanjidrill/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldID, id))
}

// Pivot applies equality check predicate on the "pivot" field. It's identical to PivotEQ.
func Pivot(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldPivot, v))
}

// PivotKind applies equality check predicate on the "pivot_kind" field. It's identical to PivotKindEQ.
func PivotKind(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldPivotKind, v))
}

// QuestionType applies equality check predicate on the "question_type" field. It's identical to QuestionTypeEQ.
func QuestionType(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldQuestionType, v))
}

// Plugin applies equality check predicate on the "plugin" field. It's identical to PluginEQ.
func Plugin(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldPlugin, v))
}

// Stimulus applies equality check predicate on the "stimulus" field. It's identical to StimulusEQ.
func Stimulus(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldStimulus, v))
}

// PivotEQ applies the EQ predicate on the "pivot" field.
func PivotEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldPivot, v))
}

// PivotNEQ applies the NEQ predicate on the "pivot" field.
func PivotNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldPivot, v))
}

// PivotIn applies the In predicate on the "pivot" field.
func PivotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldPivot, vs...))
}

// PivotNotIn applies the NotIn predicate on the "pivot" field.
func PivotNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldPivot, vs...))
}

// PivotGT applies the GT predicate on the "pivot" field.
func PivotGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldPivot, v))
}

// PivotGTE applies the GTE predicate on the "pivot" field.
func PivotGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldPivot, v))
}

// PivotLT applies the LT predicate on the "pivot" field.
func PivotLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldPivot, v))
}

// PivotLTE applies the LTE predicate on the "pivot" field.
func PivotLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldPivot, v))
}

// PivotContains applies the Contains predicate on the "pivot" field.
func PivotContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldPivot, v))
}

// PivotHasPrefix applies the HasPrefix predicate on the "pivot" field.
func PivotHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldPivot, v))
}

// PivotHasSuffix applies the HasSuffix predicate on the "pivot" field.
func PivotHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldPivot, v))
}

// PivotEqualFold applies the EqualFold predicate on the "pivot" field.
func PivotEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldPivot, v))
}

// PivotContainsFold applies the ContainsFold predicate on the "pivot" field.
func PivotContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldPivot, v))
}

// PivotKindEQ applies the EQ predicate on the "pivot_kind" field.
func PivotKindEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldPivotKind, v))
}

// PivotKindNEQ applies the NEQ predicate on the "pivot_kind" field.
func PivotKindNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldPivotKind, v))
}

// PivotKindIn applies the In predicate on the "pivot_kind" field.
func PivotKindIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldPivotKind, vs...))
}

// PivotKindNotIn applies the NotIn predicate on the "pivot_kind" field.
func PivotKindNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldPivotKind, vs...))
}

// PivotKindGT applies the GT predicate on the "pivot_kind" field.
func PivotKindGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldPivotKind, v))
}

// PivotKindGTE applies the GTE predicate on the "pivot_kind" field.
func PivotKindGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldPivotKind, v))
}

// PivotKindLT applies the LT predicate on the "pivot_kind" field.
func PivotKindLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldPivotKind, v))
}

// PivotKindLTE applies the LTE predicate on the "pivot_kind" field.
func PivotKindLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldPivotKind, v))
}

// PivotKindContains applies the Contains predicate on the "pivot_kind" field.
func PivotKindContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldPivotKind, v))
}

// PivotKindHasPrefix applies the HasPrefix predicate on the "pivot_kind" field.
func PivotKindHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldPivotKind, v))
}

// PivotKindHasSuffix applies the HasSuffix predicate on the "pivot_kind" field.
func PivotKindHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldPivotKind, v))
}

// PivotKindEqualFold applies the EqualFold predicate on the "pivot_kind" field.
func PivotKindEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldPivotKind, v))
}

// PivotKindContainsFold applies the ContainsFold predicate on the "pivot_kind" field.
func PivotKindContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldPivotKind, v))
}

// QuestionTypeEQ applies the EQ predicate on the "question_type" field.
func QuestionTypeEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldQuestionType, v))
}

// QuestionTypeNEQ applies the NEQ predicate on the "question_type" field.
func QuestionTypeNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldQuestionType, v))
}

// QuestionTypeIn applies the In predicate on the "question_type" field.
func QuestionTypeIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldQuestionType, vs...))
}

// QuestionTypeNotIn applies the NotIn predicate on the "question_type" field.
func QuestionTypeNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldQuestionType, vs...))
}

// QuestionTypeGT applies the GT predicate on the "question_type" field.
func QuestionTypeGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldQuestionType, v))
}

// QuestionTypeGTE applies the GTE predicate on the "question_type" field.
func QuestionTypeGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldQuestionType, v))
}

// QuestionTypeLT applies the LT predicate on the "question_type" field.
func QuestionTypeLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldQuestionType, v))
}

// QuestionTypeLTE applies the LTE predicate on the "question_type" field.
func QuestionTypeLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldQuestionType, v))
}

// QuestionTypeContains applies the Contains predicate on the "question_type" field.
func QuestionTypeContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldQuestionType, v))
}

// QuestionTypeHasPrefix applies the HasPrefix predicate on the "question_type" field.
func QuestionTypeHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldQuestionType, v))
}

// QuestionTypeHasSuffix applies the HasSuffix predicate on the "question_type" field.
func QuestionTypeHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldQuestionType, v))
}

// QuestionTypeEqualFold applies the EqualFold predicate on the "question_type" field.
func QuestionTypeEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldQuestionType, v))
}

// QuestionTypeContainsFold applies the ContainsFold predicate on the "question_type" field.
func QuestionTypeContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldQuestionType, v))
}

// PluginEQ applies the EQ predicate on the "plugin" field.
func PluginEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldPlugin, v))
}

// PluginNEQ applies the NEQ predicate on the "plugin" field.
func PluginNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldPlugin, v))
}

// PluginIn applies the In predicate on the "plugin" field.
func PluginIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldPlugin, vs...))
}

// PluginNotIn applies the NotIn predicate on the "plugin" field.
func PluginNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldPlugin, vs...))
}

// PluginGT applies the GT predicate on the "plugin" field.
func PluginGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldPlugin, v))
}

// PluginGTE applies the GTE predicate on the "plugin" field.
func PluginGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldPlugin, v))
}

// PluginLT applies the LT predicate on the "plugin" field.
func PluginLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldPlugin, v))
}

// PluginLTE applies the LTE predicate on the "plugin" field.
func PluginLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldPlugin, v))
}

// PluginContains applies the Contains predicate on the "plugin" field.
func PluginContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldPlugin, v))
}

// PluginHasPrefix applies the HasPrefix predicate on the "plugin" field.
func PluginHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldPlugin, v))
}

// PluginHasSuffix applies the HasSuffix predicate on the "plugin" field.
func PluginHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldPlugin, v))
}

// PluginEqualFold applies the EqualFold predicate on the "plugin" field.
func PluginEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldPlugin, v))
}

// PluginContainsFold applies the ContainsFold predicate on the "plugin" field.
func PluginContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldPlugin, v))
}

// StimulusEQ applies the EQ predicate on the "stimulus" field.
func StimulusEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldStimulus, v))
}

// StimulusNEQ applies the NEQ predicate on the "stimulus" field.
func StimulusNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldStimulus, v))
}

// StimulusIn applies the In predicate on the "stimulus" field.
func StimulusIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldStimulus, vs...))
}

// StimulusNotIn applies the NotIn predicate on the "stimulus" field.
func StimulusNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldStimulus, vs...))
}

// StimulusGT applies the GT predicate on the "stimulus" field.
func StimulusGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldStimulus, v))
}

// StimulusGTE applies the GTE predicate on the "stimulus" field.
func StimulusGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldStimulus, v))
}

// StimulusLT applies the LT predicate on the "stimulus" field.
func StimulusLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldStimulus, v))
}

// StimulusLTE applies the LTE predicate on the "stimulus" field.
func StimulusLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldStimulus, v))
}

// StimulusContains applies the Contains predicate on the "stimulus" field.
func StimulusContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldStimulus, v))
}

// StimulusHasPrefix applies the HasPrefix predicate on the "stimulus" field.
func StimulusHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldStimulus, v))
}

// StimulusHasSuffix applies the HasSuffix predicate on the "stimulus" field.
func StimulusHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldStimulus, v))
}

// StimulusEqualFold applies the EqualFold predicate on the "stimulus" field.
func StimulusEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldStimulus, v))
}

// StimulusContainsFold applies the ContainsFold predicate on the "stimulus" field.
func StimulusContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldStimulus, v))
}

// HasOptions applies the HasEdge predicate on the "options" edge.
func HasOptions() predicate.Question {
	return predicate.Question(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, OptionsTable, OptionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasOptionsWith applies the HasEdge predicate on the "options" edge with a given conditions (other predicates).
func HasOptionsWith(preds ...predicate.ChoiceOption) predicate.Question {
	return predicate.Question(func(s *sql.Selector) {
		step := newOptionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTestSets applies the HasEdge predicate on the "test_sets" edge.
func HasTestSets() predicate.Question {
	return predicate.Question(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2M, true, TestSetsTable, TestSetsPrimaryKey...),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTestSetsWith applies the HasEdge predicate on the "test_sets" edge with a given conditions (other predicates).
func HasTestSetsWith(preds ...predicate.TestSet) predicate.Question {
	return predicate.Question(func(s *sql.Selector) {
		step := newTestSetsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Question) predicate.Question {
	return predicate.Question(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Question) predicate.Question {
	return predicate.Question(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Question) predicate.Question {
	return predicate.Question(sql.NotPredicates(p))
}
