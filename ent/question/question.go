// Code generated by ent, DO NOT EDIT.

package question

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the question type in the database.
	Label = "question"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldPivot holds the string denoting the pivot field in the database.
	FieldPivot = "pivot"
	// FieldPivotKind holds the string denoting the pivot_kind field in the database.
	FieldPivotKind = "pivot_kind"
	// FieldQuestionType holds the string denoting the question_type field in the database.
	FieldQuestionType = "question_type"
	// FieldPlugin holds the string denoting the plugin field in the database.
	FieldPlugin = "plugin"
	// FieldStimulus holds the string denoting the stimulus field in the database.
	FieldStimulus = "stimulus"
	// EdgeOptions holds the string denoting the options edge name in mutations.
	EdgeOptions = "options"
	// EdgeTestSets holds the string denoting the test_sets edge name in mutations.
	EdgeTestSets = "test_sets"
	// Table holds the table name of the question in the database.
	Table = "questions"
	// OptionsTable is the table that holds the options relation/edge.
	OptionsTable = "choice_options"
	// OptionsInverseTable is the table name for the ChoiceOption entity.
	// It exists in this package in order to avoid circular dependency with the "choiceoption" package.
	OptionsInverseTable = "choice_options"
	// OptionsColumn is the table column denoting the options relation/edge.
	OptionsColumn = "question_options"
	// TestSetsTable is the table that holds the test_sets relation/edge. The primary key declared below.
	TestSetsTable = "test_set_questions"
	// TestSetsInverseTable is the table name for the TestSet entity.
	// It exists in this package in order to avoid circular dependency with the "testset" package.
	TestSetsInverseTable = "test_sets"
)

// Columns holds all SQL columns for question fields.
var Columns = []string{
	FieldID,
	FieldPivot,
	FieldPivotKind,
	FieldQuestionType,
	FieldPlugin,
	FieldStimulus,
}

var (
	// TestSetsPrimaryKey and TestSetsColumn2 are the table columns denoting the
	// primary key for the test_sets relation (M2M).
	TestSetsPrimaryKey = []string{"test_set_id", "question_id"}
)

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// PivotValidator is a validator for the "pivot" field. It is called by the builders before save.
	PivotValidator func(string) error
	// PivotKindValidator is a validator for the "pivot_kind" field. It is called by the builders before save.
	PivotKindValidator func(string) error
	// QuestionTypeValidator is a validator for the "question_type" field. It is called by the builders before save.
	QuestionTypeValidator func(string) error
	// PluginValidator is a validator for the "plugin" field. It is called by the builders before save.
	PluginValidator func(string) error
	// StimulusValidator is a validator for the "stimulus" field. It is called by the builders before save.
	StimulusValidator func(string) error
)

// OrderOption defines the ordering options for the Question queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPivot orders the results by the pivot field.
func ByPivot(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPivot, opts...).ToFunc()
}

// ByPivotKind orders the results by the pivot_kind field.
func ByPivotKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPivotKind, opts...).ToFunc()
}

// ByQuestionType orders the results by the question_type field.
func ByQuestionType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuestionType, opts...).ToFunc()
}

// ByPlugin orders the results by the plugin field.
func ByPlugin(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlugin, opts...).ToFunc()
}

// ByStimulus orders the results by the stimulus field.
func ByStimulus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStimulus, opts...).ToFunc()
}

// ByOptionsCount orders the results by options count.
func ByOptionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newOptionsStep(), opts...)
	}
}

// ByOptions orders the results by options terms.
func ByOptions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newOptionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByTestSetsCount orders the results by test_sets count.
func ByTestSetsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newTestSetsStep(), opts...)
	}
}

// ByTestSets orders the results by test_sets terms.
func ByTestSets(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTestSetsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newOptionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(OptionsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, OptionsTable, OptionsColumn),
	)
}
func newTestSetsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TestSetsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2M, true, TestSetsTable, TestSetsPrimaryKey...),
	)
}
