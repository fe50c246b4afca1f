// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ayasuda/kanjidrill/ent/question"
)

// Question is the model entity for the Question schema.
type Question struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// The kanji or word being tested
	Pivot string `json:"pivot,omitempty"`
	// k (kanji) or w (word)
	PivotKind string `json:"pivot_kind,omitempty"`
	// rp, gp, pg or pr
	QuestionType string `json:"question_type,omitempty"`
	// Name of the factory that produced the question
	Plugin string `json:"plugin,omitempty"`
	// The prompt shown to the learner
	Stimulus string `json:"stimulus,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the QuestionQuery when eager-loading is set.
	Edges        QuestionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// QuestionEdges holds the relations/edges for other nodes in the graph.
type QuestionEdges struct {
	// Options holds the value of the options edge.
	Options []*ChoiceOption `json:"options,omitempty"`
	// TestSets holds the value of the test_sets edge.
	TestSets []*TestSet `json:"test_sets,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// OptionsOrErr returns the Options value or an error if the edge
// was not loaded in eager-loading.
func (e QuestionEdges) OptionsOrErr() ([]*ChoiceOption, error) {
	if e.loadedTypes[0] {
		return e.Options, nil
	}
	return nil, &NotLoadedError{edge: "options"}
}

// TestSetsOrErr returns the TestSets value or an error if the edge
// was not loaded in eager-loading.
func (e QuestionEdges) TestSetsOrErr() ([]*TestSet, error) {
	if e.loadedTypes[1] {
		return e.TestSets, nil
	}
	return nil, &NotLoadedError{edge: "test_sets"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Question) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case question.FieldID:
			values[i] = new(sql.NullInt64)
		case question.FieldPivot, question.FieldPivotKind, question.FieldQuestionType, question.FieldPlugin, question.FieldStimulus:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Question fields.
func (_m *Question) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case question.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case question.FieldPivot:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pivot", values[i])
			} else if value.Valid {
				_m.Pivot = value.String
			}
		case question.FieldPivotKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pivot_kind", values[i])
			} else if value.Valid {
				_m.PivotKind = value.String
			}
		case question.FieldQuestionType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field question_type", values[i])
			} else if value.Valid {
				_m.QuestionType = value.String
			}
		case question.FieldPlugin:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field plugin", values[i])
			} else if value.Valid {
				_m.Plugin = value.String
			}
		case question.FieldStimulus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stimulus", values[i])
			} else if value.Valid {
				_m.Stimulus = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Question.
// This includes values selected through modifiers, order, etc.
func (_m *Question) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryOptions queries the "options" edge of the Question entity.
func (_m *Question) QueryOptions() *ChoiceOptionQuery {
	return NewQuestionClient(_m.config).QueryOptions(_m)
}

// QueryTestSets queries the "test_sets" edge of the Question entity.
func (_m *Question) QueryTestSets() *TestSetQuery {
	return NewQuestionClient(_m.config).QueryTestSets(_m)
}

// Update returns a builder for updating this Question.
// Note that you need to call Question.Unwrap() before calling this method if this Question
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Question) Update() *QuestionUpdateOne {
	return NewQuestionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Question entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Question) Unwrap() *Question {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Question is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Question) String() string {
	var builder strings.Builder
	builder.WriteString("Question(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("pivot=")
	builder.WriteString(_m.Pivot)
	builder.WriteString(", ")
	builder.WriteString("pivot_kind=")
	builder.WriteString(_m.PivotKind)
	builder.WriteString(", ")
	builder.WriteString("question_type=")
	builder.WriteString(_m.QuestionType)
	builder.WriteString(", ")
	builder.WriteString("plugin=")
	builder.WriteString(_m.Plugin)
	builder.WriteString(", ")
	builder.WriteString("stimulus=")
	builder.WriteString(_m.Stimulus)
	builder.WriteByte(')')
	return builder.String()
}

// Questions is a parsable slice of Question.
type Questions []*Question
