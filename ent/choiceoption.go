// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ayasuda/kanjidrill/ent/choiceoption"
	"github.com/ayasuda/kanjidrill/ent/question"
)

// ChoiceOption is the model entity for the ChoiceOption schema.
type ChoiceOption struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Display value of the option
	Value string `json:"value,omitempty"`
	// Whether this option is the correct answer
	IsCorrect bool `json:"is_correct,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ChoiceOptionQuery when eager-loading is set.
	Edges            ChoiceOptionEdges `json:"edges"`
	question_options *int
	selectValues     sql.SelectValues
}

// ChoiceOptionEdges holds the relations/edges for other nodes in the graph.
type ChoiceOptionEdges struct {
	// Question holds the value of the question edge.
	Question *Question `json:"question,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// QuestionOrErr returns the Question value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ChoiceOptionEdges) QuestionOrErr() (*Question, error) {
	if e.Question != nil {
		return e.Question, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: question.Label}
	}
	return nil, &NotLoadedError{edge: "question"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ChoiceOption) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case choiceoption.FieldIsCorrect:
			values[i] = new(sql.NullBool)
		case choiceoption.FieldID:
			values[i] = new(sql.NullInt64)
		case choiceoption.FieldValue:
			values[i] = new(sql.NullString)
		case choiceoption.ForeignKeys[0]: // question_options
			values[i] = new(sql.NullInt64)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ChoiceOption fields.
func (_m *ChoiceOption) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case choiceoption.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case choiceoption.FieldValue:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field value", values[i])
			} else if value.Valid {
				_m.Value = value.String
			}
		case choiceoption.FieldIsCorrect:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_correct", values[i])
			} else if value.Valid {
				_m.IsCorrect = value.Bool
			}
		case choiceoption.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for edge-field question_options", value)
			} else if value.Valid {
				_m.question_options = new(int)
				*_m.question_options = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// GetValue returns the ent.Value that was dynamically selected and assigned to the ChoiceOption.
// This includes values selected through modifiers, order, etc.
func (_m *ChoiceOption) GetValue(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryQuestion queries the "question" edge of the ChoiceOption entity.
func (_m *ChoiceOption) QueryQuestion() *QuestionQuery {
	return NewChoiceOptionClient(_m.config).QueryQuestion(_m)
}

// Update returns a builder for updating this ChoiceOption.
// Note that you need to call ChoiceOption.Unwrap() before calling this method if this ChoiceOption
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ChoiceOption) Update() *ChoiceOptionUpdateOne {
	return NewChoiceOptionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ChoiceOption entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ChoiceOption) Unwrap() *ChoiceOption {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ChoiceOption is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ChoiceOption) String() string {
	var builder strings.Builder
	builder.WriteString("ChoiceOption(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("value=")
	builder.WriteString(_m.Value)
	builder.WriteString(", ")
	builder.WriteString("is_correct=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsCorrect))
	builder.WriteByte(')')
	return builder.String()
}

// ChoiceOptions is a parsable slice of ChoiceOption.
type ChoiceOptions []*ChoiceOption
