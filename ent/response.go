// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ayasuda/kanjidrill/ent/choiceoption"
	"github.com/ayasuda/kanjidrill/ent/question"
	"github.com/ayasuda/kanjidrill/ent/response"
	"github.com/ayasuda/kanjidrill/ent/testset"
)

// Response is the model entity for the Response schema.
type Response struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Profile id of the answering learner
	UserID string `json:"user_id,omitempty"`
	// UTC wall-clock time of the answer
	AnsweredAt time.Time `json:"answered_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ResponseQuery when eager-loading is set.
	Edges              ResponseEdges `json:"edges"`
	response_question  *int
	response_option    *int
	test_set_responses *int
	selectValues       sql.SelectValues
}

// ResponseEdges holds the relations/edges for other nodes in the graph.
type ResponseEdges struct {
	// Question holds the value of the question edge.
	Question *Question `json:"question,omitempty"`
	// Option holds the value of the option edge.
	Option *ChoiceOption `json:"option,omitempty"`
	// TestSet holds the value of the test_set edge.
	TestSet *TestSet `json:"test_set,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// QuestionOrErr returns the Question value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ResponseEdges) QuestionOrErr() (*Question, error) {
	if e.Question != nil {
		return e.Question, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: question.Label}
	}
	return nil, &NotLoadedError{edge: "question"}
}

// OptionOrErr returns the Option value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ResponseEdges) OptionOrErr() (*ChoiceOption, error) {
	if e.Option != nil {
		return e.Option, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: choiceoption.Label}
	}
	return nil, &NotLoadedError{edge: "option"}
}

// TestSetOrErr returns the TestSet value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ResponseEdges) TestSetOrErr() (*TestSet, error) {
	if e.TestSet != nil {
		return e.TestSet, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: testset.Label}
	}
	return nil, &NotLoadedError{edge: "test_set"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Response) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case response.FieldID:
			values[i] = new(sql.NullInt64)
		case response.FieldUserID:
			values[i] = new(sql.NullString)
		case response.FieldAnsweredAt:
			values[i] = new(sql.NullTime)
		case response.ForeignKeys[0]: // response_question
			values[i] = new(sql.NullInt64)
		case response.ForeignKeys[1]: // response_option
			values[i] = new(sql.NullInt64)
		case response.ForeignKeys[2]: // test_set_responses
			values[i] = new(sql.NullInt64)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Response fields.
func (_m *Response) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case response.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case response.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case response.FieldAnsweredAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field answered_at", values[i])
			} else if value.Valid {
				_m.AnsweredAt = value.Time
			}
		case response.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for edge-field response_question", value)
			} else if value.Valid {
				_m.response_question = new(int)
				*_m.response_question = int(value.Int64)
			}
		case response.ForeignKeys[1]:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for edge-field response_option", value)
			} else if value.Valid {
				_m.response_option = new(int)
				*_m.response_option = int(value.Int64)
			}
		case response.ForeignKeys[2]:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for edge-field test_set_responses", value)
			} else if value.Valid {
				_m.test_set_responses = new(int)
				*_m.test_set_responses = int(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Response.
// This includes values selected through modifiers, order, etc.
func (_m *Response) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryQuestion queries the "question" edge of the Response entity.
func (_m *Response) QueryQuestion() *QuestionQuery {
	return NewResponseClient(_m.config).QueryQuestion(_m)
}

// QueryOption queries the "option" edge of the Response entity.
func (_m *Response) QueryOption() *ChoiceOptionQuery {
	return NewResponseClient(_m.config).QueryOption(_m)
}

// QueryTestSet queries the "test_set" edge of the Response entity.
func (_m *Response) QueryTestSet() *TestSetQuery {
	return NewResponseClient(_m.config).QueryTestSet(_m)
}

// Update returns a builder for updating this Response.
// Note that you need to call Response.Unwrap() before calling this method if this Response
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Response) Update() *ResponseUpdateOne {
	return NewResponseClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Response entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Response) Unwrap() *Response {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Response is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Response) String() string {
	var builder strings.Builder
	builder.WriteString("Response(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("answered_at=")
	builder.WriteString(_m.AnsweredAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Responses is a parsable slice of Response.
type Responses []*Response
