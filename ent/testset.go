// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ayasuda/kanjidrill/ent/testset"
)

// TestSet is the model entity for the TestSet schema.
type TestSet struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Profile id of the learner the set was built for
	UserID string `json:"user_id,omitempty"`
	// Sole source of the set's reproducible ordering
	RandomSeed int64 `json:"random_seed,omitempty"`
	// Version of the shuffle algorithm the set was built under
	ShuffleVersion int `json:"shuffle_version,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TestSetQuery when eager-loading is set.
	Edges        TestSetEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TestSetEdges holds the relations/edges for other nodes in the graph.
type TestSetEdges struct {
	// Questions holds the value of the questions edge.
	Questions []*Question `json:"questions,omitempty"`
	// Responses holds the value of the responses edge.
	Responses []*Response `json:"responses,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// QuestionsOrErr returns the Questions value or an error if the edge
// was not loaded in eager-loading.
func (e TestSetEdges) QuestionsOrErr() ([]*Question, error) {
	if e.loadedTypes[0] {
		return e.Questions, nil
	}
	return nil, &NotLoadedError{edge: "questions"}
}

// ResponsesOrErr returns the Responses value or an error if the edge
// was not loaded in eager-loading.
func (e TestSetEdges) ResponsesOrErr() ([]*Response, error) {
	if e.loadedTypes[1] {
		return e.Responses, nil
	}
	return nil, &NotLoadedError{edge: "responses"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TestSet) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case testset.FieldID, testset.FieldRandomSeed, testset.FieldShuffleVersion:
			values[i] = new(sql.NullInt64)
		case testset.FieldUserID:
			values[i] = new(sql.NullString)
		case testset.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TestSet fields.
func (_m *TestSet) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case testset.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case testset.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case testset.FieldRandomSeed:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field random_seed", values[i])
			} else if value.Valid {
				_m.RandomSeed = value.Int64
			}
		case testset.FieldShuffleVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field shuffle_version", values[i])
			} else if value.Valid {
				_m.ShuffleVersion = int(value.Int64)
			}
		case testset.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TestSet.
// This includes values selected through modifiers, order, etc.
func (_m *TestSet) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryQuestions queries the "questions" edge of the TestSet entity.
func (_m *TestSet) QueryQuestions() *QuestionQuery {
	return NewTestSetClient(_m.config).QueryQuestions(_m)
}

// QueryResponses queries the "responses" edge of the TestSet entity.
func (_m *TestSet) QueryResponses() *ResponseQuery {
	return NewTestSetClient(_m.config).QueryResponses(_m)
}

// Update returns a builder for updating this TestSet.
// Note that you need to call TestSet.Unwrap() before calling this method if this TestSet
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TestSet) Update() *TestSetUpdateOne {
	return NewTestSetClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TestSet entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TestSet) Unwrap() *TestSet {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TestSet is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TestSet) String() string {
	var builder strings.Builder
	builder.WriteString("TestSet(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("random_seed=")
	builder.WriteString(fmt.Sprintf("%v", _m.RandomSeed))
	builder.WriteString(", ")
	builder.WriteString("shuffle_version=")
	builder.WriteString(fmt.Sprintf("%v", _m.ShuffleVersion))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TestSets is a parsable slice of TestSet.
type TestSets []*TestSet
