// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ayasuda/kanjidrill/ent/choiceoption"
	"github.com/ayasuda/kanjidrill/ent/predicate"
	"github.com/ayasuda/kanjidrill/ent/question"
	"github.com/ayasuda/kanjidrill/ent/response"
	"github.com/ayasuda/kanjidrill/ent/testset"
)

// ResponseUpdate is the builder for updating Response entities.
type ResponseUpdate struct {
	config
	hooks    []Hook
	mutation *ResponseMutation
}

// Where appends a list predicates to the ResponseUpdate builder.
func (_u *ResponseUpdate) Where(ps ...predicate.Response) *ResponseUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetQuestionID sets the "question" edge to the Question entity by ID.
func (_u *ResponseUpdate) SetQuestionID(id int) *ResponseUpdate {
	_u.mutation.SetQuestionID(id)
	return _u
}

// SetQuestion sets the "question" edge to the Question entity.
func (_u *ResponseUpdate) SetQuestion(v *Question) *ResponseUpdate {
	return _u.SetQuestionID(v.ID)
}

// SetOptionID sets the "option" edge to the ChoiceOption entity by ID.
func (_u *ResponseUpdate) SetOptionID(id int) *ResponseUpdate {
	_u.mutation.SetOptionID(id)
	return _u
}

// SetOption sets the "option" edge to the ChoiceOption entity.
func (_u *ResponseUpdate) SetOption(v *ChoiceOption) *ResponseUpdate {
	return _u.SetOptionID(v.ID)
}

// SetTestSetID sets the "test_set" edge to the TestSet entity by ID.
func (_u *ResponseUpdate) SetTestSetID(id int) *ResponseUpdate {
	_u.mutation.SetTestSetID(id)
	return _u
}

// SetNillableTestSetID sets the "test_set" edge to the TestSet entity by ID if the given value is not nil.
func (_u *ResponseUpdate) SetNillableTestSetID(id *int) *ResponseUpdate {
	if id != nil {
		_u = _u.SetTestSetID(*id)
	}
	return _u
}

// SetTestSet sets the "test_set" edge to the TestSet entity.
func (_u *ResponseUpdate) SetTestSet(v *TestSet) *ResponseUpdate {
	return _u.SetTestSetID(v.ID)
}

// Mutation returns the ResponseMutation object of the builder.
func (_u *ResponseUpdate) Mutation() *ResponseMutation {
	return _u.mutation
}

// ClearQuestion clears the "question" edge to the Question entity.
func (_u *ResponseUpdate) ClearQuestion() *ResponseUpdate {
	_u.mutation.ClearQuestion()
	return _u
}

// ClearOption clears the "option" edge to the ChoiceOption entity.
func (_u *ResponseUpdate) ClearOption() *ResponseUpdate {
	_u.mutation.ClearOption()
	return _u
}

// ClearTestSet clears the "test_set" edge to the TestSet entity.
func (_u *ResponseUpdate) ClearTestSet() *ResponseUpdate {
	_u.mutation.ClearTestSet()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ResponseUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResponseUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ResponseUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResponseUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResponseUpdate) check() error {
	if _u.mutation.QuestionCleared() && len(_u.mutation.QuestionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Response.question"`)
	}
	if _u.mutation.OptionCleared() && len(_u.mutation.OptionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Response.option"`)
	}
	return nil
}

func (_u *ResponseUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(response.Table, response.Columns, sqlgraph.NewFieldSpec(response.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.QuestionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   response.QuestionTable,
			Columns: []string{response.QuestionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(question.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QuestionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   response.QuestionTable,
			Columns: []string{response.QuestionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(question.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.OptionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   response.OptionTable,
			Columns: []string{response.OptionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(choiceoption.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OptionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   response.OptionTable,
			Columns: []string{response.OptionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(choiceoption.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TestSetCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   response.TestSetTable,
			Columns: []string{response.TestSetColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(testset.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TestSetIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   response.TestSetTable,
			Columns: []string{response.TestSetColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(testset.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{response.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ResponseUpdateOne is the builder for updating a single Response entity.
type ResponseUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ResponseMutation
}

// SetQuestionID sets the "question" edge to the Question entity by ID.
func (_u *ResponseUpdateOne) SetQuestionID(id int) *ResponseUpdateOne {
	_u.mutation.SetQuestionID(id)
	return _u
}

// SetQuestion sets the "question" edge to the Question entity.
func (_u *ResponseUpdateOne) SetQuestion(v *Question) *ResponseUpdateOne {
	return _u.SetQuestionID(v.ID)
}

// SetOptionID sets the "option" edge to the ChoiceOption entity by ID.
func (_u *ResponseUpdateOne) SetOptionID(id int) *ResponseUpdateOne {
	_u.mutation.SetOptionID(id)
	return _u
}

// SetOption sets the "option" edge to the ChoiceOption entity.
func (_u *ResponseUpdateOne) SetOption(v *ChoiceOption) *ResponseUpdateOne {
	return _u.SetOptionID(v.ID)
}

// SetTestSetID sets the "test_set" edge to the TestSet entity by ID.
func (_u *ResponseUpdateOne) SetTestSetID(id int) *ResponseUpdateOne {
	_u.mutation.SetTestSetID(id)
	return _u
}

// SetNillableTestSetID sets the "test_set" edge to the TestSet entity by ID if the given value is not nil.
func (_u *ResponseUpdateOne) SetNillableTestSetID(id *int) *ResponseUpdateOne {
	if id != nil {
		_u = _u.SetTestSetID(*id)
	}
	return _u
}

// SetTestSet sets the "test_set" edge to the TestSet entity.
func (_u *ResponseUpdateOne) SetTestSet(v *TestSet) *ResponseUpdateOne {
	return _u.SetTestSetID(v.ID)
}

// Mutation returns the ResponseMutation object of the builder.
func (_u *ResponseUpdateOne) Mutation() *ResponseMutation {
	return _u.mutation
}

// ClearQuestion clears the "question" edge to the Question entity.
func (_u *ResponseUpdateOne) ClearQuestion() *ResponseUpdateOne {
	_u.mutation.ClearQuestion()
	return _u
}

// ClearOption clears the "option" edge to the ChoiceOption entity.
func (_u *ResponseUpdateOne) ClearOption() *ResponseUpdateOne {
	_u.mutation.ClearOption()
	return _u
}

// ClearTestSet clears the "test_set" edge to the TestSet entity.
func (_u *ResponseUpdateOne) ClearTestSet() *ResponseUpdateOne {
	_u.mutation.ClearTestSet()
	return _u
}

// Where appends a list predicates to the ResponseUpdate builder.
func (_u *ResponseUpdateOne) Where(ps ...predicate.Response) *ResponseUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ResponseUpdateOne) Select(field string, fields ...string) *ResponseUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Response entity.
func (_u *ResponseUpdateOne) Save(ctx context.Context) (*Response, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ResponseUpdateOne) SaveX(ctx context.Context) *Response {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ResponseUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ResponseUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ResponseUpdateOne) check() error {
	if _u.mutation.QuestionCleared() && len(_u.mutation.QuestionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Response.question"`)
	}
	if _u.mutation.OptionCleared() && len(_u.mutation.OptionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Response.option"`)
	}
	return nil
}

func (_u *ResponseUpdateOne) sqlSave(ctx context.Context) (_node *Response, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(response.Table, response.Columns, sqlgraph.NewFieldSpec(response.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Response.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, response.FieldID)
		for _, f := range fields {
			if !response.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != response.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.QuestionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   response.QuestionTable,
			Columns: []string{response.QuestionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(question.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.QuestionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   response.QuestionTable,
			Columns: []string{response.QuestionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(question.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.OptionCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   response.OptionTable,
			Columns: []string{response.OptionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(choiceoption.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OptionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   response.OptionTable,
			Columns: []string{response.OptionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(choiceoption.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TestSetCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   response.TestSetTable,
			Columns: []string{response.TestSetColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(testset.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TestSetIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   response.TestSetTable,
			Columns: []string{response.TestSetColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(testset.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Response{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{response.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
