// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ayasuda/kanjidrill/ent/choiceoption"
	"github.com/ayasuda/kanjidrill/ent/question"
	"github.com/ayasuda/kanjidrill/ent/testset"
)

// QuestionCreate is the builder for creating a Question entity.
type QuestionCreate struct {
	config
	mutation *QuestionMutation
	hooks    []Hook
}

// SetPivot sets the "pivot" field.
func (_c *QuestionCreate) SetPivot(v string) *QuestionCreate {
	_c.mutation.SetPivot(v)
	return _c
}

// SetPivotKind sets the "pivot_kind" field.
func (_c *QuestionCreate) SetPivotKind(v string) *QuestionCreate {
	_c.mutation.SetPivotKind(v)
	return _c
}

// SetQuestionType sets the "question_type" field.
func (_c *QuestionCreate) SetQuestionType(v string) *QuestionCreate {
	_c.mutation.SetQuestionType(v)
	return _c
}

// SetPlugin sets the "plugin" field.
func (_c *QuestionCreate) SetPlugin(v string) *QuestionCreate {
	_c.mutation.SetPlugin(v)
	return _c
}

// SetStimulus sets the "stimulus" field.
func (_c *QuestionCreate) SetStimulus(v string) *QuestionCreate {
	_c.mutation.SetStimulus(v)
	return _c
}

// AddOptionIDs adds the "options" edge to the ChoiceOption entity by IDs.
func (_c *QuestionCreate) AddOptionIDs(ids ...int) *QuestionCreate {
	_c.mutation.AddOptionIDs(ids...)
	return _c
}

// AddOptions adds the "options" edges to the ChoiceOption entity.
func (_c *QuestionCreate) AddOptions(v ...*ChoiceOption) *QuestionCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddOptionIDs(ids...)
}

// AddTestSetIDs adds the "test_sets" edge to the TestSet entity by IDs.
func (_c *QuestionCreate) AddTestSetIDs(ids ...int) *QuestionCreate {
	_c.mutation.AddTestSetIDs(ids...)
	return _c
}

// AddTestSets adds the "test_sets" edges to the TestSet entity.
func (_c *QuestionCreate) AddTestSets(v ...*TestSet) *QuestionCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTestSetIDs(ids...)
}

// Mutation returns the QuestionMutation object of the builder.
func (_c *QuestionCreate) Mutation() *QuestionMutation {
	return _c.mutation
}

// Save creates the Question in the database.
func (_c *QuestionCreate) Save(ctx context.Context) (*Question, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuestionCreate) SaveX(ctx context.Context) *Question {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuestionCreate) check() error {
	if _, ok := _c.mutation.Pivot(); !ok {
		return &ValidationError{Name: "pivot", err: errors.New(`ent: missing required field "Question.pivot"`)}
	}
	if v, ok := _c.mutation.Pivot(); ok {
		if err := question.PivotValidator(v); err != nil {
			return &ValidationError{Name: "pivot", err: fmt.Errorf(`ent: validator failed for field "Question.pivot": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PivotKind(); !ok {
		return &ValidationError{Name: "pivot_kind", err: errors.New(`ent: missing required field "Question.pivot_kind"`)}
	}
	if v, ok := _c.mutation.PivotKind(); ok {
		if err := question.PivotKindValidator(v); err != nil {
			return &ValidationError{Name: "pivot_kind", err: fmt.Errorf(`ent: validator failed for field "Question.pivot_kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionType(); !ok {
		return &ValidationError{Name: "question_type", err: errors.New(`ent: missing required field "Question.question_type"`)}
	}
	if v, ok := _c.mutation.QuestionType(); ok {
		if err := question.QuestionTypeValidator(v); err != nil {
			return &ValidationError{Name: "question_type", err: fmt.Errorf(`ent: validator failed for field "Question.question_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Plugin(); !ok {
		return &ValidationError{Name: "plugin", err: errors.New(`ent: missing required field "Question.plugin"`)}
	}
	if v, ok := _c.mutation.Plugin(); ok {
		if err := question.PluginValidator(v); err != nil {
			return &ValidationError{Name: "plugin", err: fmt.Errorf(`ent: validator failed for field "Question.plugin": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Stimulus(); !ok {
		return &ValidationError{Name: "stimulus", err: errors.New(`ent: missing required field "Question.stimulus"`)}
	}
	if v, ok := _c.mutation.Stimulus(); ok {
		if err := question.StimulusValidator(v); err != nil {
			return &ValidationError{Name: "stimulus", err: fmt.Errorf(`ent: validator failed for field "Question.stimulus": %w`, err)}
		}
	}
	return nil
}

func (_c *QuestionCreate) sqlSave(ctx context.Context) (*Question, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *QuestionCreate) createSpec() (*Question, *sqlgraph.CreateSpec) {
	var (
		_node = &Question{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(question.Table, sqlgraph.NewFieldSpec(question.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Pivot(); ok {
		_spec.SetField(question.FieldPivot, field.TypeString, value)
		_node.Pivot = value
	}
	if value, ok := _c.mutation.PivotKind(); ok {
		_spec.SetField(question.FieldPivotKind, field.TypeString, value)
		_node.PivotKind = value
	}
	if value, ok := _c.mutation.QuestionType(); ok {
		_spec.SetField(question.FieldQuestionType, field.TypeString, value)
		_node.QuestionType = value
	}
	if value, ok := _c.mutation.Plugin(); ok {
		_spec.SetField(question.FieldPlugin, field.TypeString, value)
		_node.Plugin = value
	}
	if value, ok := _c.mutation.Stimulus(); ok {
		_spec.SetField(question.FieldStimulus, field.TypeString, value)
		_node.Stimulus = value
	}
	if nodes := _c.mutation.OptionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   question.OptionsTable,
			Columns: []string{question.OptionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(choiceoption.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TestSetsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   question.TestSetsTable,
			Columns: question.TestSetsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(testset.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// QuestionCreateBulk is the builder for creating many Question entities in bulk.
type QuestionCreateBulk struct {
	config
	err      error
	builders []*QuestionCreate
}

// Save creates the Question entities in the database.
func (_c *QuestionCreateBulk) Save(ctx context.Context) ([]*Question, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Question, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuestionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *QuestionCreateBulk) SaveX(ctx context.Context) []*Question {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
