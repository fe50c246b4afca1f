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
)

// ChoiceOptionCreate is the builder for creating a ChoiceOption entity.
type ChoiceOptionCreate struct {
	config
	mutation *ChoiceOptionMutation
	hooks    []Hook
}

// SetValue sets the "value" field.
func (_c *ChoiceOptionCreate) SetValue(v string) *ChoiceOptionCreate {
	_c.mutation.SetValue(v)
	return _c
}

// SetIsCorrect sets the "is_correct" field.
func (_c *ChoiceOptionCreate) SetIsCorrect(v bool) *ChoiceOptionCreate {
	_c.mutation.SetIsCorrect(v)
	return _c
}

// SetNillableIsCorrect sets the "is_correct" field if the given value is not nil.
func (_c *ChoiceOptionCreate) SetNillableIsCorrect(v *bool) *ChoiceOptionCreate {
	if v != nil {
		_c.SetIsCorrect(*v)
	}
	return _c
}

// SetQuestionID sets the "question" edge to the Question entity by ID.
func (_c *ChoiceOptionCreate) SetQuestionID(id int) *ChoiceOptionCreate {
	_c.mutation.SetQuestionID(id)
	return _c
}

// SetQuestion sets the "question" edge to the Question entity.
func (_c *ChoiceOptionCreate) SetQuestion(v *Question) *ChoiceOptionCreate {
	return _c.SetQuestionID(v.ID)
}

// Mutation returns the ChoiceOptionMutation object of the builder.
func (_c *ChoiceOptionCreate) Mutation() *ChoiceOptionMutation {
	return _c.mutation
}

// Save creates the ChoiceOption in the database.
func (_c *ChoiceOptionCreate) Save(ctx context.Context) (*ChoiceOption, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ChoiceOptionCreate) SaveX(ctx context.Context) *ChoiceOption {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChoiceOptionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChoiceOptionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ChoiceOptionCreate) defaults() {
	if _, ok := _c.mutation.IsCorrect(); !ok {
		v := choiceoption.DefaultIsCorrect
		_c.mutation.SetIsCorrect(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ChoiceOptionCreate) check() error {
	if _, ok := _c.mutation.Value(); !ok {
		return &ValidationError{Name: "value", err: errors.New(`ent: missing required field "ChoiceOption.value"`)}
	}
	if v, ok := _c.mutation.Value(); ok {
		if err := choiceoption.ValueValidator(v); err != nil {
			return &ValidationError{Name: "value", err: fmt.Errorf(`ent: validator failed for field "ChoiceOption.value": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsCorrect(); !ok {
		return &ValidationError{Name: "is_correct", err: errors.New(`ent: missing required field "ChoiceOption.is_correct"`)}
	}
	if len(_c.mutation.QuestionIDs()) == 0 {
		return &ValidationError{Name: "question", err: errors.New(`ent: missing required edge "ChoiceOption.question"`)}
	}
	return nil
}

func (_c *ChoiceOptionCreate) sqlSave(ctx context.Context) (*ChoiceOption, error) {
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

func (_c *ChoiceOptionCreate) createSpec() (*ChoiceOption, *sqlgraph.CreateSpec) {
	var (
		_node = &ChoiceOption{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(choiceoption.Table, sqlgraph.NewFieldSpec(choiceoption.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Value(); ok {
		_spec.SetField(choiceoption.FieldValue, field.TypeString, value)
		_node.Value = value
	}
	if value, ok := _c.mutation.IsCorrect(); ok {
		_spec.SetField(choiceoption.FieldIsCorrect, field.TypeBool, value)
		_node.IsCorrect = value
	}
	if nodes := _c.mutation.QuestionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   choiceoption.QuestionTable,
			Columns: []string{choiceoption.QuestionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(question.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.question_options = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ChoiceOptionCreateBulk is the builder for creating many ChoiceOption entities in bulk.
type ChoiceOptionCreateBulk struct {
	config
	err      error
	builders []*ChoiceOptionCreate
}

// Save creates the ChoiceOption entities in the database.
func (_c *ChoiceOptionCreateBulk) Save(ctx context.Context) ([]*ChoiceOption, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ChoiceOption, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ChoiceOptionMutation)
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
func (_c *ChoiceOptionCreateBulk) SaveX(ctx context.Context) []*ChoiceOption {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChoiceOptionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChoiceOptionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
