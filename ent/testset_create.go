// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ayasuda/kanjidrill/ent/question"
	"github.com/ayasuda/kanjidrill/ent/response"
	"github.com/ayasuda/kanjidrill/ent/testset"
)

// TestSetCreate is the builder for creating a TestSet entity.
type TestSetCreate struct {
	config
	mutation *TestSetMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *TestSetCreate) SetUserID(v string) *TestSetCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetRandomSeed sets the "random_seed" field.
func (_c *TestSetCreate) SetRandomSeed(v int64) *TestSetCreate {
	_c.mutation.SetRandomSeed(v)
	return _c
}

// SetShuffleVersion sets the "shuffle_version" field.
func (_c *TestSetCreate) SetShuffleVersion(v int) *TestSetCreate {
	_c.mutation.SetShuffleVersion(v)
	return _c
}

// SetNillableShuffleVersion sets the "shuffle_version" field if the given value is not nil.
func (_c *TestSetCreate) SetNillableShuffleVersion(v *int) *TestSetCreate {
	if v != nil {
		_c.SetShuffleVersion(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TestSetCreate) SetCreatedAt(v time.Time) *TestSetCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TestSetCreate) SetNillableCreatedAt(v *time.Time) *TestSetCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// AddQuestionIDs adds the "questions" edge to the Question entity by IDs.
func (_c *TestSetCreate) AddQuestionIDs(ids ...int) *TestSetCreate {
	_c.mutation.AddQuestionIDs(ids...)
	return _c
}

// AddQuestions adds the "questions" edges to the Question entity.
func (_c *TestSetCreate) AddQuestions(v ...*Question) *TestSetCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddQuestionIDs(ids...)
}

// AddResponseIDs adds the "responses" edge to the Response entity by IDs.
func (_c *TestSetCreate) AddResponseIDs(ids ...int) *TestSetCreate {
	_c.mutation.AddResponseIDs(ids...)
	return _c
}

// AddResponses adds the "responses" edges to the Response entity.
func (_c *TestSetCreate) AddResponses(v ...*Response) *TestSetCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddResponseIDs(ids...)
}

// Mutation returns the TestSetMutation object of the builder.
func (_c *TestSetCreate) Mutation() *TestSetMutation {
	return _c.mutation
}

// Save creates the TestSet in the database.
func (_c *TestSetCreate) Save(ctx context.Context) (*TestSet, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TestSetCreate) SaveX(ctx context.Context) *TestSet {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TestSetCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TestSetCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TestSetCreate) defaults() {
	if _, ok := _c.mutation.ShuffleVersion(); !ok {
		v := testset.DefaultShuffleVersion
		_c.mutation.SetShuffleVersion(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := testset.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TestSetCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "TestSet.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := testset.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "TestSet.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RandomSeed(); !ok {
		return &ValidationError{Name: "random_seed", err: errors.New(`ent: missing required field "TestSet.random_seed"`)}
	}
	if _, ok := _c.mutation.ShuffleVersion(); !ok {
		return &ValidationError{Name: "shuffle_version", err: errors.New(`ent: missing required field "TestSet.shuffle_version"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TestSet.created_at"`)}
	}
	return nil
}

func (_c *TestSetCreate) sqlSave(ctx context.Context) (*TestSet, error) {
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

func (_c *TestSetCreate) createSpec() (*TestSet, *sqlgraph.CreateSpec) {
	var (
		_node = &TestSet{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(testset.Table, sqlgraph.NewFieldSpec(testset.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(testset.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.RandomSeed(); ok {
		_spec.SetField(testset.FieldRandomSeed, field.TypeInt64, value)
		_node.RandomSeed = value
	}
	if value, ok := _c.mutation.ShuffleVersion(); ok {
		_spec.SetField(testset.FieldShuffleVersion, field.TypeInt, value)
		_node.ShuffleVersion = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(testset.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.QuestionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: false,
			Table:   testset.QuestionsTable,
			Columns: testset.QuestionsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(question.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ResponsesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   testset.ResponsesTable,
			Columns: []string{testset.ResponsesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(response.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// TestSetCreateBulk is the builder for creating many TestSet entities in bulk.
type TestSetCreateBulk struct {
	config
	err      error
	builders []*TestSetCreate
}

// Save creates the TestSet entities in the database.
func (_c *TestSetCreateBulk) Save(ctx context.Context) ([]*TestSet, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TestSet, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TestSetMutation)
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
func (_c *TestSetCreateBulk) SaveX(ctx context.Context) []*TestSet {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TestSetCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TestSetCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
