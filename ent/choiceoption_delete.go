// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ayasuda/kanjidrill/ent/choiceoption"
	"github.com/ayasuda/kanjidrill/ent/predicate"
)

// ChoiceOptionDelete is the builder for deleting a ChoiceOption entity.
type ChoiceOptionDelete struct {
	config
	hooks    []Hook
	mutation *ChoiceOptionMutation
}

// Where appends a list predicates to the ChoiceOptionDelete builder.
func (_d *ChoiceOptionDelete) Where(ps ...predicate.ChoiceOption) *ChoiceOptionDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ChoiceOptionDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ChoiceOptionDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ChoiceOptionDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(choiceoption.Table, sqlgraph.NewFieldSpec(choiceoption.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// ChoiceOptionDeleteOne is the builder for deleting a single ChoiceOption entity.
type ChoiceOptionDeleteOne struct {
	_d *ChoiceOptionDelete
}

// Where appends a list predicates to the ChoiceOptionDelete builder.
func (_d *ChoiceOptionDeleteOne) Where(ps ...predicate.ChoiceOption) *ChoiceOptionDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ChoiceOptionDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{choiceoption.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ChoiceOptionDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
