// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ChoiceOption is the predicate function for choiceoption builders.
type ChoiceOption func(*sql.Selector)

// Question is the predicate function for question builders.
type Question func(*sql.Selector)

// Response is the predicate function for response builders.
type Response func(*sql.Selector)

// TestSet is the predicate function for testset builders.
type TestSet func(*sql.Selector)
