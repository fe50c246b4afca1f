// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ayasuda/kanjidrill/ent/choiceoption"
	"github.com/ayasuda/kanjidrill/ent/predicate"
	"github.com/ayasuda/kanjidrill/ent/question"
	"github.com/ayasuda/kanjidrill/ent/response"
	"github.com/ayasuda/kanjidrill/ent/testset"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeChoiceOption = "ChoiceOption"
	TypeQuestion     = "Question"
	TypeResponse     = "Response"
	TypeTestSet      = "TestSet"
)

// ChoiceOptionMutation represents an operation that mutates the ChoiceOption nodes in the graph.
type ChoiceOptionMutation struct {
	config
	op              Op
	typ             string
	id              *int
	value           *string
	is_correct      *bool
	clearedFields   map[string]struct{}
	question        *int
	clearedquestion bool
	done            bool
	oldValue        func(context.Context) (*ChoiceOption, error)
	predicates      []predicate.ChoiceOption
}

var _ ent.Mutation = (*ChoiceOptionMutation)(nil)

// choiceoptionOption allows management of the mutation configuration using functional options.
type choiceoptionOption func(*ChoiceOptionMutation)

// newChoiceOptionMutation creates new mutation for the ChoiceOption entity.
func newChoiceOptionMutation(c config, op Op, opts ...choiceoptionOption) *ChoiceOptionMutation {
	m := &ChoiceOptionMutation{
		config:        c,
		op:            op,
		typ:           TypeChoiceOption,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withChoiceOptionID sets the ID field of the mutation.
func withChoiceOptionID(id int) choiceoptionOption {
	return func(m *ChoiceOptionMutation) {
		var (
			err   error
			once  sync.Once
			value *ChoiceOption
		)
		m.oldValue = func(ctx context.Context) (*ChoiceOption, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ChoiceOption.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withChoiceOption sets the old ChoiceOption of the mutation.
func withChoiceOption(node *ChoiceOption) choiceoptionOption {
	return func(m *ChoiceOptionMutation) {
		m.oldValue = func(context.Context) (*ChoiceOption, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ChoiceOptionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ChoiceOptionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ChoiceOptionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ChoiceOptionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ChoiceOption.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetValue sets the "value" field.
func (m *ChoiceOptionMutation) SetValue(s string) {
	m.value = &s
}

// Value returns the value of the "value" field in the mutation.
func (m *ChoiceOptionMutation) Value() (r string, exists bool) {
	v := m.value
	if v == nil {
		return
	}
	return *v, true
}

// OldValue returns the old "value" field's value of the ChoiceOption entity.
// If the ChoiceOption object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChoiceOptionMutation) OldValue(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValue: %w", err)
	}
	return oldValue.Value, nil
}

// ResetValue resets all changes to the "value" field.
func (m *ChoiceOptionMutation) ResetValue() {
	m.value = nil
}

// SetIsCorrect sets the "is_correct" field.
func (m *ChoiceOptionMutation) SetIsCorrect(b bool) {
	m.is_correct = &b
}

// IsCorrect returns the value of the "is_correct" field in the mutation.
func (m *ChoiceOptionMutation) IsCorrect() (r bool, exists bool) {
	v := m.is_correct
	if v == nil {
		return
	}
	return *v, true
}

// OldIsCorrect returns the old "is_correct" field's value of the ChoiceOption entity.
// If the ChoiceOption object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChoiceOptionMutation) OldIsCorrect(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsCorrect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsCorrect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsCorrect: %w", err)
	}
	return oldValue.IsCorrect, nil
}

// ResetIsCorrect resets all changes to the "is_correct" field.
func (m *ChoiceOptionMutation) ResetIsCorrect() {
	m.is_correct = nil
}

// SetQuestionID sets the "question" edge to the Question entity by id.
func (m *ChoiceOptionMutation) SetQuestionID(id int) {
	m.question = &id
}

// ClearQuestion clears the "question" edge to the Question entity.
func (m *ChoiceOptionMutation) ClearQuestion() {
	m.clearedquestion = true
}

// QuestionCleared reports if the "question" edge to the Question entity was cleared.
func (m *ChoiceOptionMutation) QuestionCleared() bool {
	return m.clearedquestion
}

// QuestionID returns the "question" edge ID in the mutation.
func (m *ChoiceOptionMutation) QuestionID() (id int, exists bool) {
	if m.question != nil {
		return *m.question, true
	}
	return
}

// QuestionIDs returns the "question" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// QuestionID instead. It exists only for internal usage by the builders.
func (m *ChoiceOptionMutation) QuestionIDs() (ids []int) {
	if id := m.question; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetQuestion resets all changes to the "question" edge.
func (m *ChoiceOptionMutation) ResetQuestion() {
	m.question = nil
	m.clearedquestion = false
}

// Where appends a list predicates to the ChoiceOptionMutation builder.
func (m *ChoiceOptionMutation) Where(ps ...predicate.ChoiceOption) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ChoiceOptionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ChoiceOptionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ChoiceOption, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ChoiceOptionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ChoiceOptionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ChoiceOption).
func (m *ChoiceOptionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ChoiceOptionMutation) Fields() []string {
	fields := make([]string, 0, 2)
	if m.value != nil {
		fields = append(fields, choiceoption.FieldValue)
	}
	if m.is_correct != nil {
		fields = append(fields, choiceoption.FieldIsCorrect)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ChoiceOptionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case choiceoption.FieldValue:
		return m.Value()
	case choiceoption.FieldIsCorrect:
		return m.IsCorrect()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ChoiceOptionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case choiceoption.FieldValue:
		return m.OldValue(ctx)
	case choiceoption.FieldIsCorrect:
		return m.OldIsCorrect(ctx)
	}
	return nil, fmt.Errorf("unknown ChoiceOption field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChoiceOptionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case choiceoption.FieldValue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValue(v)
		return nil
	case choiceoption.FieldIsCorrect:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsCorrect(v)
		return nil
	}
	return fmt.Errorf("unknown ChoiceOption field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ChoiceOptionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ChoiceOptionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChoiceOptionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ChoiceOption numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ChoiceOptionMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ChoiceOptionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ChoiceOptionMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ChoiceOption nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ChoiceOptionMutation) ResetField(name string) error {
	switch name {
	case choiceoption.FieldValue:
		m.ResetValue()
		return nil
	case choiceoption.FieldIsCorrect:
		m.ResetIsCorrect()
		return nil
	}
	return fmt.Errorf("unknown ChoiceOption field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ChoiceOptionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.question != nil {
		edges = append(edges, choiceoption.EdgeQuestion)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ChoiceOptionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case choiceoption.EdgeQuestion:
		if id := m.question; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ChoiceOptionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ChoiceOptionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ChoiceOptionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedquestion {
		edges = append(edges, choiceoption.EdgeQuestion)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ChoiceOptionMutation) EdgeCleared(name string) bool {
	switch name {
	case choiceoption.EdgeQuestion:
		return m.clearedquestion
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ChoiceOptionMutation) ClearEdge(name string) error {
	switch name {
	case choiceoption.EdgeQuestion:
		m.ClearQuestion()
		return nil
	}
	return fmt.Errorf("unknown ChoiceOption unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ChoiceOptionMutation) ResetEdge(name string) error {
	switch name {
	case choiceoption.EdgeQuestion:
		m.ResetQuestion()
		return nil
	}
	return fmt.Errorf("unknown ChoiceOption edge %s", name)
}

// QuestionMutation represents an operation that mutates the Question nodes in the graph.
type QuestionMutation struct {
	config
	op               Op
	typ              string
	id               *int
	pivot            *string
	pivot_kind       *string
	question_type    *string
	plugin           *string
	stimulus         *string
	clearedFields    map[string]struct{}
	options          map[int]struct{}
	removedoptions   map[int]struct{}
	clearedoptions   bool
	test_sets        map[int]struct{}
	removedtest_sets map[int]struct{}
	clearedtest_sets bool
	done             bool
	oldValue         func(context.Context) (*Question, error)
	predicates       []predicate.Question
}

var _ ent.Mutation = (*QuestionMutation)(nil)

// questionOption allows management of the mutation configuration using functional options.
type questionOption func(*QuestionMutation)

// newQuestionMutation creates new mutation for the Question entity.
func newQuestionMutation(c config, op Op, opts ...questionOption) *QuestionMutation {
	m := &QuestionMutation{
		config:        c,
		op:            op,
		typ:           TypeQuestion,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQuestionID sets the ID field of the mutation.
func withQuestionID(id int) questionOption {
	return func(m *QuestionMutation) {
		var (
			err   error
			once  sync.Once
			value *Question
		)
		m.oldValue = func(ctx context.Context) (*Question, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Question.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQuestion sets the old Question of the mutation.
func withQuestion(node *Question) questionOption {
	return func(m *QuestionMutation) {
		m.oldValue = func(context.Context) (*Question, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QuestionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QuestionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QuestionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QuestionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Question.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPivot sets the "pivot" field.
func (m *QuestionMutation) SetPivot(s string) {
	m.pivot = &s
}

// Pivot returns the value of the "pivot" field in the mutation.
func (m *QuestionMutation) Pivot() (r string, exists bool) {
	v := m.pivot
	if v == nil {
		return
	}
	return *v, true
}

// OldPivot returns the old "pivot" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldPivot(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPivot is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPivot requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPivot: %w", err)
	}
	return oldValue.Pivot, nil
}

// ResetPivot resets all changes to the "pivot" field.
func (m *QuestionMutation) ResetPivot() {
	m.pivot = nil
}

// SetPivotKind sets the "pivot_kind" field.
func (m *QuestionMutation) SetPivotKind(s string) {
	m.pivot_kind = &s
}

// PivotKind returns the value of the "pivot_kind" field in the mutation.
func (m *QuestionMutation) PivotKind() (r string, exists bool) {
	v := m.pivot_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldPivotKind returns the old "pivot_kind" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldPivotKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPivotKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPivotKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPivotKind: %w", err)
	}
	return oldValue.PivotKind, nil
}

// ResetPivotKind resets all changes to the "pivot_kind" field.
func (m *QuestionMutation) ResetPivotKind() {
	m.pivot_kind = nil
}

// SetQuestionType sets the "question_type" field.
func (m *QuestionMutation) SetQuestionType(s string) {
	m.question_type = &s
}

// QuestionType returns the value of the "question_type" field in the mutation.
func (m *QuestionMutation) QuestionType() (r string, exists bool) {
	v := m.question_type
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionType returns the old "question_type" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldQuestionType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionType: %w", err)
	}
	return oldValue.QuestionType, nil
}

// ResetQuestionType resets all changes to the "question_type" field.
func (m *QuestionMutation) ResetQuestionType() {
	m.question_type = nil
}

// SetPlugin sets the "plugin" field.
func (m *QuestionMutation) SetPlugin(s string) {
	m.plugin = &s
}

// Plugin returns the value of the "plugin" field in the mutation.
func (m *QuestionMutation) Plugin() (r string, exists bool) {
	v := m.plugin
	if v == nil {
		return
	}
	return *v, true
}

// OldPlugin returns the old "plugin" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldPlugin(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlugin is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlugin requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlugin: %w", err)
	}
	return oldValue.Plugin, nil
}

// ResetPlugin resets all changes to the "plugin" field.
func (m *QuestionMutation) ResetPlugin() {
	m.plugin = nil
}

// SetStimulus sets the "stimulus" field.
func (m *QuestionMutation) SetStimulus(s string) {
	m.stimulus = &s
}

// Stimulus returns the value of the "stimulus" field in the mutation.
func (m *QuestionMutation) Stimulus() (r string, exists bool) {
	v := m.stimulus
	if v == nil {
		return
	}
	return *v, true
}

// OldStimulus returns the old "stimulus" field's value of the Question entity.
// If the Question object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuestionMutation) OldStimulus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStimulus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStimulus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStimulus: %w", err)
	}
	return oldValue.Stimulus, nil
}

// ResetStimulus resets all changes to the "stimulus" field.
func (m *QuestionMutation) ResetStimulus() {
	m.stimulus = nil
}

// AddOptionIDs adds the "options" edge to the ChoiceOption entity by ids.
func (m *QuestionMutation) AddOptionIDs(ids ...int) {
	if m.options == nil {
		m.options = make(map[int]struct{})
	}
	for i := range ids {
		m.options[ids[i]] = struct{}{}
	}
}

// ClearOptions clears the "options" edge to the ChoiceOption entity.
func (m *QuestionMutation) ClearOptions() {
	m.clearedoptions = true
}

// OptionsCleared reports if the "options" edge to the ChoiceOption entity was cleared.
func (m *QuestionMutation) OptionsCleared() bool {
	return m.clearedoptions
}

// RemoveOptionIDs removes the "options" edge to the ChoiceOption entity by IDs.
func (m *QuestionMutation) RemoveOptionIDs(ids ...int) {
	if m.removedoptions == nil {
		m.removedoptions = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.options, ids[i])
		m.removedoptions[ids[i]] = struct{}{}
	}
}

// RemovedOptions returns the removed IDs of the "options" edge to the ChoiceOption entity.
func (m *QuestionMutation) RemovedOptionsIDs() (ids []int) {
	for id := range m.removedoptions {
		ids = append(ids, id)
	}
	return
}

// OptionsIDs returns the "options" edge IDs in the mutation.
func (m *QuestionMutation) OptionsIDs() (ids []int) {
	for id := range m.options {
		ids = append(ids, id)
	}
	return
}

// ResetOptions resets all changes to the "options" edge.
func (m *QuestionMutation) ResetOptions() {
	m.options = nil
	m.clearedoptions = false
	m.removedoptions = nil
}

// AddTestSetIDs adds the "test_sets" edge to the TestSet entity by ids.
func (m *QuestionMutation) AddTestSetIDs(ids ...int) {
	if m.test_sets == nil {
		m.test_sets = make(map[int]struct{})
	}
	for i := range ids {
		m.test_sets[ids[i]] = struct{}{}
	}
}

// ClearTestSets clears the "test_sets" edge to the TestSet entity.
func (m *QuestionMutation) ClearTestSets() {
	m.clearedtest_sets = true
}

// TestSetsCleared reports if the "test_sets" edge to the TestSet entity was cleared.
func (m *QuestionMutation) TestSetsCleared() bool {
	return m.clearedtest_sets
}

// RemoveTestSetIDs removes the "test_sets" edge to the TestSet entity by IDs.
func (m *QuestionMutation) RemoveTestSetIDs(ids ...int) {
	if m.removedtest_sets == nil {
		m.removedtest_sets = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.test_sets, ids[i])
		m.removedtest_sets[ids[i]] = struct{}{}
	}
}

// RemovedTestSets returns the removed IDs of the "test_sets" edge to the TestSet entity.
func (m *QuestionMutation) RemovedTestSetsIDs() (ids []int) {
	for id := range m.removedtest_sets {
		ids = append(ids, id)
	}
	return
}

// TestSetsIDs returns the "test_sets" edge IDs in the mutation.
func (m *QuestionMutation) TestSetsIDs() (ids []int) {
	for id := range m.test_sets {
		ids = append(ids, id)
	}
	return
}

// ResetTestSets resets all changes to the "test_sets" edge.
func (m *QuestionMutation) ResetTestSets() {
	m.test_sets = nil
	m.clearedtest_sets = false
	m.removedtest_sets = nil
}

// Where appends a list predicates to the QuestionMutation builder.
func (m *QuestionMutation) Where(ps ...predicate.Question) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QuestionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QuestionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Question, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QuestionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QuestionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Question).
func (m *QuestionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QuestionMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.pivot != nil {
		fields = append(fields, question.FieldPivot)
	}
	if m.pivot_kind != nil {
		fields = append(fields, question.FieldPivotKind)
	}
	if m.question_type != nil {
		fields = append(fields, question.FieldQuestionType)
	}
	if m.plugin != nil {
		fields = append(fields, question.FieldPlugin)
	}
	if m.stimulus != nil {
		fields = append(fields, question.FieldStimulus)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QuestionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case question.FieldPivot:
		return m.Pivot()
	case question.FieldPivotKind:
		return m.PivotKind()
	case question.FieldQuestionType:
		return m.QuestionType()
	case question.FieldPlugin:
		return m.Plugin()
	case question.FieldStimulus:
		return m.Stimulus()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QuestionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case question.FieldPivot:
		return m.OldPivot(ctx)
	case question.FieldPivotKind:
		return m.OldPivotKind(ctx)
	case question.FieldQuestionType:
		return m.OldQuestionType(ctx)
	case question.FieldPlugin:
		return m.OldPlugin(ctx)
	case question.FieldStimulus:
		return m.OldStimulus(ctx)
	}
	return nil, fmt.Errorf("unknown Question field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuestionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case question.FieldPivot:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPivot(v)
		return nil
	case question.FieldPivotKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPivotKind(v)
		return nil
	case question.FieldQuestionType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionType(v)
		return nil
	case question.FieldPlugin:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlugin(v)
		return nil
	case question.FieldStimulus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStimulus(v)
		return nil
	}
	return fmt.Errorf("unknown Question field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QuestionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QuestionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuestionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Question numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QuestionMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QuestionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QuestionMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Question nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QuestionMutation) ResetField(name string) error {
	switch name {
	case question.FieldPivot:
		m.ResetPivot()
		return nil
	case question.FieldPivotKind:
		m.ResetPivotKind()
		return nil
	case question.FieldQuestionType:
		m.ResetQuestionType()
		return nil
	case question.FieldPlugin:
		m.ResetPlugin()
		return nil
	case question.FieldStimulus:
		m.ResetStimulus()
		return nil
	}
	return fmt.Errorf("unknown Question field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QuestionMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.options != nil {
		edges = append(edges, question.EdgeOptions)
	}
	if m.test_sets != nil {
		edges = append(edges, question.EdgeTestSets)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QuestionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case question.EdgeOptions:
		ids := make([]ent.Value, 0, len(m.options))
		for id := range m.options {
			ids = append(ids, id)
		}
		return ids
	case question.EdgeTestSets:
		ids := make([]ent.Value, 0, len(m.test_sets))
		for id := range m.test_sets {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QuestionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedoptions != nil {
		edges = append(edges, question.EdgeOptions)
	}
	if m.removedtest_sets != nil {
		edges = append(edges, question.EdgeTestSets)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QuestionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case question.EdgeOptions:
		ids := make([]ent.Value, 0, len(m.removedoptions))
		for id := range m.removedoptions {
			ids = append(ids, id)
		}
		return ids
	case question.EdgeTestSets:
		ids := make([]ent.Value, 0, len(m.removedtest_sets))
		for id := range m.removedtest_sets {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QuestionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedoptions {
		edges = append(edges, question.EdgeOptions)
	}
	if m.clearedtest_sets {
		edges = append(edges, question.EdgeTestSets)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QuestionMutation) EdgeCleared(name string) bool {
	switch name {
	case question.EdgeOptions:
		return m.clearedoptions
	case question.EdgeTestSets:
		return m.clearedtest_sets
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QuestionMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Question unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QuestionMutation) ResetEdge(name string) error {
	switch name {
	case question.EdgeOptions:
		m.ResetOptions()
		return nil
	case question.EdgeTestSets:
		m.ResetTestSets()
		return nil
	}
	return fmt.Errorf("unknown Question edge %s", name)
}

// ResponseMutation represents an operation that mutates the Response nodes in the graph.
type ResponseMutation struct {
	config
	op              Op
	typ             string
	id              *int
	user_id         *string
	answered_at     *time.Time
	clearedFields   map[string]struct{}
	question        *int
	clearedquestion bool
	option          *int
	clearedoption   bool
	test_set        *int
	clearedtest_set bool
	done            bool
	oldValue        func(context.Context) (*Response, error)
	predicates      []predicate.Response
}

var _ ent.Mutation = (*ResponseMutation)(nil)

// responseOption allows management of the mutation configuration using functional options.
type responseOption func(*ResponseMutation)

// newResponseMutation creates new mutation for the Response entity.
func newResponseMutation(c config, op Op, opts ...responseOption) *ResponseMutation {
	m := &ResponseMutation{
		config:        c,
		op:            op,
		typ:           TypeResponse,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withResponseID sets the ID field of the mutation.
func withResponseID(id int) responseOption {
	return func(m *ResponseMutation) {
		var (
			err   error
			once  sync.Once
			value *Response
		)
		m.oldValue = func(ctx context.Context) (*Response, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Response.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withResponse sets the old Response of the mutation.
func withResponse(node *Response) responseOption {
	return func(m *ResponseMutation) {
		m.oldValue = func(context.Context) (*Response, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ResponseMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ResponseMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ResponseMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ResponseMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Response.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *ResponseMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ResponseMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Response entity.
// If the Response object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResponseMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ResponseMutation) ResetUserID() {
	m.user_id = nil
}

// SetAnsweredAt sets the "answered_at" field.
func (m *ResponseMutation) SetAnsweredAt(t time.Time) {
	m.answered_at = &t
}

// AnsweredAt returns the value of the "answered_at" field in the mutation.
func (m *ResponseMutation) AnsweredAt() (r time.Time, exists bool) {
	v := m.answered_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAnsweredAt returns the old "answered_at" field's value of the Response entity.
// If the Response object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ResponseMutation) OldAnsweredAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnsweredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnsweredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnsweredAt: %w", err)
	}
	return oldValue.AnsweredAt, nil
}

// ResetAnsweredAt resets all changes to the "answered_at" field.
func (m *ResponseMutation) ResetAnsweredAt() {
	m.answered_at = nil
}

// SetQuestionID sets the "question" edge to the Question entity by id.
func (m *ResponseMutation) SetQuestionID(id int) {
	m.question = &id
}

// ClearQuestion clears the "question" edge to the Question entity.
func (m *ResponseMutation) ClearQuestion() {
	m.clearedquestion = true
}

// QuestionCleared reports if the "question" edge to the Question entity was cleared.
func (m *ResponseMutation) QuestionCleared() bool {
	return m.clearedquestion
}

// QuestionID returns the "question" edge ID in the mutation.
func (m *ResponseMutation) QuestionID() (id int, exists bool) {
	if m.question != nil {
		return *m.question, true
	}
	return
}

// QuestionIDs returns the "question" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// QuestionID instead. It exists only for internal usage by the builders.
func (m *ResponseMutation) QuestionIDs() (ids []int) {
	if id := m.question; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetQuestion resets all changes to the "question" edge.
func (m *ResponseMutation) ResetQuestion() {
	m.question = nil
	m.clearedquestion = false
}

// SetOptionID sets the "option" edge to the ChoiceOption entity by id.
func (m *ResponseMutation) SetOptionID(id int) {
	m.option = &id
}

// ClearOption clears the "option" edge to the ChoiceOption entity.
func (m *ResponseMutation) ClearOption() {
	m.clearedoption = true
}

// OptionCleared reports if the "option" edge to the ChoiceOption entity was cleared.
func (m *ResponseMutation) OptionCleared() bool {
	return m.clearedoption
}

// OptionID returns the "option" edge ID in the mutation.
func (m *ResponseMutation) OptionID() (id int, exists bool) {
	if m.option != nil {
		return *m.option, true
	}
	return
}

// OptionIDs returns the "option" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// OptionID instead. It exists only for internal usage by the builders.
func (m *ResponseMutation) OptionIDs() (ids []int) {
	if id := m.option; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetOption resets all changes to the "option" edge.
func (m *ResponseMutation) ResetOption() {
	m.option = nil
	m.clearedoption = false
}

// SetTestSetID sets the "test_set" edge to the TestSet entity by id.
func (m *ResponseMutation) SetTestSetID(id int) {
	m.test_set = &id
}

// ClearTestSet clears the "test_set" edge to the TestSet entity.
func (m *ResponseMutation) ClearTestSet() {
	m.clearedtest_set = true
}

// TestSetCleared reports if the "test_set" edge to the TestSet entity was cleared.
func (m *ResponseMutation) TestSetCleared() bool {
	return m.clearedtest_set
}

// TestSetID returns the "test_set" edge ID in the mutation.
func (m *ResponseMutation) TestSetID() (id int, exists bool) {
	if m.test_set != nil {
		return *m.test_set, true
	}
	return
}

// TestSetIDs returns the "test_set" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TestSetID instead. It exists only for internal usage by the builders.
func (m *ResponseMutation) TestSetIDs() (ids []int) {
	if id := m.test_set; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTestSet resets all changes to the "test_set" edge.
func (m *ResponseMutation) ResetTestSet() {
	m.test_set = nil
	m.clearedtest_set = false
}

// Where appends a list predicates to the ResponseMutation builder.
func (m *ResponseMutation) Where(ps ...predicate.Response) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ResponseMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ResponseMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Response, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ResponseMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ResponseMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Response).
func (m *ResponseMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ResponseMutation) Fields() []string {
	fields := make([]string, 0, 2)
	if m.user_id != nil {
		fields = append(fields, response.FieldUserID)
	}
	if m.answered_at != nil {
		fields = append(fields, response.FieldAnsweredAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ResponseMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case response.FieldUserID:
		return m.UserID()
	case response.FieldAnsweredAt:
		return m.AnsweredAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ResponseMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case response.FieldUserID:
		return m.OldUserID(ctx)
	case response.FieldAnsweredAt:
		return m.OldAnsweredAt(ctx)
	}
	return nil, fmt.Errorf("unknown Response field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ResponseMutation) SetField(name string, value ent.Value) error {
	switch name {
	case response.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case response.FieldAnsweredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnsweredAt(v)
		return nil
	}
	return fmt.Errorf("unknown Response field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ResponseMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ResponseMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ResponseMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Response numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ResponseMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ResponseMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ResponseMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Response nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ResponseMutation) ResetField(name string) error {
	switch name {
	case response.FieldUserID:
		m.ResetUserID()
		return nil
	case response.FieldAnsweredAt:
		m.ResetAnsweredAt()
		return nil
	}
	return fmt.Errorf("unknown Response field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ResponseMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.question != nil {
		edges = append(edges, response.EdgeQuestion)
	}
	if m.option != nil {
		edges = append(edges, response.EdgeOption)
	}
	if m.test_set != nil {
		edges = append(edges, response.EdgeTestSet)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ResponseMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case response.EdgeQuestion:
		if id := m.question; id != nil {
			return []ent.Value{*id}
		}
	case response.EdgeOption:
		if id := m.option; id != nil {
			return []ent.Value{*id}
		}
	case response.EdgeTestSet:
		if id := m.test_set; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ResponseMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ResponseMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ResponseMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedquestion {
		edges = append(edges, response.EdgeQuestion)
	}
	if m.clearedoption {
		edges = append(edges, response.EdgeOption)
	}
	if m.clearedtest_set {
		edges = append(edges, response.EdgeTestSet)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ResponseMutation) EdgeCleared(name string) bool {
	switch name {
	case response.EdgeQuestion:
		return m.clearedquestion
	case response.EdgeOption:
		return m.clearedoption
	case response.EdgeTestSet:
		return m.clearedtest_set
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ResponseMutation) ClearEdge(name string) error {
	switch name {
	case response.EdgeQuestion:
		m.ClearQuestion()
		return nil
	case response.EdgeOption:
		m.ClearOption()
		return nil
	case response.EdgeTestSet:
		m.ClearTestSet()
		return nil
	}
	return fmt.Errorf("unknown Response unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ResponseMutation) ResetEdge(name string) error {
	switch name {
	case response.EdgeQuestion:
		m.ResetQuestion()
		return nil
	case response.EdgeOption:
		m.ResetOption()
		return nil
	case response.EdgeTestSet:
		m.ResetTestSet()
		return nil
	}
	return fmt.Errorf("unknown Response edge %s", name)
}

// TestSetMutation represents an operation that mutates the TestSet nodes in the graph.
type TestSetMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	user_id            *string
	random_seed        *int64
	addrandom_seed     *int64
	shuffle_version    *int
	addshuffle_version *int
	created_at         *time.Time
	clearedFields      map[string]struct{}
	questions          map[int]struct{}
	removedquestions   map[int]struct{}
	clearedquestions   bool
	responses          map[int]struct{}
	removedresponses   map[int]struct{}
	clearedresponses   bool
	done               bool
	oldValue           func(context.Context) (*TestSet, error)
	predicates         []predicate.TestSet
}

var _ ent.Mutation = (*TestSetMutation)(nil)

// testsetOption allows management of the mutation configuration using functional options.
type testsetOption func(*TestSetMutation)

// newTestSetMutation creates new mutation for the TestSet entity.
func newTestSetMutation(c config, op Op, opts ...testsetOption) *TestSetMutation {
	m := &TestSetMutation{
		config:        c,
		op:            op,
		typ:           TypeTestSet,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTestSetID sets the ID field of the mutation.
func withTestSetID(id int) testsetOption {
	return func(m *TestSetMutation) {
		var (
			err   error
			once  sync.Once
			value *TestSet
		)
		m.oldValue = func(ctx context.Context) (*TestSet, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TestSet.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTestSet sets the old TestSet of the mutation.
func withTestSet(node *TestSet) testsetOption {
	return func(m *TestSetMutation) {
		m.oldValue = func(context.Context) (*TestSet, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TestSetMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TestSetMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TestSetMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TestSetMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TestSet.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *TestSetMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *TestSetMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the TestSet entity.
// If the TestSet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestSetMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *TestSetMutation) ResetUserID() {
	m.user_id = nil
}

// SetRandomSeed sets the "random_seed" field.
func (m *TestSetMutation) SetRandomSeed(i int64) {
	m.random_seed = &i
	m.addrandom_seed = nil
}

// RandomSeed returns the value of the "random_seed" field in the mutation.
func (m *TestSetMutation) RandomSeed() (r int64, exists bool) {
	v := m.random_seed
	if v == nil {
		return
	}
	return *v, true
}

// OldRandomSeed returns the old "random_seed" field's value of the TestSet entity.
// If the TestSet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestSetMutation) OldRandomSeed(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRandomSeed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRandomSeed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRandomSeed: %w", err)
	}
	return oldValue.RandomSeed, nil
}

// AddRandomSeed adds i to the "random_seed" field.
func (m *TestSetMutation) AddRandomSeed(i int64) {
	if m.addrandom_seed != nil {
		*m.addrandom_seed += i
	} else {
		m.addrandom_seed = &i
	}
}

// AddedRandomSeed returns the value that was added to the "random_seed" field in this mutation.
func (m *TestSetMutation) AddedRandomSeed() (r int64, exists bool) {
	v := m.addrandom_seed
	if v == nil {
		return
	}
	return *v, true
}

// ResetRandomSeed resets all changes to the "random_seed" field.
func (m *TestSetMutation) ResetRandomSeed() {
	m.random_seed = nil
	m.addrandom_seed = nil
}

// SetShuffleVersion sets the "shuffle_version" field.
func (m *TestSetMutation) SetShuffleVersion(i int) {
	m.shuffle_version = &i
	m.addshuffle_version = nil
}

// ShuffleVersion returns the value of the "shuffle_version" field in the mutation.
func (m *TestSetMutation) ShuffleVersion() (r int, exists bool) {
	v := m.shuffle_version
	if v == nil {
		return
	}
	return *v, true
}

// OldShuffleVersion returns the old "shuffle_version" field's value of the TestSet entity.
// If the TestSet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestSetMutation) OldShuffleVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldShuffleVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldShuffleVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldShuffleVersion: %w", err)
	}
	return oldValue.ShuffleVersion, nil
}

// AddShuffleVersion adds i to the "shuffle_version" field.
func (m *TestSetMutation) AddShuffleVersion(i int) {
	if m.addshuffle_version != nil {
		*m.addshuffle_version += i
	} else {
		m.addshuffle_version = &i
	}
}

// AddedShuffleVersion returns the value that was added to the "shuffle_version" field in this mutation.
func (m *TestSetMutation) AddedShuffleVersion() (r int, exists bool) {
	v := m.addshuffle_version
	if v == nil {
		return
	}
	return *v, true
}

// ResetShuffleVersion resets all changes to the "shuffle_version" field.
func (m *TestSetMutation) ResetShuffleVersion() {
	m.shuffle_version = nil
	m.addshuffle_version = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TestSetMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TestSetMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TestSet entity.
// If the TestSet object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TestSetMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TestSetMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddQuestionIDs adds the "questions" edge to the Question entity by ids.
func (m *TestSetMutation) AddQuestionIDs(ids ...int) {
	if m.questions == nil {
		m.questions = make(map[int]struct{})
	}
	for i := range ids {
		m.questions[ids[i]] = struct{}{}
	}
}

// ClearQuestions clears the "questions" edge to the Question entity.
func (m *TestSetMutation) ClearQuestions() {
	m.clearedquestions = true
}

// QuestionsCleared reports if the "questions" edge to the Question entity was cleared.
func (m *TestSetMutation) QuestionsCleared() bool {
	return m.clearedquestions
}

// RemoveQuestionIDs removes the "questions" edge to the Question entity by IDs.
func (m *TestSetMutation) RemoveQuestionIDs(ids ...int) {
	if m.removedquestions == nil {
		m.removedquestions = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.questions, ids[i])
		m.removedquestions[ids[i]] = struct{}{}
	}
}

// RemovedQuestions returns the removed IDs of the "questions" edge to the Question entity.
func (m *TestSetMutation) RemovedQuestionsIDs() (ids []int) {
	for id := range m.removedquestions {
		ids = append(ids, id)
	}
	return
}

// QuestionsIDs returns the "questions" edge IDs in the mutation.
func (m *TestSetMutation) QuestionsIDs() (ids []int) {
	for id := range m.questions {
		ids = append(ids, id)
	}
	return
}

// ResetQuestions resets all changes to the "questions" edge.
func (m *TestSetMutation) ResetQuestions() {
	m.questions = nil
	m.clearedquestions = false
	m.removedquestions = nil
}

// AddResponseIDs adds the "responses" edge to the Response entity by ids.
func (m *TestSetMutation) AddResponseIDs(ids ...int) {
	if m.responses == nil {
		m.responses = make(map[int]struct{})
	}
	for i := range ids {
		m.responses[ids[i]] = struct{}{}
	}
}

// ClearResponses clears the "responses" edge to the Response entity.
func (m *TestSetMutation) ClearResponses() {
	m.clearedresponses = true
}

// ResponsesCleared reports if the "responses" edge to the Response entity was cleared.
func (m *TestSetMutation) ResponsesCleared() bool {
	return m.clearedresponses
}

// RemoveResponseIDs removes the "responses" edge to the Response entity by IDs.
func (m *TestSetMutation) RemoveResponseIDs(ids ...int) {
	if m.removedresponses == nil {
		m.removedresponses = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.responses, ids[i])
		m.removedresponses[ids[i]] = struct{}{}
	}
}

// RemovedResponses returns the removed IDs of the "responses" edge to the Response entity.
func (m *TestSetMutation) RemovedResponsesIDs() (ids []int) {
	for id := range m.removedresponses {
		ids = append(ids, id)
	}
	return
}

// ResponsesIDs returns the "responses" edge IDs in the mutation.
func (m *TestSetMutation) ResponsesIDs() (ids []int) {
	for id := range m.responses {
		ids = append(ids, id)
	}
	return
}

// ResetResponses resets all changes to the "responses" edge.
func (m *TestSetMutation) ResetResponses() {
	m.responses = nil
	m.clearedresponses = false
	m.removedresponses = nil
}

// Where appends a list predicates to the TestSetMutation builder.
func (m *TestSetMutation) Where(ps ...predicate.TestSet) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TestSetMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TestSetMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TestSet, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TestSetMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TestSetMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TestSet).
func (m *TestSetMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TestSetMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.user_id != nil {
		fields = append(fields, testset.FieldUserID)
	}
	if m.random_seed != nil {
		fields = append(fields, testset.FieldRandomSeed)
	}
	if m.shuffle_version != nil {
		fields = append(fields, testset.FieldShuffleVersion)
	}
	if m.created_at != nil {
		fields = append(fields, testset.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TestSetMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case testset.FieldUserID:
		return m.UserID()
	case testset.FieldRandomSeed:
		return m.RandomSeed()
	case testset.FieldShuffleVersion:
		return m.ShuffleVersion()
	case testset.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TestSetMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case testset.FieldUserID:
		return m.OldUserID(ctx)
	case testset.FieldRandomSeed:
		return m.OldRandomSeed(ctx)
	case testset.FieldShuffleVersion:
		return m.OldShuffleVersion(ctx)
	case testset.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TestSet field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TestSetMutation) SetField(name string, value ent.Value) error {
	switch name {
	case testset.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case testset.FieldRandomSeed:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRandomSeed(v)
		return nil
	case testset.FieldShuffleVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetShuffleVersion(v)
		return nil
	case testset.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TestSet field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TestSetMutation) AddedFields() []string {
	var fields []string
	if m.addrandom_seed != nil {
		fields = append(fields, testset.FieldRandomSeed)
	}
	if m.addshuffle_version != nil {
		fields = append(fields, testset.FieldShuffleVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TestSetMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case testset.FieldRandomSeed:
		return m.AddedRandomSeed()
	case testset.FieldShuffleVersion:
		return m.AddedShuffleVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TestSetMutation) AddField(name string, value ent.Value) error {
	switch name {
	case testset.FieldRandomSeed:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRandomSeed(v)
		return nil
	case testset.FieldShuffleVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddShuffleVersion(v)
		return nil
	}
	return fmt.Errorf("unknown TestSet numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TestSetMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TestSetMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TestSetMutation) ClearField(name string) error {
	return fmt.Errorf("unknown TestSet nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TestSetMutation) ResetField(name string) error {
	switch name {
	case testset.FieldUserID:
		m.ResetUserID()
		return nil
	case testset.FieldRandomSeed:
		m.ResetRandomSeed()
		return nil
	case testset.FieldShuffleVersion:
		m.ResetShuffleVersion()
		return nil
	case testset.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown TestSet field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TestSetMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.questions != nil {
		edges = append(edges, testset.EdgeQuestions)
	}
	if m.responses != nil {
		edges = append(edges, testset.EdgeResponses)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TestSetMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case testset.EdgeQuestions:
		ids := make([]ent.Value, 0, len(m.questions))
		for id := range m.questions {
			ids = append(ids, id)
		}
		return ids
	case testset.EdgeResponses:
		ids := make([]ent.Value, 0, len(m.responses))
		for id := range m.responses {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TestSetMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedquestions != nil {
		edges = append(edges, testset.EdgeQuestions)
	}
	if m.removedresponses != nil {
		edges = append(edges, testset.EdgeResponses)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TestSetMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case testset.EdgeQuestions:
		ids := make([]ent.Value, 0, len(m.removedquestions))
		for id := range m.removedquestions {
			ids = append(ids, id)
		}
		return ids
	case testset.EdgeResponses:
		ids := make([]ent.Value, 0, len(m.removedresponses))
		for id := range m.removedresponses {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TestSetMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedquestions {
		edges = append(edges, testset.EdgeQuestions)
	}
	if m.clearedresponses {
		edges = append(edges, testset.EdgeResponses)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TestSetMutation) EdgeCleared(name string) bool {
	switch name {
	case testset.EdgeQuestions:
		return m.clearedquestions
	case testset.EdgeResponses:
		return m.clearedresponses
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TestSetMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown TestSet unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TestSetMutation) ResetEdge(name string) error {
	switch name {
	case testset.EdgeQuestions:
		m.ResetQuestions()
		return nil
	case testset.EdgeResponses:
		m.ResetResponses()
		return nil
	}
	return fmt.Errorf("unknown TestSet edge %s", name)
}
