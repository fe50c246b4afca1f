// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/ayasuda/kanjidrill/ent/choiceoption"
	"github.com/ayasuda/kanjidrill/ent/question"
	"github.com/ayasuda/kanjidrill/ent/response"
	"github.com/ayasuda/kanjidrill/ent/schema"
	"github.com/ayasuda/kanjidrill/ent/testset"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	choiceoptionFields := schema.ChoiceOption{}.Fields()
	_ = choiceoptionFields
	// choiceoptionDescValue is the schema descriptor for value field.
	choiceoptionDescValue := choiceoptionFields[0].Descriptor()
	// choiceoption.ValueValidator is a validator for the "value" field. It is called by the builders before save.
	choiceoption.ValueValidator = choiceoptionDescValue.Validators[0].(func(string) error)
	// choiceoptionDescIsCorrect is the schema descriptor for is_correct field.
	choiceoptionDescIsCorrect := choiceoptionFields[1].Descriptor()
	// choiceoption.DefaultIsCorrect holds the default value on creation for the is_correct field.
	choiceoption.DefaultIsCorrect = choiceoptionDescIsCorrect.Default.(bool)
	questionFields := schema.Question{}.Fields()
	_ = questionFields
	// questionDescPivot is the schema descriptor for pivot field.
	questionDescPivot := questionFields[0].Descriptor()
	// question.PivotValidator is a validator for the "pivot" field. It is called by the builders before save.
	question.PivotValidator = questionDescPivot.Validators[0].(func(string) error)
	// questionDescPivotKind is the schema descriptor for pivot_kind field.
	questionDescPivotKind := questionFields[1].Descriptor()
	// question.PivotKindValidator is a validator for the "pivot_kind" field. It is called by the builders before save.
	question.PivotKindValidator = questionDescPivotKind.Validators[0].(func(string) error)
	// questionDescQuestionType is the schema descriptor for question_type field.
	questionDescQuestionType := questionFields[2].Descriptor()
	// question.QuestionTypeValidator is a validator for the "question_type" field. It is called by the builders before save.
	question.QuestionTypeValidator = questionDescQuestionType.Validators[0].(func(string) error)
	// questionDescPlugin is the schema descriptor for plugin field.
	questionDescPlugin := questionFields[3].Descriptor()
	// question.PluginValidator is a validator for the "plugin" field. It is called by the builders before save.
	question.PluginValidator = questionDescPlugin.Validators[0].(func(string) error)
	// questionDescStimulus is the schema descriptor for stimulus field.
	questionDescStimulus := questionFields[4].Descriptor()
	// question.StimulusValidator is a validator for the "stimulus" field. It is called by the builders before save.
	question.StimulusValidator = questionDescStimulus.Validators[0].(func(string) error)
	responseFields := schema.Response{}.Fields()
	_ = responseFields
	// responseDescUserID is the schema descriptor for user_id field.
	responseDescUserID := responseFields[0].Descriptor()
	// response.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	response.UserIDValidator = responseDescUserID.Validators[0].(func(string) error)
	// responseDescAnsweredAt is the schema descriptor for answered_at field.
	responseDescAnsweredAt := responseFields[1].Descriptor()
	// response.DefaultAnsweredAt holds the default value on creation for the answered_at field.
	response.DefaultAnsweredAt = responseDescAnsweredAt.Default.(func() time.Time)
	testsetFields := schema.TestSet{}.Fields()
	_ = testsetFields
	// testsetDescUserID is the schema descriptor for user_id field.
	testsetDescUserID := testsetFields[0].Descriptor()
	// testset.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	testset.UserIDValidator = testsetDescUserID.Validators[0].(func(string) error)
	// testsetDescShuffleVersion is the schema descriptor for shuffle_version field.
	testsetDescShuffleVersion := testsetFields[2].Descriptor()
	// testset.DefaultShuffleVersion holds the default value on creation for the shuffle_version field.
	testset.DefaultShuffleVersion = testsetDescShuffleVersion.Default.(int)
	// testsetDescCreatedAt is the schema descriptor for created_at field.
	testsetDescCreatedAt := testsetFields[3].Descriptor()
	// testset.DefaultCreatedAt holds the default value on creation for the created_at field.
	testset.DefaultCreatedAt = testsetDescCreatedAt.Default.(func() time.Time)
}
