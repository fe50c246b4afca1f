// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ChoiceOptionsColumns holds the columns for the "choice_options" table.
	ChoiceOptionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "value", Type: field.TypeString},
		{Name: "is_correct", Type: field.TypeBool, Default: false},
		{Name: "question_options", Type: field.TypeInt},
	}
	// ChoiceOptionsTable holds the schema information for the "choice_options" table.
	ChoiceOptionsTable = &schema.Table{
		Name:       "choice_options",
		Columns:    ChoiceOptionsColumns,
		PrimaryKey: []*schema.Column{ChoiceOptionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "choice_options_questions_options",
				Columns:    []*schema.Column{ChoiceOptionsColumns[3]},
				RefColumns: []*schema.Column{QuestionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "choiceoption_value_question_options",
				Unique:  true,
				Columns: []*schema.Column{ChoiceOptionsColumns[1], ChoiceOptionsColumns[3]},
			},
		},
	}
	// QuestionsColumns holds the columns for the "questions" table.
	QuestionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "pivot", Type: field.TypeString},
		{Name: "pivot_kind", Type: field.TypeString},
		{Name: "question_type", Type: field.TypeString},
		{Name: "plugin", Type: field.TypeString},
		{Name: "stimulus", Type: field.TypeString},
	}
	// QuestionsTable holds the schema information for the "questions" table.
	QuestionsTable = &schema.Table{
		Name:       "questions",
		Columns:    QuestionsColumns,
		PrimaryKey: []*schema.Column{QuestionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "question_pivot",
				Unique:  false,
				Columns: []*schema.Column{QuestionsColumns[1]},
			},
			{
				Name:    "question_question_type",
				Unique:  false,
				Columns: []*schema.Column{QuestionsColumns[3]},
			},
		},
	}
	// ResponsesColumns holds the columns for the "responses" table.
	ResponsesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "answered_at", Type: field.TypeTime},
		{Name: "response_question", Type: field.TypeInt},
		{Name: "response_option", Type: field.TypeInt},
		{Name: "test_set_responses", Type: field.TypeInt, Nullable: true},
	}
	// ResponsesTable holds the schema information for the "responses" table.
	ResponsesTable = &schema.Table{
		Name:       "responses",
		Columns:    ResponsesColumns,
		PrimaryKey: []*schema.Column{ResponsesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "responses_questions_question",
				Columns:    []*schema.Column{ResponsesColumns[3]},
				RefColumns: []*schema.Column{QuestionsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "responses_choice_options_option",
				Columns:    []*schema.Column{ResponsesColumns[4]},
				RefColumns: []*schema.Column{ChoiceOptionsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "responses_test_sets_responses",
				Columns:    []*schema.Column{ResponsesColumns[5]},
				RefColumns: []*schema.Column{TestSetsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "response_user_id_answered_at_response_question",
				Unique:  true,
				Columns: []*schema.Column{ResponsesColumns[1], ResponsesColumns[2], ResponsesColumns[3]},
			},
		},
	}
	// TestSetsColumns holds the columns for the "test_sets" table.
	TestSetsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "random_seed", Type: field.TypeInt64},
		{Name: "shuffle_version", Type: field.TypeInt, Default: 1},
		{Name: "created_at", Type: field.TypeTime},
	}
	// TestSetsTable holds the schema information for the "test_sets" table.
	TestSetsTable = &schema.Table{
		Name:       "test_sets",
		Columns:    TestSetsColumns,
		PrimaryKey: []*schema.Column{TestSetsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "testset_user_id",
				Unique:  false,
				Columns: []*schema.Column{TestSetsColumns[1]},
			},
			{
				Name:    "testset_created_at",
				Unique:  false,
				Columns: []*schema.Column{TestSetsColumns[4]},
			},
		},
	}
	// TestSetQuestionsColumns holds the columns for the "test_set_questions" table.
	TestSetQuestionsColumns = []*schema.Column{
		{Name: "test_set_id", Type: field.TypeInt},
		{Name: "question_id", Type: field.TypeInt},
	}
	// TestSetQuestionsTable holds the schema information for the "test_set_questions" table.
	TestSetQuestionsTable = &schema.Table{
		Name:       "test_set_questions",
		Columns:    TestSetQuestionsColumns,
		PrimaryKey: []*schema.Column{TestSetQuestionsColumns[0], TestSetQuestionsColumns[1]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "test_set_questions_test_set_id",
				Columns:    []*schema.Column{TestSetQuestionsColumns[0]},
				RefColumns: []*schema.Column{TestSetsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "test_set_questions_question_id",
				Columns:    []*schema.Column{TestSetQuestionsColumns[1]},
				RefColumns: []*schema.Column{QuestionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ChoiceOptionsTable,
		QuestionsTable,
		ResponsesTable,
		TestSetsTable,
		TestSetQuestionsTable,
	}
)

func init() {
	ChoiceOptionsTable.ForeignKeys[0].RefTable = QuestionsTable
	ResponsesTable.ForeignKeys[0].RefTable = QuestionsTable
	ResponsesTable.ForeignKeys[1].RefTable = ChoiceOptionsTable
	ResponsesTable.ForeignKeys[2].RefTable = TestSetsTable
	TestSetQuestionsTable.ForeignKeys[0].RefTable = TestSetsTable
	TestSetQuestionsTable.ForeignKeys[1].RefTable = QuestionsTable
}
