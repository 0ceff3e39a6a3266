package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"quiz-master/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var questionRowColumns = []string{
	"id", "quiz_id", "position", "question_text", "option_a", "option_b", "option_c", "option_d",
	"correct_answer", "explanation", "points", "created_at", "updated_at",
}

func TestQuestionDatabaseAdapter_CreateQuestions(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewQuestionDatabaseAdapter(db)

	questions := []*domain.Question{
		{QuizID: "q1", Position: 1, QuestionText: "2+2?", OptionA: "3", OptionB: "4", OptionC: "5", OptionD: "6", CorrectAnswer: "b", Points: 10},
		{QuizID: "q1", Position: 2, QuestionText: "True?", OptionA: "True", OptionB: "False", CorrectAnswer: "a", Explanation: "It is", Points: 10},
	}

	insert := regexp.QuoteMeta("INSERT INTO questions")
	mock.ExpectExec(insert).
		WithArgs(sqlmock.AnyArg(), "q1", 1, "2+2?", "3", "4", "5", "6", "b", nil, 10, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(insert).
		WithArgs(sqlmock.AnyArg(), "q1", 2, "True?", "True", "False", nil, nil, "a", "It is", 10, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.CreateQuestions(context.Background(), questions))
	for _, q := range questions {
		assert.Len(t, q.ID, 26)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuestionDatabaseAdapter_CreateQuestions_StopsOnError(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewQuestionDatabaseAdapter(db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO questions")).WillReturnError(errors.New("check constraint violated"))

	err := repo.CreateQuestions(context.Background(), []*domain.Question{
		{QuizID: "q1", Position: 1, QuestionText: "a", OptionA: "x", CorrectAnswer: "a", Points: 10},
		{QuizID: "q1", Position: 2, QuestionText: "b", OptionA: "y", CorrectAnswer: "a", Points: 10},
	})
	assert.ErrorContains(t, err, "failed to create question 1 for quiz q1")
	assert.NoError(t, mock.ExpectationsWereMet())

	assert.NoError(t, repo.CreateQuestions(context.Background(), nil))
}

func TestQuestionDatabaseAdapter_GetQuestionsByQuizID(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewQuestionDatabaseAdapter(db)
	now := time.Now().UTC()

	rows := sqlmock.NewRows(questionRowColumns).
		AddRow("x1", "q1", 1, "2+2?", "3", "4", "5", "6", "b", "Basic maths", 10, now, now).
		AddRow("x2", "q1", 2, "True?", "True", "False", nil, nil, "a", nil, 15, now, now)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE quiz_id = ?") + `\s+` + regexp.QuoteMeta("ORDER BY position ASC")).
		WithArgs("q1").
		WillReturnRows(rows)

	got, err := repo.GetQuestionsByQuizID(context.Background(), "q1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "4", got[0].CorrectOptionText())
	assert.Equal(t, "Basic maths", got[0].Explanation)
	assert.Equal(t, "", got[1].OptionC)
	assert.Equal(t, "", got[1].Explanation)
	assert.Equal(t, 15, got[1].Points)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuestionDatabaseAdapter_GetQuestionsByQuizID_None(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewQuestionDatabaseAdapter(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM questions")).
		WithArgs("empty").
		WillReturnRows(sqlmock.NewRows(questionRowColumns))

	got, err := repo.GetQuestionsByQuizID(context.Background(), "empty")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuestionDatabaseAdapter_CountByQuizID(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewQuestionDatabaseAdapter(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM questions WHERE quiz_id = ?")).
		WithArgs("q1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	n, err := repo.CountByQuizID(context.Background(), "q1")
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM questions")).
		WithArgs("q1").
		WillReturnError(errors.New("timeout"))
	_, err = repo.CountByQuizID(context.Background(), "q1")
	assert.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuestionDatabaseAdapter_DeleteByQuizID(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewQuestionDatabaseAdapter(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM questions WHERE quiz_id = ?")).
		WithArgs("q1").
		WillReturnResult(sqlmock.NewResult(0, 4))

	require.NoError(t, repo.DeleteByQuizID(context.Background(), "q1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
