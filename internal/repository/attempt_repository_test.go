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

var leaderboardColumns = []string{
	"id", "quiz_id", "player_name", "score", "total_points", "correct_answers",
	"total_questions", "time_taken", "created_at", "updated_at", "quiz_title",
}

func TestAttemptDatabaseAdapter_CreateAttempt(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewAttemptDatabaseAdapter(db)

	attempt := &domain.Attempt{
		QuizID:         "q1",
		PlayerName:     "Ada",
		Score:          20,
		TotalPoints:    30,
		CorrectAnswers: 2,
		TotalQuestions: 3,
		TimeTaken:      42,
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO attempts")).
		WithArgs(sqlmock.AnyArg(), "q1", "Ada", 20, 30, 2, 3, 42, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.CreateAttempt(context.Background(), attempt))
	assert.Len(t, attempt.ID, 26)
	assert.False(t, attempt.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttemptDatabaseAdapter_CreateAttempt_Error(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewAttemptDatabaseAdapter(db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO attempts")).
		WillReturnError(errors.New("integrity constraint violated - parent key not found"))

	err := repo.CreateAttempt(context.Background(), &domain.Attempt{QuizID: "gone", PlayerName: "Ada"})
	assert.ErrorContains(t, err, "failed to create attempt")
	assert.Error(t, repo.CreateAttempt(context.Background(), nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttemptDatabaseAdapter_GetTopAttempts_ForQuiz(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewAttemptDatabaseAdapter(db)
	now := time.Now().UTC()

	rows := sqlmock.NewRows(leaderboardColumns).
		AddRow("a1", "q1", "Ada", 30, 30, 3, 3, 40, now, now, "Space").
		AddRow("a2", "q1", "Bob", 30, 30, 3, 3, 55, now, now, "Space")

	mock.ExpectQuery(regexp.QuoteMeta("WHERE a.quiz_id = ?")+`\s+`+
		regexp.QuoteMeta("ORDER BY a.score DESC, a.time_taken ASC, a.created_at ASC")+`\s+`+
		regexp.QuoteMeta("FETCH FIRST ? ROWS ONLY")).
		WithArgs("q1", 10).
		WillReturnRows(rows)

	got, err := repo.GetTopAttempts(context.Background(), "q1", 10)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Ada", got[0].PlayerName)
	assert.Equal(t, "Space", got[0].QuizTitle)
	assert.Equal(t, 100, got[0].Percentage())
	assert.Equal(t, 55, got[1].TimeTaken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttemptDatabaseAdapter_GetTopAttempts_Global(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewAttemptDatabaseAdapter(db)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta("JOIN quizzes q ON q.id = a.quiz_id") + `\s+` + regexp.QuoteMeta("ORDER BY a.score DESC")).
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows(leaderboardColumns).
			AddRow("a9", "q2", "Cy", 45, 60, 3, 4, 12, now, now, "History Buff"))

	got, err := repo.GetTopAttempts(context.Background(), "", 5)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "History Buff", got[0].QuizTitle)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttemptDatabaseAdapter_GetTopAttempts_NonPositiveLimit(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewAttemptDatabaseAdapter(db)

	got, err := repo.GetTopAttempts(context.Background(), "q1", 0)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttemptDatabaseAdapter_GetTopAttempts_Error(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewAttemptDatabaseAdapter(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM attempts a")).WillReturnError(errors.New("boom"))

	_, err := repo.GetTopAttempts(context.Background(), "", 10)
	assert.ErrorContains(t, err, "failed to get top attempts")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttemptDatabaseAdapter_CountByQuizID(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewAttemptDatabaseAdapter(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM attempts WHERE quiz_id = ?")).
		WithArgs("q1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))

	n, err := repo.CountByQuizID(context.Background(), "q1")
	require.NoError(t, err)
	assert.Equal(t, 12, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAttemptDatabaseAdapter_DeleteByQuizID(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewAttemptDatabaseAdapter(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM attempts WHERE quiz_id = ?")).
		WithArgs("q1").
		WillReturnResult(sqlmock.NewResult(0, 2))

	require.NoError(t, repo.DeleteByQuizID(context.Background(), "q1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
