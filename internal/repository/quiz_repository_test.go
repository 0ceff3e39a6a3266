package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"quiz-master/internal/domain"
	"quiz-master/internal/repository/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var quizRowColumns = []string{
	"id", "title", "description", "category", "difficulty", "image",
	"time_per_question", "created_at", "updated_at",
}

func TestQuizConverters(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)
	m := &models.Quiz{
		ID:              "01HZX0000000000000000000AA",
		Title:           "Space",
		Description:     sql.NullString{},
		Category:        "Science",
		Difficulty:      "hard",
		Image:           sql.NullString{String: "/img/space.png", Valid: true},
		TimePerQuestion: 15,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	q := toDomainQuiz(m)
	assert.Equal(t, "", q.Description)
	assert.Equal(t, "/img/space.png", q.Image)
	assert.Equal(t, domain.DifficultyHard, q.Difficulty)

	back := fromDomainQuiz(q)
	assert.Equal(t, m, back)

	assert.Nil(t, toDomainQuiz(nil))
	assert.Nil(t, fromDomainQuiz(nil))
}

func TestQuizDatabaseAdapter_CreateQuiz(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewQuizDatabaseAdapter(db)

	quiz := &domain.Quiz{
		Title:           "Space",
		Description:     "About space",
		Category:        "Science",
		Difficulty:      domain.DifficultyEasy,
		TimePerQuestion: 30,
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO quizzes")).
		WithArgs(sqlmock.AnyArg(), "Space", "About space", "Science", "easy", nil, 30, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.CreateQuiz(context.Background(), quiz))
	assert.Len(t, quiz.ID, 26)
	assert.False(t, quiz.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuizDatabaseAdapter_CreateQuiz_Error(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewQuizDatabaseAdapter(db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO quizzes")).WillReturnError(errors.New("insert failed"))

	err := repo.CreateQuiz(context.Background(), &domain.Quiz{Title: "x", Category: "y", Difficulty: domain.DifficultyEasy})
	assert.ErrorContains(t, err, "failed to create quiz")
	assert.Error(t, repo.CreateQuiz(context.Background(), nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuizDatabaseAdapter_GetQuizByID(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewQuizDatabaseAdapter(db)
	ctx := context.Background()
	now := time.Now().UTC()

	t.Run("Found", func(t *testing.T) {
		rows := sqlmock.NewRows(quizRowColumns).
			AddRow("q1", "Space", "About space", "Science", "medium", nil, 20, now, now)
		mock.ExpectQuery(regexp.QuoteMeta("FROM quizzes q") + `\s+` + regexp.QuoteMeta("WHERE q.id = ?")).
			WithArgs("q1").
			WillReturnRows(rows)

		quiz, err := repo.GetQuizByID(ctx, "q1")
		require.NoError(t, err)
		require.NotNil(t, quiz)
		assert.Equal(t, "Space", quiz.Title)
		assert.Equal(t, domain.DifficultyMedium, quiz.Difficulty)
		assert.Equal(t, 20, quiz.TimePerQuestion)
		assert.Empty(t, quiz.Image)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("WHERE q.id = ?")).
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows(quizRowColumns))

		quiz, err := repo.GetQuizByID(ctx, "missing")
		assert.NoError(t, err)
		assert.Nil(t, quiz)
	})

	t.Run("DBError", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("WHERE q.id = ?")).
			WithArgs("q1").
			WillReturnError(errors.New("connection lost"))

		quiz, err := repo.GetQuizByID(ctx, "q1")
		assert.ErrorContains(t, err, "connection lost")
		assert.Nil(t, quiz)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuizDatabaseAdapter_GetQuizByTitle(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewQuizDatabaseAdapter(db)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE q.title = ?") + `[\s\S]*` + regexp.QuoteMeta("FETCH FIRST 1 ROWS ONLY")).
		WithArgs("World Capitals").
		WillReturnRows(sqlmock.NewRows(quizRowColumns).
			AddRow("q1", "World Capitals", nil, "Geography", "easy", nil, 30, now, now))

	quiz, err := repo.GetQuizByTitle(context.Background(), "World Capitals")
	require.NoError(t, err)
	require.NotNil(t, quiz)
	assert.Equal(t, "q1", quiz.ID)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE q.title = ?")).
		WithArgs("nope").
		WillReturnRows(sqlmock.NewRows(quizRowColumns))
	quiz, err = repo.GetQuizByTitle(context.Background(), "nope")
	assert.NoError(t, err)
	assert.Nil(t, quiz)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuizDatabaseAdapter_ListQuizzes(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewQuizDatabaseAdapter(db)
	now := time.Now().UTC()

	cols := append(append([]string{}, quizRowColumns...), "question_count", "attempt_count")
	rows := sqlmock.NewRows(cols).
		AddRow("q2", "Newer", nil, "History", "hard", nil, 15, now, now, 0, 0).
		AddRow("q1", "Older", "desc", "Science", "easy", nil, 30, now.Add(-time.Hour), now, 5, 3)

	mock.ExpectQuery(regexp.QuoteMeta(`(SELECT COUNT(*) FROM questions qs WHERE qs.quiz_id = q.id) "question_count"`) +
		`[\s\S]*` + regexp.QuoteMeta("ORDER BY q.created_at DESC")).
		WillReturnRows(rows)

	got, err := repo.ListQuizzes(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Newer", got[0].Title)
	assert.Equal(t, 0, got[0].QuestionCount)
	assert.Equal(t, 5, got[1].QuestionCount)
	assert.Equal(t, 3, got[1].AttemptCount)
	assert.Equal(t, "desc", got[1].Description)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuizDatabaseAdapter_ListQuizzes_Empty(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewQuizDatabaseAdapter(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM quizzes q")).
		WillReturnRows(sqlmock.NewRows(append(append([]string{}, quizRowColumns...), "question_count", "attempt_count")))

	got, err := repo.ListQuizzes(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuizDatabaseAdapter_ListCategories(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewQuizDatabaseAdapter(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT DISTINCT category "category" FROM quizzes ORDER BY category`)).
		WillReturnRows(sqlmock.NewRows([]string{"category"}).AddRow("History").AddRow("Science"))

	got, err := repo.ListCategories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"History", "Science"}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuizDatabaseAdapter_DeleteQuiz(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewQuizDatabaseAdapter(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM quizzes WHERE id = ?")).
		WithArgs("q1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.DeleteQuiz(context.Background(), "q1"))

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM quizzes WHERE id = ?")).
		WithArgs("q1").
		WillReturnError(errors.New("locked"))
	assert.ErrorContains(t, repo.DeleteQuiz(context.Background(), "q1"), "failed to delete quiz q1")

	assert.NoError(t, mock.ExpectationsWereMet())
}
