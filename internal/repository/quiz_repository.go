package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"quiz-master/internal/domain"
	"quiz-master/internal/repository/models"
	"quiz-master/internal/util"

	"github.com/jmoiron/sqlx"
)

// Column aliases are quoted so Oracle returns them in lower case.
const quizColumns = `
	q.id "id",
	q.title "title",
	q.description "description",
	q.category "category",
	q.difficulty "difficulty",
	q.image "image",
	q.time_per_question "time_per_question",
	q.created_at "created_at",
	q.updated_at "updated_at"`

// QuizDatabaseAdapter implements domain.QuizRepository.
type QuizDatabaseAdapter struct {
	db *sqlx.DB
}

func NewQuizDatabaseAdapter(db *sqlx.DB) domain.QuizRepository {
	return &QuizDatabaseAdapter{db: db}
}

func toDomainQuiz(m *models.Quiz) *domain.Quiz {
	if m == nil {
		return nil
	}
	return &domain.Quiz{
		ID:              m.ID,
		Title:           m.Title,
		Description:     m.Description.String,
		Category:        m.Category,
		Difficulty:      domain.Difficulty(m.Difficulty),
		Image:           m.Image.String,
		TimePerQuestion: m.TimePerQuestion,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func fromDomainQuiz(q *domain.Quiz) *models.Quiz {
	if q == nil {
		return nil
	}
	return &models.Quiz{
		ID:              q.ID,
		Title:           q.Title,
		Description:     util.StringToNullString(q.Description),
		Category:        q.Category,
		Difficulty:      string(q.Difficulty),
		Image:           util.StringToNullString(q.Image),
		TimePerQuestion: q.TimePerQuestion,
		CreatedAt:       q.CreatedAt,
		UpdatedAt:       q.UpdatedAt,
	}
}

// CreateQuiz assigns an ID and timestamps when they are unset.
func (a *QuizDatabaseAdapter) CreateQuiz(ctx context.Context, quiz *domain.Quiz) error {
	if quiz == nil {
		return fmt.Errorf("cannot create nil quiz")
	}
	if quiz.ID == "" {
		quiz.ID = util.NewULID()
	}
	now := time.Now().UTC()
	if quiz.CreatedAt.IsZero() {
		quiz.CreatedAt = now
	}
	quiz.UpdatedAt = now
	m := fromDomainQuiz(quiz)

	exec := GetExecutor(ctx, a.db)
	query := exec.Rebind(`INSERT INTO quizzes (
		id, title, description, category, difficulty, image,
		time_per_question, created_at, updated_at
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)

	_, err := exec.ExecContext(ctx, query,
		m.ID, m.Title, m.Description, m.Category, m.Difficulty, m.Image,
		m.TimePerQuestion, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create quiz: %w", err)
	}
	return nil
}

func (a *QuizDatabaseAdapter) GetQuizByID(ctx context.Context, id string) (*domain.Quiz, error) {
	exec := GetExecutor(ctx, a.db)
	query := exec.Rebind(`SELECT` + quizColumns + `
	FROM quizzes q
	WHERE q.id = ?`)

	var m models.Quiz
	if err := exec.GetContext(ctx, &m, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get quiz by ID %s: %w", id, err)
	}
	return toDomainQuiz(&m), nil
}

// GetQuizByTitle returns the oldest quiz with exactly this title.
func (a *QuizDatabaseAdapter) GetQuizByTitle(ctx context.Context, title string) (*domain.Quiz, error) {
	exec := GetExecutor(ctx, a.db)
	query := exec.Rebind(`SELECT` + quizColumns + `
	FROM quizzes q
	WHERE q.title = ?
	ORDER BY q.created_at ASC
	FETCH FIRST 1 ROWS ONLY`)

	var m models.Quiz
	if err := exec.GetContext(ctx, &m, query, title); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get quiz by title: %w", err)
	}
	return toDomainQuiz(&m), nil
}

// ListQuizzes returns every quiz, newest first, with question and attempt counts.
func (a *QuizDatabaseAdapter) ListQuizzes(ctx context.Context) ([]*domain.QuizSummary, error) {
	exec := GetExecutor(ctx, a.db)
	query := `SELECT` + quizColumns + `,
		(SELECT COUNT(*) FROM questions qs WHERE qs.quiz_id = q.id) "question_count",
		(SELECT COUNT(*) FROM attempts att WHERE att.quiz_id = q.id) "attempt_count"
	FROM quizzes q
	ORDER BY q.created_at DESC, q.id DESC`

	var rows []models.QuizWithCounts
	if err := exec.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to list quizzes: %w", err)
	}

	out := make([]*domain.QuizSummary, 0, len(rows))
	for i := range rows {
		out = append(out, &domain.QuizSummary{
			Quiz:          *toDomainQuiz(&rows[i].Quiz),
			QuestionCount: rows[i].QuestionCount,
			AttemptCount:  rows[i].AttemptCount,
		})
	}
	return out, nil
}

// ListCategories returns the distinct stored categories in alphabetical order.
func (a *QuizDatabaseAdapter) ListCategories(ctx context.Context) ([]string, error) {
	exec := GetExecutor(ctx, a.db)
	categories := []string{}
	if err := exec.SelectContext(ctx, &categories,
		`SELECT DISTINCT category "category" FROM quizzes ORDER BY category`); err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

func (a *QuizDatabaseAdapter) DeleteQuiz(ctx context.Context, id string) error {
	exec := GetExecutor(ctx, a.db)
	if _, err := exec.ExecContext(ctx, exec.Rebind(`DELETE FROM quizzes WHERE id = ?`), id); err != nil {
		return fmt.Errorf("failed to delete quiz %s: %w", id, err)
	}
	return nil
}
