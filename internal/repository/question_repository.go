package repository

import (
	"context"
	"fmt"
	"time"

	"quiz-master/internal/domain"
	"quiz-master/internal/repository/models"
	"quiz-master/internal/util"

	"github.com/jmoiron/sqlx"
)

// QuestionDatabaseAdapter implements domain.QuestionRepository.
type QuestionDatabaseAdapter struct {
	db *sqlx.DB
}

func NewQuestionDatabaseAdapter(db *sqlx.DB) domain.QuestionRepository {
	return &QuestionDatabaseAdapter{db: db}
}

func toDomainQuestion(m *models.Question) domain.Question {
	return domain.Question{
		ID:            m.ID,
		QuizID:        m.QuizID,
		Position:      m.Position,
		QuestionText:  m.QuestionText,
		OptionA:       m.OptionA.String,
		OptionB:       m.OptionB.String,
		OptionC:       m.OptionC.String,
		OptionD:       m.OptionD.String,
		CorrectAnswer: m.CorrectAnswer,
		Explanation:   m.Explanation.String,
		Points:        m.Points,
	}
}

// CreateQuestions inserts one row per question. Oracle has no multi-row
// VALUES, so callers that need atomicity wrap this in a transaction.
func (a *QuestionDatabaseAdapter) CreateQuestions(ctx context.Context, questions []*domain.Question) error {
	if len(questions) == 0 {
		return nil
	}
	exec := GetExecutor(ctx, a.db)
	query := exec.Rebind(`INSERT INTO questions (
		id, quiz_id, position, question_text,
		option_a, option_b, option_c, option_d,
		correct_answer, explanation, points, created_at, updated_at
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)

	now := time.Now().UTC()
	for _, q := range questions {
		if q.ID == "" {
			q.ID = util.NewULID()
		}
		_, err := exec.ExecContext(ctx, query,
			q.ID, q.QuizID, q.Position, q.QuestionText,
			util.StringToNullString(q.OptionA),
			util.StringToNullString(q.OptionB),
			util.StringToNullString(q.OptionC),
			util.StringToNullString(q.OptionD),
			q.CorrectAnswer,
			util.StringToNullString(q.Explanation),
			q.Points, now, now,
		)
		if err != nil {
			return fmt.Errorf("failed to create question %d for quiz %s: %w", q.Position, q.QuizID, err)
		}
	}
	return nil
}

// GetQuestionsByQuizID returns questions in insertion order.
func (a *QuestionDatabaseAdapter) GetQuestionsByQuizID(ctx context.Context, quizID string) ([]domain.Question, error) {
	exec := GetExecutor(ctx, a.db)
	query := exec.Rebind(`SELECT
		id "id",
		quiz_id "quiz_id",
		position "position",
		question_text "question_text",
		option_a "option_a",
		option_b "option_b",
		option_c "option_c",
		option_d "option_d",
		correct_answer "correct_answer",
		explanation "explanation",
		points "points",
		created_at "created_at",
		updated_at "updated_at"
	FROM questions
	WHERE quiz_id = ?
	ORDER BY position ASC, id ASC`)

	var rows []models.Question
	if err := exec.SelectContext(ctx, &rows, query, quizID); err != nil {
		return nil, fmt.Errorf("failed to get questions for quiz %s: %w", quizID, err)
	}
	out := make([]domain.Question, 0, len(rows))
	for i := range rows {
		out = append(out, toDomainQuestion(&rows[i]))
	}
	return out, nil
}

func (a *QuestionDatabaseAdapter) CountByQuizID(ctx context.Context, quizID string) (int, error) {
	exec := GetExecutor(ctx, a.db)
	var n int
	if err := exec.GetContext(ctx, &n, exec.Rebind(`SELECT COUNT(*) FROM questions WHERE quiz_id = ?`), quizID); err != nil {
		return 0, fmt.Errorf("failed to count questions for quiz %s: %w", quizID, err)
	}
	return n, nil
}

func (a *QuestionDatabaseAdapter) DeleteByQuizID(ctx context.Context, quizID string) error {
	exec := GetExecutor(ctx, a.db)
	if _, err := exec.ExecContext(ctx, exec.Rebind(`DELETE FROM questions WHERE quiz_id = ?`), quizID); err != nil {
		return fmt.Errorf("failed to delete questions for quiz %s: %w", quizID, err)
	}
	return nil
}
