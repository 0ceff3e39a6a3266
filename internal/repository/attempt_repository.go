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

// AttemptDatabaseAdapter implements domain.AttemptRepository.
type AttemptDatabaseAdapter struct {
	db *sqlx.DB
}

func NewAttemptDatabaseAdapter(db *sqlx.DB) domain.AttemptRepository {
	return &AttemptDatabaseAdapter{db: db}
}

func toDomainAttempt(m *models.Attempt) domain.Attempt {
	return domain.Attempt{
		ID:             m.ID,
		QuizID:         m.QuizID,
		PlayerName:     m.PlayerName,
		Score:          m.Score,
		TotalPoints:    m.TotalPoints,
		CorrectAnswers: m.CorrectAnswers,
		TotalQuestions: m.TotalQuestions,
		TimeTaken:      m.TimeTaken,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func (a *AttemptDatabaseAdapter) CreateAttempt(ctx context.Context, attempt *domain.Attempt) error {
	if attempt == nil {
		return fmt.Errorf("cannot create nil attempt")
	}
	if attempt.ID == "" {
		attempt.ID = util.NewULID()
	}
	now := time.Now().UTC()
	attempt.CreatedAt = now
	attempt.UpdatedAt = now

	exec := GetExecutor(ctx, a.db)
	query := exec.Rebind(`INSERT INTO attempts (
		id, quiz_id, player_name, score, total_points,
		correct_answers, total_questions, time_taken, created_at, updated_at
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)

	_, err := exec.ExecContext(ctx, query,
		attempt.ID, attempt.QuizID, attempt.PlayerName, attempt.Score, attempt.TotalPoints,
		attempt.CorrectAnswers, attempt.TotalQuestions, attempt.TimeTaken,
		attempt.CreatedAt, attempt.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create attempt: %w", err)
	}
	return nil
}

// GetTopAttempts ranks by score, then by time taken. Remaining ties go to
// the earlier attempt.
func (a *AttemptDatabaseAdapter) GetTopAttempts(ctx context.Context, quizID string, limit int) ([]*domain.LeaderboardEntry, error) {
	if limit <= 0 {
		return []*domain.LeaderboardEntry{}, nil
	}

	query := `SELECT
		a.id "id",
		a.quiz_id "quiz_id",
		a.player_name "player_name",
		a.score "score",
		a.total_points "total_points",
		a.correct_answers "correct_answers",
		a.total_questions "total_questions",
		a.time_taken "time_taken",
		a.created_at "created_at",
		a.updated_at "updated_at",
		q.title "quiz_title"
	FROM attempts a
	JOIN quizzes q ON q.id = a.quiz_id`
	args := []interface{}{}
	if quizID != "" {
		query += `
	WHERE a.quiz_id = ?`
		args = append(args, quizID)
	}
	query += `
	ORDER BY a.score DESC, a.time_taken ASC, a.created_at ASC
	FETCH FIRST ? ROWS ONLY`
	args = append(args, limit)

	exec := GetExecutor(ctx, a.db)
	var rows []models.LeaderboardRow
	if err := exec.SelectContext(ctx, &rows, exec.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to get top attempts: %w", err)
	}

	out := make([]*domain.LeaderboardEntry, 0, len(rows))
	for i := range rows {
		out = append(out, &domain.LeaderboardEntry{
			Attempt:   toDomainAttempt(&rows[i].Attempt),
			QuizTitle: rows[i].QuizTitle,
		})
	}
	return out, nil
}

func (a *AttemptDatabaseAdapter) CountByQuizID(ctx context.Context, quizID string) (int, error) {
	exec := GetExecutor(ctx, a.db)
	var n int
	if err := exec.GetContext(ctx, &n, exec.Rebind(`SELECT COUNT(*) FROM attempts WHERE quiz_id = ?`), quizID); err != nil {
		return 0, fmt.Errorf("failed to count attempts for quiz %s: %w", quizID, err)
	}
	return n, nil
}

func (a *AttemptDatabaseAdapter) DeleteByQuizID(ctx context.Context, quizID string) error {
	exec := GetExecutor(ctx, a.db)
	if _, err := exec.ExecContext(ctx, exec.Rebind(`DELETE FROM attempts WHERE quiz_id = ?`), quizID); err != nil {
		return fmt.Errorf("failed to delete attempts for quiz %s: %w", quizID, err)
	}
	return nil
}
