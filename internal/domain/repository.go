package domain

import "context"

// QuizRepository persists quiz rows. Lookups return nil, nil when the quiz
// does not exist.
type QuizRepository interface {
	CreateQuiz(ctx context.Context, quiz *Quiz) error
	GetQuizByID(ctx context.Context, id string) (*Quiz, error)
	GetQuizByTitle(ctx context.Context, title string) (*Quiz, error)
	ListQuizzes(ctx context.Context) ([]*QuizSummary, error)
	ListCategories(ctx context.Context) ([]string, error)
	DeleteQuiz(ctx context.Context, id string) error
}

// QuestionRepository persists questions in quiz insertion order.
type QuestionRepository interface {
	CreateQuestions(ctx context.Context, questions []*Question) error
	GetQuestionsByQuizID(ctx context.Context, quizID string) ([]Question, error)
	CountByQuizID(ctx context.Context, quizID string) (int, error)
	DeleteByQuizID(ctx context.Context, quizID string) error
}

// AttemptRepository persists attempts. Attempts are never updated.
type AttemptRepository interface {
	CreateAttempt(ctx context.Context, attempt *Attempt) error
	// GetTopAttempts orders by score descending then time taken ascending.
	// An empty quizID ranks attempts across all quizzes.
	GetTopAttempts(ctx context.Context, quizID string, limit int) ([]*LeaderboardEntry, error)
	CountByQuizID(ctx context.Context, quizID string) (int, error)
	DeleteByQuizID(ctx context.Context, quizID string) error
}

// TransactionManager runs fn in a transaction carried by the context.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
