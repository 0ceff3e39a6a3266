package handler_test

import (
	"context"
	"time"

	"quiz-master/internal/domain"
	"quiz-master/internal/dto"
	"quiz-master/internal/service"
)

// --- Manual Mocks ---

type MockQuizService struct {
	ListQuizzesFunc     func(ctx context.Context) (*dto.QuizListResponse, error)
	GetQuizFunc         func(ctx context.Context, quizID string) (*dto.QuizDetailResponse, error)
	GetPlayableQuizFunc func(ctx context.Context, quizID string) (*dto.PlayQuizResponse, error)
	CreateQuizFunc      func(ctx context.Context, req *dto.CreateQuizRequest) (*dto.QuizDetailResponse, error)
	SubmitAttemptFunc   func(ctx context.Context, quizID string, req *dto.SubmitAttemptRequest) (*dto.SubmitAttemptResponse, error)
	DeleteQuizFunc      func(ctx context.Context, quizID string) error
	GenerateQuizFunc    func(ctx context.Context, req *dto.GenerateQuizRequest) (*dto.GenerateQuizResponse, error)
}

func (m *MockQuizService) ListQuizzes(ctx context.Context) (*dto.QuizListResponse, error) {
	if m.ListQuizzesFunc != nil {
		return m.ListQuizzesFunc(ctx)
	}
	panic("MockQuizService.ListQuizzesFunc not implemented")
}

func (m *MockQuizService) GetQuiz(ctx context.Context, quizID string) (*dto.QuizDetailResponse, error) {
	if m.GetQuizFunc != nil {
		return m.GetQuizFunc(ctx, quizID)
	}
	panic("MockQuizService.GetQuizFunc not implemented")
}

func (m *MockQuizService) GetPlayableQuiz(ctx context.Context, quizID string) (*dto.PlayQuizResponse, error) {
	if m.GetPlayableQuizFunc != nil {
		return m.GetPlayableQuizFunc(ctx, quizID)
	}
	panic("MockQuizService.GetPlayableQuizFunc not implemented")
}

func (m *MockQuizService) CreateQuiz(ctx context.Context, req *dto.CreateQuizRequest) (*dto.QuizDetailResponse, error) {
	if m.CreateQuizFunc != nil {
		return m.CreateQuizFunc(ctx, req)
	}
	panic("MockQuizService.CreateQuizFunc not implemented")
}

func (m *MockQuizService) SubmitAttempt(ctx context.Context, quizID string, req *dto.SubmitAttemptRequest) (*dto.SubmitAttemptResponse, error) {
	if m.SubmitAttemptFunc != nil {
		return m.SubmitAttemptFunc(ctx, quizID, req)
	}
	panic("MockQuizService.SubmitAttemptFunc not implemented")
}

func (m *MockQuizService) DeleteQuiz(ctx context.Context, quizID string) error {
	if m.DeleteQuizFunc != nil {
		return m.DeleteQuizFunc(ctx, quizID)
	}
	panic("MockQuizService.DeleteQuizFunc not implemented")
}

func (m *MockQuizService) GenerateQuiz(ctx context.Context, req *dto.GenerateQuizRequest) (*dto.GenerateQuizResponse, error) {
	if m.GenerateQuizFunc != nil {
		return m.GenerateQuizFunc(ctx, req)
	}
	panic("MockQuizService.GenerateQuizFunc not implemented")
}

type MockLeaderboardService struct {
	GetLeaderboardFunc func(ctx context.Context, quizID string, limit int) (*dto.LeaderboardResponse, error)
}

func (m *MockLeaderboardService) GetLeaderboard(ctx context.Context, quizID string, limit int) (*dto.LeaderboardResponse, error) {
	if m.GetLeaderboardFunc != nil {
		return m.GetLeaderboardFunc(ctx, quizID, limit)
	}
	panic("MockLeaderboardService.GetLeaderboardFunc not implemented")
}

type MockGeneratorService struct {
	OptionsFunc func() *dto.GenerateOptionsResponse
}

func (m *MockGeneratorService) SmartFetch(context.Context, string, int, domain.Difficulty) service.GenerationResult {
	panic("MockGeneratorService.SmartFetch not used by handlers")
}

func (m *MockGeneratorService) OfflineFetch(string, int) service.GenerationResult {
	panic("MockGeneratorService.OfflineFetch not used by handlers")
}

func (m *MockGeneratorService) Options() *dto.GenerateOptionsResponse {
	if m.OptionsFunc != nil {
		return m.OptionsFunc()
	}
	panic("MockGeneratorService.OptionsFunc not implemented")
}

type fakePinger struct{ err error }

func (f fakePinger) PingContext(context.Context) error { return f.err }

type fakeCache struct{ pingErr error }

func (f fakeCache) Get(context.Context, string) (string, error)              { return "", nil }
func (f fakeCache) Set(context.Context, string, string, time.Duration) error { return nil }
func (f fakeCache) Delete(context.Context, ...string) error                  { return nil }
func (f fakeCache) Ping(context.Context) error                               { return f.pingErr }
