package service

import (
	"context"
	"errors"
	"testing"

	"quiz-master/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetLeaderboard(t *testing.T) {
	quizzes := new(MockQuizRepository)
	attempts := new(MockAttemptRepository)
	svc := NewLeaderboardService(quizzes, NewQuizCacheService(nil, quizzes, nil, attempts, nil))

	attempts.On("GetTopAttempts", mock.Anything, "", DefaultLeaderboardLimit).Return([]*domain.LeaderboardEntry{
		{Attempt: domain.Attempt{ID: "a1", QuizID: "q2", PlayerName: "Ada", Score: 45, TotalPoints: 60}, QuizTitle: "zoology"},
		{Attempt: domain.Attempt{ID: "a2", QuizID: "q1", PlayerName: "Bob", Score: 10, TotalPoints: 30}, QuizTitle: "Art"},
	}, nil)
	quizzes.On("ListQuizzes", mock.Anything).Return([]*domain.QuizSummary{
		{Quiz: domain.Quiz{ID: "q2", Title: "zoology"}},
		{Quiz: domain.Quiz{ID: "q1", Title: "Art"}},
	}, nil)

	resp, err := svc.GetLeaderboard(context.Background(), "", 0)
	require.NoError(t, err)
	require.Len(t, resp.Entries, 2)
	assert.Equal(t, 1, resp.Entries[0].Rank)
	assert.Equal(t, 2, resp.Entries[1].Rank)
	assert.Equal(t, 75, resp.Entries[0].Percentage)
	assert.Equal(t, "Great Job!", resp.Entries[0].Grade.Label)
	assert.Equal(t, "zoology", resp.Entries[0].QuizTitle)
	assert.Equal(t, []string{"Art", "zoology"}, []string{resp.Quizzes[0].Title, resp.Quizzes[1].Title})
}

func TestGetLeaderboard_ClampsLimit(t *testing.T) {
	quizzes := new(MockQuizRepository)
	attempts := new(MockAttemptRepository)
	svc := NewLeaderboardService(quizzes, NewQuizCacheService(nil, quizzes, nil, attempts, nil))

	attempts.On("GetTopAttempts", mock.Anything, "q1", MaxLeaderboardLimit).Return([]*domain.LeaderboardEntry{}, nil).Once()
	quizzes.On("ListQuizzes", mock.Anything).Return([]*domain.QuizSummary{}, nil)

	resp, err := svc.GetLeaderboard(context.Background(), "q1", 500)
	require.NoError(t, err)
	assert.Equal(t, "q1", resp.QuizID)
	assert.Empty(t, resp.Entries)
	attempts.AssertExpectations(t)
}

func TestGetLeaderboard_Error(t *testing.T) {
	quizzes := new(MockQuizRepository)
	attempts := new(MockAttemptRepository)
	svc := NewLeaderboardService(quizzes, NewQuizCacheService(nil, quizzes, nil, attempts, nil))

	attempts.On("GetTopAttempts", mock.Anything, "", 10).Return(nil, errors.New("db down"))

	_, err := svc.GetLeaderboard(context.Background(), "", 10)
	requireCode(t, err, domain.CodeInternal)
}
