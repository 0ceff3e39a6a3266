package service

import (
	"context"
	"sort"
	"strings"

	"quiz-master/internal/domain"
	"quiz-master/internal/dto"
)

const (
	DefaultLeaderboardLimit = 50
	MaxLeaderboardLimit     = 50
)

// LeaderboardService ranks attempts by score, then by time taken.
type LeaderboardService interface {
	// GetLeaderboard ranks attempts for one quiz, or across all quizzes when
	// quizID is empty. An unknown quiz yields an empty board.
	GetLeaderboard(ctx context.Context, quizID string, limit int) (*dto.LeaderboardResponse, error)
}

type leaderboardService struct {
	quizRepo  domain.QuizRepository
	quizCache QuizCacheService
}

func NewLeaderboardService(quizRepo domain.QuizRepository, quizCache QuizCacheService) LeaderboardService {
	return &leaderboardService{quizRepo: quizRepo, quizCache: quizCache}
}

func (s *leaderboardService) GetLeaderboard(ctx context.Context, quizID string, limit int) (*dto.LeaderboardResponse, error) {
	if limit <= 0 {
		limit = DefaultLeaderboardLimit
	}
	if limit > MaxLeaderboardLimit {
		limit = MaxLeaderboardLimit
	}

	entries, err := s.quizCache.GetTopAttempts(ctx, quizID, limit)
	if err != nil {
		return nil, domain.NewInternalError("Failed to load leaderboard", err)
	}
	summaries, err := s.quizRepo.ListQuizzes(ctx)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list quizzes", err)
	}

	resp := &dto.LeaderboardResponse{
		QuizID:  quizID,
		Entries: make([]dto.LeaderboardEntryResponse, 0, len(entries)),
		Quizzes: make([]dto.QuizOption, 0, len(summaries)),
	}
	for i, e := range entries {
		resp.Entries = append(resp.Entries, dto.LeaderboardEntryResponse{
			Rank:            i + 1,
			AttemptResponse: dto.NewAttemptResponse(&e.Attempt),
			QuizTitle:       e.QuizTitle,
		})
	}
	for _, qs := range summaries {
		resp.Quizzes = append(resp.Quizzes, dto.QuizOption{ID: qs.ID, Title: qs.Title})
	}
	sort.SliceStable(resp.Quizzes, func(i, j int) bool {
		return strings.ToLower(resp.Quizzes[i].Title) < strings.ToLower(resp.Quizzes[j].Title)
	})
	return resp, nil
}
