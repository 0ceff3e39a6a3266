package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"quiz-master/internal/cache"
	"quiz-master/internal/config"
	"quiz-master/internal/domain"
	"quiz-master/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	DefaultQuizCacheTTL        = time.Hour
	DefaultLeaderboardCacheTTL = 30 * time.Second

	// LeaderboardCacheSize is how many ranked attempts are cached per board.
	// Smaller limits are served by slicing.
	LeaderboardCacheSize = 50

	// sharedLoadTimeout bounds a repository load shared through singleflight.
	sharedLoadTimeout = 10 * time.Second
)

// QuizCacheService reads quizzes and leaderboards through Redis. A quiz and
// its questions never change after creation, so they are cached until the
// quiz is deleted. Leaderboards are invalidated on every new attempt.
// Without a cache every read goes to the repositories.
type QuizCacheService interface {
	// GetQuizWithQuestions returns nil, nil when the quiz does not exist.
	GetQuizWithQuestions(ctx context.Context, quizID string) (*domain.Quiz, error)
	GetTopAttempts(ctx context.Context, quizID string, limit int) ([]*domain.LeaderboardEntry, error)
	InvalidateLeaderboard(ctx context.Context, quizID string)
	InvalidateQuiz(ctx context.Context, quizID string)
}

type quizCacheService struct {
	cache          domain.Cache
	quizRepo       domain.QuizRepository
	questionRepo   domain.QuestionRepository
	attemptRepo    domain.AttemptRepository
	quizTTL        time.Duration
	leaderboardTTL time.Duration
	sf             singleflight.Group
}

func NewQuizCacheService(
	c domain.Cache,
	quizRepo domain.QuizRepository,
	questionRepo domain.QuestionRepository,
	attemptRepo domain.AttemptRepository,
	cfg *config.Config,
) QuizCacheService {
	s := &quizCacheService{
		cache:          c,
		quizRepo:       quizRepo,
		questionRepo:   questionRepo,
		attemptRepo:    attemptRepo,
		quizTTL:        DefaultQuizCacheTTL,
		leaderboardTTL: DefaultLeaderboardCacheTTL,
	}
	if cfg != nil {
		s.quizTTL = config.ParseTTLStringOrDefault(cfg.CacheTTLs.Quiz, DefaultQuizCacheTTL)
		s.leaderboardTTL = config.ParseTTLStringOrDefault(cfg.CacheTTLs.Leaderboard, DefaultLeaderboardCacheTTL)
	}
	return s
}

func (s *quizCacheService) GetQuizWithQuestions(ctx context.Context, quizID string) (*domain.Quiz, error) {
	key := cache.QuizDetailKey(quizID)

	var cached domain.Quiz
	if s.read(ctx, key, &cached) {
		return &cached, nil
	}

	v, err, _ := s.sf.Do(key, func() (interface{}, error) {
		ctx, cancel := detach(ctx)
		defer cancel()

		// Another caller may have filled the key while we waited.
		var again domain.Quiz
		if s.read(ctx, key, &again) {
			return &again, nil
		}

		quiz, err := s.quizRepo.GetQuizByID(ctx, quizID)
		if err != nil {
			return nil, err
		}
		if quiz == nil {
			return (*domain.Quiz)(nil), nil
		}
		questions, err := s.questionRepo.GetQuestionsByQuizID(ctx, quizID)
		if err != nil {
			return nil, err
		}
		quiz.Questions = questions

		s.write(ctx, key, quiz, s.quizTTL)
		return quiz, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.Quiz), nil
}

func (s *quizCacheService) GetTopAttempts(ctx context.Context, quizID string, limit int) ([]*domain.LeaderboardEntry, error) {
	if limit <= 0 {
		return []*domain.LeaderboardEntry{}, nil
	}
	if s.cache == nil || limit > LeaderboardCacheSize {
		return s.attemptRepo.GetTopAttempts(ctx, quizID, limit)
	}

	key := cache.LeaderboardKey(quizID)
	var entries []*domain.LeaderboardEntry
	if !s.read(ctx, key, &entries) {
		v, err, _ := s.sf.Do(key, func() (interface{}, error) {
			ctx, cancel := detach(ctx)
			defer cancel()

			var again []*domain.LeaderboardEntry
			if s.read(ctx, key, &again) {
				return again, nil
			}
			top, err := s.attemptRepo.GetTopAttempts(ctx, quizID, LeaderboardCacheSize)
			if err != nil {
				return nil, err
			}
			s.write(ctx, key, top, s.leaderboardTTL)
			return top, nil
		})
		if err != nil {
			return nil, err
		}
		entries = v.([]*domain.LeaderboardEntry)
	}

	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

// InvalidateLeaderboard drops the per-quiz and global boards. A load that read
// the attempts before the write may still store the older board after this
// delete; that entry lives at most one leaderboard TTL.
func (s *quizCacheService) InvalidateLeaderboard(ctx context.Context, quizID string) {
	s.delete(ctx, cache.LeaderboardKey(quizID), cache.LeaderboardKey(""))
}

func (s *quizCacheService) InvalidateQuiz(ctx context.Context, quizID string) {
	s.delete(ctx, cache.QuizDetailKey(quizID), cache.LeaderboardKey(quizID), cache.LeaderboardKey(""))
}

// detach keeps request values but not cancellation, so waiters sharing a load
// are not failed by the caller that started it.
func detach(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), sharedLoadTimeout)
}

// read reports whether key held a decodable value. Cache errors are logged
// and treated as a miss.
func (s *quizCacheService) read(ctx context.Context, key string, dest interface{}) bool {
	if s.cache == nil {
		return false
	}
	raw, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, domain.ErrCacheMiss) {
			logger.Get().Warn("Cache read failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		logger.Get().Warn("Discarding undecodable cache entry", zap.String("key", key), zap.Error(err))
		return false
	}
	logger.Get().Debug("Cache hit", zap.String("key", key))
	return true
}

func (s *quizCacheService) write(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		logger.Get().Error("Failed to encode cache entry", zap.String("key", key), zap.Error(err))
		return
	}
	if err := s.cache.Set(ctx, key, string(raw), ttl); err != nil {
		logger.Get().Warn("Cache write failed", zap.String("key", key), zap.Error(err))
	}
}

func (s *quizCacheService) delete(ctx context.Context, keys ...string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, keys...); err != nil {
		logger.Get().Warn("Cache invalidation failed", zap.Strings("keys", keys), zap.Error(err))
	}
}
