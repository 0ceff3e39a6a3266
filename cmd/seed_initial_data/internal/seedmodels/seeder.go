package seedmodels

import (
	"context"
	"fmt"

	"quiz-master/internal/domain"
	"quiz-master/internal/logger"
	"quiz-master/internal/service"
	"quiz-master/internal/validation"

	"go.uber.org/zap"
)

// Result counts what a seeding run did.
type Result struct {
	Created int
	Skipped int
	Failed  int
}

// Seeder inserts seed quizzes whose titles are not already stored.
type Seeder struct {
	quizRepo    domain.QuizRepository
	quizService service.QuizService
	txManager   domain.TransactionManager
	validator   *validation.Validator
}

func NewSeeder(quizRepo domain.QuizRepository, quizService service.QuizService, txManager domain.TransactionManager, validator *validation.Validator) *Seeder {
	return &Seeder{quizRepo: quizRepo, quizService: quizService, txManager: txManager, validator: validator}
}

// Seed processes each quiz in its own transaction. A failing quiz is logged
// and counted; the rest still run.
func (s *Seeder) Seed(ctx context.Context, quizzes []SeedQuiz) Result {
	log := logger.Get()
	var res Result
	for _, sq := range quizzes {
		created, err := s.seedQuiz(ctx, sq)
		switch {
		case err != nil:
			res.Failed++
			log.Error("Error seeding quiz, transaction rolled back", zap.String("title", sq.Title), zap.Error(err))
		case created:
			res.Created++
		default:
			res.Skipped++
			log.Info("Quiz exists, skipping", zap.String("title", sq.Title))
		}
	}
	return res
}

func (s *Seeder) seedQuiz(ctx context.Context, sq SeedQuiz) (bool, error) {
	req := sq.ToRequest()
	if errs := s.validator.Struct(req); len(errs) > 0 {
		return false, errs
	}

	created := false
	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		existing, err := s.quizRepo.GetQuizByTitle(txCtx, req.Title)
		if err != nil {
			return fmt.Errorf("error checking quiz %q: %w", req.Title, err)
		}
		if existing != nil {
			return nil
		}
		resp, err := s.quizService.CreateQuiz(txCtx, req)
		if err != nil {
			return err
		}
		created = true
		logger.Get().Info("Created quiz",
			zap.String("id", resp.ID),
			zap.String("title", resp.Title),
			zap.Int("questions", resp.QuestionCount),
		)
		return nil
	})
	if err != nil {
		return false, err
	}
	return created, nil
}
