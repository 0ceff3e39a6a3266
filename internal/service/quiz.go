package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"quiz-master/internal/domain"
	"quiz-master/internal/dto"
	"quiz-master/internal/logger"

	"go.uber.org/zap"
)

const (
	// TopScoresLimit is how many attempts the quiz detail view shows.
	TopScoresLimit = 5

	MessageQuizCreated = "Quiz created successfully! 🎉"
)

// QuizService covers browsing, authoring, playing, scoring, deleting and
// generating quizzes.
type QuizService interface {
	ListQuizzes(ctx context.Context) (*dto.QuizListResponse, error)
	GetQuiz(ctx context.Context, quizID string) (*dto.QuizDetailResponse, error)
	GetPlayableQuiz(ctx context.Context, quizID string) (*dto.PlayQuizResponse, error)
	CreateQuiz(ctx context.Context, req *dto.CreateQuizRequest) (*dto.QuizDetailResponse, error)
	SubmitAttempt(ctx context.Context, quizID string, req *dto.SubmitAttemptRequest) (*dto.SubmitAttemptResponse, error)
	DeleteQuiz(ctx context.Context, quizID string) error
	GenerateQuiz(ctx context.Context, req *dto.GenerateQuizRequest) (*dto.GenerateQuizResponse, error)
}

type quizService struct {
	quizRepo     domain.QuizRepository
	questionRepo domain.QuestionRepository
	attemptRepo  domain.AttemptRepository
	txManager    domain.TransactionManager
	generator    GeneratorService
	quizCache    QuizCacheService
}

func NewQuizService(
	quizRepo domain.QuizRepository,
	questionRepo domain.QuestionRepository,
	attemptRepo domain.AttemptRepository,
	txManager domain.TransactionManager,
	generator GeneratorService,
	quizCache QuizCacheService,
) QuizService {
	return &quizService{
		quizRepo:     quizRepo,
		questionRepo: questionRepo,
		attemptRepo:  attemptRepo,
		txManager:    txManager,
		generator:    generator,
		quizCache:    quizCache,
	}
}

// toDomainError keeps domain errors intact and wraps anything else as internal.
func toDomainError(err error, message string) error {
	var de *domain.DomainError
	if errors.As(err, &de) {
		return de
	}
	return domain.NewInternalError(message, err)
}

func (s *quizService) ListQuizzes(ctx context.Context) (*dto.QuizListResponse, error) {
	summaries, err := s.quizRepo.ListQuizzes(ctx)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list quizzes", err)
	}
	categories, err := s.quizRepo.ListCategories(ctx)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list categories", err)
	}

	resp := &dto.QuizListResponse{
		Quizzes:    make([]dto.QuizSummaryResponse, 0, len(summaries)),
		Categories: categories,
	}
	for _, qs := range summaries {
		resp.Quizzes = append(resp.Quizzes, dto.NewQuizSummaryResponse(&qs.Quiz, qs.QuestionCount, qs.AttemptCount))
	}
	return resp, nil
}

// loadQuiz returns the quiz with its questions or a QUIZ_NOT_FOUND error.
func (s *quizService) loadQuiz(ctx context.Context, quizID string) (*domain.Quiz, error) {
	quiz, err := s.quizCache.GetQuizWithQuestions(ctx, quizID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to load quiz", err).WithContext("quiz_id", quizID)
	}
	if quiz == nil {
		return nil, domain.NewQuizNotFoundError(quizID)
	}
	return quiz, nil
}

func (s *quizService) GetQuiz(ctx context.Context, quizID string) (*dto.QuizDetailResponse, error) {
	quiz, err := s.loadQuiz(ctx, quizID)
	if err != nil {
		return nil, err
	}
	attemptCount, err := s.attemptRepo.CountByQuizID(ctx, quizID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to count attempts", err)
	}
	top, err := s.quizCache.GetTopAttempts(ctx, quizID, TopScoresLimit)
	if err != nil {
		return nil, domain.NewInternalError("Failed to load top scores", err)
	}

	resp := &dto.QuizDetailResponse{
		QuizSummaryResponse: dto.NewQuizSummaryResponse(quiz, len(quiz.Questions), attemptCount),
		TopScores:           make([]dto.AttemptResponse, 0, len(top)),
	}
	for _, e := range top {
		resp.TopScores = append(resp.TopScores, dto.NewAttemptResponse(&e.Attempt))
	}
	return resp, nil
}

func (s *quizService) GetPlayableQuiz(ctx context.Context, quizID string) (*dto.PlayQuizResponse, error) {
	quiz, err := s.loadQuiz(ctx, quizID)
	if err != nil {
		return nil, err
	}
	if len(quiz.Questions) == 0 {
		return nil, domain.NewQuizHasNoQuestionsError(quizID)
	}
	return dto.NewPlayQuizResponse(quiz), nil
}

func (s *quizService) CreateQuiz(ctx context.Context, req *dto.CreateQuizRequest) (*dto.QuizDetailResponse, error) {
	quiz := &domain.Quiz{
		Title:           strings.TrimSpace(req.Title),
		Description:     req.Description,
		Category:        strings.TrimSpace(req.Category),
		Difficulty:      domain.Difficulty(req.Difficulty),
		Image:           req.Image,
		TimePerQuestion: req.TimePerQuestion,
	}
	if !quiz.Difficulty.Valid() {
		return nil, domain.NewInvalidInputError("difficulty must be easy, medium or hard")
	}

	questions := make([]*domain.Question, 0, len(req.Questions))
	for i, in := range req.Questions {
		q := &domain.Question{
			Position:      i + 1,
			QuestionText:  in.QuestionText,
			OptionA:       in.OptionA,
			OptionB:       in.OptionB,
			OptionC:       in.OptionC,
			OptionD:       in.OptionD,
			CorrectAnswer: in.CorrectAnswer,
			Explanation:   in.Explanation,
			Points:        in.Points,
		}
		if err := q.Validate(); err != nil {
			return nil, domain.NewInvalidInputError(fmt.Sprintf("question %d: %v", i+1, err))
		}
		questions = append(questions, q)
	}

	if err := s.persistQuiz(ctx, quiz, questions); err != nil {
		return nil, toDomainError(err, "Failed to create quiz")
	}
	logger.Get().Info("Quiz created",
		zap.String("quiz_id", quiz.ID),
		zap.String("category", quiz.Category),
		zap.Int("questions", len(questions)),
	)

	return &dto.QuizDetailResponse{
		QuizSummaryResponse: dto.NewQuizSummaryResponse(quiz, len(questions), 0),
		TopScores:           []dto.AttemptResponse{},
		Message:             MessageQuizCreated,
	}, nil
}

// persistQuiz writes the quiz and its questions in one transaction and
// verifies the stored question count before committing.
func (s *quizService) persistQuiz(ctx context.Context, quiz *domain.Quiz, questions []*domain.Question) error {
	return s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.quizRepo.CreateQuiz(txCtx, quiz); err != nil {
			return err
		}
		for _, q := range questions {
			q.QuizID = quiz.ID
		}
		if err := s.questionRepo.CreateQuestions(txCtx, questions); err != nil {
			return err
		}
		stored, err := s.questionRepo.CountByQuizID(txCtx, quiz.ID)
		if err != nil {
			return err
		}
		if stored != len(questions) {
			return domain.NewGenerationIncompleteError(len(questions), stored)
		}
		return nil
	})
}

func (s *quizService) SubmitAttempt(ctx context.Context, quizID string, req *dto.SubmitAttemptRequest) (*dto.SubmitAttemptResponse, error) {
	quiz, err := s.loadQuiz(ctx, quizID)
	if err != nil {
		return nil, err
	}
	if len(quiz.Questions) == 0 {
		return nil, domain.NewQuizHasNoQuestionsError(quizID)
	}

	card := domain.ScoreAnswers(quiz.Questions, req.Answers)

	timeTaken := 0
	if req.TimeTaken != nil {
		timeTaken = *req.TimeTaken
	}
	attempt := &domain.Attempt{
		QuizID:         quizID,
		PlayerName:     strings.TrimSpace(req.PlayerName),
		Score:          card.Score,
		TotalPoints:    card.TotalPoints,
		CorrectAnswers: card.CorrectAnswers,
		TotalQuestions: card.TotalQuestions,
		TimeTaken:      timeTaken,
	}
	if err := s.attemptRepo.CreateAttempt(ctx, attempt); err != nil {
		return nil, domain.NewInternalError("Failed to save attempt", err).WithContext("quiz_id", quizID)
	}
	s.quizCache.InvalidateLeaderboard(ctx, quizID)

	logger.Get().Info("Attempt recorded",
		zap.String("quiz_id", quizID),
		zap.String("attempt_id", attempt.ID),
		zap.Int("score", attempt.Score),
		zap.Int("total_points", attempt.TotalPoints),
	)

	return &dto.SubmitAttemptResponse{
		QuizID:     quiz.ID,
		QuizTitle:  quiz.Title,
		Attempt:    dto.NewAttemptResponse(attempt),
		Percentage: card.Percentage(),
		Grade:      card.Grade(),
		Results:    card.Results,
	}, nil
}

// DeleteQuiz removes attempts, questions and the quiz in one transaction.
// The foreign keys cascade as well.
func (s *quizService) DeleteQuiz(ctx context.Context, quizID string) error {
	quiz, err := s.quizRepo.GetQuizByID(ctx, quizID)
	if err != nil {
		return domain.NewInternalError("Failed to load quiz", err)
	}
	if quiz == nil {
		return domain.NewQuizNotFoundError(quizID)
	}

	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.attemptRepo.DeleteByQuizID(txCtx, quizID); err != nil {
			return err
		}
		if err := s.questionRepo.DeleteByQuizID(txCtx, quizID); err != nil {
			return err
		}
		return s.quizRepo.DeleteQuiz(txCtx, quizID)
	})
	if err != nil {
		return domain.NewInternalError("Failed to delete quiz", err).WithContext("quiz_id", quizID)
	}
	s.quizCache.InvalidateQuiz(ctx, quizID)

	logger.Get().Info("Quiz deleted", zap.String("quiz_id", quizID))
	return nil
}

func (s *quizService) GenerateQuiz(ctx context.Context, req *dto.GenerateQuizRequest) (*dto.GenerateQuizResponse, error) {
	difficulty := domain.Difficulty(req.Difficulty)
	if !difficulty.Valid() {
		return nil, domain.NewInvalidInputError("difficulty must be easy, medium or hard")
	}
	category := strings.TrimSpace(req.Category)
	online := req.Source == string(SourceOnline)

	var result GenerationResult
	if online {
		result = s.generator.SmartFetch(ctx, category, req.NumQuestions, difficulty)
	} else {
		result = s.generator.OfflineFetch(category, req.NumQuestions)
	}

	points := domain.PointsFor(difficulty)
	questions := make([]*domain.Question, 0, len(result.Questions))
	for _, draft := range result.Questions {
		q := draft.ToQuestion("", len(questions)+1, points)
		if err := q.Validate(); err != nil {
			logger.Get().Warn("Skipping unusable generated question",
				zap.String("question", draft.QuestionText),
				zap.String("source", string(result.Source)),
				zap.Error(err),
			)
			continue
		}
		questions = append(questions, &q)
	}
	if len(questions) == 0 {
		return nil, domain.NewNoQuestionsAvailableError(category, online)
	}

	n := len(questions)
	quiz := &domain.Quiz{
		Title: fmt.Sprintf("%s Challenge — %d Questions", category, n),
		Description: fmt.Sprintf("A %s quiz with %d random %s questions. Source: %s. Good luck! 🎯",
			strings.ToLower(string(difficulty)), n, category, sourceLabel(result.Source)),
		Category:        category,
		Difficulty:      difficulty,
		TimePerQuestion: domain.TimePerQuestionFor(difficulty),
	}

	if err := s.persistQuiz(ctx, quiz, questions); err != nil {
		return nil, toDomainError(err, "Failed to save generated quiz")
	}
	logger.Get().Info("Quiz generated",
		zap.String("quiz_id", quiz.ID),
		zap.String("category", category),
		zap.String("source", string(result.Source)),
		zap.Int("questions", n),
	)

	return &dto.GenerateQuizResponse{
		Quiz:    dto.NewQuizSummaryResponse(quiz, n, 0),
		Source:  string(result.Source),
		Message: generatedMessage(result.Source, n),
	}, nil
}

func sourceLabel(src GenerationSource) string {
	if src == SourceOnline {
		return "🌐 Online"
	}
	return "📦 Offline"
}

func generatedMessage(src GenerationSource, n int) string {
	detail := "📦 Generated from our built-in question bank."
	if src == SourceOnline {
		detail = fmt.Sprintf("🌐 Fetched %d fresh questions from the internet!", n)
	}
	return "⚡ Quiz generated! " + detail + " Let's go!"
}
