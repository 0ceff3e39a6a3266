package service

import (
	"context"

	"quiz-master/internal/domain"
	"quiz-master/internal/dto"
	"quiz-master/internal/logger"
	"quiz-master/internal/questionbank"

	"go.uber.org/zap"
)

// GenerationSource names where generated questions came from.
type GenerationSource string

const (
	SourceOnline  GenerationSource = "online"
	SourceOffline GenerationSource = "offline"
	SourceNone    GenerationSource = "none"
)

// GenerationResult is never nil-sliced: Questions is empty when Source is none.
type GenerationResult struct {
	Questions []domain.QuestionDraft
	Source    GenerationSource
}

// OnlineSource is implemented by trivia.Client.
type OnlineSource interface {
	IsOnlineCategory(name string) bool
	Categories() []string
	FetchQuestions(ctx context.Context, category string, count int, difficulty domain.Difficulty) []domain.QuestionDraft
}

// OfflineSource is implemented by questionbank.Bank.
type OfflineSource interface {
	Categories() []string
	CategoryCounts() []questionbank.CategoryCount
	Sample(category string, count int) []domain.QuestionDraft
}

// GeneratorService picks questions for a new quiz. It does not persist.
type GeneratorService interface {
	// SmartFetch tries the online source for eligible categories and falls
	// back to the bank when that yields nothing.
	SmartFetch(ctx context.Context, category string, count int, difficulty domain.Difficulty) GenerationResult
	OfflineFetch(category string, count int) GenerationResult
	Options() *dto.GenerateOptionsResponse
}

type generatorService struct {
	online  OnlineSource
	offline OfflineSource
}

// NewGeneratorService accepts a nil online source, which disables online
// generation.
func NewGeneratorService(online OnlineSource, offline OfflineSource) GeneratorService {
	return &generatorService{online: online, offline: offline}
}

func (g *generatorService) SmartFetch(ctx context.Context, category string, count int, difficulty domain.Difficulty) GenerationResult {
	if g.online != nil && g.online.IsOnlineCategory(category) {
		if drafts := g.online.FetchQuestions(ctx, category, count, difficulty); len(drafts) > 0 {
			return GenerationResult{Questions: drafts, Source: SourceOnline}
		}
		logger.Get().Info("Online source returned nothing, falling back to question bank",
			zap.String("category", category),
			zap.Int("count", count),
		)
	}
	return g.OfflineFetch(category, count)
}

func (g *generatorService) OfflineFetch(category string, count int) GenerationResult {
	drafts := g.offline.Sample(category, count)
	if len(drafts) == 0 {
		return GenerationResult{Questions: []domain.QuestionDraft{}, Source: SourceNone}
	}
	return GenerationResult{Questions: drafts, Source: SourceOffline}
}

func (g *generatorService) Options() *dto.GenerateOptionsResponse {
	resp := &dto.GenerateOptionsResponse{
		OfflineCategories: []dto.CategoryCountResponse{},
		OnlineCategories:  []string{},
		OnlineEnabled:     g.online != nil,
	}
	for _, cc := range g.offline.CategoryCounts() {
		resp.OfflineCategories = append(resp.OfflineCategories, dto.CategoryCountResponse{Name: cc.Name, Count: cc.Count})
	}
	if g.online != nil {
		resp.OnlineCategories = append(resp.OnlineCategories, g.online.Categories()...)
	}
	return resp
}
