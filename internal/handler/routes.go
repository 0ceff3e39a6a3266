package handler

import (
	"time"

	"quiz-master/internal/config"
	"quiz-master/internal/dto"
	"quiz-master/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

const CodeRateLimited = "RATE_LIMITED"

// Handlers groups everything RegisterRoutes mounts.
type Handlers struct {
	Quiz        *QuizHandler
	Leaderboard *LeaderboardHandler
	Generate    *GenerateHandler
	Health      *HealthHandler
	Validation  *middleware.ValidationMiddleware
}

// GenerateLimiter caps generation requests per client IP. A non-positive
// max disables it.
func GenerateLimiter(cfg config.RateLimitConfig) fiber.Handler {
	if cfg.GenerateMax <= 0 {
		return func(c *fiber.Ctx) error { return c.Next() }
	}
	window := cfg.GenerateWindow
	if window <= 0 {
		window = time.Minute
	}
	return limiter.New(limiter.Config{
		Max:        cfg.GenerateMax,
		Expiration: window,
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{
				Code:    CodeRateLimited,
				Message: "Too many quizzes generated, slow down a little!",
			})
		},
	})
}

// RegisterRoutes mounts the JSON API under /api and the health check.
func RegisterRoutes(app *fiber.App, h Handlers, generateLimiter fiber.Handler) {
	app.Get("/healthz", h.Health.Health)

	api := app.Group("/api")

	quizzes := api.Group("/quizzes")
	quizzes.Get("/", h.Quiz.ListQuizzes)
	quizzes.Post("/", h.Quiz.CreateQuiz)
	quizzes.Get("/:id", h.Validation.ValidateQuizID(), h.Quiz.GetQuiz)
	quizzes.Delete("/:id", h.Validation.ValidateQuizID(), h.Quiz.DeleteQuiz)
	quizzes.Get("/:id/play", h.Validation.ValidateQuizID(), h.Quiz.PlayQuiz)
	quizzes.Post("/:id/submit", h.Validation.ValidateQuizID(), h.Quiz.SubmitAttempt)

	api.Get("/leaderboard", h.Validation.ValidateLeaderboardQuery(), h.Leaderboard.GetLeaderboard)

	api.Get("/generate/options", h.Generate.Options)
	api.Post("/generate", generateLimiter, h.Generate.Generate)
}
