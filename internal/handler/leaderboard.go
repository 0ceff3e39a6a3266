package handler

import (
	"quiz-master/internal/middleware"
	"quiz-master/internal/service"

	"github.com/gofiber/fiber/v2"
)

type LeaderboardHandler struct {
	service service.LeaderboardService
}

func NewLeaderboardHandler(service service.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{service: service}
}

// GetLeaderboard godoc
// @Summary Leaderboard
// @Description Top attempts ranked by score then time, optionally for one quiz
// @Tags leaderboard
// @Produce json
// @Param quiz query string false "Quiz ID (ULID)"
// @Param limit query int false "Number of entries (1-50, default 50)"
// @Success 200 {object} dto.LeaderboardResponse
// @Failure 400 {object} dto.ValidationErrorResponse
// @Router /leaderboard [get]
func (h *LeaderboardHandler) GetLeaderboard(c *fiber.Ctx) error {
	quizID, _ := c.Locals(middleware.LocalQuizID).(string)
	limit, _ := c.Locals(middleware.LocalLimit).(int)

	resp, err := h.service.GetLeaderboard(c.UserContext(), quizID, limit)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
