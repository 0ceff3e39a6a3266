package middleware

import (
	"quiz-master/internal/validation"

	"github.com/gofiber/fiber/v2"
)

const (
	LocalQuizID = "validated_quiz_id"
	LocalLimit  = "validated_limit"
)

// ValidationMiddleware checks path and query parameters before a handler runs.
type ValidationMiddleware struct {
	validator *validation.Validator
}

func NewValidationMiddleware(v *validation.Validator) *ValidationMiddleware {
	return &ValidationMiddleware{validator: v}
}

// ValidateQuizID checks the :id path parameter is a ULID.
func (vm *ValidationMiddleware) ValidateQuizID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if errs := vm.validator.ValidateQuizID(id); len(errs) > 0 {
			return errs
		}
		c.Locals(LocalQuizID, id)
		return c.Next()
	}
}

// ValidateLeaderboardQuery checks the optional quiz and limit query
// parameters.
func (vm *ValidationMiddleware) ValidateLeaderboardQuery() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if quizID := c.Query("quiz"); quizID != "" {
			if errs := vm.validator.ValidateQuizID(quizID); len(errs) > 0 {
				return errs
			}
			c.Locals(LocalQuizID, quizID)
		}

		limit, errs := vm.validator.ParseLeaderboardLimit(c.Query("limit"))
		if len(errs) > 0 {
			return errs
		}
		c.Locals(LocalLimit, limit)
		return c.Next()
	}
}
