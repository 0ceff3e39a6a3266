// Package handler exposes the quiz services over a JSON API.
package handler

import (
	"quiz-master/internal/domain"
	"quiz-master/internal/middleware"
	"quiz-master/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// bindJSON decodes the request body into dst and validates it.
func bindJSON(c *fiber.Ctx, v *validation.Validator, dst interface{}) error {
	if err := c.BodyParser(dst); err != nil {
		return domain.NewInvalidInputError("Request body must be valid JSON")
	}
	if errs := v.Struct(dst); len(errs) > 0 {
		return errs
	}
	return nil
}

// quizIDParam prefers the id stored by the validation middleware.
func quizIDParam(c *fiber.Ctx) string {
	if id, ok := c.Locals(middleware.LocalQuizID).(string); ok {
		return id
	}
	return c.Params("id")
}
