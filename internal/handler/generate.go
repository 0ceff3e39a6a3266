package handler

import (
	"quiz-master/internal/dto"
	"quiz-master/internal/service"
	"quiz-master/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// GenerateHandler serves instant quiz generation.
type GenerateHandler struct {
	quizService service.QuizService
	generator   service.GeneratorService
	validator   *validation.Validator
}

func NewGenerateHandler(quizService service.QuizService, generator service.GeneratorService, validator *validation.Validator) *GenerateHandler {
	return &GenerateHandler{quizService: quizService, generator: generator, validator: validator}
}

// Options godoc
// @Summary Generator options
// @Description Offline categories with question counts and the online categories
// @Tags generate
// @Produce json
// @Success 200 {object} dto.GenerateOptionsResponse
// @Router /generate/options [get]
func (h *GenerateHandler) Options(c *fiber.Ctx) error {
	return c.JSON(h.generator.Options())
}

// Generate godoc
// @Summary Generate a quiz
// @Description Builds and stores a quiz from the online trivia source or the built-in question bank
// @Tags generate
// @Accept json
// @Produce json
// @Param request body dto.GenerateQuizRequest true "Generation request"
// @Success 201 {object} dto.GenerateQuizResponse
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 429 {object} dto.ErrorResponse
// @Router /generate [post]
func (h *GenerateHandler) Generate(c *fiber.Ctx) error {
	var req dto.GenerateQuizRequest
	if err := bindJSON(c, h.validator, &req); err != nil {
		return err
	}
	resp, err := h.quizService.GenerateQuiz(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}
