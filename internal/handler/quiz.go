package handler

import (
	"quiz-master/internal/dto"
	"quiz-master/internal/service"
	"quiz-master/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// QuizHandler handles quiz-related HTTP requests
type QuizHandler struct {
	service   service.QuizService
	validator *validation.Validator
}

func NewQuizHandler(service service.QuizService, validator *validation.Validator) *QuizHandler {
	return &QuizHandler{service: service, validator: validator}
}

// ListQuizzes godoc
// @Summary List quizzes
// @Description Returns every quiz, newest first, with question and attempt counts and the distinct category list
// @Tags quizzes
// @Produce json
// @Success 200 {object} dto.QuizListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /quizzes [get]
func (h *QuizHandler) ListQuizzes(c *fiber.Ctx) error {
	resp, err := h.service.ListQuizzes(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// GetQuiz godoc
// @Summary Show a quiz
// @Description Returns a quiz with its counts and top five scores
// @Tags quizzes
// @Produce json
// @Param id path string true "Quiz ID (ULID)"
// @Success 200 {object} dto.QuizDetailResponse
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /quizzes/{id} [get]
func (h *QuizHandler) GetQuiz(c *fiber.Ctx) error {
	resp, err := h.service.GetQuiz(c.UserContext(), quizIDParam(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// PlayQuiz godoc
// @Summary Start a quiz
// @Description Returns the ordered questions with their options. Correct answers are never included.
// @Tags quizzes
// @Produce json
// @Param id path string true "Quiz ID (ULID)"
// @Success 200 {object} dto.PlayQuizResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /quizzes/{id}/play [get]
func (h *QuizHandler) PlayQuiz(c *fiber.Ctx) error {
	resp, err := h.service.GetPlayableQuiz(c.UserContext(), quizIDParam(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// CreateQuiz godoc
// @Summary Author a quiz
// @Description Creates a quiz and its questions in one transaction
// @Tags quizzes
// @Accept json
// @Produce json
// @Param request body dto.CreateQuizRequest true "Quiz with questions"
// @Success 201 {object} dto.QuizDetailResponse
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /quizzes [post]
func (h *QuizHandler) CreateQuiz(c *fiber.Ctx) error {
	var req dto.CreateQuizRequest
	if err := bindJSON(c, h.validator, &req); err != nil {
		return err
	}
	resp, err := h.service.CreateQuiz(c.UserContext(), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// SubmitAttempt godoc
// @Summary Submit answers
// @Description Scores the answers, records the attempt and returns a per-question review
// @Tags quizzes
// @Accept json
// @Produce json
// @Param id path string true "Quiz ID (ULID)"
// @Param request body dto.SubmitAttemptRequest true "Answers keyed by question ID"
// @Success 201 {object} dto.SubmitAttemptResponse
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /quizzes/{id}/submit [post]
func (h *QuizHandler) SubmitAttempt(c *fiber.Ctx) error {
	var req dto.SubmitAttemptRequest
	if err := bindJSON(c, h.validator, &req); err != nil {
		return err
	}
	resp, err := h.service.SubmitAttempt(c.UserContext(), quizIDParam(c), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// DeleteQuiz godoc
// @Summary Delete a quiz
// @Description Deletes a quiz with its questions and attempts
// @Tags quizzes
// @Param id path string true "Quiz ID (ULID)"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Router /quizzes/{id} [delete]
func (h *QuizHandler) DeleteQuiz(c *fiber.Ctx) error {
	if err := h.service.DeleteQuiz(c.UserContext(), quizIDParam(c)); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
