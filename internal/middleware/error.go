package middleware

import (
	"errors"
	"net/http"

	"quiz-master/internal/domain"
	"quiz-master/internal/dto"
	"quiz-master/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ErrorHandler renders every error returned by a handler as JSON.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		log := logger.Get().With(
			zap.String("path", c.Path()),
			zap.String("request_id", requestID(c)),
		)

		var validationErrs domain.ValidationErrors
		if errors.As(err, &validationErrs) {
			log.Warn("Validation errors occurred", zap.Int("error_count", len(validationErrs)))
			return c.Status(http.StatusBadRequest).JSON(dto.ValidationErrorResponse{
				Code:    string(domain.CodeValidation),
				Message: "Request validation failed",
				Errors:  validationErrs,
			})
		}

		var domainErr *domain.DomainError
		if errors.As(err, &domainErr) {
			status := StatusForCode(domainErr.Code)
			fields := []zap.Field{
				zap.String("code", string(domainErr.Code)),
				zap.String("message", domainErr.Message),
				zap.Int("status", status),
			}
			if domainErr.Cause != nil {
				fields = append(fields, zap.Error(domainErr.Cause))
			}
			if status >= http.StatusInternalServerError {
				log.Error("Domain error occurred", fields...)
			} else {
				log.Info("Request rejected", fields...)
			}

			resp := dto.ErrorResponse{Code: string(domainErr.Code), Message: domainErr.Message}
			if len(domainErr.Context) > 0 {
				resp.Details = domainErr.Context
			}
			return c.Status(status).JSON(resp)
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			log.Warn("Fiber error occurred", zap.Int("status", fiberErr.Code), zap.String("message", fiberErr.Message))
			return c.Status(fiberErr.Code).JSON(dto.ErrorResponse{
				Code:    "HTTP_ERROR",
				Message: fiberErr.Message,
			})
		}

		log.Error("Unknown error occurred", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code:    string(domain.CodeInternal),
			Message: "Internal server error",
		})
	}
}

// StatusForCode maps a domain error code to its HTTP status.
func StatusForCode(code domain.ErrorCode) int {
	switch code {
	case domain.CodeNotFound, domain.CodeQuizNotFound:
		return http.StatusNotFound
	case domain.CodeInvalidInput, domain.CodeValidation, domain.CodeMissingField,
		domain.CodeInvalidFormat, domain.CodeOutOfRange:
		return http.StatusBadRequest
	case domain.CodeQuizHasNoQuestions:
		return http.StatusConflict
	case domain.CodeNoQuestionsAvailable:
		return http.StatusUnprocessableEntity
	case domain.CodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
