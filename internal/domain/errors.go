package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	CodeInternal      ErrorCode = "INTERNAL_ERROR"
	CodeInvalidInput  ErrorCode = "INVALID_INPUT"
	CodeNotFound      ErrorCode = "NOT_FOUND"
	CodeValidation    ErrorCode = "VALIDATION_ERROR"
	CodeMissingField  ErrorCode = "MISSING_FIELD"
	CodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	CodeOutOfRange    ErrorCode = "OUT_OF_RANGE"
	CodeUnavailable   ErrorCode = "SERVICE_UNAVAILABLE"

	// Quiz specific errors
	CodeQuizNotFound         ErrorCode = "QUIZ_NOT_FOUND"
	CodeQuizHasNoQuestions   ErrorCode = "QUIZ_HAS_NO_QUESTIONS"
	CodeNoQuestionsAvailable ErrorCode = "NO_QUESTIONS_AVAILABLE"
	CodeGenerationIncomplete ErrorCode = "GENERATION_INCOMPLETE"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]interface{}
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error { return e.Cause }

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// WithContext attaches a detail that is returned to the client.
func (e *DomainError) WithContext(key string, value interface{}) *DomainError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

func NewError(code ErrorCode, message string, cause error) *DomainError {
	return &DomainError{Code: code, Message: message, Cause: cause}
}

func NewNotFoundError(message string) *DomainError {
	return NewError(CodeNotFound, message, nil)
}

func NewInvalidInputError(message string) *DomainError {
	return NewError(CodeInvalidInput, message, nil)
}

func NewInternalError(message string, cause error) *DomainError {
	return NewError(CodeInternal, message, cause)
}

func NewQuizNotFoundError(quizID string) *DomainError {
	return NewError(CodeQuizNotFound, fmt.Sprintf("Quiz not found with ID: %s", quizID), nil).
		WithContext("quiz_id", quizID)
}

func NewQuizHasNoQuestionsError(quizID string) *DomainError {
	return NewError(CodeQuizHasNoQuestions, "This quiz has no questions yet!", nil).
		WithContext("quiz_id", quizID)
}

// NewNoQuestionsAvailableError is returned when generation found nothing.
// The message depends on whether online sourcing was requested.
func NewNoQuestionsAvailableError(category string, online bool) *DomainError {
	msg := "No questions available for that category. Try another one!"
	if online {
		msg = "Couldn't fetch questions online and no offline backup for this category. Try another category or switch to offline mode!"
	}
	return NewError(CodeNoQuestionsAvailable, msg, nil).WithContext("category", category)
}

func NewGenerationIncompleteError(expected, stored int) *DomainError {
	return NewError(CodeGenerationIncomplete, "Generated quiz was not fully stored", nil).
		WithContext("expected_questions", expected).
		WithContext("stored_questions", stored)
}

// ValidationError describes one rejected field.
type ValidationError struct {
	Field   string      `json:"field"`
	Code    ErrorCode   `json:"code"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors is returned by request validation and rendered as a 400.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for _, e := range v {
		parts = append(parts, e.Error())
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func NewMissingFieldError(field string) ValidationError {
	return ValidationError{Field: field, Code: CodeMissingField, Message: "field is required"}
}

func NewInvalidFormatError(field string, value interface{}) ValidationError {
	return ValidationError{Field: field, Code: CodeInvalidFormat, Message: "field has an invalid format", Value: value}
}

func NewOutOfRangeError(field string, value interface{}, min, max int) ValidationError {
	return ValidationError{
		Field:   field,
		Code:    CodeOutOfRange,
		Message: fmt.Sprintf("value must be between %d and %d", min, max),
		Value:   value,
	}
}
