package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"quiz-master/internal/domain"
	"quiz-master/internal/util"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

const (
	MinLeaderboardLimit = 1
	MaxLeaderboardLimit = 50
)

// Validator checks request DTOs and path/query parameters and reports
// failures as domain.ValidationErrors keyed by JSON field name.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(fmt.Sprintf("register notblank: %v", err))
	}
	return &Validator{validate: v}
}

// Struct validates a request body. It returns nil when s is valid.
func (v *Validator) Struct(s interface{}) domain.ValidationErrors {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return domain.ValidationErrors{{Field: "body", Code: domain.CodeValidation, Message: err.Error()}}
	}

	out := make(domain.ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, translate(fe))
	}
	return out
}

// fieldPath drops the struct name from the namespace:
// CreateQuizRequest.questions[0].option_a becomes questions[0].option_a.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func translate(fe validator.FieldError) domain.ValidationError {
	field := fieldPath(fe)
	switch fe.Tag() {
	case "required", "notblank":
		return domain.NewMissingFieldError(field)
	case "min", "max", "gte", "lte":
		return domain.ValidationError{
			Field:   field,
			Code:    domain.CodeOutOfRange,
			Message: boundMessage(fe),
			Value:   fe.Value(),
		}
	case "oneof":
		return domain.ValidationError{
			Field:   field,
			Code:    domain.CodeInvalidFormat,
			Message: "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", "),
			Value:   fe.Value(),
		}
	default:
		return domain.NewInvalidFormatError(field, fe.Value())
	}
}

func boundMessage(fe validator.FieldError) string {
	kind := fe.Kind()
	if kind == reflect.Ptr {
		kind = fe.Type().Elem().Kind()
	}
	unit := ""
	switch kind {
	case reflect.String:
		unit = " characters"
	case reflect.Slice, reflect.Map, reflect.Array:
		unit = " items"
	}
	switch fe.Tag() {
	case "min", "gte":
		return fmt.Sprintf("must be at least %s%s", fe.Param(), unit)
	default:
		return fmt.Sprintf("must be at most %s%s", fe.Param(), unit)
	}
}

// ValidateQuizID checks a quiz id path parameter.
func (v *Validator) ValidateQuizID(quizID string) domain.ValidationErrors {
	if strings.TrimSpace(quizID) == "" {
		return domain.ValidationErrors{domain.NewMissingFieldError("quiz_id")}
	}
	if !util.IsULID(quizID) {
		return domain.ValidationErrors{domain.NewInvalidFormatError("quiz_id", quizID)}
	}
	return nil
}

// ParseLeaderboardLimit parses the optional limit query parameter. An empty
// value yields 0, which the leaderboard treats as its default.
func (v *Validator) ParseLeaderboardLimit(raw string) (int, domain.ValidationErrors) {
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.ValidationErrors{domain.NewInvalidFormatError("limit", raw)}
	}
	if n < MinLeaderboardLimit || n > MaxLeaderboardLimit {
		return 0, domain.ValidationErrors{domain.NewOutOfRangeError("limit", n, MinLeaderboardLimit, MaxLeaderboardLimit)}
	}
	return n, nil
}
