package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/jsamuelsen/mindnotes/internal/domain"
)

var (
	// ErrValidation wraps request fields that fail their tags.
	ErrValidation = errors.New("validation failed")

	// ErrBinding wraps a body or query string that could not be decoded.
	ErrBinding = errors.New("binding failed")
)

var validate = newValidator()

// newValidator names fields by their json (or form) key and registers the
// journal's own tags:
//
//	notempty  rejects whitespace-only text
//	mood      accepts a mood label or bare name, any case
func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name, _, _ := strings.Cut(f.Tag.Get(tag), ",")
			if name == "-" {
				return ""
			}

			if name != "" {
				return name
			}
		}

		return f.Name
	})

	_ = v.RegisterValidation("notempty", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	_ = v.RegisterValidation("mood", func(fl validator.FieldLevel) bool {
		_, err := domain.ParseMood(fl.Field().String())
		return err == nil
	})

	return v
}

// Validate checks the struct tags of v.
func Validate(v any) error {
	if err := validate.Struct(v); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return nil
}

// BindAndValidate decodes the JSON body into v and validates it.
func BindAndValidate(c *gin.Context, v any) error {
	if err := c.ShouldBindJSON(v); err != nil {
		return fmt.Errorf("%w: %w", ErrBinding, err)
	}

	return Validate(v)
}

// BindQueryAndValidate decodes the query string into v and validates it.
func BindQueryAndValidate(c *gin.Context, v any) error {
	if err := c.ShouldBindQuery(v); err != nil {
		return fmt.Errorf("%w: %w", ErrBinding, err)
	}

	return Validate(v)
}

// ValidationErrors maps each failing field to a message for the error
// envelope's details.
func ValidationErrors(err error) map[string]string {
	out := make(map[string]string)

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			out[fe.Field()] = fieldMessage(fe)
		}
	}

	return out
}

// IsValidationError reports whether err carries field-level failures.
func IsValidationError(err error) bool {
	var fieldErrs validator.ValidationErrors
	return errors.As(err, &fieldErrs)
}

func moodNames() string {
	names := make([]string, 0, len(domain.Moods()))
	for _, m := range domain.Moods() {
		names = append(names, m.Name())
	}

	return strings.Join(names, ", ")
}

func fieldMessage(fe validator.FieldError) string {
	param := fe.Param()

	unit := ""
	if fe.Kind() == reflect.String {
		unit = " characters"
	}

	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "notempty":
		return "must not be empty"
	case "mood":
		return "must be one of: " + moodNames()
	case "min":
		return "must be at least " + param + unit
	case "max":
		return "must be at most " + param + unit
	case "gte":
		return "must be greater than or equal to " + param
	case "lte":
		return "must be less than or equal to " + param
	case "oneof":
		return "must be one of: " + param
	default:
		return "failed validation: " + fe.Tag()
	}
}

// RespondWithBindError writes the 400 envelope for a BindAndValidate failure:
// field details for tag failures, a bad-request message otherwise.
func RespondWithBindError(c *gin.Context, err error) {
	if IsValidationError(err) {
		writeFieldErrors(c, ValidationErrors(err))
		return
	}

	if errors.Is(err, ErrValidation) {
		WriteCode(c, ErrorCodeValidation, err.Error())
		return
	}

	WriteCode(c, ErrorCodeBadRequest, "request body must be a JSON object")
}
