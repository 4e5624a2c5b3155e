package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// newValidator reports fields by their koanf keys, so an error names the
// same path a YAML file or APP_ variable would use.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("koanf"), ",")
		if name == "" || name == "-" {
			return strings.ToLower(f.Name)
		}

		return name
	})

	v.RegisterStructValidation(validateStorage, StorageConfig{})

	return v
}

// validateStorage rejects two paths that name the same document once
// cleaned, e.g. "notes.json" and "./notes.json".
func validateStorage(sl validator.StructLevel) {
	s, ok := sl.Current().Interface().(StorageConfig)
	if !ok || s.NotesPath == "" || s.QuotesPath == "" {
		return
	}

	if filepath.Clean(s.NotesPath) == filepath.Clean(s.QuotesPath) {
		sl.ReportError(s.QuotesPath, "quotes_path", "QuotesPath", "distinct_document", "notes_path")
	}
}

// Validate checks c. Both binaries refuse to start with an invalid config.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	lines := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		lines = append(lines, describe(fe))
	}

	return fmt.Errorf("config validation failed:\n  %s", strings.Join(lines, "\n  "))
}

func describe(fe validator.FieldError) string {
	key := keyPath(fe.Namespace())

	switch fe.Tag() {
	case "required":
		return key + " is required"
	case "required_if":
		field, value, _ := strings.Cut(fe.Param(), " ")
		return fmt.Sprintf("%s is required when %s is %s", key, strings.ToLower(field), value)
	case "min":
		return fmt.Sprintf("%s must be at least %s", key, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", key, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", key, fe.Param())
	case "distinct_document":
		return fmt.Sprintf("%s must not name the same file as %s", key, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation: %s", key, fe.Tag())
	}
}

// keyPath drops the root struct from a namespace:
// "Config.storage.quotes_path" becomes "storage.quotes_path".
func keyPath(namespace string) string {
	_, rest, found := strings.Cut(namespace, ".")
	if !found {
		return namespace
	}

	return rest
}
