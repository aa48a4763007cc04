// Package validator adapts go-playground/validator to echo.
package validator

import (
	"reflect"
	"strings"

	domainerrors "ufobeep/internal/domain/errors"
	"ufobeep/internal/errors"

	playground "github.com/go-playground/validator/v10"
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *playground.Validate
}

// New creates a validator that reports json field names.
func New() *CustomValidator {
	validate := playground.New(playground.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonFieldName)

	return &CustomValidator{validate: validate}
}

// Validate returns ErrValidationFailed carrying one "field: rule" entry per violation.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs playground.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.WithStack(err)
	}

	details := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		detail := fe.Field() + ": " + fe.Tag()
		if fe.Param() != "" {
			detail += "=" + fe.Param()
		}
		details = append(details, detail)
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(details, "; "))
}

func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}

	return name
}
