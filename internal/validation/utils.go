package validation

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"

	"github.com/deppfellow/sweets/internal/errs"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// validate is shared: validator.Validate caches struct metadata and is
// safe for concurrent use.
var validate = validator.New()

// Validatable is implemented by request payload types that know how to
// validate themselves.
//
// Validate may return:
//   - nil when the payload is accepted
//   - an *errs.HTTPError, passed to the client unchanged
//   - CustomValidationErrors, turned into a 400 with field-level errors
type Validatable interface {
	Validate() error
}

// CustomValidationError represents a single validation issue for a specific field.
type CustomValidationError struct {
	Field   string
	Message string
}

// CustomValidationErrors is a slice of custom validation errors that satisfies error.
type CustomValidationErrors []CustomValidationError

func (c CustomValidationErrors) Error() string {
	return "Validation failed"
}

// BindAndValidate binds request data into payload and validates it.
//
//  1. c.Bind(payload) fills the struct from path params and the body.
//     A body sent without Content-Type is decoded as JSON.
//  2. payload.Validate() applies the payload's own rules.
//
// payload must be a pointer to a struct.
func BindAndValidate(c echo.Context, payload Validatable) error {
	req := c.Request()
	if req.ContentLength != 0 && req.Header.Get(echo.HeaderContentType) == "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	if err := c.Bind(payload); err != nil {
		return bindError(err)
	}

	err := payload.Validate()
	if err == nil {
		return nil
	}

	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	msg, fieldErrors := extractValidationError(err)
	return errs.NewBadRequestError(msg, true, nil, fieldErrors)
}

// bindError turns Echo's binder errors into our 400 shape. Echo reports
// binding failures as *echo.HTTPError whose Message is a plain string.
func bindError(err error) error {
	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		if echoErr.Code != http.StatusBadRequest {
			return echoErr
		}
		if msg, ok := echoErr.Message.(string); ok && msg != "" {
			return errs.NewBadRequestError(msg, false, nil, nil)
		}
	}
	return errs.NewBadRequestError("Invalid request payload", false, nil, nil)
}

// checkVar validates a single value against validator tags.
func checkVar(field string, value any, tag string) CustomValidationErrors {
	err := validate.Var(value, tag)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return CustomValidationErrors{{Field: field, Message: err.Error()}}
	}

	fieldErrors := make(CustomValidationErrors, 0, len(validationErrors))
	for _, fe := range validationErrors {
		fieldErrors = append(fieldErrors, CustomValidationError{
			Field:   field,
			Message: describe(fe),
		})
	}
	return fieldErrors
}

func extractValidationError(err error) (string, []errs.FieldError) {
	var customValidationErrors CustomValidationErrors
	if !errors.As(err, &customValidationErrors) {
		return err.Error(), nil
	}

	fieldErrors := make([]errs.FieldError, 0, len(customValidationErrors))
	for _, cve := range customValidationErrors {
		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: cve.Field,
			Error: cve.Message,
		})
	}
	return customValidationErrors.Error(), fieldErrors
}

// describe renders a validator.FieldError as a short human message.
func describe(fe validator.FieldError) string {
	if fe.Tag() == "max" {
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must not exceed %s characters", fe.Param())
		}
		return fmt.Sprintf("must not exceed %s", fe.Param())
	}

	if fe.Param() != "" {
		return fmt.Sprintf("%s:%s", fe.Tag(), fe.Param())
	}
	return fe.Tag()
}
