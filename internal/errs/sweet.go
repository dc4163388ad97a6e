package errs

import "fmt"

// Machine codes for the sweets resource.
const (
	CodeMissingField     = "MISSING_FIELD"
	CodeNegativeCalories = "NEGATIVE_CALORIES"
	CodeSweetNotFound    = "SWEET_NOT_FOUND"
)

// Client-facing messages. Clients match on these strings, keep them stable.
const (
	MsgMissingField     = "Both title and calories are required to add a sweet"
	MsgNegativeCalories = "Calories can't be negative"
)

// NewMissingFieldError is returned when title or calories is absent.
func NewMissingFieldError() *HTTPError {
	code := CodeMissingField
	return NewBadRequestError(MsgMissingField, true, &code, nil)
}

// NewNegativeCaloriesError is returned when calories is below zero.
func NewNegativeCaloriesError() *HTTPError {
	code := CodeNegativeCalories
	return NewBadRequestError(MsgNegativeCalories, true, &code, nil)
}

// NewSweetNotFoundError is returned when no sweet has the given id.
func NewSweetNotFoundError(id int64) *HTTPError {
	code := CodeSweetNotFound
	return NewNotFoundError(fmt.Sprintf("Sweet with id: %d does not exist", id), true, &code)
}
