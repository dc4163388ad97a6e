package validation

import (
	"strconv"

	"github.com/deppfellow/sweets/internal/errs"
)

// CheckSweet is the gate every sweet write passes before touching the store.
//
// Checks run in a fixed order and the first failing step wins:
//  1. title absent/empty or calories absent -> MISSING_FIELD
//  2. calories < 0                           -> NEGATIVE_CALORIES
//  3. title longer than maxTitleLen or calories above maxCalories
//     -> CustomValidationErrors, one entry per field
//
// A nil return means the payload is accepted unchanged.
func CheckSweet(title *string, calories *int, maxTitleLen, maxCalories int) error {
	if title == nil || *title == "" || calories == nil {
		return errs.NewMissingFieldError()
	}

	if *calories < 0 {
		return errs.NewNegativeCaloriesError()
	}

	var fieldErrors CustomValidationErrors
	fieldErrors = append(fieldErrors, checkVar("title", *title, "max="+strconv.Itoa(maxTitleLen))...)
	fieldErrors = append(fieldErrors, checkVar("calories", *calories, "max="+strconv.Itoa(maxCalories))...)
	if len(fieldErrors) > 0 {
		return fieldErrors
	}

	return nil
}
