package preference

import "errors"

var (
	ErrPreferencesNotFound   = errors.New("preferences not found")
	ErrEmptyInterests        = errors.New("at least one academic interest is required")
	ErrEmptyCountries        = errors.New("at least one preferred country is required")
	ErrInvalidBudgetRange    = errors.New("maximum budget must be greater than or equal to minimum budget")
	ErrNegativeBudget        = errors.New("budget cannot be negative")
	ErrInvalidStudyLevel     = errors.New("invalid study level")
	ErrInvalidUniversitySize = errors.New("invalid university size preference")
	ErrInvalidTestScore      = errors.New("test score out of range")
	ErrTextTooLong           = errors.New("text field exceeds maximum length")
)
