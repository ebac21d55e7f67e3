package parcel

import (
	"errors"
	"fmt"
	"strings"

	"foodbank/internal/entities"
	"foodbank/internal/service/household"
	"foodbank/internal/service/schedule"
)

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidOutcome        = errors.New("invalid parcel outcome")
	ErrValidationFailed      = errors.New("parcel validation failed")

	ErrParcelNotFound         = errors.New("parcel not found")
	ErrLocationNotFound       = schedule.ErrLocationNotFound
	ErrHouseholdNotFound      = household.ErrHouseholdNotFound
	ErrHouseholdAnonymized    = errors.New("household is anonymized")
	ErrOutcomeAlreadyRecorded = errors.New("parcel outcome already recorded")
	ErrNoShowBeforePickup     = errors.New("no-show cannot be recorded before the pickup window opens")
)

// ValidationFailedError переносит структурированный список нарушений через error.
type ValidationFailedError struct {
	Errors []entities.ValidationError
}

func (e *ValidationFailedError) Error() string {
	codes := make([]string, 0, len(e.Errors))
	for _, v := range e.Errors {
		codes = append(codes, v.Code.String())
	}
	return fmt.Sprintf("%s: %s", ErrValidationFailed, strings.Join(codes, ", "))
}

func (e *ValidationFailedError) Is(target error) bool {
	return target == ErrValidationFailed
}

// ValidationErrors достает список нарушений из цепочки ошибок.
func ValidationErrors(err error) ([]entities.ValidationError, bool) {
	var validationErr *ValidationFailedError
	if errors.As(err, &validationErr) {
		return validationErr.Errors, true
	}
	return nil, false
}
