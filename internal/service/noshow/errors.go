package noshow

import (
	"errors"

	"foodbank/internal/service/household"
)

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrHouseholdNotFound     = household.ErrHouseholdNotFound
)
