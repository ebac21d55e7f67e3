package household

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidInactivity     = errors.New("inactivity period must be positive")

	ErrHouseholdNotFound  = errors.New("household not found")
	ErrHasUpcomingParcels = errors.New("household has upcoming parcels")
)
