package parcel

import (
	"errors"
	"strings"

	"foodbank/internal/entities"
)

func isValidID(id string) bool {
	return strings.TrimSpace(id) != ""
}

func hasRequiredFields(candidate entities.ParcelCandidate) bool {
	return isValidID(candidate.HouseholdID) && isValidID(candidate.PickupLocationID)
}

// sameWindow - кандидат совпадает с существующей выдачей по месту и времени.
func sameWindow(candidate entities.ParcelCandidate, p entities.Parcel) bool {
	return candidate.PickupLocationID == p.PickupLocationID &&
		candidate.PickupEarliestTime.Equal(p.PickupEarliestTime) &&
		candidate.PickupLatestTime.Equal(p.PickupLatestTime)
}

func isNotFound(err error) bool {
	return errors.Is(err, ErrParcelNotFound)
}
