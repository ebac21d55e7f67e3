package entities

import "time"

const (
	DefaultNoShowConsecutiveThreshold = 2
	DefaultNoShowTotalThreshold       = 4
)

type NoShowSettings struct {
	Enabled              bool
	ConsecutiveThreshold int
	TotalThreshold       int
}

func DefaultNoShowSettings() NoShowSettings {
	return NoShowSettings{
		Enabled:              true,
		ConsecutiveThreshold: DefaultNoShowConsecutiveThreshold,
		TotalThreshold:       DefaultNoShowTotalThreshold,
	}
}

// ParcelOutcomeRow - выдача с зафиксированным итогом вместе с данными домохозяйства.
type ParcelOutcomeRow struct {
	HouseholdID        string
	FirstName          string
	LastName           string
	DismissedAt        *time.Time
	ParcelID           string
	PickupEarliestTime time.Time
	NoShowAt           *time.Time
	IsPickedUp         bool
}

type NoShowFollowup struct {
	HouseholdID        string
	FirstName          string
	LastName           string
	TotalNoShows       int
	ConsecutiveNoShows int
	LastNoShowAt       time.Time
}
