package household

import "time"

type HouseholdDB struct {
	ID                        string
	FirstName                 string
	LastName                  string
	PhoneNumber               string
	Locale                    string
	CreatedAt                 time.Time
	AnonymizedAt              *time.Time
	AnonymizedBy              *string
	NoShowFollowupDismissedAt *time.Time
	NoShowFollowupDismissedBy *string
}

type OutcomeRowDB struct {
	HouseholdID            string
	FirstName              string
	LastName               string
	DismissedAt            *time.Time
	ParcelID               string
	PickupDateTimeEarliest time.Time
	NoShowAt               *time.Time
	IsPickedUp             bool
}
