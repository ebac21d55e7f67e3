package entities

import "time"

const (
	AnonymizedFirstName = "Anonymized"
	AnonymizedLastName  = "Household"
	// AnonymizedPhonePrefix - префикс плейсхолдера, за ним идет порядковый номер.
	AnonymizedPhonePrefix = "+0000"
	// SystemActor - автор изменений, сделанных фоновыми задачами.
	SystemActor = "system"
)

type Household struct {
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

func (h *Household) IsAnonymized() bool {
	return h.AnonymizedAt != nil
}

type HouseholdRemovalType string

const (
	HouseholdDeleted           HouseholdRemovalType = "deleted"
	HouseholdAnonymized        HouseholdRemovalType = "anonymized"
	HouseholdAlreadyAnonymized HouseholdRemovalType = "already_anonymized"
)

func (t HouseholdRemovalType) String() string {
	return string(t)
}

type HouseholdRemoval struct {
	HouseholdID string
	Result      HouseholdRemovalType
}

type SweepError struct {
	HouseholdID string
	Err         error
}

type AnonymizationSweepResult struct {
	Anonymized int
	Errors     []SweepError
}
