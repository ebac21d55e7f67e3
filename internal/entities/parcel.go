package entities

import "time"

type Parcel struct {
	ID                 string
	HouseholdID        string
	PickupLocationID   string
	PickupEarliestTime time.Time
	PickupLatestTime   time.Time
	IsPickedUp         bool
	PickedUpAt         *time.Time
	PickedUpBy         *string
	NoShowAt           *time.Time
	NoShowBy           *string
	DeletedAt          *time.Time
	DeletedBy          *string
	CreatedAt          time.Time
}

// HasOutcome сообщает, зафиксирован ли уже итог выдачи (выдан или неявка).
func (p *Parcel) HasOutcome() bool {
	return p.IsPickedUp || p.NoShowAt != nil
}

func (p *Parcel) IsDeleted() bool {
	return p.DeletedAt != nil
}

// ParcelCandidate - заявка на выдачу до проверки. ID == nil означает новую выдачу.
type ParcelCandidate struct {
	ID                 *string
	HouseholdID        string
	PickupLocationID   string
	PickupEarliestTime time.Time
	PickupLatestTime   time.Time
}

func (c ParcelCandidate) IsNew() bool {
	return c.ID == nil
}

type ParcelOutcomeType string

const (
	ParcelPickedUp ParcelOutcomeType = "picked_up"
	ParcelNoShow   ParcelOutcomeType = "no_show"
)

func (t ParcelOutcomeType) String() string {
	return string(t)
}

func (t ParcelOutcomeType) IsValid() bool {
	return t == ParcelPickedUp || t == ParcelNoShow
}

type ParcelModify struct {
	ID                 *string
	HouseholdID        *string
	PickupLocationID   *string
	PickupEarliestTime *time.Time
	PickupLatestTime   *time.Time
	IsPickedUp         *bool
	PickedUpAt         *time.Time
	PickedUpBy         *string
	NoShowAt           *time.Time
	NoShowBy           *string
	DeletedAt          *time.Time
	DeletedBy          *string
}

// ParcelReplaceResult - итог массовой замены выдач домохозяйства.
type ParcelReplaceResult struct {
	Created   []Parcel
	Kept      []Parcel
	Cancelled []string
}
