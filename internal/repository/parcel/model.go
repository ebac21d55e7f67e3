package parcel

import "time"

type ParcelDB struct {
	ID                     string
	HouseholdID            string
	PickupLocationID       string
	PickupDateTimeEarliest time.Time
	PickupDateTimeLatest   time.Time
	IsPickedUp             bool
	PickedUpAt             *time.Time
	PickedUpBy             *string
	NoShowAt               *time.Time
	NoShowBy               *string
	DeletedAt              *time.Time
	DeletedBy              *string
	CreatedAt              time.Time
}

type ParcelModifyDB struct {
	ID                     *string
	HouseholdID            *string
	PickupLocationID       *string
	PickupDateTimeEarliest *time.Time
	PickupDateTimeLatest   *time.Time
	IsPickedUp             *bool
	PickedUpAt             *time.Time
	PickedUpBy             *string
	NoShowAt               *time.Time
	NoShowBy               *string
}
