package location

import "time"

type LocationDB struct {
	ID                         string
	Name                       string
	MaxParcelsPerDay           *int
	MaxParcelsPerSlot          *int
	DefaultSlotDurationMinutes int
}

type ScheduleDB struct {
	ID         string
	LocationID string
	Name       string
	StartDate  time.Time
	EndDate    time.Time
}

type ScheduleDayDB struct {
	ScheduleID  string
	Weekday     int16
	IsOpen      bool
	OpeningTime *string
	ClosingTime *string
}

type SpecialDayDB struct {
	LocationID  string
	Date        time.Time
	IsOpen      bool
	OpeningTime *string
	ClosingTime *string
}
