package entities

import "time"

const DefaultSlotDurationMinutes = 15

type PickupLocation struct {
	ID                         string
	Name                       string
	MaxParcelsPerDay           *int
	MaxParcelsPerSlot          *int
	DefaultSlotDurationMinutes int
}

// Schedule - недельное расписание пункта выдачи на интервале дат [StartDate, EndDate].
// Даты хранятся как полночь UTC календарного дня.
type Schedule struct {
	ID         string
	LocationID string
	Name       string
	StartDate  time.Time
	EndDate    time.Time
	Days       []ScheduleDay
}

// Day возвращает настройки дня недели или false, если день не описан.
func (s *Schedule) Day(weekday time.Weekday) (ScheduleDay, bool) {
	for _, d := range s.Days {
		if d.Weekday == weekday {
			return d, true
		}
	}
	return ScheduleDay{}, false
}

// ScheduleDay хранит время в формате "HH:MM". При IsOpen == false время не задано.
type ScheduleDay struct {
	Weekday     time.Weekday
	IsOpen      bool
	OpeningTime *string
	ClosingTime *string
}

// SpecialDay переопределяет недельное расписание на конкретную дату.
type SpecialDay struct {
	LocationID  string
	Date        time.Time
	IsOpen      bool
	OpeningTime *string
	ClosingTime *string
}

type OperatingHoursSource string

const (
	HoursFromSpecialDay OperatingHoursSource = "special_day"
	HoursFromSchedule   OperatingHoursSource = "schedule"
	HoursNone           OperatingHoursSource = "none"
)

// OperatingHours - часы работы на конкретную дату в минутах от полуночи.
type OperatingHours struct {
	IsOpen     bool
	Opening    int
	Closing    int
	ScheduleID *string
	Source     OperatingHoursSource
}

type ScheduleModify struct {
	ID         *string
	LocationID *string
	Name       *string
	StartDate  *time.Time
	EndDate    *time.Time
	Days       []ScheduleDay
}

// TimeGap - разрыв между соседними слотами.
type TimeGap struct {
	StartTime       string
	EndTime         string
	DurationMinutes int
}

// DateRange - интервал календарных дат с границами включительно.
type DateRange struct {
	ID        string
	StartDate time.Time
	EndDate   time.Time
}

func (s *Schedule) DateRange() DateRange {
	return DateRange{ID: s.ID, StartDate: s.StartDate, EndDate: s.EndDate}
}

type WeekRange struct {
	StartDate time.Time
	EndDate   time.Time
}

type WeekAndYear struct {
	Week int
	Year int
}

type DaySlots struct {
	LocationID          string
	Date                time.Time
	SlotDurationMinutes int
	Hours               OperatingHours
	Slots               []string
	Gaps                []TimeGap
}
