package location

import (
	"time"

	"foodbank/internal/entities"
)

func ToDomainLocation(l *LocationDB) *entities.PickupLocation {
	if l == nil {
		return nil
	}

	slotMinutes := l.DefaultSlotDurationMinutes
	if slotMinutes <= 0 {
		slotMinutes = entities.DefaultSlotDurationMinutes
	}

	return &entities.PickupLocation{
		ID:                         l.ID,
		Name:                       l.Name,
		MaxParcelsPerDay:           l.MaxParcelsPerDay,
		MaxParcelsPerSlot:          l.MaxParcelsPerSlot,
		DefaultSlotDurationMinutes: slotMinutes,
	}
}

func ToDomainSchedule(s *ScheduleDB, days []ScheduleDayDB) *entities.Schedule {
	if s == nil {
		return nil
	}

	schedule := &entities.Schedule{
		ID:         s.ID,
		LocationID: s.LocationID,
		Name:       s.Name,
		StartDate:  s.StartDate,
		EndDate:    s.EndDate,
		Days:       make([]entities.ScheduleDay, 0, len(days)),
	}
	for _, day := range days {
		schedule.Days = append(schedule.Days, entities.ScheduleDay{
			Weekday:     time.Weekday(day.Weekday),
			IsOpen:      day.IsOpen,
			OpeningTime: day.OpeningTime,
			ClosingTime: day.ClosingTime,
		})
	}
	return schedule
}

func ToDomainSpecialDay(d *SpecialDayDB) *entities.SpecialDay {
	if d == nil {
		return nil
	}

	return &entities.SpecialDay{
		LocationID:  d.LocationID,
		Date:        d.Date,
		IsOpen:      d.IsOpen,
		OpeningTime: d.OpeningTime,
		ClosingTime: d.ClosingTime,
	}
}
