package schedule

import (
	"fmt"
	"strings"
	"time"

	"foodbank/internal/entities"
	"foodbank/internal/pkg/timeslot"
)

func validateScheduleModify(m entities.ScheduleModify) error {
	if m.LocationID == nil || strings.TrimSpace(*m.LocationID) == "" ||
		m.Name == nil || strings.TrimSpace(*m.Name) == "" ||
		m.StartDate == nil || m.EndDate == nil {
		return ErrMissingRequiredFields
	}

	if dateOnly(*m.EndDate).Before(dateOnly(*m.StartDate)) {
		return ErrInvalidDateRange
	}

	return validateDays(m.Days)
}

func validateDays(days []entities.ScheduleDay) error {
	if len(days) > 7 {
		return fmt.Errorf("%w: more than 7 days", ErrInvalidScheduleDay)
	}

	seen := make(map[int]struct{}, len(days))
	for _, day := range days {
		if day.Weekday < 0 || day.Weekday > 6 {
			return fmt.Errorf("%w: weekday %d", ErrInvalidScheduleDay, day.Weekday)
		}
		if _, ok := seen[int(day.Weekday)]; ok {
			return fmt.Errorf("%w: duplicate %s", ErrInvalidScheduleDay, day.Weekday)
		}
		seen[int(day.Weekday)] = struct{}{}

		if !day.IsOpen {
			continue
		}
		if day.OpeningTime == nil || day.ClosingTime == nil {
			return fmt.Errorf("%w: %s is open without hours", ErrInvalidScheduleDay, day.Weekday)
		}
		opening, err := timeslot.ParseClock(*day.OpeningTime)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidScheduleDay, day.Weekday, err)
		}
		closing, err := timeslot.ParseClock(*day.ClosingTime)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidScheduleDay, day.Weekday, err)
		}
		if closing <= opening {
			return fmt.Errorf("%w: %s closes before it opens", ErrInvalidScheduleDay, day.Weekday)
		}
	}
	return nil
}

// normalizeDays дополняет неделю закрытыми днями.
func normalizeDays(days []entities.ScheduleDay) []entities.ScheduleDay {
	byWeekday := make(map[int]entities.ScheduleDay, 7)
	for _, day := range days {
		if !day.IsOpen {
			day.OpeningTime = nil
			day.ClosingTime = nil
		}
		byWeekday[int(day.Weekday)] = day
	}

	normalized := make([]entities.ScheduleDay, 0, 7)
	for wd := 0; wd < 7; wd++ {
		day, ok := byWeekday[wd]
		if !ok {
			day = entities.ScheduleDay{Weekday: time.Weekday(wd)}
		}
		normalized = append(normalized, day)
	}
	return normalized
}
