package schedule

import (
	"fmt"
	"sort"
	"time"

	"foodbank/internal/entities"
	"foodbank/internal/pkg/timeslot"

	"github.com/jinzhu/now"
)

const DefaultGapSlotMinutes = 15

var isoWeek = &now.Config{
	WeekStartDay: time.Monday,
	TimeLocation: time.UTC,
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DoDateRangesOverlap сравнивает интервалы по датам, границы включительно.
// Интервал с тем же ID не пересекается сам с собой.
func DoDateRangesOverlap(a, b entities.DateRange) bool {
	if a.ID != "" && a.ID == b.ID {
		return false
	}
	aStart, aEnd := dateOnly(a.StartDate), dateOnly(a.EndDate)
	bStart, bEnd := dateOnly(b.StartDate), dateOnly(b.EndDate)

	return !aStart.After(bEnd) && !bStart.After(aEnd)
}

// FindOverlappingSchedule возвращает первое по порядку пересекающееся расписание или nil.
func FindOverlappingSchedule(candidate entities.Schedule, existing []entities.Schedule) *entities.Schedule {
	for i := range existing {
		if DoDateRangesOverlap(candidate.DateRange(), existing[i].DateRange()) {
			return &existing[i]
		}
	}
	return nil
}

// GetWeekDateRange возвращает понедельник и воскресенье ISO-недели (полночь UTC).
func GetWeekDateRange(year, week int) (entities.WeekRange, error) {
	if week < 1 || week > isoWeeksInYear(year) {
		return entities.WeekRange{}, fmt.Errorf("%w: %d-W%02d", ErrInvalidWeek, year, week)
	}

	// 4 января всегда попадает в первую ISO-неделю
	firstMonday := isoWeek.With(time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)).BeginningOfWeek()
	start := firstMonday.AddDate(0, 0, 7*(week-1))

	return entities.WeekRange{
		StartDate: start,
		EndDate:   start.AddDate(0, 0, 6),
	}, nil
}

func GetWeekAndYear(date time.Time) entities.WeekAndYear {
	year, week := dateOnly(date).ISOWeek()
	return entities.WeekAndYear{Week: week, Year: year}
}

func isoWeeksInYear(year int) int {
	_, week := time.Date(year, time.December, 28, 0, 0, 0, 0, time.UTC).ISOWeek()
	return week
}

// ResolveOperatingHours определяет часы работы на дату. Особый день важнее недельного расписания.
func ResolveOperatingHours(date time.Time, schedules []entities.Schedule, special *entities.SpecialDay) entities.OperatingHours {
	day := dateOnly(date)

	if special != nil && dateOnly(special.Date).Equal(day) {
		hours := entities.OperatingHours{Source: entities.HoursFromSpecialDay}
		if !special.IsOpen {
			return hours
		}
		return openHours(hours, special.OpeningTime, special.ClosingTime)
	}

	for i := range schedules {
		s := &schedules[i]
		if day.Before(dateOnly(s.StartDate)) || day.After(dateOnly(s.EndDate)) {
			continue
		}

		id := s.ID
		hours := entities.OperatingHours{
			Source:     entities.HoursFromSchedule,
			ScheduleID: &id,
		}
		scheduleDay, ok := s.Day(day.Weekday())
		if !ok || !scheduleDay.IsOpen {
			return hours
		}
		return openHours(hours, scheduleDay.OpeningTime, scheduleDay.ClosingTime)
	}

	return entities.OperatingHours{Source: entities.HoursNone}
}

func openHours(hours entities.OperatingHours, opening, closing *string) entities.OperatingHours {
	if opening == nil || closing == nil {
		return hours
	}
	open, err := timeslot.ParseClock(*opening)
	if err != nil {
		return hours
	}
	closeAt, err := timeslot.ParseClock(*closing)
	if err != nil || closeAt <= open {
		return hours
	}

	hours.IsOpen = true
	hours.Opening = open
	hours.Closing = closeAt
	return hours
}

// GenerateDaySpecificTimeSlots строит слоты от открытия; последний слот целиком помещается до закрытия.
func GenerateDaySpecificTimeSlots(
	date time.Time,
	slotMinutes int,
	schedules []entities.Schedule,
	special *entities.SpecialDay,
) []string {
	slots := []string{}
	if slotMinutes <= 0 {
		return slots
	}

	hours := ResolveOperatingHours(date, schedules, special)
	if !hours.IsOpen {
		return slots
	}

	for start := hours.Opening; start+slotMinutes <= hours.Closing; start += slotMinutes {
		slots = append(slots, timeslot.FormatClock(start))
	}
	return slots
}

// FindTimeGaps ищет разрывы больше slotMinutes между соседними слотами.
// Нераспознанные значения пропускаются.
func FindTimeGaps(slots []string, slotMinutes int) []entities.TimeGap {
	if slotMinutes <= 0 {
		slotMinutes = DefaultGapSlotMinutes
	}

	minutes := make([]int, 0, len(slots))
	for _, slot := range slots {
		m, err := timeslot.ParseClock(slot)
		if err != nil {
			continue
		}
		minutes = append(minutes, m)
	}
	sort.Ints(minutes)

	gaps := []entities.TimeGap{}
	for i := 1; i < len(minutes); i++ {
		diff := minutes[i] - minutes[i-1]
		if diff > slotMinutes {
			gaps = append(gaps, entities.TimeGap{
				StartTime:       timeslot.FormatClock(minutes[i-1]),
				EndTime:         timeslot.FormatClock(minutes[i]),
				DurationMinutes: diff,
			})
		}
	}
	return gaps
}

func FormatDuration(minutes int) string {
	switch {
	case minutes <= 0:
		return "0 min"
	case minutes < 60:
		return fmt.Sprintf("%d min", minutes)
	case minutes%60 == 0:
		hours := minutes / 60
		if hours == 1 {
			return "1 hour"
		}
		return fmt.Sprintf("%d hours", hours)
	default:
		return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
	}
}
