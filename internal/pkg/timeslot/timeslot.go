package timeslot

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jinzhu/now"
)

const minutesPerDay = 24 * 60

var ErrInvalidClock = errors.New("invalid clock time, expected HH:MM")

// ParseClock переводит "HH:MM" (допускается "HH:MM:SS") в минуты от полуночи.
func ParseClock(s string) (int, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 24 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}

	total := hours*60 + minutes
	if total > minutesPerDay {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	return total, nil
}

func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// Calendar отвечает за границы дней в часовом поясе пунктов выдачи.
type Calendar struct {
	loc *time.Location
}

func NewCalendar(loc *time.Location) *Calendar {
	if loc == nil {
		loc = time.UTC
	}
	return &Calendar{loc: loc}
}

func (c *Calendar) Location() *time.Location {
	return c.loc
}

func (c *Calendar) with(t time.Time) *now.Now {
	cfg := &now.Config{
		WeekStartDay: time.Monday,
		TimeLocation: c.loc,
	}
	return cfg.With(t.In(c.loc))
}

func (c *Calendar) StartOfDay(t time.Time) time.Time {
	return c.with(t).BeginningOfDay()
}

func (c *Calendar) EndOfDay(t time.Time) time.Time {
	return c.with(t).EndOfDay()
}

// NextDay возвращает начало следующего календарного дня (корректно для перехода на летнее время).
func (c *Calendar) NextDay(t time.Time) time.Time {
	start := c.StartOfDay(t)
	return time.Date(start.Year(), start.Month(), start.Day()+1, 0, 0, 0, 0, c.loc)
}

// Date возвращает календарную дату момента t как полночь UTC.
func (c *Calendar) Date(t time.Time) time.Time {
	local := t.In(c.loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}

// At собирает момент времени из календарной даты и минут от полуночи.
func (c *Calendar) At(date time.Time, minutes int) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, minutes, 0, 0, c.loc)
}

func (c *Calendar) SameDate(a, b time.Time) bool {
	return c.Date(a).Equal(c.Date(b))
}

func (c *Calendar) MinutesOfDay(t time.Time) int {
	local := t.In(c.loc)
	return local.Hour()*60 + local.Minute()
}

// SlotStart округляет t вниз до границы слота длиной slotMinutes.
func (c *Calendar) SlotStart(t time.Time, slotMinutes int) time.Time {
	if slotMinutes <= 0 {
		return t
	}
	minutes := c.MinutesOfDay(t)
	return c.At(c.Date(t), minutes-minutes%slotMinutes)
}

func FormatDate(date time.Time) string {
	return date.Format(time.DateOnly)
}
