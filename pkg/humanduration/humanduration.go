// Package humanduration разбирает длительности вида "1 year", "5 minutes", "30s".
//
// Отличия от time.ParseDuration:
//   - поддерживаются дни, недели и годы (год = 365.25 дня);
//   - "M" означает минуты, а не месяцы;
//   - месяцы не поддерживаются вовсе, так как у них нет фиксированной длины;
//   - нулевые и отрицательные значения считаются ошибкой.
package humanduration

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	Day  = 24 * time.Hour
	Week = 7 * Day
	Year = time.Duration(365.25 * float64(Day))
)

var (
	ErrEmpty             = errors.New("empty duration")
	ErrInvalidFormat     = errors.New("invalid duration format")
	ErrUnknownUnit       = errors.New("unknown duration unit")
	ErrMonthsUnsupported = errors.New("months are not supported, use days or years")
	ErrNotPositive       = errors.New("duration must be positive")
)

var pattern = regexp.MustCompile(`^(-?(?:\d+)?\.?\d+)\s*([a-zA-Z]*)$`)

var units = map[string]time.Duration{
	"":             time.Millisecond,
	"ms":           time.Millisecond,
	"msec":         time.Millisecond,
	"msecs":        time.Millisecond,
	"millisecond":  time.Millisecond,
	"milliseconds": time.Millisecond,
	"s":            time.Second,
	"sec":          time.Second,
	"secs":         time.Second,
	"second":       time.Second,
	"seconds":      time.Second,
	"m":            time.Minute,
	"min":          time.Minute,
	"mins":         time.Minute,
	"minute":       time.Minute,
	"minutes":      time.Minute,
	"h":            time.Hour,
	"hr":           time.Hour,
	"hrs":          time.Hour,
	"hour":         time.Hour,
	"hours":        time.Hour,
	"d":            Day,
	"day":          Day,
	"days":         Day,
	"w":            Week,
	"week":         Week,
	"weeks":        Week,
	"y":            Year,
	"yr":           Year,
	"yrs":          Year,
	"year":         Year,
	"years":        Year,
}

var monthUnits = map[string]struct{}{
	"mo":     {},
	"mos":    {},
	"month":  {},
	"months": {},
}

func Parse(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrEmpty
	}

	match := pattern.FindStringSubmatch(s)
	if match == nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}

	value, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %w", ErrInvalidFormat, s, err)
	}

	// "M" и "m" одинаково означают минуты, поэтому регистр можно отбросить
	unitName := strings.ToLower(match[2])
	if _, ok := monthUnits[unitName]; ok {
		return 0, fmt.Errorf("%w: %q", ErrMonthsUnsupported, s)
	}

	unit, ok := units[unitName]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, match[2])
	}

	if value <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrNotPositive, s)
	}

	result := value * float64(unit)
	if result > math.MaxInt64 {
		return 0, fmt.Errorf("%w: %q overflows", ErrInvalidFormat, s)
	}
	return time.Duration(result), nil
}

// MustParse для констант в конфигурации по умолчанию.
func MustParse(s string) time.Duration {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}
