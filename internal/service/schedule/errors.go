package schedule

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidDateRange      = errors.New("schedule end date is before start date")
	ErrInvalidScheduleDay    = errors.New("invalid schedule day")
	ErrInvalidWeek           = errors.New("invalid iso week")
	ErrInvalidSlotDuration   = errors.New("invalid slot duration")

	ErrLocationNotFound = errors.New("pickup location not found")
	ErrScheduleNotFound = errors.New("schedule not found")
	ErrScheduleOverlap  = errors.New("schedule overlaps an existing schedule")
)
