package common

import (
	"errors"
	"net/http"

	"foodbank/internal/service/schedule"
)

// ScheduleErrorStatus сопоставляет ошибки расписания со статусами HTTP.
// false - ошибка неожиданная и отвечать нужно 500.
func ScheduleErrorStatus(err error) (int, bool) {
	switch {
	case errors.Is(err, schedule.ErrMissingRequiredFields),
		errors.Is(err, schedule.ErrInvalidDateRange),
		errors.Is(err, schedule.ErrInvalidScheduleDay),
		errors.Is(err, schedule.ErrInvalidSlotDuration):
		return http.StatusBadRequest, true
	case errors.Is(err, schedule.ErrLocationNotFound),
		errors.Is(err, schedule.ErrScheduleNotFound):
		return http.StatusNotFound, true
	case errors.Is(err, schedule.ErrScheduleOverlap):
		return http.StatusConflict, true
	}
	return 0, false
}
