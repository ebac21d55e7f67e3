package sms_schedule

import (
	"time"

	"foodbank/pkg/clock"
)

const (
	// ReminderLeadTime - за сколько до выдачи уходит напоминание.
	ReminderLeadTime = 48 * time.Hour
	// GracePeriod дает оператору время исправить ошибку до отправки.
	GracePeriod = 5 * time.Minute
)

type ScheduleTimeFactory struct {
	clock clock.Clock
}

func New(clock clock.Clock) *ScheduleTimeFactory {
	return &ScheduleTimeFactory{clock: clock}
}

func (f *ScheduleTimeFactory) CalculateSmsScheduleTime(pickupTime time.Time) time.Time {
	now := f.clock.Now()
	if pickupTime.Sub(now) > ReminderLeadTime {
		return pickupTime.Add(-ReminderLeadTime)
	}
	return now.Add(GracePeriod)
}
