package schedule

import (
	"context"
	"fmt"
	"strings"
	"time"

	"foodbank/internal/entities"
)

type Schedule struct {
	repository Repository
	txManager  TxManager
}

func New(repository Repository, txManager TxManager) *Schedule {
	return &Schedule{
		repository: repository,
		txManager:  txManager,
	}
}

func (s *Schedule) CreateSchedule(ctx context.Context, scheduleModify entities.ScheduleModify) (*entities.Schedule, error) {
	scheduleModify.ID = nil
	if err := validateScheduleModify(scheduleModify); err != nil {
		return nil, err
	}
	scheduleModify.Days = normalizeDays(scheduleModify.Days)

	var created *entities.Schedule
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.checkOverlap(ctx, scheduleModify); err != nil {
			return err
		}

		schedule, err := s.repository.CreateSchedule(ctx, scheduleModify)
		if err != nil {
			return fmt.Errorf("create schedule: %w", err)
		}
		created = schedule
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *Schedule) UpdateSchedule(ctx context.Context, scheduleModify entities.ScheduleModify) (*entities.Schedule, error) {
	if scheduleModify.ID == nil || strings.TrimSpace(*scheduleModify.ID) == "" {
		return nil, ErrMissingRequiredFields
	}
	if err := validateScheduleModify(scheduleModify); err != nil {
		return nil, err
	}
	scheduleModify.Days = normalizeDays(scheduleModify.Days)

	var updated *entities.Schedule
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.checkOverlap(ctx, scheduleModify); err != nil {
			return err
		}

		schedule, err := s.repository.UpdateSchedule(ctx, scheduleModify)
		if err != nil {
			return fmt.Errorf("update schedule: %w", err)
		}
		updated = schedule
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DayTimeSlots возвращает слоты выдачи на дату и разрывы между ними.
func (s *Schedule) DayTimeSlots(ctx context.Context, locationID string, date time.Time) (*entities.DaySlots, error) {
	if strings.TrimSpace(locationID) == "" {
		return nil, ErrMissingRequiredFields
	}

	location, err := s.repository.GetLocation(ctx, locationID)
	if err != nil {
		return nil, fmt.Errorf("get location: %w", err)
	}
	if location.DefaultSlotDurationMinutes <= 0 {
		return nil, ErrInvalidSlotDuration
	}

	schedules, err := s.repository.ListSchedules(ctx, locationID)
	if err != nil {
		return nil, fmt.Errorf("list schedules: %w", err)
	}
	special, err := s.repository.GetSpecialDay(ctx, locationID, dateOnly(date))
	if err != nil {
		return nil, fmt.Errorf("get special day: %w", err)
	}

	slots := GenerateDaySpecificTimeSlots(date, location.DefaultSlotDurationMinutes, schedules, special)

	return &entities.DaySlots{
		LocationID:          locationID,
		Date:                dateOnly(date),
		SlotDurationMinutes: location.DefaultSlotDurationMinutes,
		Hours:               ResolveOperatingHours(date, schedules, special),
		Slots:               slots,
		Gaps:                FindTimeGaps(slots, location.DefaultSlotDurationMinutes),
	}, nil
}

func (s *Schedule) checkOverlap(ctx context.Context, scheduleModify entities.ScheduleModify) error {
	if _, err := s.repository.GetLocation(ctx, *scheduleModify.LocationID); err != nil {
		return fmt.Errorf("get location: %w", err)
	}

	existing, err := s.repository.ListSchedules(ctx, *scheduleModify.LocationID)
	if err != nil {
		return fmt.Errorf("list schedules: %w", err)
	}

	candidate := entities.Schedule{
		StartDate: *scheduleModify.StartDate,
		EndDate:   *scheduleModify.EndDate,
	}
	if scheduleModify.ID != nil {
		candidate.ID = *scheduleModify.ID
	}

	if conflict := FindOverlappingSchedule(candidate, existing); conflict != nil {
		return fmt.Errorf("%w: %q (%s - %s)",
			ErrScheduleOverlap,
			conflict.Name,
			conflict.StartDate.Format(time.DateOnly),
			conflict.EndDate.Format(time.DateOnly),
		)
	}
	return nil
}
