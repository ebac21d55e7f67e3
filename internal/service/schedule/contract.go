//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=schedule_test
package schedule

import (
	"context"
	"time"

	"foodbank/internal/entities"
)

type Repository interface {
	GetLocation(ctx context.Context, locationID string) (*entities.PickupLocation, error)
	ListSchedules(ctx context.Context, locationID string) ([]entities.Schedule, error)
	// GetSpecialDay возвращает nil без ошибки, если особого дня нет.
	GetSpecialDay(ctx context.Context, locationID string, date time.Time) (*entities.SpecialDay, error)

	CreateSchedule(ctx context.Context, scheduleModify entities.ScheduleModify) (*entities.Schedule, error)
	UpdateSchedule(ctx context.Context, scheduleModify entities.ScheduleModify) (*entities.Schedule, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
