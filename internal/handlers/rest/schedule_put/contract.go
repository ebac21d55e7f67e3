//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=schedule_put_test
package schedule_put

import (
	"context"

	"foodbank/internal/entities"
	"foodbank/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	UpdateSchedule(ctx context.Context, scheduleModify entities.ScheduleModify) (*entities.Schedule, error)
}
