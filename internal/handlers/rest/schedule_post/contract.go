//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=schedule_post_test
package schedule_post

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
	CreateSchedule(ctx context.Context, scheduleModify entities.ScheduleModify) (*entities.Schedule, error)
}
