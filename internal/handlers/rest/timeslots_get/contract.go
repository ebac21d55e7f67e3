//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=timeslots_get_test
package timeslots_get

import (
	"context"
	"time"

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
	DayTimeSlots(ctx context.Context, locationID string, date time.Time) (*entities.DaySlots, error)
}
