//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=anonymization_sweep_test
package anonymization_sweep

import (
	"context"
	"time"

	"foodbank/internal/entities"
	"foodbank/pkg/logger"
)

type taskLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	AnonymizeInactive(ctx context.Context, inactivity time.Duration) (*entities.AnonymizationSweepResult, error)
}
