//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=noshow_followup_scan_test
package noshow_followup_scan

import (
	"context"

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
	ListFollowups(ctx context.Context) ([]entities.NoShowFollowup, error)
}
