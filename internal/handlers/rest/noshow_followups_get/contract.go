//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=noshow_followups_get_test
package noshow_followups_get

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
	ListFollowups(ctx context.Context) ([]entities.NoShowFollowup, error)
}
