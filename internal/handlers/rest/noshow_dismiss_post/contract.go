//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=noshow_dismiss_post_test
package noshow_dismiss_post

import (
	"context"

	"foodbank/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	DismissFollowup(ctx context.Context, householdID, userID string) error
}
