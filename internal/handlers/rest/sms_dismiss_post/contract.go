//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=sms_dismiss_post_test
package sms_dismiss_post

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
	DismissSms(ctx context.Context, smsID, userID string) (*entities.OutgoingSms, error)
}
