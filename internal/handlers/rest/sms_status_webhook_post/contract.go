//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=sms_status_webhook_post_test
package sms_status_webhook_post

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
	ApplyProviderStatus(ctx context.Context, report entities.SmsProviderReport) error
}
