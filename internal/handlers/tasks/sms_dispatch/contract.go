//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=sms_dispatch_test
package sms_dispatch

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
	DispatchDue(ctx context.Context) (*entities.SmsDispatchResult, error)
}
