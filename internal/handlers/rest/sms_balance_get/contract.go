//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=sms_balance_get_test
package sms_balance_get

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
	BalanceStatus(ctx context.Context) (*entities.SmsBalanceStatus, error)
}
