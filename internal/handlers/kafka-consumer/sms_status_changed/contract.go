//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=sms_status_changed_test
package sms_status_changed

import (
	"context"

	"foodbank/internal/entities"
	"foodbank/pkg/logger"

	"github.com/IBM/sarama"
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

// session - часть sarama.ConsumerGroupSession, нужная для обработки одного сообщения.
type session interface {
	Context() context.Context
	MarkMessage(msg *sarama.ConsumerMessage, metadata string)
}
