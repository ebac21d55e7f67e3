package sms_dispatch

import (
	"context"
	"time"

	"foodbank/pkg/logger"
)

type SmsDispatch struct {
	log      taskLogger
	service  Service
	interval time.Duration
}

func NewSmsDispatch(log taskLogger, service Service, interval time.Duration) *SmsDispatch {
	return &SmsDispatch{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (d *SmsDispatch) TTL() time.Duration {
	return d.interval
}

// Do отправляет сообщения, у которых наступило время попытки.
func (d *SmsDispatch) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, d.interval)
	defer cancel()

	result, err := d.service.DispatchDue(ctxWithTimeout)

	if result != nil && (result.Claimed > 0 || result.Released > 0) {
		d.log.With(
			logger.NewField("released", result.Released),
			logger.NewField("claimed", result.Claimed),
			logger.NewField("sent", result.Sent),
			logger.NewField("retried", result.Retried),
			logger.NewField("failed", result.Failed),
		).Info("sms dispatch")
	}

	return err
}

func (d *SmsDispatch) Info() string {
	return "sms dispatch"
}
