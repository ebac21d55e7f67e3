package sms_status_changed

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"foodbank/internal/entities"
	smsservice "foodbank/internal/service/sms"
	"foodbank/pkg/logger"

	"github.com/IBM/sarama"
)

// statusChangedEvent - отчет провайдера, переложенный шлюзом в Kafka.
type statusChangedEvent struct {
	APIMessageID string  `json:"apiMessageId"`
	Status       string  `json:"status"`
	Timestamp    *int64  `json:"timestamp,omitempty"`
	CallbackRef  *string `json:"callbackRef,omitempty"`
}

type Handler struct {
	smsService               Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, smsService Service, timeout time.Duration) *Handler {
	handlerLog := log.With(logger.NewField("handler", "sms_status_changed"))

	return &Handler{
		smsService:               smsService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("sms.status.changed: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			if shouldExit := h.messageProcessing(sess, message); shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// rebalance или остановка consumer group
			h.log.Info("sms.status.changed: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение из Kafka.
// Возвращает true, если нужно прервать ConsumeClaim без коммита сообщения.
func (h *Handler) messageProcessing(sess session, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event statusChangedEvent
	if err := json.Unmarshal(message.Value, &event); err != nil || event.APIMessageID == "" {
		h.log.Error("sms.status.changed handler received bad message",
			logger.NewField("error", err),
			logger.NewField("offset", message.Offset),
		)
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("api_message_id", event.APIMessageID),
		logger.NewField("status", event.Status),
		logger.NewField("offset", message.Offset),
	)

	err := h.smsService.ApplyProviderStatus(ctx, entities.SmsProviderReport{
		APIMessageID: event.APIMessageID,
		Status:       entities.SmsProviderStatus(event.Status),
		Timestamp:    event.Timestamp,
		CallbackRef:  event.CallbackRef,
	})
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.Warn("sms.status.changed handler context cancelled, message will be reprocessed",
				logger.NewField("error", err),
			)
			return true

		case errors.Is(err, smsservice.ErrUnknownMessage):
			msgLog.Warn("sms.status.changed handler unknown message")

		case errors.Is(err, smsservice.ErrInvalidProviderStatus):
			msgLog.Warn("sms.status.changed handler unknown status", logger.NewField("error", err))

		default:
			msgLog.Error("sms.status.changed handler failed to apply status", logger.NewField("error", err))
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.Info("sms.status.changed: processed")
	sess.MarkMessage(message, "")
	return false
}
