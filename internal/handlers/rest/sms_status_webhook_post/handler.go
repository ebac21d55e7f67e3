package sms_status_webhook_post

import (
	"crypto/subtle"
	"encoding/json"
	"errors"
	"net/http"

	"foodbank/internal/entities"
	"foodbank/internal/generated/dto"
	"foodbank/internal/handlers/rest/common"
	"foodbank/internal/pkg/config"
	"foodbank/internal/service/sms"
	"foodbank/pkg/logger"

	"github.com/AlekSi/pointer"
	"github.com/gorilla/mux"
)

const HeaderWebhookSecret = "X-Webhook-Secret"

type Handler struct {
	log     handlerLogger
	service Service
	secret  string
}

func New(log handlerLogger, service Service, cfg *config.SmsGateway) *Handler {
	handlerLog := log.With(logger.NewField("handler", "sms_status_webhook_post"))

	return &Handler{
		log:     handlerLog,
		service: service,
		secret:  cfg.WebhookSecret,
	}
}

// ServeHTTP принимает отчет о доставке. Секрет берется из пути или заголовка.
// После проверки секрета и формата ответ всегда 200.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	secret, ok := mux.Vars(r)["secret"]
	if !ok {
		secret = r.Header.Get(HeaderWebhookSecret)
	}
	if !h.authorized(secret) {
		h.log.Warn("sms webhook rejected: bad secret")
		w.WriteHeader(http.StatusNotFound)
		return
	}

	var report dto.SmsStatusReport
	if err := json.NewDecoder(r.Body).Decode(&report); err != nil {
		common.WriteError(w, h.log, http.StatusBadRequest, "invalid request body")
		return
	}
	if report.ApiMessageId == "" {
		common.WriteError(w, h.log, http.StatusBadRequest, "apiMessageId is required")
		return
	}

	err := h.service.ApplyProviderStatus(r.Context(), entities.SmsProviderReport{
		APIMessageID: report.ApiMessageId,
		Status:       entities.SmsProviderStatus(report.Status),
		Timestamp:    report.Timestamp,
		CallbackRef:  report.CallbackRef,
	})
	if err != nil {
		switch {
		case errors.Is(err, sms.ErrInvalidProviderStatus):
			common.WriteError(w, h.log, http.StatusBadRequest, err.Error())
			return
		case errors.Is(err, sms.ErrUnknownMessage):
			h.log.Warn("sms webhook for unknown message",
				logger.NewField("api_message_id", report.ApiMessageId),
			)
			common.WriteJSON(w, h.log, http.StatusOK, dto.WebhookAck{Received: true})
			return
		default:
			h.log.Error("apply provider status",
				logger.NewField("api_message_id", report.ApiMessageId),
				logger.NewField("error", err),
			)
			common.WriteJSON(w, h.log, http.StatusOK, dto.WebhookAck{
				Received: true,
				Error:    pointer.To("internal error"),
			})
			return
		}
	}

	common.WriteJSON(w, h.log, http.StatusOK, dto.WebhookAck{Received: true})
}

func (h *Handler) authorized(secret string) bool {
	if h.secret == "" || secret == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(secret), []byte(h.secret)) == 1
}
