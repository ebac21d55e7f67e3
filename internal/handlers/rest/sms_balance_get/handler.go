package sms_balance_get

import (
	"net/http"

	"foodbank/internal/generated/dto"
	"foodbank/internal/handlers/rest/common"
	"foodbank/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "sms_balance_get"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	status, err := h.service.BalanceStatus(r.Context())
	if err != nil {
		h.log.Error("sms balance status", logger.NewField("error", err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	common.WriteJSON(w, h.log, http.StatusOK, dto.BalanceStatus{
		HasBalanceProblem:   status.HasBalanceProblem,
		RecentBalanceErrors: status.RecentBalanceErrors,
		Credits:             status.Credits,
		BalanceCheckError:   status.BalanceCheckError,
		LastFailureMessage:  status.LastFailureMessage,
	})
}
