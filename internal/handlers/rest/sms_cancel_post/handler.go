package sms_cancel_post

import (
	"errors"
	"net/http"

	"foodbank/internal/handlers/rest/common"
	"foodbank/internal/service/sms"
	"foodbank/pkg/logger"

	"github.com/gorilla/mux"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "sms_cancel_post"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	smsID := mux.Vars(r)["id"]

	cancelled, err := h.service.CancelSms(r.Context(), smsID)
	if err != nil {
		switch {
		case errors.Is(err, sms.ErrMissingRequiredFields):
			common.WriteError(w, h.log, http.StatusBadRequest, err.Error())
		case errors.Is(err, sms.ErrSmsNotFound):
			common.WriteError(w, h.log, http.StatusNotFound, err.Error())
		case errors.Is(err, sms.ErrInvalidStatusChange):
			common.WriteError(w, h.log, http.StatusConflict, err.Error())
		default:
			h.log.Error("cancel sms", logger.NewField("sms_id", smsID), logger.NewField("error", err))
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	common.WriteJSON(w, h.log, http.StatusOK, common.SmsToDTO(*cancelled))
}
