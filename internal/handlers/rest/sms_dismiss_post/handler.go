package sms_dismiss_post

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
	handlerLog := log.With(logger.NewField("handler", "sms_dismiss_post"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	smsID := mux.Vars(r)["id"]

	dismissed, err := h.service.DismissSms(r.Context(), smsID, common.UserIDOrSystem(r))
	if err != nil {
		switch {
		case errors.Is(err, sms.ErrMissingRequiredFields):
			common.WriteError(w, h.log, http.StatusBadRequest, err.Error())
		case errors.Is(err, sms.ErrSmsNotFound):
			common.WriteError(w, h.log, http.StatusNotFound, err.Error())
		case errors.Is(err, sms.ErrInvalidStatusChange):
			common.WriteError(w, h.log, http.StatusConflict, err.Error())
		default:
			h.log.Error("dismiss sms", logger.NewField("sms_id", smsID), logger.NewField("error", err))
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	common.WriteJSON(w, h.log, http.StatusOK, common.SmsToDTO(*dismissed))
}
