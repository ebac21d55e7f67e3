package sms_resend_post

import (
	"errors"
	"net/http"

	"foodbank/internal/handlers/rest/common"
	"foodbank/internal/service/parcel"
	"foodbank/internal/service/sms"
	"foodbank/pkg/logger"

	"github.com/gorilla/mux"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "sms_resend_post"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	parcelID := mux.Vars(r)["id"]

	queued, err := h.service.ResendReminder(r.Context(), parcelID)
	if err != nil {
		switch {
		case errors.Is(err, sms.ErrMissingRequiredFields):
			common.WriteError(w, h.log, http.StatusBadRequest, err.Error())
		case errors.Is(err, parcel.ErrParcelNotFound):
			common.WriteError(w, h.log, http.StatusNotFound, err.Error())
		case errors.Is(err, sms.ErrParcelCancelled),
			errors.Is(err, sms.ErrHouseholdNotReachable):
			common.WriteError(w, h.log, http.StatusConflict, err.Error())
		case errors.Is(err, sms.ErrResendCooldown):
			common.WriteError(w, h.log, http.StatusTooManyRequests, err.Error())
		default:
			h.log.Error("resend reminder",
				logger.NewField("parcel_id", parcelID),
				logger.NewField("error", err),
			)
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	common.WriteJSON(w, h.log, http.StatusAccepted, common.SmsToDTO(*queued))
}
