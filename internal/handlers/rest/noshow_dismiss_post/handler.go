package noshow_dismiss_post

import (
	"errors"
	"net/http"

	"foodbank/internal/handlers/rest/common"
	"foodbank/internal/service/noshow"
	"foodbank/pkg/logger"

	"github.com/gorilla/mux"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "noshow_dismiss_post"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	householdID := mux.Vars(r)["id"]

	err := h.service.DismissFollowup(r.Context(), householdID, common.UserIDOrSystem(r))
	if err != nil {
		switch {
		case errors.Is(err, noshow.ErrMissingRequiredFields):
			common.WriteError(w, h.log, http.StatusBadRequest, err.Error())
		case errors.Is(err, noshow.ErrHouseholdNotFound):
			common.WriteError(w, h.log, http.StatusNotFound, err.Error())
		default:
			h.log.Error("dismiss no-show followup", logger.NewField("error", err))
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
