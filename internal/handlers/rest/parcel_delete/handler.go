package parcel_delete

import (
	"errors"
	"net/http"

	"foodbank/internal/handlers/rest/common"
	"foodbank/internal/service/parcel"
	"foodbank/pkg/logger"

	"github.com/gorilla/mux"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "parcel_delete"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	parcelID := mux.Vars(r)["id"]

	err := h.service.CancelParcel(r.Context(), parcelID, common.UserID(r))
	if err != nil {
		switch {
		case errors.Is(err, parcel.ErrMissingRequiredFields):
			common.WriteError(w, h.log, http.StatusBadRequest, err.Error())
		case errors.Is(err, parcel.ErrParcelNotFound):
			common.WriteError(w, h.log, http.StatusNotFound, err.Error())
		case errors.Is(err, parcel.ErrOutcomeAlreadyRecorded):
			common.WriteError(w, h.log, http.StatusConflict, err.Error())
		default:
			h.log.Error("cancel parcel", logger.NewField("error", err))
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
