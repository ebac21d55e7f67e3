package parcel_outcome_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"foodbank/internal/entities"
	"foodbank/internal/generated/dto"
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
	handlerLog := log.With(logger.NewField("handler", "parcel_outcome_post"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	parcelID := mux.Vars(r)["id"]

	var outcomeDTO dto.ParcelOutcomeRequest
	err := json.NewDecoder(r.Body).Decode(&outcomeDTO)
	if err != nil {
		common.WriteError(w, h.log, http.StatusBadRequest, "invalid request body")
		return
	}

	recorded, err := h.service.RecordOutcome(
		r.Context(),
		parcelID,
		entities.ParcelOutcomeType(outcomeDTO.Outcome),
		common.UserID(r),
	)
	if err != nil {
		switch {
		case errors.Is(err, parcel.ErrMissingRequiredFields),
			errors.Is(err, parcel.ErrInvalidOutcome):
			common.WriteError(w, h.log, http.StatusBadRequest, err.Error())
		case errors.Is(err, parcel.ErrParcelNotFound):
			common.WriteError(w, h.log, http.StatusNotFound, err.Error())
		case errors.Is(err, parcel.ErrOutcomeAlreadyRecorded),
			errors.Is(err, parcel.ErrNoShowBeforePickup):
			common.WriteError(w, h.log, http.StatusConflict, err.Error())
		default:
			h.log.Error("record parcel outcome", logger.NewField("error", err))
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	common.WriteJSON(w, h.log, http.StatusOK, common.ParcelToDTO(*recorded))
}
