package parcel_put

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
	handlerLog := log.With(logger.NewField("handler", "parcel_put"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	parcelID := mux.Vars(r)["id"]

	var parcelUpdateDTO dto.ParcelUpdateRequest
	err := json.NewDecoder(r.Body).Decode(&parcelUpdateDTO)
	if err != nil {
		common.WriteError(w, h.log, http.StatusBadRequest, "invalid request body")
		return
	}

	candidate := entities.ParcelCandidate{
		ID:                 &parcelID,
		PickupLocationID:   parcelUpdateDTO.PickupLocationId,
		PickupEarliestTime: parcelUpdateDTO.PickupEarliestTime,
		PickupLatestTime:   parcelUpdateDTO.PickupLatestTime,
	}

	updated, err := h.service.UpdateParcel(r.Context(), candidate)
	if err != nil {
		if validationErrs, ok := parcel.ValidationErrors(err); ok {
			common.WriteValidationErrors(w, r, h.log, validationErrs)
			return
		}

		switch {
		case errors.Is(err, parcel.ErrMissingRequiredFields):
			common.WriteError(w, h.log, http.StatusBadRequest, err.Error())
		case errors.Is(err, parcel.ErrParcelNotFound):
			common.WriteError(w, h.log, http.StatusNotFound, err.Error())
		case errors.Is(err, parcel.ErrOutcomeAlreadyRecorded):
			common.WriteError(w, h.log, http.StatusConflict, err.Error())
		default:
			h.log.Error("update parcel", logger.NewField("error", err))
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	common.WriteJSON(w, h.log, http.StatusOK, common.ParcelToDTO(*updated))
}
