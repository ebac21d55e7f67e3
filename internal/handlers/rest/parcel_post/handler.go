package parcel_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"foodbank/internal/entities"
	"foodbank/internal/generated/dto"
	"foodbank/internal/handlers/rest/common"
	"foodbank/internal/service/parcel"
	"foodbank/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "parcel_post"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var parcelCreateDTO dto.ParcelCreateRequest
	err := json.NewDecoder(r.Body).Decode(&parcelCreateDTO)
	if err != nil {
		common.WriteError(w, h.log, http.StatusBadRequest, "invalid request body")
		return
	}

	candidate := entities.ParcelCandidate{
		HouseholdID:        parcelCreateDTO.HouseholdId,
		PickupLocationID:   parcelCreateDTO.PickupLocationId,
		PickupEarliestTime: parcelCreateDTO.PickupEarliestTime,
		PickupLatestTime:   parcelCreateDTO.PickupLatestTime,
	}

	created, err := h.service.CreateParcel(r.Context(), candidate)
	if err != nil {
		if validationErrs, ok := parcel.ValidationErrors(err); ok {
			common.WriteValidationErrors(w, r, h.log, validationErrs)
			return
		}

		switch {
		case errors.Is(err, parcel.ErrMissingRequiredFields):
			common.WriteError(w, h.log, http.StatusBadRequest, err.Error())
		case errors.Is(err, parcel.ErrHouseholdNotFound):
			common.WriteError(w, h.log, http.StatusNotFound, err.Error())
		case errors.Is(err, parcel.ErrHouseholdAnonymized):
			common.WriteError(w, h.log, http.StatusConflict, err.Error())
		default:
			h.log.Error("create parcel", logger.NewField("error", err))
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	common.WriteJSON(w, h.log, http.StatusCreated, common.ParcelToDTO(*created))
}
