package household_parcels_put

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
	handlerLog := log.With(logger.NewField("handler", "household_parcels_put"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	householdID := mux.Vars(r)["id"]

	var replaceDTO dto.HouseholdParcelsReplaceRequest
	err := json.NewDecoder(r.Body).Decode(&replaceDTO)
	if err != nil {
		common.WriteError(w, h.log, http.StatusBadRequest, "invalid request body")
		return
	}

	candidates := make([]entities.ParcelCandidate, 0, len(replaceDTO.Parcels))
	for _, slot := range replaceDTO.Parcels {
		candidates = append(candidates, entities.ParcelCandidate{
			ID:                 slot.Id,
			HouseholdID:        householdID,
			PickupLocationID:   slot.PickupLocationId,
			PickupEarliestTime: slot.PickupEarliestTime,
			PickupLatestTime:   slot.PickupLatestTime,
		})
	}

	result, err := h.service.ReplaceHouseholdParcels(r.Context(), householdID, candidates, common.UserID(r))
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
			h.log.Error("replace household parcels",
				logger.NewField("household_id", householdID),
				logger.NewField("error", err),
			)
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	cancelled := result.Cancelled
	if cancelled == nil {
		cancelled = []string{}
	}

	common.WriteJSON(w, h.log, http.StatusOK, dto.HouseholdParcelsReplaceResponse{
		Created:   common.ParcelsToDTO(result.Created),
		Kept:      common.ParcelsToDTO(result.Kept),
		Cancelled: cancelled,
	})
}
