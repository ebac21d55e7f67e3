package household_delete

import (
	"errors"
	"net/http"

	"foodbank/internal/generated/dto"
	"foodbank/internal/handlers/rest/common"
	"foodbank/internal/service/household"
	"foodbank/pkg/logger"

	"github.com/gorilla/mux"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(logger.NewField("handler", "household_delete"))

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	householdID := mux.Vars(r)["id"]
	// автор удаления обязателен: он попадает в anonymized_by
	userID := r.Header.Get(common.HeaderUserID)

	removal, err := h.service.RemoveHousehold(r.Context(), householdID, userID)
	if err != nil {
		switch {
		case errors.Is(err, household.ErrMissingRequiredFields):
			common.WriteError(w, h.log, http.StatusBadRequest, err.Error())
		case errors.Is(err, household.ErrHouseholdNotFound):
			common.WriteError(w, h.log, http.StatusNotFound, err.Error())
		case errors.Is(err, household.ErrHasUpcomingParcels):
			common.WriteError(w, h.log, http.StatusConflict, err.Error())
		default:
			h.log.Error("remove household",
				logger.NewField("household_id", householdID),
				logger.NewField("error", err),
			)
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	h.log.Info("household removed",
		logger.NewField("household_id", householdID),
		logger.NewField("result", removal.Result.String()),
	)

	common.WriteJSON(w, h.log, http.StatusOK, dto.HouseholdRemovalResponse{
		HouseholdId: removal.HouseholdID,
		Result:      dto.HouseholdRemovalResponseResult(removal.Result),
	})
}
